package main

// Exit codes shared by all ff commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing repository, invalid paths)
	ExitDataError   = 3 // Data error (malformed datasets, validation failure)
	ExitNoSnapshot  = 4 // Engine snapshot missing or unreadable
)
