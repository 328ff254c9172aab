package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UserMeasurements maps measurement field names to values in centimeters.
// Partial coverage is expected; scoring tolerates missing fields.
type UserMeasurements map[string]float64

// numberPattern extracts the first number embedded in a string value,
// matching the original service's tolerance for inputs like "94.5 cm".
var numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// FlexibleFloat unmarshals from JSON numbers, numeric strings, or strings
// with an embedded number. Valid is false for nulls and non-numeric values.
type FlexibleFloat struct {
	Value float64
	Valid bool
}

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	f.Valid = false
	if string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if m := numberPattern.FindString(s); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				f.Value = v
				f.Valid = true
			}
		}
		return nil
	}

	// Objects, arrays, booleans: not a measurement, not an error
	return nil
}

func (f FlexibleFloat) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// ParseUserMeasurementsJSON decodes a user measurement mapping from JSON,
// applying the same value tolerance as size record decoding.
func ParseUserMeasurementsJSON(data []byte) (UserMeasurements, error) {
	var raw map[string]FlexibleFloat
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing measurements: %w", err)
	}

	m := make(UserMeasurements, len(raw))
	for key, f := range raw {
		if f.Valid {
			m[key] = f.Value
		}
	}
	return m, nil
}

// ParseUserMeasurementPairs parses key=value measurement pairs, as passed
// on the command line (e.g. chest_circumference=95).
func ParseUserMeasurementPairs(pairs []string) (UserMeasurements, error) {
	m := make(UserMeasurements, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid measurement %q (want name=value)", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid measurement value %q: %w", pair, err)
		}
		m[key] = v
	}
	return m, nil
}
