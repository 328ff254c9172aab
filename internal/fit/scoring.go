package fit

import "strings"

// scoreTier maps an absolute-difference ceiling (cm) to a score.
type scoreTier struct {
	Limit float64
	Score float64
}

// measurementFamily groups measurement fields that share tolerance
// curves. Families are matched by substring of the field name, scanned
// in declared order.
type measurementFamily struct {
	Name     string
	Keywords []string

	// Tiers are checked in order against |difference|; Floor applies
	// beyond the last tier.
	Tiers []scoreTier
	Floor float64
}

// families holds the tolerance curves. Circumference fits are tighter
// than lengths: a 3 cm sleeve difference is barely noticeable where a
// 3 cm waist difference is a full size.
var families = []measurementFamily{
	{
		Name:     "chest",
		Keywords: []string{"chest"},
		Tiers:    []scoreTier{{2, 1.0}, {5, 0.8}, {8, 0.5}},
		Floor:    0.2,
	},
	{
		Name:     "waist",
		Keywords: []string{"waist"},
		Tiers:    []scoreTier{{1, 1.0}, {3, 0.8}, {6, 0.4}},
		Floor:    0.1,
	},
	{
		Name:     "length",
		Keywords: []string{"length", "sleeve"},
		Tiers:    []scoreTier{{3, 1.0}, {6, 0.7}, {10, 0.4}},
		Floor:    0.1,
	},
	{
		Name:     "hips",
		Keywords: []string{"hips"},
		Tiers:    []scoreTier{{2, 1.0}, {5, 0.7}, {8, 0.4}},
		Floor:    0.1,
	},
}

// defaultFamily covers measurement fields no family keyword matches.
var defaultFamily = measurementFamily{
	Name:  "default",
	Tiers: []scoreTier{{2, 1.0}, {5, 0.7}, {8, 0.4}},
	Floor: 0.1,
}

// familyFor returns the tolerance family for a measurement field name.
func familyFor(field string) measurementFamily {
	lowered := strings.ToLower(field)
	for _, fam := range families {
		for _, keyword := range fam.Keywords {
			if strings.Contains(lowered, keyword) {
				return fam
			}
		}
	}
	return defaultFamily
}

// scoreDifference maps a signed difference (user minus garment, cm) for
// one measurement field to a [0,1] score. The score is a step function of
// |difference|, non-increasing within a family.
func scoreDifference(field string, difference float64) float64 {
	fam := familyFor(field)
	abs := difference
	if abs < 0 {
		abs = -abs
	}
	for _, tier := range fam.Tiers {
		if abs <= tier.Limit {
			return tier.Score
		}
	}
	return fam.Floor
}

// assessDifference renders the qualitative per-measurement assessment.
// A positive difference means the user measurement exceeds the garment's
// (the garment runs tight); negative means the garment runs loose.
func assessDifference(field string, difference float64) string {
	fam := familyFor(field)
	abs := difference
	if abs < 0 {
		abs = -abs
	}

	direction := "loose"
	if difference > 0 {
		direction = "tight"
	}

	switch fam.Name {
	case "chest":
		switch {
		case abs <= 2:
			return "Perfect"
		case abs <= 5:
			return "Good"
		case abs <= 8:
			return "Slightly " + direction
		default:
			return "Too " + direction
		}
	case "waist":
		switch {
		case abs <= 1:
			return "Perfect"
		case abs <= 3:
			return "Good"
		case abs <= 6:
			return "Noticeably " + direction
		default:
			return "Too " + direction
		}
	default:
		switch {
		case abs <= 2:
			return "Perfect"
		case abs <= 5:
			return "Good"
		case abs <= 8:
			return "Acceptable"
		default:
			return "Poor"
		}
	}
}

// FitLabel maps an overall fit score to its qualitative label.
func FitLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent Fit"
	case score >= 0.6:
		return "Good Fit"
	case score >= 0.4:
		return "Fair Fit"
	default:
		return "Poor Fit"
	}
}
