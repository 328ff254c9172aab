package fit

import "testing"

func TestScoreDifference_Families(t *testing.T) {
	tests := []struct {
		field string
		diff  float64
		want  float64
	}{
		{"chest_circumference", 0, 1.0},
		{"chest_circumference", 2, 1.0},
		{"chest_circumference", -3, 0.8},
		{"chest_circumference", 5, 0.8},
		{"chest_circumference", 8, 0.5},
		{"chest_circumference", 9, 0.2},

		{"waist_circumference", 1, 1.0},
		{"waist_circumference", 3, 0.8},
		{"waist_circumference", -6, 0.4},
		{"waist_circumference", 8, 0.1},

		{"sleeve_length", 3, 1.0},
		{"garment_length", 6, 0.7},
		{"inseam_length", 10, 0.4},
		{"sleeve_length", 11, 0.1},

		{"hips_circumference", 2, 1.0},
		{"hips_circumference", 5, 0.7},
		{"hips_circumference", 8, 0.4},
		{"hips_circumference", -9, 0.1},

		{"neck_circumference", 2, 1.0},
		{"neck_circumference", 5, 0.7},
		{"neck_circumference", 8, 0.4},
		{"neck_circumference", 12, 0.1},
	}
	for _, tt := range tests {
		if got := scoreDifference(tt.field, tt.diff); got != tt.want {
			t.Errorf("scoreDifference(%q, %v) = %v, want %v", tt.field, tt.diff, got, tt.want)
		}
	}
}

func TestScoreDifference_Monotonic(t *testing.T) {
	fields := []string{"chest_circumference", "waist_circumference", "sleeve_length", "hips_circumference", "neck_circumference"}
	for _, field := range fields {
		prev := 1.1
		for diff := 0.0; diff <= 15; diff += 0.5 {
			got := scoreDifference(field, diff)
			if got > prev {
				t.Errorf("scoreDifference(%q, %v) = %v increased from %v", field, diff, got, prev)
			}
			prev = got
		}
	}
}

func TestAssessDifference(t *testing.T) {
	tests := []struct {
		field string
		diff  float64
		want  string
	}{
		{"chest_circumference", 1, "Perfect"},
		{"chest_circumference", 4, "Good"},
		{"chest_circumference", 7, "Slightly tight"},
		{"chest_circumference", -7, "Slightly loose"},
		{"chest_circumference", 10, "Too tight"},
		{"chest_circumference", -10, "Too loose"},

		{"waist_circumference", 1, "Perfect"},
		{"waist_circumference", 2, "Good"},
		{"waist_circumference", 5, "Noticeably tight"},
		{"waist_circumference", -5, "Noticeably loose"},
		{"waist_circumference", 8, "Too tight"},

		{"garment_length", 2, "Perfect"},
		{"garment_length", 4, "Good"},
		{"garment_length", 7, "Acceptable"},
		{"garment_length", 12, "Poor"},
	}
	for _, tt := range tests {
		if got := assessDifference(tt.field, tt.diff); got != tt.want {
			t.Errorf("assessDifference(%q, %v) = %q, want %q", tt.field, tt.diff, got, tt.want)
		}
	}
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Excellent Fit"},
		{0.8, "Excellent Fit"},
		{0.79, "Good Fit"},
		{0.6, "Good Fit"},
		{0.5, "Fair Fit"},
		{0.4, "Fair Fit"},
		{0.39, "Poor Fit"},
		{0, "Poor Fit"},
	}
	for _, tt := range tests {
		if got := FitLabel(tt.score); got != tt.want {
			t.Errorf("FitLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestKeyMeasurements(t *testing.T) {
	tests := []struct {
		garmentType string
		wantFirst   string
		wantLen     int
	}{
		// Exact table hits
		{"t_shirt", "chest_circumference", 3},
		{"jeans", "waist_circumference", 3},
		{"dress", "chest_circumference", 4},
		{"skirt", "waist_circumference", 3},

		// Substring relation against the table, declared order
		{"denim jacket", "chest_circumference", 3},
		{"maxi dress", "chest_circumference", 4},

		// Keyword fallback
		{"henley top", "chest_circumference", 3},

		// Default for unknown types
		{"poncho", "chest_circumference", 2},
	}
	for _, tt := range tests {
		got := KeyMeasurements(tt.garmentType)
		if len(got) != tt.wantLen || got[0] != tt.wantFirst {
			t.Errorf("KeyMeasurements(%q) = %v, want %d fields starting with %q",
				tt.garmentType, got, tt.wantLen, tt.wantFirst)
		}
	}
}

func TestKeyMeasurements_TableOrder(t *testing.T) {
	// dress_shirt must resolve to its own entry, not the generic shirt
	// entry it contains as a substring.
	got := KeyMeasurements("dress_shirt")
	if len(got) != 3 || got[1] != "neck_circumference" {
		t.Errorf("KeyMeasurements(dress_shirt) = %v, want neck_circumference second", got)
	}
}
