package fit

import "strings"

// keyMeasurementEntry maps a garment type to the ordered list of
// measurement fields that are diagnostic for fitting it.
type keyMeasurementEntry struct {
	GarmentType string
	Fields      []string
}

// keyMeasurementTable is the canonical garment-type table. Resolution
// scans it in declared order, so more specific types must precede the
// generic ones they contain as substrings (dress_shirt before shirt,
// sweatpants before pants).
var keyMeasurementTable = []keyMeasurementEntry{
	{"dress_shirt", []string{"chest_circumference", "neck_circumference", "sleeve_length"}},
	{"t_shirt", []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{"tee", []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{"tank_top", []string{"chest_circumference", "garment_length"}},
	{"crop_top", []string{"chest_circumference", "garment_length"}},
	{"shirt", []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{"blouse", []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{"polo", []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{"sweater", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"hoodie", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"cardigan", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"sweatpants", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"jeans", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"trousers", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"chinos", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"leggings", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"pants", []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{"bermuda", []string{"waist_circumference", "hips_circumference"}},
	{"shorts", []string{"waist_circumference", "hips_circumference"}},
	{"skirt", []string{"waist_circumference", "hips_circumference", "garment_length"}},
	{"jumpsuit", []string{"chest_circumference", "waist_circumference", "hips_circumference", "inseam_length"}},
	{"romper", []string{"chest_circumference", "waist_circumference", "hips_circumference"}},
	{"overalls", []string{"chest_circumference", "waist_circumference", "hips_circumference", "inseam_length"}},
	{"dress", []string{"chest_circumference", "waist_circumference", "hips_circumference", "garment_length"}},
	{"parka", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"windbreaker", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"blazer", []string{"chest_circumference", "shoulder_width", "sleeve_length"}},
	{"jacket", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"coat", []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{"vest", []string{"chest_circumference", "garment_length"}},
	{"gilet", []string{"chest_circumference", "garment_length"}},
}

// defaultKeyMeasurements is the last-resort field list for garment types
// nothing else matches.
var defaultKeyMeasurements = []string{"chest_circumference", "waist_circumference"}

// keywordFallback pairs a keyword set with the field list used when a
// garment type matches none of the table entries. Scanned in order.
var keywordFallback = []struct {
	Keywords []string
	Fields   []string
}{
	{[]string{"shirt", "tee", "top"}, []string{"chest_circumference", "garment_length", "sleeve_length"}},
	{[]string{"pant", "jean", "short"}, []string{"waist_circumference", "hips_circumference", "inseam_length"}},
	{[]string{"dress"}, []string{"chest_circumference", "waist_circumference", "hips_circumference", "garment_length"}},
	{[]string{"jacket", "coat"}, []string{"chest_circumference", "sleeve_length", "garment_length"}},
	{[]string{"skirt"}, []string{"waist_circumference", "hips_circumference", "garment_length"}},
}

// KeyMeasurements resolves the ordered key-measurement list for a garment
// type: exact table match first, then the first table entry related by
// substring in either direction, then keyword fallback, then the default
// chest/waist pair.
func KeyMeasurements(garmentType string) []string {
	lowered := strings.ToLower(garmentType)

	for _, entry := range keyMeasurementTable {
		if entry.GarmentType == lowered {
			return entry.Fields
		}
	}

	if lowered != "" {
		for _, entry := range keyMeasurementTable {
			if strings.Contains(lowered, entry.GarmentType) || strings.Contains(entry.GarmentType, lowered) {
				return entry.Fields
			}
		}
	}

	for _, fb := range keywordFallback {
		for _, keyword := range fb.Keywords {
			if strings.Contains(lowered, keyword) {
				return fb.Fields
			}
		}
	}

	return defaultKeyMeasurements
}
