package catalog

import (
	"encoding/json"
	"sort"
)

// SizeRecord holds the measurements for one available size of one item.
// An item typically has several records, one per size label.
//
// The measurement fields form an open set: the dataset pipeline emits
// whatever fields it measured (chest_circumference, inseam_length, ...),
// and any of them may be absent for any record. Administrative fields are
// separated from measurements at decode time so downstream consumers can
// treat Measurements as purely numeric size data.
type SizeRecord struct {
	ItemID      string `json:"item_id"`
	ItemName    string `json:"item_name,omitempty"`
	GarmentType string `json:"garment_type"`
	Size        string `json:"size"`
	FitType     string `json:"fit_type,omitempty"`
	Ease        string `json:"ease,omitempty"`
	Stretch     string `json:"stretch,omitempty"`
	SizeSystem  string `json:"size_system,omitempty"`

	// Measurements maps measurement field name to a value in centimeters.
	// A missing field means the value was absent or null in the source.
	Measurements map[string]float64 `json:"-"`
}

// administrativeFields are the record fields that identify or describe the
// record rather than measure the garment. They are excluded from the
// Measurements map and from statistics.
var administrativeFields = map[string]bool{
	"item_id":      true,
	"item_name":    true,
	"garment_type": true,
	"size":         true,
	"fit_type":     true,
	"ease":         true,
	"stretch":      true,
	"size_system":  true,
}

// IsAdministrativeField reports whether a record field is administrative
// rather than a measurement.
func IsAdministrativeField(name string) bool {
	return administrativeFields[name]
}

// UnmarshalJSON decodes a size record from a flat JSON object, splitting
// administrative fields from the open set of numeric measurement fields.
// Measurement values may arrive as numbers or as strings with an embedded
// number ("94.5 cm"); nulls and non-numeric values are dropped.
func (r *SizeRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	stringField := func(key string) string {
		msg, ok := raw[key]
		if !ok {
			return ""
		}
		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			return s
		}
		// Tolerate numeric size labels and the like
		var f FlexibleFloat
		if err := json.Unmarshal(msg, &f); err == nil && f.Valid {
			return f.String()
		}
		return ""
	}

	r.ItemID = stringField("item_id")
	r.ItemName = stringField("item_name")
	r.GarmentType = stringField("garment_type")
	r.Size = stringField("size")
	r.FitType = stringField("fit_type")
	r.Ease = stringField("ease")
	r.Stretch = stringField("stretch")
	r.SizeSystem = stringField("size_system")

	r.Measurements = make(map[string]float64)
	for key, msg := range raw {
		if administrativeFields[key] {
			continue
		}
		var f FlexibleFloat
		if err := json.Unmarshal(msg, &f); err != nil || !f.Valid {
			continue
		}
		r.Measurements[key] = f.Value
	}
	return nil
}

// MarshalJSON re-flattens the record so that a decode/encode cycle
// preserves the source layout.
func (r SizeRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Measurements)+8)
	flat["item_id"] = r.ItemID
	flat["garment_type"] = r.GarmentType
	flat["size"] = r.Size
	if r.ItemName != "" {
		flat["item_name"] = r.ItemName
	}
	if r.FitType != "" {
		flat["fit_type"] = r.FitType
	}
	if r.Ease != "" {
		flat["ease"] = r.Ease
	}
	if r.Stretch != "" {
		flat["stretch"] = r.Stretch
	}
	if r.SizeSystem != "" {
		flat["size_system"] = r.SizeSystem
	}
	for key, value := range r.Measurements {
		flat[key] = value
	}
	return json.Marshal(flat)
}

// Measurement returns the named measurement and whether it is present.
func (r *SizeRecord) Measurement(name string) (float64, bool) {
	v, ok := r.Measurements[name]
	return v, ok
}

// MeasurementNames returns the record's measurement field names, sorted.
func (r *SizeRecord) MeasurementNames() []string {
	names := make([]string, 0, len(r.Measurements))
	for name := range r.Measurements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
