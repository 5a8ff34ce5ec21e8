package valueobjects

import "encoding/json"

// referenceKind tags the shape a parent/child field took in the source data.
type referenceKind int

const (
	referenceAbsent referenceKind = iota
	referenceSingle
	referenceMultiple
)

// Reference models a parent or child field of a classification entry.
// The raw data uses the field loosely: it may be missing, a single
// reference string, or a list of reference strings. Reference keeps the
// original shape so records re-serialize the way they arrived, while
// giving callers one uniform accessor for the contained values.
type Reference struct {
	kind   referenceKind
	values []string
}

// SingleReference builds a Reference holding one value
func SingleReference(value string) Reference {
	return Reference{kind: referenceSingle, values: []string{value}}
}

// MultipleReferences builds a Reference holding an ordered list of values
func MultipleReferences(values []string) Reference {
	copied := make([]string, len(values))
	copy(copied, values)
	return Reference{kind: referenceMultiple, values: copied}
}

// IsAbsent reports whether the field was missing or empty in the source
func (r Reference) IsAbsent() bool {
	return r.kind == referenceAbsent
}

// Values returns the contained reference strings in source order.
// An absent reference yields an empty slice.
func (r Reference) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// ShortIDs extracts a short identifier from every contained reference,
// preserving order. An absent or empty reference yields an empty slice.
func (r Reference) ShortIDs() []ShortID {
	ids := make([]ShortID, 0, len(r.values))
	for _, v := range r.values {
		ids = append(ids, ExtractShortID(v))
	}
	return ids
}

// UnmarshalJSON accepts the three source shapes: null or "" (absent),
// a bare string (single), or an array of strings (multiple).
func (r *Reference) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = Reference{}
			return nil
		}
		*r = Reference{kind: referenceSingle, values: []string{single}}
		return nil
	}

	var multiple []string
	if err := json.Unmarshal(data, &multiple); err != nil {
		return err
	}
	*r = Reference{kind: referenceMultiple, values: multiple}
	return nil
}

// MarshalJSON re-serializes in the shape the value arrived in; absent
// references serialize as an empty string rather than a missing field.
func (r Reference) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case referenceSingle:
		return json.Marshal(r.values[0])
	case referenceMultiple:
		return json.Marshal(r.values)
	default:
		return json.Marshal("")
	}
}
