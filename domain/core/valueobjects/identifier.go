package valueobjects

import "strings"

// ShortID is the final path segment of a long, URL-shaped classification
// identifier. It is the key used in the hierarchy map and in the graph.
type ShortID string

// ExtractShortID derives a ShortID from a long reference string by taking
// the substring after the last '/'. A string without a separator is
// already short and is returned unchanged, so the extraction is idempotent.
func ExtractShortID(ref string) ShortID {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ShortID(ref[i+1:])
	}
	return ShortID(ref)
}

// String returns the string representation
func (id ShortID) String() string {
	return string(id)
}

// IsEmpty checks whether the identifier carries any value
func (id ShortID) IsEmpty() bool {
	return id == ""
}

// Equals compares two identifiers
func (id ShortID) Equals(other ShortID) bool {
	return id == other
}
