package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAbsent bool
		wantValues []string
	}{
		{
			name:       "single reference string",
			input:      `"http://x/A"`,
			wantValues: []string{"http://x/A"},
		},
		{
			name:       "list of references",
			input:      `["http://x/A", "http://x/B"]`,
			wantValues: []string{"http://x/A", "http://x/B"},
		},
		{
			name:       "empty string is absent",
			input:      `""`,
			wantAbsent: true,
			wantValues: []string{},
		},
		{
			name:       "null is absent",
			input:      `null`,
			wantAbsent: true,
			wantValues: []string{},
		},
		{
			name:       "empty list",
			input:      `[]`,
			wantValues: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref Reference
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))

			assert.Equal(t, tt.wantAbsent, ref.IsAbsent())
			assert.Equal(t, tt.wantValues, ref.Values())
		})
	}
}

func TestReferenceUnmarshalJSONRejectsObjects(t *testing.T) {
	var ref Reference
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &ref))
}

func TestReferenceMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want string
	}{
		{
			name: "absent serializes as empty string",
			ref:  Reference{},
			want: `""`,
		},
		{
			name: "single keeps its shape",
			ref:  SingleReference("http://x/A"),
			want: `"http://x/A"`,
		},
		{
			name: "multiple keeps its shape",
			ref:  MultipleReferences([]string{"http://x/A", "http://x/B"}),
			want: `["http://x/A","http://x/B"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestReferenceShortIDs(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want []ShortID
	}{
		{
			name: "absent yields empty list",
			ref:  Reference{},
			want: []ShortID{},
		},
		{
			name: "single",
			ref:  SingleReference("http://x/A"),
			want: []ShortID{"A"},
		},
		{
			name: "multiple preserves order",
			ref:  MultipleReferences([]string{"http://x/B", "http://x/A", "C"}),
			want: []ShortID{"B", "A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.ShortIDs())
		})
	}
}
