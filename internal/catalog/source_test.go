package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSource_Valid(t *testing.T) {
	src := []byte(`{
		"Cold Start": {"url": "https://wiki.example/Cold_Start", "dependencies": [], "unlocks": ["Echoes Below"]},
		"Echoes Below": {"url": "https://wiki.example/Echoes_Below", "dependencies": ["Cold Start"], "unlocks": []}
	}`)

	assert.NoError(t, ValidateSource("source.json", src))
}

func TestValidateSource_EmptySource(t *testing.T) {
	assert.NoError(t, ValidateSource("source.json", []byte(`{}`)))
}

func TestValidateSource_Rejections(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not json", `{`},
		{"top-level array", `[]`},
		{"url wrong type", `{"Cold Start": {"url": 7, "dependencies": [], "unlocks": []}}`},
		{"dependencies wrong type", `{"Cold Start": {"url": "u", "dependencies": "Cold Start", "unlocks": []}}`},
		{"dependency not a string", `{"Cold Start": {"url": "u", "dependencies": [1], "unlocks": []}}`},
		{"unknown field", `{"Cold Start": {"url": "u", "dependencies": [], "unlocks": [], "rewards": []}}`},
		{"missing url", `{"Cold Start": {"dependencies": [], "unlocks": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource("source.json", []byte(tt.src))
			require.Error(t, err)
			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestLoadSource_MissingFile(t *testing.T) {
	_, err := LoadSource("does/not/exist.json")
	require.Error(t, err)
}
