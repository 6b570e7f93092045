package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed source_schema.cue
var sourceSchema []byte

// SourceEntry is one quest in the raw scraped source, keyed by title.
// Dependencies and Unlocks hold quest titles; the tier sorter rewrites
// them to ids.
type SourceEntry struct {
	URL          string   `json:"url"`
	Dependencies []string `json:"dependencies"`
	Unlocks      []string `json:"unlocks"`
}

// RawSource is the scraper's output format: quest title → entry.
type RawSource map[string]SourceEntry

// SchemaError reports a catalog source that failed schema validation.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "catalog source does not match schema:\n" + e.Detail
}

// LoadSource reads and validates a raw catalog source file.
// The file is checked against the embedded CUE schema before decoding,
// so a catalog is never generated from structurally bad data.
func LoadSource(path string) (RawSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog source: %w", err)
	}

	if err := ValidateSource(path, data); err != nil {
		return nil, err
	}

	var src RawSource
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("decode catalog source: %w", err)
	}

	return src, nil
}

// ValidateSource checks raw source JSON against the embedded CUE schema.
// The filename is used only for error positions.
func ValidateSource(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(sourceSchema, cue.Filename("source_schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile source schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Source"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup #Source definition: %w", err)
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return &SchemaError{Detail: cueerrors.Details(err, nil)}
	}
	val := ctx.BuildExpr(expr)
	if err := val.Err(); err != nil {
		return &SchemaError{Detail: cueerrors.Details(err, nil)}
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Detail: cueerrors.Details(err, nil)}
	}

	return nil
}
