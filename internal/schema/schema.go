// Package schema wraps a compiled JSON Schema behind the document
// validation surface the mapping engine consumes.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/grainbill/brewdex/internal/mapping"
)

// maxProblems caps how many violations one validation reports; a deeply
// broken document can produce thousands.
const maxProblems = 20

// Validator validates raw documents against a schema compiled once at
// construction.
type Validator struct {
	schema *jsonschema.Schema
}

var _ mapping.Validator = (*Validator)(nil)

// New compiles the schema in text. The name identifies the schema in
// compile errors and cross-references.
func New(name, text string) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat = true
	if err := c.AddResource(name, strings.NewReader(text)); err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", name, err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return &Validator{schema: s}, nil
}

// MustNew is New for schemas embedded at build time, where failure to
// compile is a programming error.
func MustNew(name, text string) *Validator {
	v, err := New(name, text)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate reports whether doc conforms to the schema. Each problem
// names the failing document location first.
func (v *Validator) Validate(doc []byte) (ok bool, problems []string) {
	var decoded any
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return false, []string{fmt.Sprintf("document is not JSON: %v", err)}
	}
	err := v.schema.Validate(decoded)
	if err == nil {
		return true, nil
	}
	verr, isValidation := err.(*jsonschema.ValidationError)
	if !isValidation {
		return false, []string{err.Error()}
	}
	collect(verr, &problems)
	if len(problems) > maxProblems {
		extra := len(problems) - maxProblems
		problems = append(problems[:maxProblems], fmt.Sprintf("and %d more problems", extra))
	}
	return false, problems
}

// collect walks the cause tree and keeps the leaf violations; the inner
// nodes only restate which branch failed.
func collect(e *jsonschema.ValidationError, out *[]string) {
	if len(e.Causes) == 0 {
		if e.InstanceLocation != "" {
			*out = append(*out, fmt.Sprintf("%s: %s", e.InstanceLocation, e.Message))
		} else {
			*out = append(*out, e.Message)
		}
		return
	}
	for _, cause := range e.Causes {
		collect(cause, out)
	}
}
