// Package beerjson binds the mapping engine to the BeerJSON 1.0 document
// format: record definitions for every collection the format carries, the
// unit and enum tables matching its spellings, and the embedded JSON
// Schema that documents are checked against on import.
package beerjson

import (
	_ "embed"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/schema"
)

const (
	// CodingName identifies the dialect in user-facing messages.
	CodingName = "BeerJSON 1.0"

	// Version is the format version the root object carries.
	Version = "1.0"

	// RootName is the document's single top-level key.
	RootName = "beerjson"
)

//go:embed beerjson.schema.json
var schemaText string

// NewValidator compiles the embedded schema. The schema ships with the
// binary, so a compilation failure is a programming error and panics.
func NewValidator() *schema.Validator {
	return schema.MustNew("beerjson.schema.json", schemaText)
}

// NewCoding assembles the dialect around a validator. A nil validator
// skips schema validation on import, for callers that validate upstream.
func NewCoding(v mapping.Validator) *mapping.Coding {
	return mapping.NewCoding(CodingName, v, definitions()...)
}

// Default returns the ready-to-use dialect with schema validation.
func Default() *mapping.Coding {
	return NewCoding(NewValidator())
}
