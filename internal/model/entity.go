// Package model holds the domain entities a BeerJSON document maps onto:
// ingredients, profiles, styles, mash procedures and recipes. Entities are
// plain structs with typed string enums; the generic property surface the
// mapping engine and the persistence layer drive is implemented with
// explicit switches, no reflection.
package model

import (
	"time"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/measure"
)

// Entity is the surface the mapping engine consumes.
type Entity = mapping.Entity

// Owned marks entities that belong to a parent entity.
type Owned = mapping.Owned

// Bundle is the name-value bag a record hands to an entity constructor.
type Bundle = mapping.Bundle

// Meta carries identity and display name. Entities embed it; the promoted
// accessors satisfy the engine interface while the fields stay plain for
// JSON projection.
type Meta struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (m *Meta) GetID() int64     { return m.ID }
func (m *Meta) SetID(id int64)   { m.ID = id }
func (m *Meta) GetName() string  { return m.Name }
func (m *Meta) SetName(n string) { m.Name = n }

// Compile-time checks that every entity satisfies the engine surface.
var (
	_ Entity = (*Fermentable)(nil)
	_ Entity = (*Hop)(nil)
	_ Entity = (*Culture)(nil)
	_ Entity = (*Misc)(nil)
	_ Entity = (*Water)(nil)
	_ Entity = (*Style)(nil)
	_ Entity = (*Mash)(nil)
	_ Entity = (*Recipe)(nil)
	_ Owned  = (*MashStep)(nil)
	_ Owned  = (*FermentableAddition)(nil)
	_ Owned  = (*HopAddition)(nil)
	_ Owned  = (*CultureAddition)(nil)
	_ Owned  = (*MiscAddition)(nil)
)

// sameName compares display names ignoring the numeric suffixes that
// clash resolution appends, so a renamed copy still matches its original.
func sameName(a, b string) bool {
	return mapping.BaseName(a) == mapping.BaseName(b)
}

// Bundle readers. Constructors use these to pull decoded values out of
// the bundle; absent keys yield zero values or nil pointers.

func bundleString(b Bundle, key string) string {
	v, _ := b[key].(string)
	return v
}

func bundleFloat(b Bundle, key string) *float64 {
	if v, ok := b[key].(float64); ok {
		return &v
	}
	return nil
}

func bundleInt(b Bundle, key string) *int {
	if v, ok := b[key].(int); ok {
		return &v
	}
	return nil
}

func bundleBool(b Bundle, key string) *bool {
	if v, ok := b[key].(bool); ok {
		return &v
	}
	return nil
}

func bundleTime(b Bundle, key string) time.Time {
	v, _ := b[key].(time.Time)
	return v
}

func bundleAmount(b Bundle, key string) *measure.Amount {
	if v, ok := b[key].(measure.Amount); ok {
		return &v
	}
	return nil
}

// Property-surface helpers. Get returns the dereferenced value or nil so
// the engine can tell set from unset; Set accepts the basic types the
// engine and the row scanner produce.

func getFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func getInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func getBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

func getTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func getAmount(a *measure.Amount) any {
	if a == nil {
		return nil
	}
	return *a
}

func getString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// getRef exposes an entity-reference property; zero means no reference.
func getRef(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func setFloat(p **float64, value any) bool {
	v, ok := asFloat(value)
	if !ok {
		return false
	}
	*p = &v
	return true
}

func setInt(p **int, value any) bool {
	v, ok := asInt(value)
	if !ok {
		return false
	}
	*p = &v
	return true
}

func setBool(p **bool, value any) bool {
	v, ok := value.(bool)
	if !ok {
		return false
	}
	*p = &v
	return true
}

func setString(p *string, value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	*p = v
	return true
}

func setTime(p *time.Time, value any) bool {
	v, ok := value.(time.Time)
	if !ok {
		return false
	}
	*p = v
	return true
}

// setEnum assigns a typed string enum from the plain string the decoder
// and the row scanner hand over.
func setEnum[E ~string](p *E, value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	*p = E(v)
	return true
}

func setAmount(p **measure.Amount, value any) bool {
	v, ok := value.(measure.Amount)
	if !ok {
		return false
	}
	*p = &v
	return true
}

// setRef assigns an entity-reference property from either a wired Entity
// or a scanned int64 id.
func setRef(p *int64, value any) bool {
	switch v := value.(type) {
	case Entity:
		*p = v.GetID()
		return true
	case int64:
		*p = v
		return true
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// eqFloat compares optional numeric attributes for equivalence checks:
// both unset, or both set to the same value.
func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqAmount(a, b *measure.Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
