package mapping

import "context"

// ConstructFunc builds a domain entity from the bundle a record loaded.
// Returning an error fails the record with a user-readable message.
type ConstructFunc func(bundle Bundle) (Entity, error)

// EnumerateFunc lists the stored entities a record or array field emits on
// export. owner is the containing entity, nil for root-level fields. For
// FieldRecord fields at most one entity is expected.
type EnumerateFunc func(ctx context.Context, s EntityStore, owner Entity) ([]Entity, error)

// RecordDefinition is the immutable description of one record kind within
// a Coding: which document key or path names it, which entity class it
// maps to, and how each of its fields is handled.
type RecordDefinition struct {
	// Name is the key the Coding resolves the definition by. For records
	// reached through a field it is the field's path string.
	Name string

	// EntityType is the entity class the record maps to, empty for the
	// root container record, which owns no entity.
	EntityType string

	// Construct builds the entity from a loaded bundle. Nil for the root.
	Construct ConstructFunc

	// Fields in document order. Order is load order and write order.
	Fields []FieldDefinition

	// Enumerate supplies, per FieldRecord/FieldArray path, the stored
	// entities to emit on export. A path with no entry is skipped when
	// writing.
	Enumerate map[string]EnumerateFunc

	// IncludeInStats marks records whose entities count in import
	// statistics. Owned children (steps, additions) do not.
	IncludeInStats bool

	// LateDuplicateCheck re-runs equivalence after children are stored,
	// for composites whose identity only settles once fully populated.
	LateDuplicateCheck bool
}

// NewRecordDefinition assembles a definition from one or more field
// groups; groups let dialects share field lists between records that map
// the same entity under different names.
func NewRecordDefinition(name, entityType string, construct ConstructFunc, fieldGroups ...[]FieldDefinition) *RecordDefinition {
	var fields []FieldDefinition
	for _, g := range fieldGroups {
		fields = append(fields, g...)
	}
	return &RecordDefinition{
		Name:       name,
		EntityType: entityType,
		Construct:  construct,
		Fields:     fields,
		Enumerate:  map[string]EnumerateFunc{},
	}
}

// WithEnumerate registers an export enumeration for a field path and
// returns the definition for chaining.
func (d *RecordDefinition) WithEnumerate(path string, fn EnumerateFunc) *RecordDefinition {
	d.Enumerate[path] = fn
	return d
}

// WithStats marks the definition's entities as counting in import
// statistics.
func (d *RecordDefinition) WithStats() *RecordDefinition {
	d.IncludeInStats = true
	return d
}

// WithLateDuplicateCheck enables the post-children equivalence re-check.
func (d *RecordDefinition) WithLateDuplicateCheck() *RecordDefinition {
	d.LateDuplicateCheck = true
	return d
}

// MakeRecord binds the definition to one decoded document node, yielding a
// Record ready to Load.
func (d *RecordDefinition) MakeRecord(c *Coding, node map[string]any) *Record {
	return &Record{
		coding: c,
		def:    d,
		node:   node,
		bundle: Bundle{},
	}
}
