// Package mapping implements the schema-driven engine that moves records
// between JSON documents and stored domain entities. A Coding holds the
// immutable RecordDefinitions for one document dialect; a Record is a live
// binding between one definition and one node of a decoded document, and
// carries the load / normalise-and-store / write machinery.
//
// The engine owns no domain knowledge of its own: entities, persistence,
// and schema validation are supplied through the interfaces below.
package mapping

import "context"

// Bundle is the name-value bag a Record accumulates while loading and then
// hands to the entity constructor.
type Bundle map[string]any

// Entity is the engine's view of a domain object. The property surface
// speaks basic types only: string, int, int64, float64, bool, time.Time,
// measure.Amount, and Entity (references, which Get reports as the int64
// identity of the referenced entity).
type Entity interface {
	// EntityType names the entity class, e.g. "fermentable".
	EntityType() string

	// GetID is the persistence identity; zero until stored. Accessor
	// naming lets entities keep plain exported ID/Name struct fields.
	GetID() int64
	SetID(id int64)

	GetName() string
	SetName(name string)

	// Get returns the named property value. ok is false for unknown
	// property names; a nil value means the property is unset.
	Get(property string) (value any, ok bool)

	// Set assigns the named property. It returns false when the property
	// is unknown, read-only, or the value has the wrong type.
	Set(property string, value any) bool

	// CanSet reports whether the named property is writable.
	CanSet(property string) bool

	// EquivalentTo reports whether other would be a duplicate of this
	// entity. Equivalence rules are entity-specific and other is always
	// of the same entity type.
	EquivalentTo(other Entity) bool
}

// Owned marks entity types that must know their owner before they can be
// stored (a mash step must know its mash, an addition its recipe). Owned
// entities are not independently named or deduplicated.
type Owned interface {
	Entity
	SetOwner(owner Entity)
}

// EntityStore is the persistence surface the engine drives. Implementations
// must delete owned children when their owner is deleted; the engine never
// walks ownership chains on rollback.
type EntityStore interface {
	// Insert stores a new entity and returns its identity. An identity
	// <= 0, or an error, is a hard storage failure.
	Insert(ctx context.Context, e Entity) (int64, error)

	// Update rewrites an already-stored entity (used after parent->child
	// references are wired).
	Update(ctx context.Context, e Entity) error

	// Delete removes a stored entity. Deleting an entity that is already
	// gone is not an error.
	Delete(ctx context.Context, entityType string, id int64) error

	// Find fetches one entity by identity, or nil if absent.
	Find(ctx context.Context, entityType string, id int64) (Entity, error)

	// FindEquivalent returns a stored entity equivalent to the candidate,
	// or nil. Entity types without independent equivalence semantics
	// (owned children) always return nil. A candidate with a non-zero
	// identity is never matched against itself.
	FindEquivalent(ctx context.Context, candidate Entity) (Entity, error)

	// FindByName returns the stored entity of the given type with exactly
	// the given name, or nil.
	FindByName(ctx context.Context, entityType, name string) (Entity, error)

	// List returns all stored entities of one type.
	List(ctx context.Context, entityType string) ([]Entity, error)

	// ListOwned returns the entities of one type owned by the given
	// entity, in insertion order.
	ListOwned(ctx context.Context, entityType, ownerType string, ownerID int64) ([]Entity, error)
}

// Validator checks a raw document against the dialect's schema before any
// mapping begins.
type Validator interface {
	// Validate reports whether the document conforms; when it does not,
	// problems holds user-readable descriptions of the mismatches.
	Validate(doc []byte) (ok bool, problems []string)
}
