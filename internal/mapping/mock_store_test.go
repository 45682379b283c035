package mapping

import (
	"context"
	"errors"
	"reflect"
)

// fakeEntity is a property-bag entity for engine tests. Equivalence is
// rename-insensitive name equality plus deep property equality.
type fakeEntity struct {
	typ      string
	id       int64
	name     string
	props    map[string]any
	readOnly map[string]bool
}

func newFakeEntity(typ, name string, props map[string]any) *fakeEntity {
	if props == nil {
		props = map[string]any{}
	}
	return &fakeEntity{typ: typ, name: name, props: props}
}

func (e *fakeEntity) EntityType() string { return e.typ }
func (e *fakeEntity) GetID() int64       { return e.id }
func (e *fakeEntity) SetID(id int64)     { e.id = id }
func (e *fakeEntity) GetName() string    { return e.name }
func (e *fakeEntity) SetName(n string)   { e.name = n }

func (e *fakeEntity) Get(property string) (any, bool) {
	if property == "name" {
		return e.name, true
	}
	v, ok := e.props[property]
	return v, ok
}

func (e *fakeEntity) Set(property string, value any) bool {
	if e.readOnly[property] {
		return false
	}
	if property == "name" {
		s, ok := value.(string)
		if !ok {
			return false
		}
		e.name = s
		return true
	}
	if ref, ok := value.(Entity); ok {
		e.props[property] = ref.GetID()
		return true
	}
	e.props[property] = value
	return true
}

func (e *fakeEntity) CanSet(property string) bool {
	return !e.readOnly[property]
}

func (e *fakeEntity) EquivalentTo(other Entity) bool {
	o, ok := other.(*fakeEntity)
	if !ok {
		return false
	}
	if o.typ != e.typ || BaseName(o.name) != BaseName(e.name) {
		return false
	}
	return reflect.DeepEqual(e.props, o.props)
}

// ownedFakeEntity additionally records its owner, like a mash step or a
// recipe addition would.
type ownedFakeEntity struct {
	fakeEntity
	ownerType string
	ownerID   int64
}

func newOwnedFakeEntity(typ, name string, props map[string]any) *ownedFakeEntity {
	return &ownedFakeEntity{fakeEntity: *newFakeEntity(typ, name, props)}
}

func (e *ownedFakeEntity) SetOwner(owner Entity) {
	e.ownerType = owner.EntityType()
	e.ownerID = owner.GetID()
}

// mockStore is a minimal in-memory EntityStore for engine tests. It
// mirrors the persistence contract the engine relies on: insertion order
// is preserved, owned rows go away with their owner, owned entity types
// have no independent equivalence, and deletes are idempotent.
type mockStore struct {
	seq   int64
	rows  map[string]map[int64]Entity
	order map[string][]int64

	updates []string // entityType:name, in call order
	deletes []string

	failInsert map[string]bool // by entity name
}

func newMockStore() *mockStore {
	return &mockStore{
		rows:       make(map[string]map[int64]Entity),
		order:      make(map[string][]int64),
		failInsert: make(map[string]bool),
	}
}

func (m *mockStore) Insert(_ context.Context, e Entity) (int64, error) {
	if m.failInsert[e.GetName()] {
		return 0, errors.New("induced insert failure")
	}
	m.seq++
	typ := e.EntityType()
	if m.rows[typ] == nil {
		m.rows[typ] = make(map[int64]Entity)
	}
	m.rows[typ][m.seq] = e
	m.order[typ] = append(m.order[typ], m.seq)
	return m.seq, nil
}

func (m *mockStore) Update(_ context.Context, e Entity) error {
	m.updates = append(m.updates, e.EntityType()+":"+e.GetName())
	return nil
}

func (m *mockStore) Delete(ctx context.Context, entityType string, id int64) error {
	if _, ok := m.rows[entityType][id]; !ok {
		return nil
	}
	delete(m.rows[entityType], id)
	for i, oid := range m.order[entityType] {
		if oid == id {
			m.order[entityType] = append(m.order[entityType][:i], m.order[entityType][i+1:]...)
			break
		}
	}
	m.deletes = append(m.deletes, entityType)
	// Owned rows go with their owner.
	for typ, rows := range m.rows {
		var doomed []int64
		for oid, e := range rows {
			if owned, ok := e.(*ownedFakeEntity); ok && owned.ownerType == entityType && owned.ownerID == id {
				doomed = append(doomed, oid)
			}
		}
		for _, oid := range doomed {
			_ = m.Delete(ctx, typ, oid)
		}
	}
	return nil
}

func (m *mockStore) Find(_ context.Context, entityType string, id int64) (Entity, error) {
	e, ok := m.rows[entityType][id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (m *mockStore) FindEquivalent(_ context.Context, candidate Entity) (Entity, error) {
	if _, owned := candidate.(Owned); owned {
		return nil, nil
	}
	typ := candidate.EntityType()
	for _, id := range m.order[typ] {
		if id == candidate.GetID() {
			continue
		}
		if e := m.rows[typ][id]; e != nil && candidate.EquivalentTo(e) {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockStore) FindByName(_ context.Context, entityType, name string) (Entity, error) {
	for _, id := range m.order[entityType] {
		if e := m.rows[entityType][id]; e != nil && e.GetName() == name {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockStore) List(_ context.Context, entityType string) ([]Entity, error) {
	var out []Entity
	for _, id := range m.order[entityType] {
		out = append(out, m.rows[entityType][id])
	}
	return out, nil
}

func (m *mockStore) ListOwned(_ context.Context, entityType, ownerType string, ownerID int64) ([]Entity, error) {
	var out []Entity
	for _, id := range m.order[entityType] {
		if owned, ok := m.rows[entityType][id].(*ownedFakeEntity); ok && owned.ownerType == ownerType && owned.ownerID == ownerID {
			out = append(out, owned)
		}
	}
	return out, nil
}

func (m *mockStore) count(entityType string) int {
	return len(m.rows[entityType])
}

// stubValidator returns a canned validation verdict and counts calls.
type stubValidator struct {
	ok       bool
	problems []string
	calls    int
}

func (v *stubValidator) Validate(_ []byte) (bool, []string) {
	v.calls++
	return v.ok, v.problems
}
