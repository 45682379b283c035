package beerjson

import (
	"context"

	"github.com/grainbill/brewdex/internal/mapping"
)

// memStore is an in-memory EntityStore over the real model entities. It
// honours the persistence contract the engine relies on: insertion order
// is preserved, owned rows go away with their owner, owned entity types
// have no independent equivalence, and deletes are idempotent. Ownership
// is read back through the <ownerType>_id property owned entities expose.
type memStore struct {
	seq   int64
	rows  map[string]map[int64]mapping.Entity
	order map[string][]int64
}

func newMemStore() *memStore {
	return &memStore{
		rows:  make(map[string]map[int64]mapping.Entity),
		order: make(map[string][]int64),
	}
}

func (m *memStore) Insert(_ context.Context, e mapping.Entity) (int64, error) {
	m.seq++
	typ := e.EntityType()
	if m.rows[typ] == nil {
		m.rows[typ] = make(map[int64]mapping.Entity)
	}
	m.rows[typ][m.seq] = e
	m.order[typ] = append(m.order[typ], m.seq)
	return m.seq, nil
}

func (m *memStore) Update(context.Context, mapping.Entity) error {
	// Rows hold the live entities, so mutations are already visible.
	return nil
}

func (m *memStore) Delete(ctx context.Context, entityType string, id int64) error {
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
	fk := entityType + "_id"
	for typ, rows := range m.rows {
		var doomed []int64
		for oid, e := range rows {
			if v, ok := e.Get(fk); ok && v == id {
				doomed = append(doomed, oid)
			}
		}
		for _, oid := range doomed {
			_ = m.Delete(ctx, typ, oid)
		}
	}
	return nil
}

func (m *memStore) Find(_ context.Context, entityType string, id int64) (mapping.Entity, error) {
	e, ok := m.rows[entityType][id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (m *memStore) FindEquivalent(_ context.Context, candidate mapping.Entity) (mapping.Entity, error) {
	if _, owned := candidate.(mapping.Owned); owned {
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

func (m *memStore) FindByName(_ context.Context, entityType, name string) (mapping.Entity, error) {
	for _, id := range m.order[entityType] {
		if e := m.rows[entityType][id]; e != nil && e.GetName() == name {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(_ context.Context, entityType string) ([]mapping.Entity, error) {
	var out []mapping.Entity
	for _, id := range m.order[entityType] {
		out = append(out, m.rows[entityType][id])
	}
	return out, nil
}

func (m *memStore) ListOwned(_ context.Context, entityType, ownerType string, ownerID int64) ([]mapping.Entity, error) {
	fk := ownerType + "_id"
	var out []mapping.Entity
	for _, id := range m.order[entityType] {
		e := m.rows[entityType][id]
		if v, ok := e.Get(fk); ok && v == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) count(entityType string) int {
	return len(m.rows[entityType])
}
