package sync

import (
	"context"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
)

// mockStore is a minimal in-memory store for sync tests. Insertion order
// is preserved so snapshots come out in a stable order, and owned rows go
// away with their owner.
type mockStore struct {
	seq     int64
	rows    map[string]map[int64]mapping.Entity
	order   map[string][]int64
	txCalls int
}

func newMockStore() *mockStore {
	return &mockStore{
		rows:  make(map[string]map[int64]mapping.Entity),
		order: make(map[string][]int64),
	}
}

func (m *mockStore) Insert(_ context.Context, e mapping.Entity) (int64, error) {
	m.seq++
	typ := e.EntityType()
	if m.rows[typ] == nil {
		m.rows[typ] = make(map[int64]mapping.Entity)
	}
	m.rows[typ][m.seq] = e
	m.order[typ] = append(m.order[typ], m.seq)
	return m.seq, nil
}

func (m *mockStore) Update(context.Context, mapping.Entity) error {
	// Rows hold the live entities, so mutations are already visible.
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

func (m *mockStore) Find(_ context.Context, entityType string, id int64) (mapping.Entity, error) {
	e, ok := m.rows[entityType][id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (m *mockStore) FindEquivalent(_ context.Context, candidate mapping.Entity) (mapping.Entity, error) {
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

func (m *mockStore) FindByName(_ context.Context, entityType, name string) (mapping.Entity, error) {
	for _, id := range m.order[entityType] {
		if e := m.rows[entityType][id]; e != nil && e.GetName() == name {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockStore) List(_ context.Context, entityType string) ([]mapping.Entity, error) {
	var out []mapping.Entity
	for _, id := range m.order[entityType] {
		out = append(out, m.rows[entityType][id])
	}
	return out, nil
}

func (m *mockStore) ListOwned(_ context.Context, entityType, ownerType string, ownerID int64) ([]mapping.Entity, error) {
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

func (m *mockStore) RunInTransaction(_ context.Context, fn func(tx store.Store) error) error {
	m.txCalls++
	return fn(m)
}

func (m *mockStore) Close() error {
	return nil
}
