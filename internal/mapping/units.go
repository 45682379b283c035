package mapping

import (
	"fmt"

	"github.com/grainbill/brewdex/internal/measure"
)

// UnitMapping associates the unit-name strings a document dialect uses for
// one physical quantity with the units they denote. The first unit given
// is the one whose name is emitted on export and it must be canonical so
// that exported values need no conversion surprises.
type UnitMapping struct {
	quantity measure.Quantity
	names    []string
	units    map[string]measure.Unit
}

// NewUnitMapping builds a mapping over the given units, keyed by each
// unit's document name.
func NewUnitMapping(quantity measure.Quantity, units ...measure.Unit) *UnitMapping {
	if len(units) == 0 {
		panic(fmt.Sprintf("mapping: unit mapping for %s has no units", quantity))
	}
	m := &UnitMapping{
		quantity: quantity,
		units:    make(map[string]measure.Unit, len(units)),
	}
	for _, u := range units {
		if u.Quantity != quantity {
			panic(fmt.Sprintf("mapping: unit %s measures %s, not %s", u.Name, u.Quantity, quantity))
		}
		if _, dup := m.units[u.Name]; dup {
			panic(fmt.Sprintf("mapping: duplicate unit name %s for %s", u.Name, quantity))
		}
		m.names = append(m.names, u.Name)
		m.units[u.Name] = u
	}
	if !units[0].IsCanonical() {
		panic(fmt.Sprintf("mapping: preferred unit %s for %s is not canonical", units[0].Name, quantity))
	}
	return m
}

// Quantity is the physical quantity every unit in the mapping measures.
func (m *UnitMapping) Quantity() measure.Quantity {
	return m.quantity
}

// Unit resolves a document unit name. ok is false for names outside the
// mapping.
func (m *UnitMapping) Unit(name string) (measure.Unit, bool) {
	u, ok := m.units[name]
	return u, ok
}

// Contains reports whether the mapping recognises the document unit name.
func (m *UnitMapping) Contains(name string) bool {
	_, ok := m.units[name]
	return ok
}

// Preferred returns the unit emitted on export.
func (m *UnitMapping) Preferred() measure.Unit {
	return m.units[m.names[0]]
}

// Names returns the recognised document unit names in declaration order.
func (m *UnitMapping) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// SingleUnit describes a field whose unit is fixed: a small set of
// synonymous spellings is accepted on read and the first spelling is
// emitted on write. Values pass through unconverted.
type SingleUnit struct {
	names []string
}

// NewSingleUnit lists the accepted spellings, preferred first.
func NewSingleUnit(names ...string) *SingleUnit {
	if len(names) == 0 {
		panic("mapping: single unit with no names")
	}
	return &SingleUnit{names: names}
}

// Accepts reports whether name is a recognised spelling.
func (s *SingleUnit) Accepts(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Preferred returns the spelling emitted on export.
func (s *SingleUnit) Preferred() string {
	return s.names[0]
}
