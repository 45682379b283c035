package model

// TypeMisc is the entity type miscellaneous ingredients register under.
const TypeMisc = "misc"

// MiscType categorizes a miscellaneous ingredient.
type MiscType string

const (
	MiscSpice      MiscType = "spice"
	MiscFining     MiscType = "fining"
	MiscWaterAgent MiscType = "water agent"
	MiscHerb       MiscType = "herb"
	MiscFlavor     MiscType = "flavor"
	MiscWood       MiscType = "wood"
	MiscOther      MiscType = "other"
)

// String returns the string representation of the type.
func (t MiscType) String() string {
	return string(t)
}

// IsValid checks whether the type is a known value.
func (t MiscType) IsValid() bool {
	switch t {
	case MiscSpice, MiscFining, MiscWaterAgent, MiscHerb, MiscFlavor,
		MiscWood, MiscOther:
		return true
	}
	return false
}

// Misc is a miscellaneous ingredient: finings, spices, water agents.
type Misc struct {
	Meta
	Type      MiscType `json:"type,omitempty"`
	Producer  string   `json:"producer,omitempty"`
	ProductID string   `json:"product_id,omitempty"`
	UseFor    string   `json:"use_for,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// NewMisc builds a miscellaneous ingredient from a decoded document
// bundle.
func NewMisc(b Bundle) *Misc {
	m := &Misc{
		Type:      MiscType(bundleString(b, "type")),
		Producer:  bundleString(b, "producer"),
		ProductID: bundleString(b, "product_id"),
		UseFor:    bundleString(b, "use_for"),
		Notes:     bundleString(b, "notes"),
	}
	m.Name = bundleString(b, "name")
	return m
}

func (m *Misc) EntityType() string {
	return TypeMisc
}

func (m *Misc) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(m.Name), true
	case "type":
		return getString(string(m.Type)), true
	case "producer":
		return getString(m.Producer), true
	case "product_id":
		return getString(m.ProductID), true
	case "use_for":
		return getString(m.UseFor), true
	case "notes":
		return getString(m.Notes), true
	}
	return nil, false
}

func (m *Misc) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&m.Name, value)
	case "type":
		return setEnum(&m.Type, value)
	case "producer":
		return setString(&m.Producer, value)
	case "product_id":
		return setString(&m.ProductID, value)
	case "use_for":
		return setString(&m.UseFor, value)
	case "notes":
		return setString(&m.Notes, value)
	}
	return false
}

func (m *Misc) CanSet(property string) bool {
	_, ok := m.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same ingredient.
func (m *Misc) EquivalentTo(other Entity) bool {
	o, ok := other.(*Misc)
	if !ok {
		return false
	}
	return sameName(m.Name, o.Name) &&
		m.Type == o.Type &&
		m.Producer == o.Producer &&
		m.ProductID == o.ProductID
}
