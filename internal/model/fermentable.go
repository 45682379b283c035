package model

// TypeFermentable is the entity type fermentables register under.
const TypeFermentable = "fermentable"

// FermentableType categorizes a fermentable ingredient.
type FermentableType string

const (
	FermentableGrain      FermentableType = "grain"
	FermentableExtract    FermentableType = "extract"
	FermentableDryExtract FermentableType = "dry extract"
	FermentableSugar      FermentableType = "sugar"
	FermentableFruit      FermentableType = "fruit"
	FermentableJuice      FermentableType = "juice"
	FermentableHoney      FermentableType = "honey"
	FermentableOther      FermentableType = "other"
)

// String returns the string representation of the type.
func (t FermentableType) String() string {
	return string(t)
}

// IsValid checks whether the type is a known value.
func (t FermentableType) IsValid() bool {
	switch t {
	case FermentableGrain, FermentableExtract, FermentableDryExtract,
		FermentableSugar, FermentableFruit, FermentableJuice,
		FermentableHoney, FermentableOther:
		return true
	}
	return false
}

// GrainGroup subdivides grain fermentables.
type GrainGroup string

const (
	GrainBase      GrainGroup = "base"
	GrainCaramel   GrainGroup = "caramel"
	GrainFlaked    GrainGroup = "flaked"
	GrainRoasted   GrainGroup = "roasted"
	GrainSpecialty GrainGroup = "specialty"
	GrainSmoked    GrainGroup = "smoked"
	GrainAdjunct   GrainGroup = "adjunct"
)

// String returns the string representation of the grain group.
func (g GrainGroup) String() string {
	return string(g)
}

// IsValid checks whether the grain group is a known value.
func (g GrainGroup) IsValid() bool {
	switch g {
	case GrainBase, GrainCaramel, GrainFlaked, GrainRoasted,
		GrainSpecialty, GrainSmoked, GrainAdjunct:
		return true
	}
	return false
}

// Fermentable is a sugar source: grain, extract, fruit, honey.
// Yields are percentages, color is SRM, diastatic power is degrees
// Lintner.
type Fermentable struct {
	Meta
	Type                FermentableType `json:"type,omitempty"`
	GrainGroup          GrainGroup      `json:"grain_group,omitempty"`
	Origin              string          `json:"origin,omitempty"`
	Producer            string          `json:"producer,omitempty"`
	ProductID           string          `json:"product_id,omitempty"`
	YieldFineGrind      *float64        `json:"yield_fine_grind,omitempty"`
	YieldCoarseGrind    *float64        `json:"yield_coarse_grind,omitempty"`
	YieldFineCoarseDiff *float64        `json:"yield_fine_coarse_difference,omitempty"`
	YieldPotential      *float64        `json:"yield_potential,omitempty"`
	Color               *float64        `json:"color,omitempty"`
	Moisture            *float64        `json:"moisture,omitempty"`
	DiastaticPower      *float64        `json:"diastatic_power,omitempty"`
	RecommendMash       *bool           `json:"recommend_mash,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// NewFermentable builds a fermentable from a decoded document bundle.
func NewFermentable(b Bundle) *Fermentable {
	f := &Fermentable{
		Type:                FermentableType(bundleString(b, "type")),
		GrainGroup:          GrainGroup(bundleString(b, "grain_group")),
		Origin:              bundleString(b, "origin"),
		Producer:            bundleString(b, "producer"),
		ProductID:           bundleString(b, "product_id"),
		YieldFineGrind:      bundleFloat(b, "yield_fine_grind"),
		YieldCoarseGrind:    bundleFloat(b, "yield_coarse_grind"),
		YieldFineCoarseDiff: bundleFloat(b, "yield_fine_coarse_difference"),
		YieldPotential:      bundleFloat(b, "yield_potential"),
		Color:               bundleFloat(b, "color"),
		Moisture:            bundleFloat(b, "moisture"),
		DiastaticPower:      bundleFloat(b, "diastatic_power"),
		RecommendMash:       bundleBool(b, "recommend_mash"),
		Notes:               bundleString(b, "notes"),
	}
	f.Name = bundleString(b, "name")
	return f
}

// EntityType identifies the entity to the engine and the store.
func (f *Fermentable) EntityType() string {
	return TypeFermentable
}

// Get returns the named property; ok is false for properties a
// fermentable does not have. Unset optional attributes return nil.
func (f *Fermentable) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(f.Name), true
	case "type":
		return getString(string(f.Type)), true
	case "grain_group":
		return getString(string(f.GrainGroup)), true
	case "origin":
		return getString(f.Origin), true
	case "producer":
		return getString(f.Producer), true
	case "product_id":
		return getString(f.ProductID), true
	case "yield_fine_grind":
		return getFloat(f.YieldFineGrind), true
	case "yield_coarse_grind":
		return getFloat(f.YieldCoarseGrind), true
	case "yield_fine_coarse_difference":
		return getFloat(f.YieldFineCoarseDiff), true
	case "yield_potential":
		return getFloat(f.YieldPotential), true
	case "color":
		return getFloat(f.Color), true
	case "moisture":
		return getFloat(f.Moisture), true
	case "diastatic_power":
		return getFloat(f.DiastaticPower), true
	case "recommend_mash":
		return getBool(f.RecommendMash), true
	case "notes":
		return getString(f.Notes), true
	}
	return nil, false
}

// Set assigns the named property from a decoded or scanned value.
func (f *Fermentable) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&f.Name, value)
	case "type":
		return setEnum(&f.Type, value)
	case "grain_group":
		return setEnum(&f.GrainGroup, value)
	case "origin":
		return setString(&f.Origin, value)
	case "producer":
		return setString(&f.Producer, value)
	case "product_id":
		return setString(&f.ProductID, value)
	case "yield_fine_grind":
		return setFloat(&f.YieldFineGrind, value)
	case "yield_coarse_grind":
		return setFloat(&f.YieldCoarseGrind, value)
	case "yield_fine_coarse_difference":
		return setFloat(&f.YieldFineCoarseDiff, value)
	case "yield_potential":
		return setFloat(&f.YieldPotential, value)
	case "color":
		return setFloat(&f.Color, value)
	case "moisture":
		return setFloat(&f.Moisture, value)
	case "diastatic_power":
		return setFloat(&f.DiastaticPower, value)
	case "recommend_mash":
		return setBool(&f.RecommendMash, value)
	case "notes":
		return setString(&f.Notes, value)
	}
	return false
}

// CanSet reports whether Set accepts the property. Every fermentable
// property is writable.
func (f *Fermentable) CanSet(property string) bool {
	_, ok := f.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same fermentable:
// same base name and same defining attributes.
func (f *Fermentable) EquivalentTo(other Entity) bool {
	o, ok := other.(*Fermentable)
	if !ok {
		return false
	}
	return sameName(f.Name, o.Name) &&
		f.Type == o.Type &&
		f.Origin == o.Origin &&
		f.Producer == o.Producer &&
		eqFloat(f.Color, o.Color) &&
		eqFloat(f.YieldFineGrind, o.YieldFineGrind)
}
