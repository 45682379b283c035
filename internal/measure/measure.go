// Package measure defines the physical quantities brewdex works in and the
// units that measure them. Every quantity has exactly one canonical unit;
// values are stored canonically and converted at the document boundary.
package measure

// Quantity identifies a physical quantity (mass, volume, ...).
type Quantity string

const (
	Mass           Quantity = "mass"
	Volume         Quantity = "volume"
	Temperature    Quantity = "temperature"
	Time           Quantity = "time"
	Color          Quantity = "color"
	Gravity        Quantity = "gravity"
	Acidity        Quantity = "acidity"
	Percentage     Quantity = "percentage"
	Concentration  Quantity = "concentration"
	DiastaticPower Quantity = "diastatic_power"
	Bitterness     Quantity = "bitterness"
	Carbonation    Quantity = "carbonation"
	SpecificVolume Quantity = "specific_volume"
	Count          Quantity = "count"
)

// String returns the string representation of the quantity.
func (q Quantity) String() string {
	return string(q)
}

// IsValid checks whether the quantity is a known value.
func (q Quantity) IsValid() bool {
	switch q {
	case Mass, Volume, Temperature, Time, Color, Gravity, Acidity,
		Percentage, Concentration, DiastaticPower, Bitterness, Carbonation,
		SpecificVolume, Count:
		return true
	}
	return false
}

// Amount is a canonical value tagged with the quantity it measures.
// Fields that accept more than one quantity (an ingredient amount may be a
// mass or a volume) carry their decoded result as an Amount so downstream
// code knows which one it got.
type Amount struct {
	Quantity Quantity `json:"quantity"`
	Value    float64  `json:"value"`
}
