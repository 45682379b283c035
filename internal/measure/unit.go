package measure

// Unit converts between one external unit of measure and the canonical unit
// of its quantity. Most conversions are affine (canonical = value*factor +
// offset); the gravity scales need full function pairs.
type Unit struct {
	Name     string
	Quantity Quantity

	factor float64
	offset float64

	// Set only for non-affine conversions; when non-nil they take
	// precedence over factor/offset.
	to   func(float64) float64
	from func(float64) float64
}

// NewUnit returns an affine unit: canonical = value*factor + offset.
func NewUnit(name string, q Quantity, factor, offset float64) Unit {
	return Unit{Name: name, Quantity: q, factor: factor, offset: offset}
}

// Canonical returns the canonical unit of a quantity, i.e. the identity
// conversion.
func Canonical(name string, q Quantity) Unit {
	return NewUnit(name, q, 1, 0)
}

// FuncUnit returns a unit whose conversion is given by explicit functions.
func FuncUnit(name string, q Quantity, to, from func(float64) float64) Unit {
	return Unit{Name: name, Quantity: q, to: to, from: from}
}

// ToCanonical converts a value expressed in this unit to the canonical unit.
func (u Unit) ToCanonical(v float64) float64 {
	if u.to != nil {
		return u.to(v)
	}
	return v*u.factor + u.offset
}

// FromCanonical converts a canonical value to this unit.
func (u Unit) FromCanonical(v float64) float64 {
	if u.from != nil {
		return u.from(v)
	}
	return (v - u.offset) / u.factor
}

// IsCanonical reports whether this unit is the canonical unit of its
// quantity.
func (u Unit) IsCanonical() bool {
	return u.to == nil && u.from == nil && u.factor == 1 && u.offset == 0
}

// Mass. Canonical: kilograms.
var (
	Kilograms  = Canonical("kg", Mass)
	Grams      = NewUnit("g", Mass, 1e-3, 0)
	Milligrams = NewUnit("mg", Mass, 1e-6, 0)
	Pounds     = NewUnit("lb", Mass, 0.45359237, 0)
	Ounces     = NewUnit("oz", Mass, 0.0283495231, 0)
)

// Volume. Canonical: liters.
var (
	Liters              = Canonical("l", Volume)
	Milliliters         = NewUnit("ml", Volume, 1e-3, 0)
	Teaspoons           = NewUnit("tsp", Volume, 0.00492892159375, 0)
	Tablespoons         = NewUnit("tbsp", Volume, 0.01478676478125, 0)
	FluidOunces         = NewUnit("floz", Volume, 0.0295735295625, 0)
	Cups                = NewUnit("cup", Volume, 0.2365882365, 0)
	Pints               = NewUnit("pt", Volume, 0.473176473, 0)
	Quarts              = NewUnit("qt", Volume, 0.946352946, 0)
	Gallons             = NewUnit("gal", Volume, 3.785411784, 0)
	Barrels             = NewUnit("bbl", Volume, 117.347765304, 0)
	ImperialFluidOunces = NewUnit("ifloz", Volume, 0.0284130625, 0)
	ImperialPints       = NewUnit("ipt", Volume, 0.56826125, 0)
	ImperialQuarts      = NewUnit("iqt", Volume, 1.1365225, 0)
	ImperialGallons     = NewUnit("igal", Volume, 4.54609, 0)
	ImperialBarrels     = NewUnit("ibbl", Volume, 163.65924, 0)
)

// Temperature. Canonical: degrees Celsius.
var (
	Celsius    = Canonical("C", Temperature)
	Fahrenheit = NewUnit("F", Temperature, 5.0/9.0, -160.0/9.0)
)

// Time. Canonical: minutes.
var (
	Minutes = Canonical("min", Time)
	Seconds = NewUnit("sec", Time, 1.0/60.0, 0)
	Hours   = NewUnit("hr", Time, 60, 0)
	Days    = NewUnit("day", Time, 1440, 0)
	Weeks   = NewUnit("week", Time, 10080, 0)
)

// Color. Canonical: SRM.
var (
	SRM      = Canonical("SRM", Color)
	EBC      = NewUnit("EBC", Color, 0.508, 0)
	Lovibond = NewUnit("Lovi", Color, 1.3546, -0.76)
)

// Gravity. Canonical: specific gravity. Plato and Brix relate to SG through
// the ASBC polynomial, not an affine map.
var (
	SpecificGravity = Canonical("sg", Gravity)
	Plato           = FuncUnit("plato", Gravity, platoToSG, sgToPlato)
	Brix            = FuncUnit("brix", Gravity, platoToSG, sgToPlato)
)

func platoToSG(p float64) float64 {
	return 1 + p/(258.6-(p/258.2)*227.1)
}

func sgToPlato(sg float64) float64 {
	return -616.868 + 1111.14*sg - 630.272*sg*sg + 135.997*sg*sg*sg
}

// Acidity. Canonical: pH.
var PH = Canonical("pH", Acidity)

// Percentage. Canonical: percent.
var Percent = Canonical("%", Percentage)

// Concentration. Canonical: parts per million. mg/l is treated as ppm
// (water density 1 kg/l).
var (
	PartsPerMillion    = Canonical("ppm", Concentration)
	PartsPerBillion    = NewUnit("ppb", Concentration, 1e-3, 0)
	MilligramsPerLiter = NewUnit("mg/l", Concentration, 1, 0)
)

// Diastatic power. Canonical: degrees Lintner. L = (WK + 16) / 3.5.
var (
	Lintner         = Canonical("Lintner", DiastaticPower)
	WindischKolbach = NewUnit("WK", DiastaticPower, 1.0/3.5, 16.0/3.5)
)

// Bitterness. Canonical: IBUs.
var IBU = Canonical("IBUs", Bitterness)

// Carbonation. Canonical: volumes of CO2. 1 vol ~= 1.96 g/l.
var (
	VolumesCO2    = Canonical("vols", Carbonation)
	GramsPerLiter = NewUnit("g/l", Carbonation, 1/1.96, 0)
)

// Specific volume (mash thickness). Canonical: liters per kilogram.
var (
	LitersPerKilogram   = Canonical("l/kg", SpecificVolume)
	LitersPerGram       = NewUnit("l/g", SpecificVolume, 1000, 0)
	QuartsPerPound      = NewUnit("qt/lb", SpecificVolume, 0.946352946/0.45359237, 0)
	GallonsPerPound     = NewUnit("gal/lb", SpecificVolume, 3.785411784/0.45359237, 0)
	FluidOuncesPerOunce = NewUnit("floz/oz", SpecificVolume, 0.0295735295625/0.0283495231, 0)
)

// Count. Canonical: a bare number of items (packs, vials, ...).
var Each = Canonical("unit", Count)
