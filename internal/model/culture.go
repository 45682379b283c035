package model

// TypeCulture is the entity type yeast and bacteria cultures register
// under.
const TypeCulture = "culture"

// CultureType categorizes a fermentation culture.
type CultureType string

const (
	CultureAle         CultureType = "ale"
	CultureBacteria    CultureType = "bacteria"
	CultureBrett       CultureType = "brett"
	CultureChampagne   CultureType = "champagne"
	CultureKveik       CultureType = "kveik"
	CultureLacto       CultureType = "lacto"
	CultureLager       CultureType = "lager"
	CultureMalt        CultureType = "malt"
	CultureMixed       CultureType = "mixed-culture"
	CultureOther       CultureType = "other"
	CulturePedio       CultureType = "pedio"
	CultureSpontaneous CultureType = "spontaneous"
	CultureWine        CultureType = "wine"
)

// String returns the string representation of the type.
func (t CultureType) String() string {
	return string(t)
}

// IsValid checks whether the type is a known value.
func (t CultureType) IsValid() bool {
	switch t {
	case CultureAle, CultureBacteria, CultureBrett, CultureChampagne,
		CultureKveik, CultureLacto, CultureLager, CultureMalt, CultureMixed,
		CultureOther, CulturePedio, CultureSpontaneous, CultureWine:
		return true
	}
	return false
}

// CultureForm is the form a culture is supplied in.
type CultureForm string

const (
	CultureFormLiquid  CultureForm = "liquid"
	CultureFormDry     CultureForm = "dry"
	CultureFormSlant   CultureForm = "slant"
	CultureFormCulture CultureForm = "culture"
)

// String returns the string representation of the form.
func (f CultureForm) String() string {
	return string(f)
}

// IsValid checks whether the form is a known value.
func (f CultureForm) IsValid() bool {
	switch f {
	case CultureFormLiquid, CultureFormDry, CultureFormSlant, CultureFormCulture:
		return true
	}
	return false
}

// Flocculation grades how readily a culture clumps and settles.
type Flocculation string

const (
	FlocVeryLow    Flocculation = "very low"
	FlocLow        Flocculation = "low"
	FlocMediumLow  Flocculation = "medium low"
	FlocMedium     Flocculation = "medium"
	FlocMediumHigh Flocculation = "medium high"
	FlocHigh       Flocculation = "high"
	FlocVeryHigh   Flocculation = "very high"
)

// String returns the string representation of the flocculation grade.
func (f Flocculation) String() string {
	return string(f)
}

// IsValid checks whether the flocculation grade is a known value.
func (f Flocculation) IsValid() bool {
	switch f {
	case FlocVeryLow, FlocLow, FlocMediumLow, FlocMedium, FlocMediumHigh,
		FlocHigh, FlocVeryHigh:
		return true
	}
	return false
}

// Culture is a yeast or bacteria culture. Temperatures are Celsius,
// attenuation and alcohol tolerance are percentages.
type Culture struct {
	Meta
	Type             CultureType  `json:"type,omitempty"`
	Form             CultureForm  `json:"form,omitempty"`
	Producer         string       `json:"producer,omitempty"`
	ProductID        string       `json:"product_id,omitempty"`
	TempMin          *float64     `json:"temperature_min,omitempty"`
	TempMax          *float64     `json:"temperature_max,omitempty"`
	Flocculation     Flocculation `json:"flocculation,omitempty"`
	AttenuationMin   *float64     `json:"attenuation_min,omitempty"`
	AttenuationMax   *float64     `json:"attenuation_max,omitempty"`
	AlcoholTolerance *float64     `json:"alcohol_tolerance,omitempty"`
	MaxReuse         *int         `json:"max_reuse,omitempty"`
	POF              *bool        `json:"pof,omitempty"`
	Glucoamylase     *bool        `json:"glucoamylase,omitempty"`
	BestFor          string       `json:"best_for,omitempty"`
	Notes            string       `json:"notes,omitempty"`
}

// NewCulture builds a culture from a decoded document bundle.
func NewCulture(b Bundle) *Culture {
	c := &Culture{
		Type:             CultureType(bundleString(b, "type")),
		Form:             CultureForm(bundleString(b, "form")),
		Producer:         bundleString(b, "producer"),
		ProductID:        bundleString(b, "product_id"),
		TempMin:          bundleFloat(b, "temp_min"),
		TempMax:          bundleFloat(b, "temp_max"),
		Flocculation:     Flocculation(bundleString(b, "flocculation")),
		AttenuationMin:   bundleFloat(b, "attenuation_min"),
		AttenuationMax:   bundleFloat(b, "attenuation_max"),
		AlcoholTolerance: bundleFloat(b, "alcohol_tolerance"),
		MaxReuse:         bundleInt(b, "max_reuse"),
		POF:              bundleBool(b, "pof"),
		Glucoamylase:     bundleBool(b, "glucoamylase"),
		BestFor:          bundleString(b, "best_for"),
		Notes:            bundleString(b, "notes"),
	}
	c.Name = bundleString(b, "name")
	return c
}

func (c *Culture) EntityType() string {
	return TypeCulture
}

func (c *Culture) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(c.Name), true
	case "type":
		return getString(string(c.Type)), true
	case "form":
		return getString(string(c.Form)), true
	case "producer":
		return getString(c.Producer), true
	case "product_id":
		return getString(c.ProductID), true
	case "temp_min":
		return getFloat(c.TempMin), true
	case "temp_max":
		return getFloat(c.TempMax), true
	case "flocculation":
		return getString(string(c.Flocculation)), true
	case "attenuation_min":
		return getFloat(c.AttenuationMin), true
	case "attenuation_max":
		return getFloat(c.AttenuationMax), true
	case "alcohol_tolerance":
		return getFloat(c.AlcoholTolerance), true
	case "max_reuse":
		return getInt(c.MaxReuse), true
	case "pof":
		return getBool(c.POF), true
	case "glucoamylase":
		return getBool(c.Glucoamylase), true
	case "best_for":
		return getString(c.BestFor), true
	case "notes":
		return getString(c.Notes), true
	}
	return nil, false
}

func (c *Culture) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&c.Name, value)
	case "type":
		return setEnum(&c.Type, value)
	case "form":
		return setEnum(&c.Form, value)
	case "producer":
		return setString(&c.Producer, value)
	case "product_id":
		return setString(&c.ProductID, value)
	case "temp_min":
		return setFloat(&c.TempMin, value)
	case "temp_max":
		return setFloat(&c.TempMax, value)
	case "flocculation":
		return setEnum(&c.Flocculation, value)
	case "attenuation_min":
		return setFloat(&c.AttenuationMin, value)
	case "attenuation_max":
		return setFloat(&c.AttenuationMax, value)
	case "alcohol_tolerance":
		return setFloat(&c.AlcoholTolerance, value)
	case "max_reuse":
		return setInt(&c.MaxReuse, value)
	case "pof":
		return setBool(&c.POF, value)
	case "glucoamylase":
		return setBool(&c.Glucoamylase, value)
	case "best_for":
		return setString(&c.BestFor, value)
	case "notes":
		return setString(&c.Notes, value)
	}
	return false
}

func (c *Culture) CanSet(property string) bool {
	_, ok := c.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same culture.
func (c *Culture) EquivalentTo(other Entity) bool {
	o, ok := other.(*Culture)
	if !ok {
		return false
	}
	return sameName(c.Name, o.Name) &&
		c.Type == o.Type &&
		c.Form == o.Form &&
		c.Producer == o.Producer &&
		c.ProductID == o.ProductID
}
