package model

// TypeStyle is the entity type beer styles register under.
const TypeStyle = "style"

// StyleType is the beverage family a style belongs to.
type StyleType string

const (
	StyleBeverage StyleType = "beverage"
	StyleBeer     StyleType = "beer"
	StyleCider    StyleType = "cider"
	StyleKombucha StyleType = "kombucha"
	StyleMead     StyleType = "mead"
	StyleOther    StyleType = "other"
	StyleSoda     StyleType = "soda"
	StyleWine     StyleType = "wine"
)

// String returns the string representation of the style type.
func (t StyleType) String() string {
	return string(t)
}

// IsValid checks whether the style type is a known value.
func (t StyleType) IsValid() bool {
	switch t {
	case StyleBeverage, StyleBeer, StyleCider, StyleKombucha, StyleMead,
		StyleOther, StyleSoda, StyleWine:
		return true
	}
	return false
}

// Style is a named beverage style from a style guide. Gravities are
// specific gravity, bitterness is IBUs, color is SRM, carbonation is
// volumes of CO2, ABV is a percentage.
type Style struct {
	Meta
	Category       string    `json:"category,omitempty"`
	CategoryNumber *int      `json:"category_number,omitempty"`
	StyleLetter    string    `json:"style_letter,omitempty"`
	StyleGuide     string    `json:"style_guide,omitempty"`
	Type           StyleType `json:"type,omitempty"`
	OGMin          *float64  `json:"og_min,omitempty"`
	OGMax          *float64  `json:"og_max,omitempty"`
	FGMin          *float64  `json:"fg_min,omitempty"`
	FGMax          *float64  `json:"fg_max,omitempty"`
	IBUMin         *float64  `json:"ibu_min,omitempty"`
	IBUMax         *float64  `json:"ibu_max,omitempty"`
	ColorMin       *float64  `json:"color_min,omitempty"`
	ColorMax       *float64  `json:"color_max,omitempty"`
	CarbonationMin *float64  `json:"carbonation_min,omitempty"`
	CarbonationMax *float64  `json:"carbonation_max,omitempty"`
	ABVMin         *float64  `json:"abv_min,omitempty"`
	ABVMax         *float64  `json:"abv_max,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Examples       string    `json:"examples,omitempty"`
}

// NewStyle builds a style from a decoded document bundle.
func NewStyle(b Bundle) *Style {
	s := &Style{
		Category:       bundleString(b, "category"),
		CategoryNumber: bundleInt(b, "category_number"),
		StyleLetter:    bundleString(b, "style_letter"),
		StyleGuide:     bundleString(b, "style_guide"),
		Type:           StyleType(bundleString(b, "type")),
		OGMin:          bundleFloat(b, "og_min"),
		OGMax:          bundleFloat(b, "og_max"),
		FGMin:          bundleFloat(b, "fg_min"),
		FGMax:          bundleFloat(b, "fg_max"),
		IBUMin:         bundleFloat(b, "ibu_min"),
		IBUMax:         bundleFloat(b, "ibu_max"),
		ColorMin:       bundleFloat(b, "color_min"),
		ColorMax:       bundleFloat(b, "color_max"),
		CarbonationMin: bundleFloat(b, "carbonation_min"),
		CarbonationMax: bundleFloat(b, "carbonation_max"),
		ABVMin:         bundleFloat(b, "abv_min"),
		ABVMax:         bundleFloat(b, "abv_max"),
		Notes:          bundleString(b, "notes"),
		Examples:       bundleString(b, "examples"),
	}
	s.Name = bundleString(b, "name")
	return s
}

func (s *Style) EntityType() string {
	return TypeStyle
}

func (s *Style) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(s.Name), true
	case "category":
		return getString(s.Category), true
	case "category_number":
		return getInt(s.CategoryNumber), true
	case "style_letter":
		return getString(s.StyleLetter), true
	case "style_guide":
		return getString(s.StyleGuide), true
	case "type":
		return getString(string(s.Type)), true
	case "og_min":
		return getFloat(s.OGMin), true
	case "og_max":
		return getFloat(s.OGMax), true
	case "fg_min":
		return getFloat(s.FGMin), true
	case "fg_max":
		return getFloat(s.FGMax), true
	case "ibu_min":
		return getFloat(s.IBUMin), true
	case "ibu_max":
		return getFloat(s.IBUMax), true
	case "color_min":
		return getFloat(s.ColorMin), true
	case "color_max":
		return getFloat(s.ColorMax), true
	case "carbonation_min":
		return getFloat(s.CarbonationMin), true
	case "carbonation_max":
		return getFloat(s.CarbonationMax), true
	case "abv_min":
		return getFloat(s.ABVMin), true
	case "abv_max":
		return getFloat(s.ABVMax), true
	case "notes":
		return getString(s.Notes), true
	case "examples":
		return getString(s.Examples), true
	}
	return nil, false
}

func (s *Style) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&s.Name, value)
	case "category":
		return setString(&s.Category, value)
	case "category_number":
		return setInt(&s.CategoryNumber, value)
	case "style_letter":
		return setString(&s.StyleLetter, value)
	case "style_guide":
		return setString(&s.StyleGuide, value)
	case "type":
		return setEnum(&s.Type, value)
	case "og_min":
		return setFloat(&s.OGMin, value)
	case "og_max":
		return setFloat(&s.OGMax, value)
	case "fg_min":
		return setFloat(&s.FGMin, value)
	case "fg_max":
		return setFloat(&s.FGMax, value)
	case "ibu_min":
		return setFloat(&s.IBUMin, value)
	case "ibu_max":
		return setFloat(&s.IBUMax, value)
	case "color_min":
		return setFloat(&s.ColorMin, value)
	case "color_max":
		return setFloat(&s.ColorMax, value)
	case "carbonation_min":
		return setFloat(&s.CarbonationMin, value)
	case "carbonation_max":
		return setFloat(&s.CarbonationMax, value)
	case "abv_min":
		return setFloat(&s.ABVMin, value)
	case "abv_max":
		return setFloat(&s.ABVMax, value)
	case "notes":
		return setString(&s.Notes, value)
	case "examples":
		return setString(&s.Examples, value)
	}
	return false
}

func (s *Style) CanSet(property string) bool {
	_, ok := s.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same style entry:
// same base name and the same guide coordinates.
func (s *Style) EquivalentTo(other Entity) bool {
	o, ok := other.(*Style)
	if !ok {
		return false
	}
	return sameName(s.Name, o.Name) &&
		s.StyleGuide == o.StyleGuide &&
		s.Category == o.Category &&
		eqInt(s.CategoryNumber, o.CategoryNumber) &&
		s.StyleLetter == o.StyleLetter &&
		s.Type == o.Type
}
