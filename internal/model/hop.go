package model

// TypeHop is the entity type hop varieties register under.
const TypeHop = "hop"

// HopForm is the physical form a hop variety is supplied in.
type HopForm string

const (
	HopExtract HopForm = "extract"
	HopLeaf    HopForm = "leaf"
	HopLeafWet HopForm = "leaf (wet)"
	HopPellet  HopForm = "pellet"
	HopPowder  HopForm = "powder"
	HopPlug    HopForm = "plug"
)

// String returns the string representation of the form.
func (f HopForm) String() string {
	return string(f)
}

// IsValid checks whether the form is a known value.
func (f HopForm) IsValid() bool {
	switch f {
	case HopExtract, HopLeaf, HopLeafWet, HopPellet, HopPowder, HopPlug:
		return true
	}
	return false
}

// HopPurpose classifies what a hop variety contributes.
type HopPurpose string

const (
	HopAroma                HopPurpose = "aroma"
	HopBittering            HopPurpose = "bittering"
	HopFlavor               HopPurpose = "flavor"
	HopAromaBittering       HopPurpose = "aroma/bittering"
	HopBitteringFlavor      HopPurpose = "bittering/flavor"
	HopAromaFlavor          HopPurpose = "aroma/flavor"
	HopAromaBitteringFlavor HopPurpose = "aroma/bittering/flavor"
)

// String returns the string representation of the purpose.
func (p HopPurpose) String() string {
	return string(p)
}

// IsValid checks whether the purpose is a known value.
func (p HopPurpose) IsValid() bool {
	switch p {
	case HopAroma, HopBittering, HopFlavor, HopAromaBittering,
		HopBitteringFlavor, HopAromaFlavor, HopAromaBitteringFlavor:
		return true
	}
	return false
}

// Hop is a hop variety. Acid contents and percent lost are percentages.
type Hop struct {
	Meta
	Origin      string     `json:"origin,omitempty"`
	Producer    string     `json:"producer,omitempty"`
	ProductID   string     `json:"product_id,omitempty"`
	Year        string     `json:"year,omitempty"`
	Form        HopForm    `json:"form,omitempty"`
	Purpose     HopPurpose `json:"type,omitempty"`
	AlphaAcid   *float64   `json:"alpha_acid,omitempty"`
	BetaAcid    *float64   `json:"beta_acid,omitempty"`
	PercentLost *float64   `json:"percent_lost,omitempty"`
	Substitutes string     `json:"substitutes,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// NewHop builds a hop variety from a decoded document bundle.
func NewHop(b Bundle) *Hop {
	h := &Hop{
		Origin:      bundleString(b, "origin"),
		Producer:    bundleString(b, "producer"),
		ProductID:   bundleString(b, "product_id"),
		Year:        bundleString(b, "year"),
		Form:        HopForm(bundleString(b, "form")),
		Purpose:     HopPurpose(bundleString(b, "purpose")),
		AlphaAcid:   bundleFloat(b, "alpha_acid"),
		BetaAcid:    bundleFloat(b, "beta_acid"),
		PercentLost: bundleFloat(b, "percent_lost"),
		Substitutes: bundleString(b, "substitutes"),
		Notes:       bundleString(b, "notes"),
	}
	h.Name = bundleString(b, "name")
	return h
}

func (h *Hop) EntityType() string {
	return TypeHop
}

func (h *Hop) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(h.Name), true
	case "origin":
		return getString(h.Origin), true
	case "producer":
		return getString(h.Producer), true
	case "product_id":
		return getString(h.ProductID), true
	case "year":
		return getString(h.Year), true
	case "form":
		return getString(string(h.Form)), true
	case "purpose":
		return getString(string(h.Purpose)), true
	case "alpha_acid":
		return getFloat(h.AlphaAcid), true
	case "beta_acid":
		return getFloat(h.BetaAcid), true
	case "percent_lost":
		return getFloat(h.PercentLost), true
	case "substitutes":
		return getString(h.Substitutes), true
	case "notes":
		return getString(h.Notes), true
	}
	return nil, false
}

func (h *Hop) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&h.Name, value)
	case "origin":
		return setString(&h.Origin, value)
	case "producer":
		return setString(&h.Producer, value)
	case "product_id":
		return setString(&h.ProductID, value)
	case "year":
		return setString(&h.Year, value)
	case "form":
		return setEnum(&h.Form, value)
	case "purpose":
		return setEnum(&h.Purpose, value)
	case "alpha_acid":
		return setFloat(&h.AlphaAcid, value)
	case "beta_acid":
		return setFloat(&h.BetaAcid, value)
	case "percent_lost":
		return setFloat(&h.PercentLost, value)
	case "substitutes":
		return setString(&h.Substitutes, value)
	case "notes":
		return setString(&h.Notes, value)
	}
	return false
}

func (h *Hop) CanSet(property string) bool {
	_, ok := h.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same hop variety.
func (h *Hop) EquivalentTo(other Entity) bool {
	o, ok := other.(*Hop)
	if !ok {
		return false
	}
	return sameName(h.Name, o.Name) &&
		h.Origin == o.Origin &&
		h.Form == o.Form &&
		eqFloat(h.AlphaAcid, o.AlphaAcid) &&
		eqFloat(h.BetaAcid, o.BetaAcid)
}
