package model

// TypeWater is the entity type water profiles register under.
const TypeWater = "water"

// Water is a brewing water profile. Ion concentrations are ppm.
type Water struct {
	Meta
	Producer    string   `json:"producer,omitempty"`
	Calcium     *float64 `json:"calcium,omitempty"`
	Bicarbonate *float64 `json:"bicarbonate,omitempty"`
	Carbonate   *float64 `json:"carbonate,omitempty"`
	Potassium   *float64 `json:"potassium,omitempty"`
	Iron        *float64 `json:"iron,omitempty"`
	Nitrate     *float64 `json:"nitrate,omitempty"`
	Nitrite     *float64 `json:"nitrite,omitempty"`
	Sulfate     *float64 `json:"sulfate,omitempty"`
	Chloride    *float64 `json:"chloride,omitempty"`
	Sodium      *float64 `json:"sodium,omitempty"`
	Magnesium   *float64 `json:"magnesium,omitempty"`
	PH          *float64 `json:"ph,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// NewWater builds a water profile from a decoded document bundle.
func NewWater(b Bundle) *Water {
	w := &Water{
		Producer:    bundleString(b, "producer"),
		Calcium:     bundleFloat(b, "calcium"),
		Bicarbonate: bundleFloat(b, "bicarbonate"),
		Carbonate:   bundleFloat(b, "carbonate"),
		Potassium:   bundleFloat(b, "potassium"),
		Iron:        bundleFloat(b, "iron"),
		Nitrate:     bundleFloat(b, "nitrate"),
		Nitrite:     bundleFloat(b, "nitrite"),
		Sulfate:     bundleFloat(b, "sulfate"),
		Chloride:    bundleFloat(b, "chloride"),
		Sodium:      bundleFloat(b, "sodium"),
		Magnesium:   bundleFloat(b, "magnesium"),
		PH:          bundleFloat(b, "ph"),
		Notes:       bundleString(b, "notes"),
	}
	w.Name = bundleString(b, "name")
	return w
}

func (w *Water) EntityType() string {
	return TypeWater
}

func (w *Water) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(w.Name), true
	case "producer":
		return getString(w.Producer), true
	case "calcium":
		return getFloat(w.Calcium), true
	case "bicarbonate":
		return getFloat(w.Bicarbonate), true
	case "carbonate":
		return getFloat(w.Carbonate), true
	case "potassium":
		return getFloat(w.Potassium), true
	case "iron":
		return getFloat(w.Iron), true
	case "nitrate":
		return getFloat(w.Nitrate), true
	case "nitrite":
		return getFloat(w.Nitrite), true
	case "sulfate":
		return getFloat(w.Sulfate), true
	case "chloride":
		return getFloat(w.Chloride), true
	case "sodium":
		return getFloat(w.Sodium), true
	case "magnesium":
		return getFloat(w.Magnesium), true
	case "ph":
		return getFloat(w.PH), true
	case "notes":
		return getString(w.Notes), true
	}
	return nil, false
}

func (w *Water) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&w.Name, value)
	case "producer":
		return setString(&w.Producer, value)
	case "calcium":
		return setFloat(&w.Calcium, value)
	case "bicarbonate":
		return setFloat(&w.Bicarbonate, value)
	case "carbonate":
		return setFloat(&w.Carbonate, value)
	case "potassium":
		return setFloat(&w.Potassium, value)
	case "iron":
		return setFloat(&w.Iron, value)
	case "nitrate":
		return setFloat(&w.Nitrate, value)
	case "nitrite":
		return setFloat(&w.Nitrite, value)
	case "sulfate":
		return setFloat(&w.Sulfate, value)
	case "chloride":
		return setFloat(&w.Chloride, value)
	case "sodium":
		return setFloat(&w.Sodium, value)
	case "magnesium":
		return setFloat(&w.Magnesium, value)
	case "ph":
		return setFloat(&w.PH, value)
	case "notes":
		return setString(&w.Notes, value)
	}
	return false
}

func (w *Water) CanSet(property string) bool {
	_, ok := w.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same water profile:
// same base name and the same six principal ion concentrations.
func (w *Water) EquivalentTo(other Entity) bool {
	o, ok := other.(*Water)
	if !ok {
		return false
	}
	return sameName(w.Name, o.Name) &&
		eqFloat(w.Calcium, o.Calcium) &&
		eqFloat(w.Bicarbonate, o.Bicarbonate) &&
		eqFloat(w.Sulfate, o.Sulfate) &&
		eqFloat(w.Chloride, o.Chloride) &&
		eqFloat(w.Sodium, o.Sodium) &&
		eqFloat(w.Magnesium, o.Magnesium)
}
