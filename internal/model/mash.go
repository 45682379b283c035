package model

// Entity types for mash procedures and their steps.
const (
	TypeMash     = "mash"
	TypeMashStep = "mash_step"
)

// MashStepType is the kind of action a mash step performs.
type MashStepType string

const (
	StepInfusion     MashStepType = "infusion"
	StepTemperature  MashStepType = "temperature"
	StepDecoction    MashStepType = "decoction"
	StepSouringMash  MashStepType = "souring mash"
	StepSouringWort  MashStepType = "souring wort"
	StepDrainMashTun MashStepType = "drain mash tun"
	StepSparge       MashStepType = "sparge"
)

// String returns the string representation of the step type.
func (t MashStepType) String() string {
	return string(t)
}

// IsValid checks whether the step type is a known value.
func (t MashStepType) IsValid() bool {
	switch t {
	case StepInfusion, StepTemperature, StepDecoction, StepSouringMash,
		StepSouringWort, StepDrainMashTun, StepSparge:
		return true
	}
	return false
}

// Mash is a mash procedure. Its steps are owned children whose document
// order is significant.
type Mash struct {
	Meta
	GrainTemperature *float64 `json:"grain_temperature,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// NewMash builds a mash procedure from a decoded document bundle.
func NewMash(b Bundle) *Mash {
	m := &Mash{
		GrainTemperature: bundleFloat(b, "grain_temperature"),
		Notes:            bundleString(b, "notes"),
	}
	m.Name = bundleString(b, "name")
	return m
}

func (m *Mash) EntityType() string {
	return TypeMash
}

func (m *Mash) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(m.Name), true
	case "grain_temperature":
		return getFloat(m.GrainTemperature), true
	case "notes":
		return getString(m.Notes), true
	}
	return nil, false
}

func (m *Mash) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&m.Name, value)
	case "grain_temperature":
		return setFloat(&m.GrainTemperature, value)
	case "notes":
		return setString(&m.Notes, value)
	}
	return false
}

func (m *Mash) CanSet(property string) bool {
	_, ok := m.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same mash procedure.
// Steps are not compared; duplicate detection sees the procedure before
// its children exist.
func (m *Mash) EquivalentTo(other Entity) bool {
	o, ok := other.(*Mash)
	if !ok {
		return false
	}
	return sameName(m.Name, o.Name) &&
		eqFloat(m.GrainTemperature, o.GrainTemperature)
}

// MashStep is one step of a mash procedure, owned by its mash.
// Temperatures are Celsius, times are minutes, the amount is liters of
// water, the water-grain ratio is liters per kilogram.
type MashStep struct {
	Meta
	MashID          int64        `json:"mash_id,omitempty"`
	Type            MashStepType `json:"type,omitempty"`
	Amount          *float64     `json:"amount,omitempty"`
	StepTemperature *float64     `json:"step_temperature,omitempty"`
	EndTemperature  *float64     `json:"end_temperature,omitempty"`
	StepTime        *float64     `json:"step_time,omitempty"`
	RampTime        *float64     `json:"ramp_time,omitempty"`
	WaterGrainRatio *float64     `json:"water_grain_ratio,omitempty"`
}

// NewMashStep builds a mash step from a decoded document bundle.
func NewMashStep(b Bundle) *MashStep {
	s := &MashStep{
		Type:            MashStepType(bundleString(b, "type")),
		Amount:          bundleFloat(b, "amount"),
		StepTemperature: bundleFloat(b, "step_temperature"),
		EndTemperature:  bundleFloat(b, "end_temperature"),
		StepTime:        bundleFloat(b, "step_time"),
		RampTime:        bundleFloat(b, "ramp_time"),
		WaterGrainRatio: bundleFloat(b, "water_grain_ratio"),
	}
	s.Name = bundleString(b, "name")
	return s
}

func (s *MashStep) EntityType() string {
	return TypeMashStep
}

// SetOwner attaches the step to its mash before it is stored.
func (s *MashStep) SetOwner(owner Entity) {
	s.MashID = owner.GetID()
}

func (s *MashStep) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(s.Name), true
	case "mash_id":
		return getRef(s.MashID), true
	case "type":
		return getString(string(s.Type)), true
	case "amount":
		return getFloat(s.Amount), true
	case "step_temperature":
		return getFloat(s.StepTemperature), true
	case "end_temperature":
		return getFloat(s.EndTemperature), true
	case "step_time":
		return getFloat(s.StepTime), true
	case "ramp_time":
		return getFloat(s.RampTime), true
	case "water_grain_ratio":
		return getFloat(s.WaterGrainRatio), true
	}
	return nil, false
}

func (s *MashStep) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&s.Name, value)
	case "mash_id":
		return setRef(&s.MashID, value)
	case "type":
		return setEnum(&s.Type, value)
	case "amount":
		return setFloat(&s.Amount, value)
	case "step_temperature":
		return setFloat(&s.StepTemperature, value)
	case "end_temperature":
		return setFloat(&s.EndTemperature, value)
	case "step_time":
		return setFloat(&s.StepTime, value)
	case "ramp_time":
		return setFloat(&s.RampTime, value)
	case "water_grain_ratio":
		return setFloat(&s.WaterGrainRatio, value)
	}
	return false
}

func (s *MashStep) CanSet(property string) bool {
	_, ok := s.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same step. Steps are
// owned, so this is never consulted for duplicate detection on its own;
// it exists for completeness of the entity surface.
func (s *MashStep) EquivalentTo(other Entity) bool {
	o, ok := other.(*MashStep)
	if !ok {
		return false
	}
	return sameName(s.Name, o.Name) &&
		s.Type == o.Type &&
		eqFloat(s.StepTemperature, o.StepTemperature) &&
		eqFloat(s.StepTime, o.StepTime)
}
