package mapping

import "fmt"

// FieldType selects the decode/encode strategy for one field of a record.
type FieldType int

const (
	// FieldBool maps a JSON boolean.
	FieldBool FieldType = iota
	// FieldInt maps a JSON number to a signed integer.
	FieldInt
	// FieldUInt maps a JSON number to a non-negative integer.
	FieldUInt
	// FieldDouble maps a JSON number to a float.
	FieldDouble
	// FieldString maps a JSON string verbatim.
	FieldString
	// FieldEnum maps a closed set of JSON strings through an EnumMapping.
	FieldEnum
	// FieldDate maps an ISO-8601 calendar date string.
	FieldDate
	// FieldMeasurement maps a {unit, value} object through a UnitMapping
	// to a canonical-unit float.
	FieldMeasurement
	// FieldOneOfMeasurements maps a {unit, value} object whose unit may
	// belong to any of several quantities (mass or volume, say) to a
	// measure.Amount recording which quantity was used.
	FieldOneOfMeasurements
	// FieldSingleUnit maps a {unit, value} object whose unit is fixed;
	// the value passes through unconverted.
	FieldSingleUnit
	// FieldRecord maps a nested object through its own RecordDefinition,
	// producing a child entity wired to the parent by property.
	FieldRecord
	// FieldArray maps an array of nested objects through a child
	// RecordDefinition; the children reach the parent by ownership, not
	// by property.
	FieldArray
	// FieldConstant marks a structural value the dialect requires but
	// that carries no information: ignored on read, emitted verbatim on
	// write.
	FieldConstant
)

var fieldTypeNames = map[FieldType]string{
	FieldBool:              "bool",
	FieldInt:               "int",
	FieldUInt:              "uint",
	FieldDouble:            "double",
	FieldString:            "string",
	FieldEnum:              "enum",
	FieldDate:              "date",
	FieldMeasurement:       "measurement",
	FieldOneOfMeasurements: "one-of-measurements",
	FieldSingleUnit:        "single-unit value",
	FieldRecord:            "record",
	FieldArray:             "array",
	FieldConstant:          "constant",
}

func (t FieldType) String() string {
	if s, ok := fieldTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// EnumPair ties one document spelling to one stored value.
type EnumPair struct {
	External string
	Internal string
}

// EnumMapping is a bidirectional closed mapping between the strings a
// document dialect uses for an enumerated field and the values stored on
// the entity.
type EnumMapping struct {
	byExternal map[string]string
	byInternal map[string]string
}

// NewEnumMapping builds a mapping from explicit pairs. Pairs are ordered
// so that when several externals share an internal value, the first pair
// wins on export.
func NewEnumMapping(pairs ...EnumPair) *EnumMapping {
	m := &EnumMapping{
		byExternal: make(map[string]string, len(pairs)),
		byInternal: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := m.byExternal[p.External]; dup {
			panic(fmt.Sprintf("mapping: duplicate enum spelling %q", p.External))
		}
		m.byExternal[p.External] = p.Internal
		if _, taken := m.byInternal[p.Internal]; !taken {
			m.byInternal[p.Internal] = p.External
		}
	}
	return m
}

// IdentityEnum builds a mapping where document spellings and stored values
// coincide, the common case.
func IdentityEnum(values ...string) *EnumMapping {
	pairs := make([]EnumPair, len(values))
	for i, v := range values {
		pairs[i] = EnumPair{External: v, Internal: v}
	}
	return NewEnumMapping(pairs...)
}

// Internal resolves a document spelling to the stored value.
func (m *EnumMapping) Internal(external string) (string, bool) {
	v, ok := m.byExternal[external]
	return v, ok
}

// External resolves a stored value to its document spelling.
func (m *EnumMapping) External(internal string) (string, bool) {
	v, ok := m.byInternal[internal]
	return v, ok
}

// FieldDefinition describes how one field of a record maps between the
// document and the entity. Definitions are built once at start-up through
// the typed constructors below and never mutated.
//
// PropertyName is empty for fields read for validation only and for array
// fields, whose children relate to the parent by ownership.
type FieldDefinition struct {
	Type         FieldType
	Path         XPath
	PropertyName string

	// Exactly one of the following is set, according to Type.
	Enum     *EnumMapping
	Units    *UnitMapping
	OneOf    []*UnitMapping
	Single   *SingleUnit
	Constant string
}

func BoolField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldBool, Path: NewXPath(path), PropertyName: property}
}

func IntField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldInt, Path: NewXPath(path), PropertyName: property}
}

func UIntField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldUInt, Path: NewXPath(path), PropertyName: property}
}

func DoubleField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldDouble, Path: NewXPath(path), PropertyName: property}
}

func StringField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldString, Path: NewXPath(path), PropertyName: property}
}

func EnumField(path, property string, enum *EnumMapping) FieldDefinition {
	return FieldDefinition{Type: FieldEnum, Path: NewXPath(path), PropertyName: property, Enum: enum}
}

func DateField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldDate, Path: NewXPath(path), PropertyName: property}
}

func MeasurementField(path, property string, units *UnitMapping) FieldDefinition {
	return FieldDefinition{Type: FieldMeasurement, Path: NewXPath(path), PropertyName: property, Units: units}
}

func OneOfMeasurementsField(path, property string, units ...*UnitMapping) FieldDefinition {
	return FieldDefinition{Type: FieldOneOfMeasurements, Path: NewXPath(path), PropertyName: property, OneOf: units}
}

func SingleUnitField(path, property string, single *SingleUnit) FieldDefinition {
	return FieldDefinition{Type: FieldSingleUnit, Path: NewXPath(path), PropertyName: property, Single: single}
}

func RecordField(path, property string) FieldDefinition {
	return FieldDefinition{Type: FieldRecord, Path: NewXPath(path), PropertyName: property}
}

func ArrayField(path string) FieldDefinition {
	return FieldDefinition{Type: FieldArray, Path: NewXPath(path)}
}

func ConstantField(path, constant string) FieldDefinition {
	return FieldDefinition{Type: FieldConstant, Path: NewXPath(path), Constant: constant}
}
