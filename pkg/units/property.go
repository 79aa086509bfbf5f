package units

import "fmt"

// BaseProperty identifies a fundamental physical quantity kind. The set is
// closed: properties exist only as the constants below, each anchored to a
// single SI unit in the catalog.
type BaseProperty string

// The base property catalog. Extending it means adding a constant here,
// an entry in propertySIUnits, and the corresponding units in the unit
// table.
const (
	PropertyNone        BaseProperty = "none"
	PropertyVoltage     BaseProperty = "voltage"
	PropertyCurrent     BaseProperty = "current"
	PropertyResistance  BaseProperty = "resistance"
	PropertyPower       BaseProperty = "power"
	PropertyTime        BaseProperty = "time"
	PropertyFrequency   BaseProperty = "frequency"
	PropertyCapacitance BaseProperty = "capacitance"
	PropertyInductance  BaseProperty = "inductance"
	PropertyTemperature BaseProperty = "temperature"
	PropertyEnergy      BaseProperty = "energy"
	PropertyDistance    BaseProperty = "distance"
	PropertyVelocity    BaseProperty = "velocity"
)

// allProperties lists the catalog in declaration order.
var allProperties = []BaseProperty{
	PropertyNone,
	PropertyVoltage,
	PropertyCurrent,
	PropertyResistance,
	PropertyPower,
	PropertyTime,
	PropertyFrequency,
	PropertyCapacitance,
	PropertyInductance,
	PropertyTemperature,
	PropertyEnergy,
	PropertyDistance,
	PropertyVelocity,
}

// propertySIUnits maps each base property to its SI anchor unit, the
// pivot for all conversions of that kind.
var propertySIUnits = map[BaseProperty]Unit{
	PropertyNone:        UnitNone,
	PropertyVoltage:     UnitVolt,
	PropertyCurrent:     UnitAmpere,
	PropertyResistance:  UnitOhm,
	PropertyPower:       UnitWatt,
	PropertyTime:        UnitSecond,
	PropertyFrequency:   UnitHertz,
	PropertyCapacitance: UnitFarad,
	PropertyInductance:  UnitHenry,
	PropertyTemperature: UnitKelvin,
	PropertyEnergy:      UnitJoule,
	PropertyDistance:    UnitMeter,
	PropertyVelocity:    UnitMeterPerSecond,
}

// crossConversion declares one unordered pair of distinct base properties
// that convert into each other, with the conversion function for each
// direction.
type crossConversion struct {
	a, b BaseProperty
	aToB func(float64) float64
	bToA func(float64) float64
}

// reciprocal intentionally has no zero guard: 1/0 yields +Inf per
// IEEE 754 and is a value, not an error.
func reciprocal(x float64) float64 { return 1 / x }

// crossConversions is the single declaration site for cross-property
// convertibility. Both directions of every pair are registered from one
// entry, so the relation is symmetric by construction.
var crossConversions = []crossConversion{
	{a: PropertyTime, b: PropertyFrequency, aToB: reciprocal, bToA: reciprocal},
}

type propertyPair struct {
	from, to BaseProperty
}

var crossConversionIndex = map[propertyPair]func(float64) float64{}

func init() {
	for _, cc := range crossConversions {
		crossConversionIndex[propertyPair{cc.a, cc.b}] = cc.aToB
		crossConversionIndex[propertyPair{cc.b, cc.a}] = cc.bToA
	}
}

// Valid reports whether p is a member of the base property catalog.
func (p BaseProperty) Valid() bool {
	_, ok := propertySIUnits[p]
	return ok
}

// SIUnit returns the SI anchor unit of this property, or the empty Unit
// if p is not a catalog member.
func (p BaseProperty) SIUnit() Unit {
	return propertySIUnits[p]
}

// Symbol returns the display symbol of the property's SI anchor unit.
func (p BaseProperty) Symbol() string {
	return p.SIUnit().Symbol()
}

func (p BaseProperty) String() string {
	return string(p)
}

// ConvertibleProperties returns the distinct base properties p converts
// to, in catalog order. Identity is excluded.
func (p BaseProperty) ConvertibleProperties() []BaseProperty {
	var out []BaseProperty
	for _, other := range allProperties {
		if other == p {
			continue
		}
		if _, ok := crossConversionIndex[propertyPair{p, other}]; ok {
			out = append(out, other)
		}
	}
	return out
}

// AllProperties returns the base property catalog in declaration order.
func AllProperties() []BaseProperty {
	out := make([]BaseProperty, len(allProperties))
	copy(out, allProperties)
	return out
}

// ParseProperty returns the catalog member named by s.
// Returns ErrUnknownProperty if s is not a member.
func ParseProperty(s string) (BaseProperty, error) {
	p := BaseProperty(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, s)
	}
	return p, nil
}

// CanConvert reports whether magnitudes convert between the two base
// properties. The relation is reflexive and symmetric; beyond identity it
// holds only for the declared cross-conversion pairs.
// Returns ErrUnknownProperty if either property is not a catalog member.
func CanConvert(p1, p2 BaseProperty) (bool, error) {
	if !p1.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownProperty, p1)
	}
	if !p2.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownProperty, p2)
	}
	if p1 == p2 {
		return true, nil
	}
	_, ok := crossConversionIndex[propertyPair{p1, p2}]
	return ok, nil
}

// ConvertProperty converts a magnitude expressed in the SI anchor of one
// base property into the SI anchor of another. Identity conversions
// return the magnitude unchanged. For time and frequency the conversion
// is the multiplicative inverse; a zero magnitude yields an infinity, not
// an error.
// Returns ErrUnknownProperty for a non-member property and
// ErrIncompatibleProperties for an undeclared pair.
func ConvertProperty(magnitude float64, from, to BaseProperty) (float64, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, to)
	}
	if from == to {
		return magnitude, nil
	}
	fn, ok := crossConversionIndex[propertyPair{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleProperties, from, to)
	}
	return fn(magnitude), nil
}
