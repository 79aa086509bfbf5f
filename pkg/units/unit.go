package units

import "fmt"

// Unit identifies a concrete display unit. The value is the unit's ASCII
// parse token (e.g. "mV", "Ohm", "us"); the display symbol, which may
// carry non-ASCII glyphs such as μ and Ω, comes from Symbol. The set is
// closed: units exist only as the constants declared in catalog.go.
type Unit string

// conversionKind tags how a unit's spec encodes its to/from-SI pair.
type conversionKind int

const (
	// kindMultiplicative: toSI is x*factor, fromSI is x/factor.
	kindMultiplicative conversionKind = iota
	// kindAffine: toSI is x+offset, fromSI is x-offset.
	kindAffine
	// kindCustom: an arbitrary mutually-inverse function pair.
	kindCustom
)

// unitSpec is one row of the static unit table: the unit's base property,
// its conversion to/from the property's SI anchor, and its display symbol.
type unitSpec struct {
	property BaseProperty
	kind     conversionKind
	factor   float64
	offset   float64
	toSIFn   func(float64) float64
	fromSIFn func(float64) float64
	symbol   string
}

func (s unitSpec) toSI(x float64) float64 {
	switch s.kind {
	case kindMultiplicative:
		return x * s.factor
	case kindAffine:
		return x + s.offset
	default:
		return s.toSIFn(x)
	}
}

func (s unitSpec) fromSI(x float64) float64 {
	switch s.kind {
	case kindMultiplicative:
		return x / s.factor
	case kindAffine:
		return x - s.offset
	default:
		return s.fromSIFn(x)
	}
}

// Valid reports whether u is a member of the unit catalog.
func (u Unit) Valid() bool {
	_, ok := unitCatalog[u]
	return ok
}

// BaseProperty returns the quantity kind this unit belongs to, or the
// empty BaseProperty if u is not a catalog member.
func (u Unit) BaseProperty() BaseProperty {
	return unitCatalog[u].property
}

// Symbol returns the canonical display string of the unit. Symbols are
// exact code points: micro units use μ (U+03BC), resistance units Ω
// (U+03A9). The dimensionless unit has an empty symbol.
func (u Unit) Symbol() string {
	return unitCatalog[u].symbol
}

func (u Unit) String() string {
	return string(u)
}

// IsSIUnit reports whether u is the SI anchor of its base property.
func (u Unit) IsSIUnit() bool {
	spec, ok := unitCatalog[u]
	if !ok {
		return false
	}
	return propertySIUnits[spec.property] == u
}

// IsMultiplicative reports whether the unit's to/from-SI conversions are
// pure scalar scaling, i.e. whether linear interpolation of magnitudes in
// this unit is meaningful. False for affine (Celsius) and nonlinear (dBm)
// units.
func (u Unit) IsMultiplicative() bool {
	spec, ok := unitCatalog[u]
	return ok && spec.kind == kindMultiplicative
}

// ToSI converts a magnitude in this unit to the equivalent magnitude in
// the base property's SI anchor unit.
// Returns ErrUnknownUnit if u is not a catalog member.
func (u Unit) ToSI(magnitude float64) (float64, error) {
	spec, ok := unitCatalog[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, u)
	}
	return spec.toSI(magnitude), nil
}

// FromSI converts a magnitude in the base property's SI anchor unit to
// the equivalent magnitude in this unit.
// Returns ErrUnknownUnit if u is not a catalog member.
func (u Unit) FromSI(magnitude float64) (float64, error) {
	spec, ok := unitCatalog[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, u)
	}
	return spec.fromSI(magnitude), nil
}

// ConvertToUnit converts a magnitude expressed in one unit into the
// equivalent magnitude in another.
//
// Identical units return the magnitude unchanged, bypassing the SI round
// trip and its floating-point error. Units of the same base property
// pivot through the shared SI anchor value in two hops. Units of
// different but convertible base properties pivot in three hops: to the
// source anchor, across properties via ConvertProperty, then from the
// target anchor. Every call recomputes from scratch; there is no caching.
//
// Returns ErrUnknownUnit for a non-member unit and
// ErrIncompatibleProperties when the base properties are unrelated.
func ConvertToUnit(magnitude float64, fromUnit, toUnit Unit) (float64, error) {
	fromSpec, ok := unitCatalog[fromUnit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, fromUnit)
	}
	toSpec, ok := unitCatalog[toUnit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, toUnit)
	}
	if fromUnit == toUnit {
		return magnitude, nil
	}
	if fromSpec.property == toSpec.property {
		return toSpec.fromSI(fromSpec.toSI(magnitude)), nil
	}
	// A catalog unit tagged with a property missing from the property
	// table is a maintenance bug, not caller misuse.
	if !fromSpec.property.Valid() {
		return 0, fmt.Errorf("%w: unit %q has unregistered base property %q", ErrCatalogInconsistent, fromUnit, fromSpec.property)
	}
	if !toSpec.property.Valid() {
		return 0, fmt.Errorf("%w: unit %q has unregistered base property %q", ErrCatalogInconsistent, toUnit, toSpec.property)
	}
	fromSI := fromSpec.toSI(magnitude)
	toSI, err := ConvertProperty(fromSI, fromSpec.property, toSpec.property)
	if err != nil {
		return 0, err
	}
	return toSpec.fromSI(toSI), nil
}
