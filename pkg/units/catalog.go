package units

import (
	"fmt"
	"math"
)

// The unit catalog. Tokens are ASCII (micro is "u", ohm is "Ohm"); the
// display symbols in the unit table below carry the real glyphs.
const (
	UnitNone Unit = "none"

	// Voltage.
	UnitPicovolt  Unit = "pV"
	UnitNanovolt  Unit = "nV"
	UnitMicrovolt Unit = "uV"
	UnitMillivolt Unit = "mV"
	UnitVolt      Unit = "V"
	UnitKilovolt  Unit = "kV"

	// Current.
	UnitPicoampere  Unit = "pA"
	UnitNanoampere  Unit = "nA"
	UnitMicroampere Unit = "uA"
	UnitMilliampere Unit = "mA"
	UnitAmpere      Unit = "A"
	UnitKiloampere  Unit = "kA"

	// Resistance / impedance.
	UnitMicroohm Unit = "uOhm"
	UnitMilliohm Unit = "mOhm"
	UnitOhm      Unit = "Ohm"
	UnitKiloohm  Unit = "kOhm"
	UnitMegaohm  Unit = "MOhm"
	UnitGigaohm  Unit = "GOhm"

	// Power.
	UnitAttowatt  Unit = "aW"
	UnitFemtowatt Unit = "fW"
	UnitPicowatt  Unit = "pW"
	UnitNanowatt  Unit = "nW"
	UnitMicrowatt Unit = "uW"
	UnitMilliwatt Unit = "mW"
	UnitWatt      Unit = "W"
	UnitKilowatt  Unit = "kW"
	UnitDBm       Unit = "dBm"

	// Time interval / duration.
	UnitPicosecond  Unit = "ps"
	UnitNanosecond  Unit = "ns"
	UnitMicrosecond Unit = "us"
	UnitMillisecond Unit = "ms"
	UnitSecond      Unit = "s"
	UnitKilosecond  Unit = "ks"
	UnitMegasecond  Unit = "Ms"
	UnitGigasecond  Unit = "Gs"

	// Frequency.
	UnitMicrohertz Unit = "uHz"
	UnitMillihertz Unit = "mHz"
	UnitHertz      Unit = "Hz"
	UnitKilohertz  Unit = "kHz"
	UnitMegahertz  Unit = "MHz"
	UnitGigahertz  Unit = "GHz"
	UnitTerahertz  Unit = "THz"

	// Capacitance.
	UnitPicofarad  Unit = "pF"
	UnitNanofarad  Unit = "nF"
	UnitMicrofarad Unit = "uF"
	UnitMillifarad Unit = "mF"
	UnitFarad      Unit = "F"
	UnitKilofarad  Unit = "kF"
	UnitMegafarad  Unit = "MF"

	// Inductance.
	UnitPicohenry  Unit = "pH"
	UnitNanohenry  Unit = "nH"
	UnitMicrohenry Unit = "uH"
	UnitMillihenry Unit = "mH"
	UnitHenry      Unit = "H"
	UnitKilohenry  Unit = "kH"
	UnitMegahenry  Unit = "MH"

	// Temperature.
	UnitKelvin  Unit = "K"
	UnitCelsius Unit = "C"

	// Energy.
	UnitAttojoule  Unit = "aJ"
	UnitFemtojoule Unit = "fJ"
	UnitPicojoule  Unit = "pJ"
	UnitNanojoule  Unit = "nJ"
	UnitMicrojoule Unit = "uJ"
	UnitMillijoule Unit = "mJ"
	UnitJoule      Unit = "J"
	UnitKilojoule  Unit = "kJ"
	UnitMegajoule  Unit = "MJ"
	UnitGigajoule  Unit = "GJ"
	UnitTerajoule  Unit = "TJ"
	UnitPetajoule  Unit = "PJ"
	UnitExajoule   Unit = "EJ"

	// Distance.
	UnitAttometer  Unit = "am"
	UnitFemtometer Unit = "fm"
	UnitPicometer  Unit = "pm"
	UnitNanometer  Unit = "nm"
	UnitMicrometer Unit = "um"
	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitDecimeter  Unit = "dm"
	UnitMeter      Unit = "m"
	UnitDecameter  Unit = "dam"
	UnitHectometer Unit = "hm"
	UnitKilometer  Unit = "km"
	UnitMegameter  Unit = "Mm"
	UnitGigameter  Unit = "Gm"
	UnitTerameter  Unit = "Tm"
	UnitPetameter  Unit = "Pm"
	UnitExameter   Unit = "Em"

	// Velocity.
	UnitAttometerPerSecond  Unit = "am/s"
	UnitFemtometerPerSecond Unit = "fm/s"
	UnitPicometerPerSecond  Unit = "pm/s"
	UnitNanometerPerSecond  Unit = "nm/s"
	UnitMicrometerPerSecond Unit = "um/s"
	UnitMillimeterPerSecond Unit = "mm/s"
	UnitCentimeterPerSecond Unit = "cm/s"
	UnitDecimeterPerSecond  Unit = "dm/s"
	UnitMeterPerSecond      Unit = "m/s"
	UnitDecameterPerSecond  Unit = "dam/s"
	UnitHectometerPerSecond Unit = "hm/s"
	UnitKilometerPerSecond  Unit = "km/s"
	UnitMegameterPerSecond  Unit = "Mm/s"
	UnitGigameterPerSecond  Unit = "Gm/s"
	UnitTerameterPerSecond  Unit = "Tm/s"
)

// mul builds a spec for a unit whose SI conversion is pure scalar
// scaling by factor.
func mul(property BaseProperty, factor float64, symbol string) unitSpec {
	return unitSpec{property: property, kind: kindMultiplicative, factor: factor, symbol: symbol}
}

// affine builds a spec for a unit offset from its SI anchor.
func affine(property BaseProperty, offset float64, symbol string) unitSpec {
	return unitSpec{property: property, kind: kindAffine, offset: offset, symbol: symbol}
}

// custom builds a spec for a unit with an arbitrary mutually-inverse
// to/from-SI function pair.
func custom(property BaseProperty, toSI, fromSI func(float64) float64, symbol string) unitSpec {
	return unitSpec{property: property, kind: kindCustom, toSIFn: toSI, fromSIFn: fromSI, symbol: symbol}
}

type unitEntry struct {
	unit Unit
	spec unitSpec
}

// unitTable is the single declaration site of the unit catalog: one row
// per unit with its base property, SI conversion, and display symbol.
var unitTable = []unitEntry{
	{UnitNone, mul(PropertyNone, 1, "")},

	{UnitPicovolt, mul(PropertyVoltage, 1e-12, "pV")},
	{UnitNanovolt, mul(PropertyVoltage, 1e-9, "nV")},
	{UnitMicrovolt, mul(PropertyVoltage, 1e-6, "μV")},
	{UnitMillivolt, mul(PropertyVoltage, 1e-3, "mV")},
	{UnitVolt, mul(PropertyVoltage, 1, "V")},
	{UnitKilovolt, mul(PropertyVoltage, 1e3, "kV")},

	{UnitPicoampere, mul(PropertyCurrent, 1e-12, "pA")},
	{UnitNanoampere, mul(PropertyCurrent, 1e-9, "nA")},
	{UnitMicroampere, mul(PropertyCurrent, 1e-6, "μA")},
	{UnitMilliampere, mul(PropertyCurrent, 1e-3, "mA")},
	{UnitAmpere, mul(PropertyCurrent, 1, "A")},
	{UnitKiloampere, mul(PropertyCurrent, 1e3, "kA")},

	{UnitMicroohm, mul(PropertyResistance, 1e-6, "μΩ")},
	{UnitMilliohm, mul(PropertyResistance, 1e-3, "mΩ")},
	{UnitOhm, mul(PropertyResistance, 1, "Ω")},
	{UnitKiloohm, mul(PropertyResistance, 1e3, "kΩ")},
	{UnitMegaohm, mul(PropertyResistance, 1e6, "MΩ")},
	{UnitGigaohm, mul(PropertyResistance, 1e9, "GΩ")},

	{UnitAttowatt, mul(PropertyPower, 1e-18, "aW")},
	{UnitFemtowatt, mul(PropertyPower, 1e-15, "fW")},
	{UnitPicowatt, mul(PropertyPower, 1e-12, "pW")},
	{UnitNanowatt, mul(PropertyPower, 1e-9, "nW")},
	{UnitMicrowatt, mul(PropertyPower, 1e-6, "μW")},
	{UnitMilliwatt, mul(PropertyPower, 1e-3, "mW")},
	{UnitWatt, mul(PropertyPower, 1, "W")},
	{UnitKilowatt, mul(PropertyPower, 1e3, "kW")},
	{UnitDBm, custom(PropertyPower, dbmToWatts, wattsToDBm, "dBm")},

	{UnitPicosecond, mul(PropertyTime, 1e-12, "ps")},
	{UnitNanosecond, mul(PropertyTime, 1e-9, "ns")},
	{UnitMicrosecond, mul(PropertyTime, 1e-6, "μs")},
	{UnitMillisecond, mul(PropertyTime, 1e-3, "ms")},
	{UnitSecond, mul(PropertyTime, 1, "s")},
	{UnitKilosecond, mul(PropertyTime, 1e3, "ks")},
	{UnitMegasecond, mul(PropertyTime, 1e6, "Ms")},
	{UnitGigasecond, mul(PropertyTime, 1e9, "Gs")},

	{UnitMicrohertz, mul(PropertyFrequency, 1e-6, "μHz")},
	{UnitMillihertz, mul(PropertyFrequency, 1e-3, "mHz")},
	{UnitHertz, mul(PropertyFrequency, 1, "Hz")},
	{UnitKilohertz, mul(PropertyFrequency, 1e3, "kHz")},
	{UnitMegahertz, mul(PropertyFrequency, 1e6, "MHz")},
	{UnitGigahertz, mul(PropertyFrequency, 1e9, "GHz")},
	{UnitTerahertz, mul(PropertyFrequency, 1e12, "THz")},

	{UnitPicofarad, mul(PropertyCapacitance, 1e-12, "pF")},
	{UnitNanofarad, mul(PropertyCapacitance, 1e-9, "nF")},
	{UnitMicrofarad, mul(PropertyCapacitance, 1e-6, "μF")},
	{UnitMillifarad, mul(PropertyCapacitance, 1e-3, "mF")},
	{UnitFarad, mul(PropertyCapacitance, 1, "F")},
	{UnitKilofarad, mul(PropertyCapacitance, 1e3, "kF")},
	{UnitMegafarad, mul(PropertyCapacitance, 1e6, "MF")},

	{UnitPicohenry, mul(PropertyInductance, 1e-12, "pH")},
	{UnitNanohenry, mul(PropertyInductance, 1e-9, "nH")},
	{UnitMicrohenry, mul(PropertyInductance, 1e-6, "μH")},
	{UnitMillihenry, mul(PropertyInductance, 1e-3, "mH")},
	{UnitHenry, mul(PropertyInductance, 1, "H")},
	{UnitKilohenry, mul(PropertyInductance, 1e3, "kH")},
	{UnitMegahenry, mul(PropertyInductance, 1e6, "MH")},

	{UnitKelvin, mul(PropertyTemperature, 1, "K")},
	{UnitCelsius, affine(PropertyTemperature, zeroCelsiusKelvin, "C")},

	{UnitAttojoule, mul(PropertyEnergy, 1e-18, "aJ")},
	{UnitFemtojoule, mul(PropertyEnergy, 1e-15, "fJ")},
	{UnitPicojoule, mul(PropertyEnergy, 1e-12, "pJ")},
	{UnitNanojoule, mul(PropertyEnergy, 1e-9, "nJ")},
	{UnitMicrojoule, mul(PropertyEnergy, 1e-6, "μJ")},
	{UnitMillijoule, mul(PropertyEnergy, 1e-3, "mJ")},
	{UnitJoule, mul(PropertyEnergy, 1, "J")},
	{UnitKilojoule, mul(PropertyEnergy, 1e3, "kJ")},
	{UnitMegajoule, mul(PropertyEnergy, 1e6, "MJ")},
	{UnitGigajoule, mul(PropertyEnergy, 1e9, "GJ")},
	{UnitTerajoule, mul(PropertyEnergy, 1e12, "TJ")},
	{UnitPetajoule, mul(PropertyEnergy, 1e15, "PJ")},
	{UnitExajoule, mul(PropertyEnergy, 1e18, "EJ")},

	{UnitAttometer, mul(PropertyDistance, 1e-18, "am")},
	{UnitFemtometer, mul(PropertyDistance, 1e-15, "fm")},
	{UnitPicometer, mul(PropertyDistance, 1e-12, "pm")},
	{UnitNanometer, mul(PropertyDistance, 1e-9, "nm")},
	{UnitMicrometer, mul(PropertyDistance, 1e-6, "μm")},
	{UnitMillimeter, mul(PropertyDistance, 1e-3, "mm")},
	{UnitCentimeter, mul(PropertyDistance, 1e-2, "cm")},
	{UnitDecimeter, mul(PropertyDistance, 1e-1, "dm")},
	{UnitMeter, mul(PropertyDistance, 1, "m")},
	{UnitDecameter, mul(PropertyDistance, 1e1, "dam")},
	{UnitHectometer, mul(PropertyDistance, 1e2, "hm")},
	{UnitKilometer, mul(PropertyDistance, 1e3, "km")},
	{UnitMegameter, mul(PropertyDistance, 1e6, "Mm")},
	{UnitGigameter, mul(PropertyDistance, 1e9, "Gm")},
	{UnitTerameter, mul(PropertyDistance, 1e12, "Tm")},
	{UnitPetameter, mul(PropertyDistance, 1e15, "Pm")},
	{UnitExameter, mul(PropertyDistance, 1e18, "Em")},

	{UnitAttometerPerSecond, mul(PropertyVelocity, 1e-18, "am/s")},
	{UnitFemtometerPerSecond, mul(PropertyVelocity, 1e-15, "fm/s")},
	{UnitPicometerPerSecond, mul(PropertyVelocity, 1e-12, "pm/s")},
	{UnitNanometerPerSecond, mul(PropertyVelocity, 1e-9, "nm/s")},
	{UnitMicrometerPerSecond, mul(PropertyVelocity, 1e-6, "μm/s")},
	{UnitMillimeterPerSecond, mul(PropertyVelocity, 1e-3, "mm/s")},
	{UnitCentimeterPerSecond, mul(PropertyVelocity, 1e-2, "cm/s")},
	{UnitDecimeterPerSecond, mul(PropertyVelocity, 1e-1, "dm/s")},
	{UnitMeterPerSecond, mul(PropertyVelocity, 1, "m/s")},
	{UnitDecameterPerSecond, mul(PropertyVelocity, 1e1, "dam/s")},
	{UnitHectometerPerSecond, mul(PropertyVelocity, 1e2, "hm/s")},
	{UnitKilometerPerSecond, mul(PropertyVelocity, 1e3, "km/s")},
	{UnitMegameterPerSecond, mul(PropertyVelocity, 1e6, "Mm/s")},
	{UnitGigameterPerSecond, mul(PropertyVelocity, 1e9, "Gm/s")},
	{UnitTerameterPerSecond, mul(PropertyVelocity, 1e12, "Tm/s")},
}

func dbmToWatts(d float64) float64 {
	return 1e-3 * math.Pow(10, d/10)
}

func wattsToDBm(w float64) float64 {
	return 10 * math.Log10(w*1e3)
}

// Lookup structures derived from unitTable.
var (
	unitCatalog = make(map[Unit]unitSpec, len(unitTable))
	allUnits    = make([]Unit, 0, len(unitTable))
	symbolIndex = make(map[string]Unit, len(unitTable))
)

func init() {
	for _, e := range unitTable {
		unitCatalog[e.unit] = e.spec
		allUnits = append(allUnits, e.unit)
		if e.spec.symbol != "" {
			symbolIndex[e.spec.symbol] = e.unit
		}
	}
}

// AllUnits returns the unit catalog in declaration order.
func AllUnits() []Unit {
	out := make([]Unit, len(allUnits))
	copy(out, allUnits)
	return out
}

// UnitsOf returns the catalog units of the given base property, in
// declaration order.
func UnitsOf(property BaseProperty) []Unit {
	var out []Unit
	for _, u := range allUnits {
		if unitCatalog[u].property == property {
			out = append(out, u)
		}
	}
	return out
}

// ParseUnit returns the catalog member for s, matching either the parse
// token ("uV", "Ohm") or the display symbol ("μV", "Ω").
// Returns ErrUnknownUnit if neither matches.
func ParseUnit(s string) (Unit, error) {
	if u := Unit(s); u.Valid() {
		return u, nil
	}
	if u, ok := symbolIndex[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
