package units

import (
	"errors"
	"math"
	"testing"
)

func TestCanConvertReflexive(t *testing.T) {
	for _, p := range AllProperties() {
		ok, err := CanConvert(p, p)
		if err != nil {
			t.Fatalf("CanConvert(%s, %s) error = %v", p, p, err)
		}
		if !ok {
			t.Errorf("CanConvert(%s, %s) = false, want true", p, p)
		}
	}
}

func TestCanConvertSymmetric(t *testing.T) {
	for _, p1 := range AllProperties() {
		for _, p2 := range AllProperties() {
			ok12, err := CanConvert(p1, p2)
			if err != nil {
				t.Fatalf("CanConvert(%s, %s) error = %v", p1, p2, err)
			}
			ok21, err := CanConvert(p2, p1)
			if err != nil {
				t.Fatalf("CanConvert(%s, %s) error = %v", p2, p1, err)
			}
			if ok12 != ok21 {
				t.Errorf("CanConvert(%s, %s) = %v but CanConvert(%s, %s) = %v", p1, p2, ok12, p2, p1, ok21)
			}
		}
	}
}

func TestCanConvertDeclaredPairs(t *testing.T) {
	tests := []struct {
		p1, p2 BaseProperty
		want   bool
	}{
		{PropertyTime, PropertyFrequency, true},
		{PropertyFrequency, PropertyTime, true},
		{PropertyVoltage, PropertyCurrent, false},
		{PropertyVoltage, PropertyInductance, false},
		{PropertyNone, PropertyVoltage, false},
		{PropertyTemperature, PropertyEnergy, false},
	}
	for _, tt := range tests {
		got, err := CanConvert(tt.p1, tt.p2)
		if err != nil {
			t.Fatalf("CanConvert(%s, %s) error = %v", tt.p1, tt.p2, err)
		}
		if got != tt.want {
			t.Errorf("CanConvert(%s, %s) = %v, want %v", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestCanConvertUnknownProperty(t *testing.T) {
	if _, err := CanConvert("", PropertyTime); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("CanConvert(\"\", time) error = %v, want ErrUnknownProperty", err)
	}
	if _, err := CanConvert(PropertyTime, "bogus"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CanConvert(time, bogus) error = %v, want ErrInvalidArgument", err)
	}
}

func TestConvertPropertyIdentity(t *testing.T) {
	for _, p := range AllProperties() {
		got, err := ConvertProperty(42.5, p, p)
		if err != nil {
			t.Fatalf("ConvertProperty(42.5, %s, %s) error = %v", p, p, err)
		}
		if got != 42.5 {
			t.Errorf("ConvertProperty(42.5, %s, %s) = %g, want 42.5", p, p, got)
		}
	}
}

func TestConvertPropertyReciprocal(t *testing.T) {
	tests := []struct {
		magnitude float64
		from, to  BaseProperty
		want      float64
	}{
		{2, PropertyTime, PropertyFrequency, 0.5},
		{0.5, PropertyFrequency, PropertyTime, 2},
		{4, PropertyFrequency, PropertyTime, 0.25},
		{-2, PropertyTime, PropertyFrequency, -0.5},
	}
	for _, tt := range tests {
		got, err := ConvertProperty(tt.magnitude, tt.from, tt.to)
		if err != nil {
			t.Fatalf("ConvertProperty(%g, %s, %s) error = %v", tt.magnitude, tt.from, tt.to, err)
		}
		if got != tt.want {
			t.Errorf("ConvertProperty(%g, %s, %s) = %g, want %g", tt.magnitude, tt.from, tt.to, got, tt.want)
		}
	}
}

// A zero magnitude divides to +Inf and is returned as a value, never
// converted into an error.
func TestConvertPropertyZeroYieldsInfinity(t *testing.T) {
	got, err := ConvertProperty(0, PropertyTime, PropertyFrequency)
	if err != nil {
		t.Fatalf("ConvertProperty(0, time, frequency) error = %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("ConvertProperty(0, time, frequency) = %g, want +Inf", got)
	}
}

func TestConvertPropertyIncompatible(t *testing.T) {
	_, err := ConvertProperty(1, PropertyVoltage, PropertyCurrent)
	if !errors.Is(err, ErrIncompatibleProperties) {
		t.Errorf("ConvertProperty(voltage, current) error = %v, want ErrIncompatibleProperties", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("incompatible-property error should wrap ErrInvalidArgument, got %v", err)
	}
	if errors.Is(err, ErrCatalogInconsistent) {
		t.Errorf("incompatible-property error must not be a catalog inconsistency")
	}
}

func TestPropertySIUnits(t *testing.T) {
	tests := []struct {
		property BaseProperty
		want     Unit
	}{
		{PropertyNone, UnitNone},
		{PropertyVoltage, UnitVolt},
		{PropertyCurrent, UnitAmpere},
		{PropertyResistance, UnitOhm},
		{PropertyPower, UnitWatt},
		{PropertyTime, UnitSecond},
		{PropertyFrequency, UnitHertz},
		{PropertyCapacitance, UnitFarad},
		{PropertyInductance, UnitHenry},
		{PropertyTemperature, UnitKelvin},
		{PropertyEnergy, UnitJoule},
		{PropertyDistance, UnitMeter},
		{PropertyVelocity, UnitMeterPerSecond},
	}
	for _, tt := range tests {
		if got := tt.property.SIUnit(); got != tt.want {
			t.Errorf("%s.SIUnit() = %q, want %q", tt.property, got, tt.want)
		}
		if !tt.want.IsSIUnit() {
			t.Errorf("%q.IsSIUnit() = false, want true", tt.want)
		}
	}
}

func TestPropertySymbolDelegatesToAnchor(t *testing.T) {
	if got := PropertyResistance.Symbol(); got != "Ω" {
		t.Errorf("resistance.Symbol() = %q, want %q", got, "Ω")
	}
	if got := PropertyFrequency.Symbol(); got != "Hz" {
		t.Errorf("frequency.Symbol() = %q, want %q", got, "Hz")
	}
}

func TestConvertibleProperties(t *testing.T) {
	got := PropertyTime.ConvertibleProperties()
	if len(got) != 1 || got[0] != PropertyFrequency {
		t.Errorf("time.ConvertibleProperties() = %v, want [frequency]", got)
	}
	if got := PropertyVoltage.ConvertibleProperties(); len(got) != 0 {
		t.Errorf("voltage.ConvertibleProperties() = %v, want none", got)
	}
}

func TestParseProperty(t *testing.T) {
	p, err := ParseProperty("voltage")
	if err != nil {
		t.Fatalf("ParseProperty(voltage) error = %v", err)
	}
	if p != PropertyVoltage {
		t.Errorf("ParseProperty(voltage) = %q, want %q", p, PropertyVoltage)
	}
	if _, err := ParseProperty("charge"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("ParseProperty(charge) error = %v, want ErrUnknownProperty", err)
	}
}
