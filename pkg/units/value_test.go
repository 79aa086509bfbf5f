package units

import (
	"errors"
	"testing"
)

func TestValueConvertTo(t *testing.T) {
	v := NewValue(1.5, UnitVolt)
	got, err := v.ConvertTo(UnitMillivolt)
	if err != nil {
		t.Fatalf("ConvertTo error = %v", err)
	}
	if got.Unit != UnitMillivolt || !approxEqual(got.Magnitude, 1500) {
		t.Errorf("ConvertTo = %v, want 1500 mV", got)
	}

	if _, err := v.ConvertTo(UnitFarad); !errors.Is(err, ErrIncompatibleProperties) {
		t.Errorf("ConvertTo(F) error = %v, want ErrIncompatibleProperties", err)
	}
}

func TestValueAutoRange(t *testing.T) {
	v := NewValue(0.0045, UnitMillivolt)
	got, err := v.AutoRange(PolicyPrefer1To10, UnitsOf(PropertyVoltage), true)
	if err != nil {
		t.Fatalf("AutoRange error = %v", err)
	}
	if got.Unit != UnitMicrovolt || !approxEqual(got.Magnitude, 4.5) {
		t.Errorf("AutoRange = %v, want 4.5 μV", got)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{NewValue(4.5, UnitMicrovolt), "4.5 μV"},
		{NewValue(1000, UnitOhm), "1000 Ω"},
		{NewValue(-3.25, UnitCelsius), "-3.25 C"},
		{NewValue(0.5, UnitNone), "0.5"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestConstants(t *testing.T) {
	if SpeedOfLight.Unit != UnitMeterPerSecond || SpeedOfLight.Magnitude != 299792458 {
		t.Errorf("SpeedOfLight = %v", SpeedOfLight)
	}
	if ZeroCelsius.Unit != UnitKelvin || ZeroCelsius.Magnitude != 273.15 {
		t.Errorf("ZeroCelsius = %v", ZeroCelsius)
	}

	// The Celsius unit and the constant share one offset.
	asCelsius, err := ZeroCelsius.ConvertTo(UnitCelsius)
	if err != nil {
		t.Fatalf("ZeroCelsius.ConvertTo(C) error = %v", err)
	}
	if asCelsius.Magnitude != 0 {
		t.Errorf("ZeroCelsius in Celsius = %g, want 0", asCelsius.Magnitude)
	}

	names := make(map[string]bool)
	for _, c := range Constants() {
		if names[c.Name] {
			t.Errorf("duplicate constant name %q", c.Name)
		}
		names[c.Name] = true
		if !c.Value.Unit.Valid() {
			t.Errorf("constant %q has invalid unit %q", c.Name, c.Value.Unit)
		}
	}
}
