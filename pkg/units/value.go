package units

import "fmt"

// Value pairs a magnitude with the unit it is expressed in.
type Value struct {
	Magnitude float64
	Unit      Unit
}

// NewValue returns a Value of the given magnitude and unit.
func NewValue(magnitude float64, unit Unit) Value {
	return Value{Magnitude: magnitude, Unit: unit}
}

// ConvertTo re-expresses the value in another unit via ConvertToUnit.
func (v Value) ConvertTo(unit Unit) (Value, error) {
	magnitude, err := ConvertToUnit(v.Magnitude, v.Unit, unit)
	if err != nil {
		return Value{}, err
	}
	return Value{Magnitude: magnitude, Unit: unit}, nil
}

// AutoRange picks the best display unit from the candidates under the
// policy and returns the value re-expressed in it.
func (v Value) AutoRange(policy AutoRangePolicy, candidates []Unit, strictProperty bool) (Value, error) {
	unit, err := AutoRange(policy, v.Magnitude, v.Unit, candidates, strictProperty, false)
	if err != nil {
		return Value{}, err
	}
	return v.ConvertTo(unit)
}

// String renders the magnitude followed by the unit's display symbol.
// Dimensionless values render the magnitude alone.
func (v Value) String() string {
	symbol := v.Unit.Symbol()
	if symbol == "" {
		return fmt.Sprintf("%g", v.Magnitude)
	}
	return fmt.Sprintf("%g %s", v.Magnitude, symbol)
}
