package units

// zeroCelsiusKelvin is the offset shared by the Celsius unit spec and
// the ZeroCelsius constant.
const zeroCelsiusKelvin = 273.15

// Physical constants expressed as values in catalog units.
var (
	// SpeedOfLight is the speed of light in vacuum.
	SpeedOfLight = Value{Magnitude: 299792458, Unit: UnitMeterPerSecond}
	// ZeroCelsius is the temperature of zero Celsius expressed in Kelvin.
	ZeroCelsius = Value{Magnitude: zeroCelsiusKelvin, Unit: UnitKelvin}
)

// Constant is a named physical constant.
type Constant struct {
	Name  string
	Value Value
}

// Constants lists the constant catalog in declaration order.
func Constants() []Constant {
	return []Constant{
		{Name: "speed_of_light", Value: SpeedOfLight},
		{Name: "zero_celsius", Value: ZeroCelsius},
	}
}
