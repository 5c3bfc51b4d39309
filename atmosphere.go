package assist

import "math"

const (
	// G0 is the gravitational acceleration at sea level, in ft/s^2.
	G0 = 32.2
	// GasConstantAir is the specific gas constant of air, in ft·lbf/(slug·°R).
	GasConstantAir = 1716.56
	// gammaAir is the ratio of specific heats of air.
	gammaAir = 1.4

	minAltitude = 0.0
	maxAltitude = 104987.0

	tropopauseAlt  = 36089.0
	stratopauseAlt = 65617.0
)

// AtmProperties gathers the state of the standard atmosphere at one altitude.
type AtmProperties struct {
	Density      float64 // slug/ft^3
	Pressure     float64 // lbf/ft^2
	Temperature  float64 // °R
	SpeedOfSound float64 // ft/s
}

// Atmosphere is the 1962 standard atmosphere in imperial units. The zero value
// is not usable, use NewAtmosphere.
type Atmosphere struct {
	DensitySL     float64 // slug/ft^3
	TemperatureSL float64 // °F
}

// NewAtmosphere returns a standard atmosphere with nominal sea level conditions.
func NewAtmosphere() Atmosphere {
	return Atmosphere{DensitySL: 0.002378, TemperatureSL: 59.0}
}

// NewHotDayAtmosphere returns an atmosphere whose sea level temperature is
// offset from standard, with the density corrected by the ideal gas law. Used
// for hot-and-high field length constraints.
func NewHotDayAtmosphere(temperatureF float64) Atmosphere {
	std := NewAtmosphere()
	ratio := std.TemperatureSLRankine() / (temperatureF + 459.67)
	return Atmosphere{DensitySL: std.DensitySL * ratio, TemperatureSL: temperatureF}
}

// TemperatureSLRankine returns the sea level temperature in °R.
func (atm Atmosphere) TemperatureSLRankine() float64 {
	return atm.TemperatureSL + 459.67
}

// Properties returns the atmospheric state at the provided altitude (in ft).
// Altitudes outside of [0, 104987] ft return an OutOfRangeError: this model
// does not extrapolate.
func (atm Atmosphere) Properties(altitude float64) (AtmProperties, error) {
	if altitude < minAltitude || altitude > maxAltitude {
		return AtmProperties{}, OutOfRangeError{altitude}
	}
	tSL := atm.TemperatureSLRankine()
	var density, temperature float64
	switch {
	case altitude < tropopauseAlt:
		temperature = tSL * (1 - altitude/145442)
		density = atm.DensitySL * math.Pow(1-altitude/145442, 4.255876)
	case altitude < stratopauseAlt:
		temperature = tSL * 0.751865
		density = atm.DensitySL * 0.297076 * math.Exp((tropopauseAlt-altitude)/20806)
	default:
		temperature = tSL * (0.682457 + altitude/945374)
		density = atm.DensitySL * math.Pow(0.978261+altitude/659515, -35.16319)
	}
	return AtmProperties{
		Density:      density,
		Pressure:     density * GasConstantAir * temperature,
		Temperature:  temperature,
		SpeedOfSound: math.Sqrt(gammaAir * GasConstantAir * temperature),
	}, nil
}

// Density returns the density (slug/ft^3) at the provided altitude.
func (atm Atmosphere) Density(altitude float64) (float64, error) {
	props, err := atm.Properties(altitude)
	return props.Density, err
}

// Temperature returns the temperature (°R) at the provided altitude.
func (atm Atmosphere) Temperature(altitude float64) (float64, error) {
	props, err := atm.Properties(altitude)
	return props.Temperature, err
}

// SpeedOfSound returns the speed of sound (ft/s) at the provided altitude.
func (atm Atmosphere) SpeedOfSound(altitude float64) (float64, error) {
	props, err := atm.Properties(altitude)
	return props.SpeedOfSound, err
}
