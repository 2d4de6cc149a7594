// Package wx derives human-oriented quantities from decoded reports: unit
// conversions, humidity, wind chill, heat index and flight category.
package wx

import "github.com/couchcryptid/metar-etl/internal/metar"

const (
	kphPerKnot    = 1.852
	kphPerMps     = 3.6
	metersPerMile = 1609.344
)

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func KnotsToKph(kt float64) float64 { return kt * kphPerKnot }
func MpsToKph(mps float64) float64  { return mps * kphPerMps }

func StatuteMilesToMeters(sm float64) float64 { return sm * metersPerMile }
func MetersToStatuteMiles(m float64) float64  { return m / metersPerMile }

// SpeedToKph converts a wind speed reported in unit to km/h.
func SpeedToKph(speed float64, unit metar.SpeedUnit) float64 {
	switch unit {
	case metar.Knots:
		return KnotsToKph(speed)
	case metar.MetersPerSecond:
		return MpsToKph(speed)
	default:
		return speed
	}
}

// Temperature returns the air temperature in Celsius, preferring the
// tenths-of-a-degree remarks group over the whole-degree body group.
func Temperature(r *metar.Report) (float64, bool) {
	switch {
	case r.HasTemperaturePrecise():
		return r.TemperaturePrecise(), true
	case r.HasTemperature():
		return float64(r.Temperature()), true
	default:
		return 0, false
	}
}

// DewPoint is Temperature for the dew point.
func DewPoint(r *metar.Report) (float64, bool) {
	switch {
	case r.HasDewPointPrecise():
		return r.DewPointPrecise(), true
	case r.HasDewPoint():
		return float64(r.DewPoint()), true
	default:
		return 0, false
	}
}

// WindKph returns the sustained wind speed in km/h.
func WindKph(r *metar.Report) (float64, bool) {
	if !r.HasWindSpeed() {
		return 0, false
	}
	return SpeedToKph(float64(r.WindSpeed()), r.WindSpeedUnit()), true
}

// VisibilityMiles returns the prevailing visibility in statute miles. CAVOK
// counts as ten miles.
func VisibilityMiles(r *metar.Report) (float64, bool) {
	switch {
	case r.IsCAVOK():
		return 10, true
	case !r.HasVisibility():
		return 0, false
	case r.VisibilityUnit() == metar.Meters:
		return MetersToStatuteMiles(r.Visibility()), true
	default:
		return r.Visibility(), true
	}
}
