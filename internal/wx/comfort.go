package wx

import (
	"math"

	"github.com/couchcryptid/metar-etl/internal/metar"
)

// Magnus coefficients over water.
const (
	magnusB = 17.625
	magnusC = 243.04
)

// Humidity returns relative humidity in percent from temperature and dew
// point in Celsius.
func Humidity(tempC, dewC float64) float64 {
	return 100 * math.Exp(magnusB*dewC/(magnusC+dewC)) / math.Exp(magnusB*tempC/(magnusC+tempC))
}

// WindChill returns the apparent temperature in Celsius for wind in km/h.
// Outside its defined range (above 10 °C or wind at or below 4.8 km/h) it
// returns tempC unchanged.
func WindChill(tempC, windKph float64) float64 {
	if tempC > 10 || windKph <= 4.8 {
		return tempC
	}
	v := math.Pow(windKph, 0.16)
	return 13.12 + 0.6215*tempC - 11.37*v + 0.3965*tempC*v
}

// HeatIndex applies the Rothfusz regression. temp is in Celsius when
// celsius is set, Fahrenheit otherwise, and the result uses the same unit.
// Below 80 °F it returns temp unchanged.
func HeatIndex(temp, humidity float64, celsius bool) float64 {
	t := temp
	if celsius {
		t = CelsiusToFahrenheit(temp)
	}
	if t < 80 {
		return temp
	}

	rh := humidity
	hi := -42.379 +
		2.04901523*t +
		10.14333127*rh -
		0.22475541*t*rh -
		0.00683783*t*t -
		0.05481717*rh*rh +
		0.00122874*t*t*rh +
		0.00085282*t*rh*rh -
		0.00000199*t*t*rh*rh

	if celsius {
		return FahrenheitToCelsius(hi)
	}
	return hi
}

// FeelsLike returns the apparent temperature in Celsius: wind chill when it
// applies, otherwise the heat index when the dew point is known. ok is false
// when the report has no temperature.
func FeelsLike(r *metar.Report) (feels float64, ok bool) {
	temp, ok := Temperature(r)
	if !ok {
		return 0, false
	}

	feels = temp
	if kph, ok := WindKph(r); ok {
		feels = WindChill(temp, kph)
	}
	if dew, ok := DewPoint(r); ok && feels == temp {
		feels = HeatIndex(temp, Humidity(temp, dew), true)
	}
	return feels, true
}
