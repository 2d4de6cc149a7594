package wx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/metar-etl/internal/metar"
)

const tol = 0.05

func TestConversions(t *testing.T) {
	assert.InDelta(t, 32.0, CelsiusToFahrenheit(0), tol)
	assert.InDelta(t, 212.0, CelsiusToFahrenheit(100), tol)
	assert.InDelta(t, -40.0, CelsiusToFahrenheit(-40), tol)
	assert.InDelta(t, 0.0, FahrenheitToCelsius(32), tol)
	assert.InDelta(t, 37.0, FahrenheitToCelsius(98.6), tol)
	assert.InDelta(t, 18.52, KnotsToKph(10), tol)
	assert.InDelta(t, 43.2, MpsToKph(12), tol)
	assert.InDelta(t, 1609.344, StatuteMilesToMeters(1), tol)
	assert.InDelta(t, 1.0, MetersToStatuteMiles(1609.344), tol)
}

func TestSpeedToKph(t *testing.T) {
	assert.InDelta(t, 18.52, SpeedToKph(10, metar.Knots), tol)
	assert.InDelta(t, 36.0, SpeedToKph(10, metar.MetersPerSecond), tol)
	assert.InDelta(t, 10.0, SpeedToKph(10, metar.KilometersPerHour), tol)
}

func TestTemperature_PrefersPrecise(t *testing.T) {
	temp, ok := Temperature(metar.Decode("KSTL 16/M01 RMK T01561006"))
	require.True(t, ok)
	assert.InDelta(t, 15.6, temp, 1e-9)

	dew, ok := DewPoint(metar.Decode("KSTL 16/M01 RMK T01561006"))
	require.True(t, ok)
	assert.InDelta(t, -0.6, dew, 1e-9)

	temp, ok = Temperature(metar.Decode("KSTL 16/M01"))
	require.True(t, ok)
	assert.InDelta(t, 16.0, temp, 1e-9)

	_, ok = Temperature(metar.Decode("KSTL"))
	assert.False(t, ok)
	_, ok = DewPoint(metar.Decode("KSTL 15/"))
	assert.False(t, ok)
}

func TestHumidity(t *testing.T) {
	assert.InDelta(t, 100.0, Humidity(20, 20), 1e-9)
	assert.InDelta(t, 81.5, Humidity(9, 6), 0.5)
	assert.InDelta(t, 29.6, Humidity(25, 6), 0.5)
}

func TestWindChill(t *testing.T) {
	t.Run("cold and windy", func(t *testing.T) {
		assert.InDelta(t, -24.2, WindChill(-15, 20), 0.2)
	})

	t.Run("too warm", func(t *testing.T) {
		assert.Equal(t, 12.0, WindChill(12, 40))
	})

	t.Run("calm", func(t *testing.T) {
		assert.Equal(t, -5.0, WindChill(-5, 4.8))
	})
}

func TestHeatIndex(t *testing.T) {
	t.Run("fahrenheit", func(t *testing.T) {
		assert.InDelta(t, 94.6, HeatIndex(90, 50, false), 0.5)
	})

	t.Run("celsius", func(t *testing.T) {
		assert.InDelta(t, FahrenheitToCelsius(94.6), HeatIndex(FahrenheitToCelsius(90), 50, true), 0.3)
	})

	t.Run("below threshold", func(t *testing.T) {
		assert.Equal(t, 20.0, HeatIndex(20, 90, true))
		assert.Equal(t, 79.0, HeatIndex(79, 90, false))
	})
}

func TestFeelsLike(t *testing.T) {
	t.Run("wind chill", func(t *testing.T) {
		r := metar.Decode("KHLN 041610Z 28020KT M10/M12")
		feels, ok := FeelsLike(r)
		require.True(t, ok)
		assert.Equal(t, WindChill(-10, KnotsToKph(20)), feels)
		assert.Less(t, feels, -10.0)
	})

	t.Run("heat index", func(t *testing.T) {
		r := metar.Decode("KSTL 201851Z 18005KT 34/24")
		feels, ok := FeelsLike(r)
		require.True(t, ok)
		assert.Greater(t, feels, 34.0)
	})

	t.Run("mild", func(t *testing.T) {
		feels, ok := FeelsLike(metar.Decode("KSTL 231751Z 27009KT 15/06"))
		require.True(t, ok)
		assert.Equal(t, 15.0, feels)
	})

	t.Run("no temperature", func(t *testing.T) {
		_, ok := FeelsLike(metar.Decode("KSTL 27009KT"))
		assert.False(t, ok)
	})
}

func TestCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want FlightCategory
	}{
		{"KSTL 10SM FEW120 BKN250", CategoryVFR},
		{"EGLL CAVOK", CategoryVFR},
		{"KSTL 10SM OVC015", CategoryMVFR},
		{"KSTL 5SM FEW250", CategoryMVFR},
		{"KSTL 2SM OVC050", CategoryIFR},
		{"KSTL 10SM BKN009", CategoryIFR},
		{"KSTL 1/2SM OVC050", CategoryLIFR},
		{"KHLN 3SM VV003", CategoryLIFR},
		{"LBBG 4000 BKN022", CategoryIFR},
		{"LBBG 1400 BKN022", CategoryLIFR},
		{"KSTL FEW004 SCT008", CategoryUnknown},
		{"KSTL", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(metar.Decode(tt.raw)))
		})
	}
}

func TestCeiling(t *testing.T) {
	c, ok := Ceiling(metar.Decode("KSTL FEW005 BKN030 OVC020"))
	require.True(t, ok)
	assert.Equal(t, 2000, c)

	c, ok = Ceiling(metar.Decode("KSTL BKN030 VV010"))
	require.True(t, ok)
	assert.Equal(t, 1000, c)

	_, ok = Ceiling(metar.Decode("KSTL SCT030"))
	assert.False(t, ok)
}
