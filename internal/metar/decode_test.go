package metar

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKSTL  = "KSTL 231751Z 27009KT 10SM OVC015 09/06 A3029 RMK AO2 SLP260 T00940061 10100 20078 53002"
	floatTol  = 1e-9
	stationID = "KSTL"
)

func TestDecode_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		r := Decode(raw)

		assert.False(t, r.HasMessageType())
		assert.False(t, r.HasICAO())
		assert.False(t, r.HasObservationTime())
		assert.False(t, r.HasWindDirection())
		assert.False(t, r.IsVariableWindDirection())
		assert.False(t, r.HasWindSpeed())
		assert.False(t, r.HasWindGust())
		assert.False(t, r.HasMinWindDirection())
		assert.False(t, r.HasMaxWindDirection())
		assert.False(t, r.HasVisibility())
		assert.False(t, r.IsCAVOK())
		assert.False(t, r.HasVerticalVisibility())
		assert.False(t, r.HasTemperature())
		assert.False(t, r.HasDewPoint())
		assert.False(t, r.HasTemperaturePrecise())
		assert.False(t, r.HasDewPointPrecise())
		assert.False(t, r.HasAltimeterInHg())
		assert.False(t, r.HasAltimeterHPa())
		assert.False(t, r.HasSeaLevelPressure())
		assert.Zero(t, r.NumCloudLayers())
		assert.Zero(t, r.NumPhenomena())
		assert.Empty(t, r.Unrecognized())
	}
}

func TestDecode_ObservationTime(t *testing.T) {
	for _, tc := range []struct{ day, hour, minute int }{
		{1, 0, 0}, {4, 16, 0}, {23, 17, 51}, {31, 23, 59}, {9, 9, 5},
	} {
		group := fmt.Sprintf("%02d%02d%02dZ", tc.day, tc.hour, tc.minute)
		t.Run(group, func(t *testing.T) {
			r := Decode(group)
			require.True(t, r.HasObservationTime())
			assert.Equal(t, tc.day, r.Day())
			assert.Equal(t, tc.hour, r.Hour())
			assert.Equal(t, tc.minute, r.Minute())
		})
	}
}

func TestDecode_Temperature(t *testing.T) {
	cases := []struct {
		group   string
		temp    int
		dew     int
		wantDew bool
	}{
		{"08/06", 8, 6, true},
		{"07/M06", 7, -6, true},
		{"M14/M15", -14, -15, true},
		{"15/", 15, 0, false},
		{"M01/", -1, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.group, func(t *testing.T) {
			r := Decode(tc.group)
			require.True(t, r.HasTemperature())
			assert.Equal(t, tc.temp, r.Temperature())
			assert.Equal(t, tc.wantDew, r.HasDewPoint())
			if tc.wantDew {
				assert.Equal(t, tc.dew, r.DewPoint())
			}
		})
	}
}

func TestDecode_PreciseTemperature(t *testing.T) {
	cases := []struct {
		group     string
		temp, dew float64
	}{
		{"T00830067", 8.3, 6.7},
		{"T10171018", -1.7, -1.8},
		{"T01561006", 15.6, -0.6},
		{"T11001117", -10.0, -11.7},
	}

	for _, tc := range cases {
		t.Run(tc.group, func(t *testing.T) {
			r := Decode(tc.group)
			require.True(t, r.HasTemperaturePrecise())
			require.True(t, r.HasDewPointPrecise())
			assert.InDelta(t, tc.temp, r.TemperaturePrecise(), floatTol)
			assert.InDelta(t, tc.dew, r.DewPointPrecise(), floatTol)
		})
	}
}

func TestDecode_Wind(t *testing.T) {
	cases := []struct {
		group    string
		dir      int
		hasDir   bool
		variable bool
		speed    int
		gust     int
		hasGust  bool
		unit     SpeedUnit
	}{
		{group: "25005KT", dir: 250, hasDir: true, speed: 5, unit: Knots},
		{group: "250105KT", dir: 250, hasDir: true, speed: 105, unit: Knots},
		{group: "25005G10KT", dir: 250, hasDir: true, speed: 5, gust: 10, hasGust: true, unit: Knots},
		{group: "250105G121KT", dir: 250, hasDir: true, speed: 105, gust: 121, hasGust: true, unit: Knots},
		{group: "VRB105G121KT", variable: true, speed: 105, gust: 121, hasGust: true, unit: Knots},
		{group: "VRB04KT", variable: true, speed: 4, unit: Knots},
		{group: "12012MPS", dir: 120, hasDir: true, speed: 12, unit: MetersPerSecond},
		{group: "VRB03MPS", variable: true, speed: 3, unit: MetersPerSecond},
		{group: "250105G121MPS", dir: 250, hasDir: true, speed: 105, gust: 121, hasGust: true, unit: MetersPerSecond},
		{group: "25005KPH", dir: 250, hasDir: true, speed: 5, unit: KilometersPerHour},
		{group: "VRB05G10KPH", variable: true, speed: 5, gust: 10, hasGust: true, unit: KilometersPerHour},
	}

	for _, tc := range cases {
		t.Run(tc.group, func(t *testing.T) {
			r := Decode(tc.group)
			require.True(t, r.HasWindSpeed())
			assert.Equal(t, tc.hasDir, r.HasWindDirection())
			if tc.hasDir {
				assert.Equal(t, tc.dir, r.WindDirection())
			}
			assert.Equal(t, tc.variable, r.IsVariableWindDirection())
			assert.Equal(t, tc.speed, r.WindSpeed())
			assert.Equal(t, tc.hasGust, r.HasWindGust())
			if tc.hasGust {
				assert.Equal(t, tc.gust, r.WindGust())
			}
			assert.Equal(t, tc.unit, r.WindSpeedUnit())
		})
	}
}

func TestDecode_WindVariation(t *testing.T) {
	r := Decode("090V150")
	require.True(t, r.HasMinWindDirection())
	require.True(t, r.HasMaxWindDirection())
	assert.Equal(t, 90, r.MinWindDirection())
	assert.Equal(t, 150, r.MaxWindDirection())
}

func TestDecode_Visibility(t *testing.T) {
	cases := []struct {
		raw      string
		value    float64
		unit     DistanceUnit
		lessThan bool
	}{
		{"1400", 1400, Meters, false},
		{"9999", 9999, Meters, false},
		{"10SM", 10, StatuteMiles, false},
		{"1/4SM", 0.25, StatuteMiles, false},
		{"1/2SM", 0.5, StatuteMiles, false},
		{"5/16SM", 5.0 / 16.0, StatuteMiles, false},
		{"M1/4SM", 0.25, StatuteMiles, true},
		{"2 1/2SM", 2.5, StatuteMiles, false},
		{"KSTL 1 3/4SM", 1.75, StatuteMiles, false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			r := Decode(tc.raw)
			require.True(t, r.HasVisibility())
			assert.InDelta(t, tc.value, r.Visibility(), floatTol)
			assert.Equal(t, tc.unit, r.VisibilityUnit())
			assert.Equal(t, tc.lessThan, r.VisibilityLessThan())
			assert.False(t, r.IsCAVOK())
		})
	}
}

func TestDecode_VisibilityCAVOK(t *testing.T) {
	r := Decode("CAVOK 9999")
	assert.True(t, r.IsCAVOK())
	assert.False(t, r.HasVisibility(), "CAVOK suppresses later visibility groups")
}

func TestDecode_VisibilityZeroDenominatorLeftAbsent(t *testing.T) {
	r := Decode("1/0SM")
	assert.False(t, r.HasVisibility())
}

func TestDecode_VisibilityFirstGroupWins(t *testing.T) {
	r := Decode("10SM 1/2SM")
	require.True(t, r.HasVisibility())
	assert.InDelta(t, 10.0, r.Visibility(), floatTol)
}

func TestDecode_VerticalVisibility(t *testing.T) {
	r := Decode("VV007")
	require.True(t, r.HasVerticalVisibility())
	assert.Equal(t, 700, r.VerticalVisibility())
}

func TestDecode_CloudLayers(t *testing.T) {
	t.Run("bare cover codes", func(t *testing.T) {
		for i, code := range coverNames {
			r := Decode(code)
			require.Equal(t, 1, r.NumCloudLayers(), code)
			layer, ok := r.Layer(0)
			require.True(t, ok)
			assert.Equal(t, Cover(i), layer.Cover())
			assert.False(t, layer.HasAltitude())
			assert.False(t, layer.HasCloudType())
			assert.False(t, layer.Temporary())
		}
	})

	t.Run("with altitude and type", func(t *testing.T) {
		r := Decode("FEW004TCU SCT080CB OVC120ACC")
		require.Equal(t, 3, r.NumCloudLayers())

		want := []struct {
			cover Cover
			alt   int
			typ   CloudType
		}{
			{CoverFEW, 400, CloudTCU},
			{CoverSCT, 8000, CloudCB},
			{CoverOVC, 12000, CloudACC},
		}
		for i, w := range want {
			layer, ok := r.Layer(i)
			require.True(t, ok)
			assert.Equal(t, w.cover, layer.Cover())
			require.True(t, layer.HasAltitude())
			assert.Equal(t, w.alt, layer.Altitude())
			require.True(t, layer.HasCloudType())
			assert.Equal(t, w.typ, layer.CloudType())
		}
	})

	t.Run("unknown type suffix", func(t *testing.T) {
		r := Decode("BKN030XYZ")
		layer, ok := r.Layer(0)
		require.True(t, ok)
		assert.Equal(t, 3000, layer.Altitude())
		assert.False(t, layer.HasCloudType())
	})

	t.Run("capped at three", func(t *testing.T) {
		r := Decode("FEW004 SCT080 BKN100 OVC120")
		require.Equal(t, MaxCloudLayers, r.NumCloudLayers())
		layer, _ := r.Layer(2)
		assert.Equal(t, CoverBKN, layer.Cover())
		assert.Equal(t, []string{"OVC120"}, r.Unrecognized())
	})

	t.Run("out of range", func(t *testing.T) {
		r := Decode("FEW004")
		_, ok := r.Layer(1)
		assert.False(t, ok)
		_, ok = r.Layer(-1)
		assert.False(t, ok)
	})
}

func TestDecode_Altimeter(t *testing.T) {
	t.Run("inches of mercury", func(t *testing.T) {
		r := Decode("A3006")
		require.True(t, r.HasAltimeterInHg())
		assert.InDelta(t, 30.06, r.AltimeterInHg(), floatTol)
		assert.False(t, r.HasAltimeterHPa())
	})

	t.Run("hectopascals", func(t *testing.T) {
		r := Decode("Q1020")
		require.True(t, r.HasAltimeterHPa())
		assert.Equal(t, 1020, r.AltimeterHPa())
		assert.False(t, r.HasAltimeterInHg())
	})

	t.Run("first altimeter wins", func(t *testing.T) {
		r := Decode("Q1013 A2992")
		assert.True(t, r.HasAltimeterHPa())
		assert.False(t, r.HasAltimeterInHg())
	})
}

func TestDecode_SeaLevelPressure(t *testing.T) {
	cases := map[string]float64{
		"SLP177": 1017.7,
		"SLP260": 1026.0,
		"SLP013": 1001.3,
		// Literal formula: 982.0 hPa would need context the group does not carry.
		"SLP820": 1082.0,
	}
	for group, want := range cases {
		r := Decode(group)
		require.True(t, r.HasSeaLevelPressure(), group)
		assert.InDelta(t, want, r.SeaLevelPressure(), floatTol, group)
	}
}

func TestDecode_MessageTypeAndStation(t *testing.T) {
	r := Decode("SPECI KSTL")
	require.True(t, r.HasMessageType())
	assert.Equal(t, MessageSPECI, r.MessageType())
	require.True(t, r.HasICAO())
	assert.Equal(t, stationID, r.ICAO())

	r = Decode("METAR LBBG")
	assert.Equal(t, MessageMETAR, r.MessageType())
	assert.Equal(t, "LBBG", r.ICAO())
}

func TestDecode_Phenomena(t *testing.T) {
	r := Decode("KSTL -RA BR")
	require.Equal(t, 2, r.NumPhenomena())
	assert.Equal(t, Phenomenon{Kind: Rain, Intensity: Light}, r.Phenomenon(0))
	assert.Equal(t, Phenomenon{Kind: Mist}, r.Phenomenon(1))
}

func TestDecode_PhenomenaIgnoredInRemarks(t *testing.T) {
	r := Decode("KSTL 051520Z 12017KT 5SM -TSRA RMK LTG DSNT SE TS SE MOV NE")
	require.Equal(t, 1, r.NumPhenomena())
	assert.Equal(t, Rain, r.Phenomenon(0).Kind)
	assert.True(t, r.Phenomenon(0).Thunderstorm)
}

// Groups that match a shape are decoded positionally even when they are
// nonsense; only a zero fraction denominator is refused.
func TestDecode_MalformedShapeMatchesDecodeSilently(t *testing.T) {
	r := Decode("999ZZKT")
	require.False(t, r.HasWindSpeed(), "non-numeric speed does not match the wind shape")

	r = Decode("99999XYZ")
	require.True(t, r.HasWindSpeed())
	assert.Equal(t, 999, r.WindDirection())
	assert.Equal(t, 99, r.WindSpeed())
	assert.Equal(t, Knots, r.WindSpeedUnit())

	r = Decode("T29990000")
	require.True(t, r.HasTemperaturePrecise())
	assert.InDelta(t, 299.9, r.TemperaturePrecise(), floatTol)
}

func TestDecode_FirstOccurrenceWins(t *testing.T) {
	r := Decode("KSTL KORD 231751Z 27009KT 18005KT 241200Z 10/05 M03/M04")
	assert.Equal(t, stationID, r.ICAO())
	assert.Equal(t, 23, r.Day())
	assert.Equal(t, 270, r.WindDirection())
	assert.Equal(t, 10, r.Temperature())
}

func TestDecode_EndToEnd(t *testing.T) {
	r := Decode(testKSTL)

	assert.False(t, r.HasMessageType())
	assert.Equal(t, stationID, r.ICAO())
	assert.Equal(t, 23, r.Day())
	assert.Equal(t, 17, r.Hour())
	assert.Equal(t, 51, r.Minute())
	assert.Equal(t, 270, r.WindDirection())
	assert.Equal(t, 9, r.WindSpeed())
	assert.False(t, r.HasWindGust())
	assert.Equal(t, Knots, r.WindSpeedUnit())
	assert.False(t, r.HasMinWindDirection())
	assert.InDelta(t, 10.0, r.Visibility(), floatTol)
	assert.Equal(t, StatuteMiles, r.VisibilityUnit())

	require.Equal(t, 1, r.NumCloudLayers())
	layer, _ := r.Layer(0)
	assert.Equal(t, CoverOVC, layer.Cover())
	assert.Equal(t, 1500, layer.Altitude())

	assert.False(t, r.HasVerticalVisibility())
	assert.Equal(t, 9, r.Temperature())
	assert.Equal(t, 6, r.DewPoint())
	assert.InDelta(t, 30.29, r.AltimeterInHg(), floatTol)
	assert.False(t, r.HasAltimeterHPa())
	assert.InDelta(t, 1026.0, r.SeaLevelPressure(), floatTol)
	assert.InDelta(t, 9.4, r.TemperaturePrecise(), floatTol)
	assert.InDelta(t, 6.1, r.DewPointPrecise(), floatTol)
	assert.Zero(t, r.NumPhenomena())
	assert.Equal(t, []string{"AO2", "10100", "20078", "53002"}, r.Unrecognized())
}

func TestDecode_RealReports(t *testing.T) {
	t.Run("LBBG metric", func(t *testing.T) {
		r := Decode("METAR LBBG 041600Z 12012MPS 090V150 1400 R04/P1500N R22/P1500U +SN BKN022 OVC050 M04/M07 Q1020 NOSIG 8849//91=")

		assert.Equal(t, MessageMETAR, r.MessageType())
		assert.Equal(t, "LBBG", r.ICAO())
		assert.Equal(t, 4, r.Day())
		assert.Equal(t, 16, r.Hour())
		assert.Equal(t, 0, r.Minute())
		assert.Equal(t, 120, r.WindDirection())
		assert.Equal(t, 12, r.WindSpeed())
		assert.Equal(t, MetersPerSecond, r.WindSpeedUnit())
		assert.Equal(t, 90, r.MinWindDirection())
		assert.Equal(t, 150, r.MaxWindDirection())
		assert.InDelta(t, 1400.0, r.Visibility(), floatTol)
		assert.Equal(t, Meters, r.VisibilityUnit())

		require.Equal(t, 1, r.NumPhenomena())
		assert.Equal(t, Phenomenon{Kind: Snow, Intensity: Heavy}, r.Phenomenon(0))

		require.Equal(t, 2, r.NumCloudLayers())
		l0, _ := r.Layer(0)
		l1, _ := r.Layer(1)
		assert.Equal(t, CoverBKN, l0.Cover())
		assert.Equal(t, 2200, l0.Altitude())
		assert.Equal(t, CoverOVC, l1.Cover())
		assert.Equal(t, 5000, l1.Altitude())

		assert.Equal(t, -4, r.Temperature())
		assert.Equal(t, -7, r.DewPoint())
		assert.False(t, r.HasAltimeterInHg())
		assert.Equal(t, 1020, r.AltimeterHPa())
		assert.False(t, r.HasSeaLevelPressure())
		assert.False(t, r.HasTemperaturePrecise())
	})

	t.Run("KSTL speci rain and mist", func(t *testing.T) {
		r := Decode("SPECI KSTL 221513Z 07005KT 2SM -RA BR OVC005 02/02 A3041 RMK AO2 P0001 T00220022")

		assert.Equal(t, MessageSPECI, r.MessageType())
		assert.Equal(t, 70, r.WindDirection())
		assert.InDelta(t, 2.0, r.Visibility(), floatTol)
		require.Equal(t, 2, r.NumPhenomena())
		assert.Equal(t, Phenomenon{Kind: Rain, Intensity: Light}, r.Phenomenon(0))
		assert.Equal(t, Phenomenon{Kind: Mist}, r.Phenomenon(1))
		assert.InDelta(t, 30.41, r.AltimeterInHg(), floatTol)
		assert.InDelta(t, 2.2, r.TemperaturePrecise(), floatTol)
		assert.InDelta(t, 2.2, r.DewPointPrecise(), floatTol)
	})

	t.Run("KSTL variable clear", func(t *testing.T) {
		r := Decode("KSTL 262051Z VRB04KT 10SM CLR 16/M01 A3023 RMK AO2 SLP242 T01561006 57015")

		assert.False(t, r.HasWindDirection())
		assert.True(t, r.IsVariableWindDirection())
		assert.Equal(t, 4, r.WindSpeed())
		require.Equal(t, 1, r.NumCloudLayers())
		layer, _ := r.Layer(0)
		assert.Equal(t, CoverCLR, layer.Cover())
		assert.False(t, layer.HasAltitude())
		assert.Equal(t, -1, r.DewPoint())
		assert.InDelta(t, 1024.2, r.SeaLevelPressure(), floatTol)
		assert.InDelta(t, -0.6, r.DewPointPrecise(), floatTol)
	})

	t.Run("KHLN freezing fog", func(t *testing.T) {
		r := Decode("KHLN 041610Z 28009KT 1/2SM SN FZFG VV007 M10/M12 A2998 RMK AO2 P0001 T11001117")

		require.Equal(t, 2, r.NumPhenomena())
		assert.Equal(t, Phenomenon{Kind: Snow}, r.Phenomenon(0))
		assert.Equal(t, Phenomenon{Kind: Fog, Freezing: true}, r.Phenomenon(1))
		assert.InDelta(t, 0.5, r.Visibility(), floatTol)
		assert.Zero(t, r.NumCloudLayers())
		assert.Equal(t, 700, r.VerticalVisibility())
		assert.Equal(t, -10, r.Temperature())
		assert.Equal(t, -12, r.DewPoint())
		assert.InDelta(t, -10.0, r.TemperaturePrecise(), floatTol)
		assert.InDelta(t, -11.7, r.DewPointPrecise(), floatTol)
	})

	t.Run("KSTL thunderstorm with remarks", func(t *testing.T) {
		r := Decode("KSTL 192051Z 20004KT 10SM -RA FEW034 SCT048 OVC110 22/18 A2993 RMK AO2 PK WND 27032/2004 LTG DSNT E AND SE RAB06 TSB03E42 PRESFR SLP129 OCNL LTGIC DSNT E CB DSNT E MOV E P0003 60003 T02220178 58006 $")

		require.Equal(t, 1, r.NumPhenomena())
		assert.Equal(t, Light, r.Phenomenon(0).Intensity)
		require.Equal(t, 3, r.NumCloudLayers())
		l2, _ := r.Layer(2)
		assert.Equal(t, 11000, l2.Altitude())
		assert.InDelta(t, 1012.9, r.SeaLevelPressure(), floatTol)
		assert.InDelta(t, 22.2, r.TemperaturePrecise(), floatTol)
		assert.InDelta(t, 17.8, r.DewPointPrecise(), floatTol)
	})

	t.Run("KSTL cumulonimbus layer", func(t *testing.T) {
		r := Decode("KSTL 261605Z 10006KT 7SM -TSRA FEW050CB OVC090 06/01 A3014 RMK AO2 LTG DSNT S AND SW TSB05 OCNL LTGIC SW-W TS SW-W MOV NE P0001 T00610006")

		require.Equal(t, 1, r.NumPhenomena())
		assert.Equal(t, Phenomenon{Kind: Rain, Intensity: Light, Thunderstorm: true}, r.Phenomenon(0))
		l0, _ := r.Layer(0)
		assert.Equal(t, CloudCB, l0.CloudType())
		assert.Equal(t, 5000, l0.Altitude())
		assert.InDelta(t, 0.6, r.DewPointPrecise(), floatTol)
	})
}

func TestDecode_Idempotent(t *testing.T) {
	first := Decode(testKSTL)
	second := Decode(testKSTL)

	if diff := cmp.Diff(first, second, cmp.AllowUnexported(Report{}, SkyCondition{},
		optional[MessageType]{}, optional[string]{}, optional[int]{}, optional[float64]{}, optional[CloudType]{})); diff != "" {
		t.Fatalf("decode not repeatable (-first +second):\n%s", diff)
	}
}

func TestDecodeGroup_RulePriority(t *testing.T) {
	cases := map[string]string{
		"METAR":     "message_type",
		"KSTL":      "station",
		"231751Z":   "observation_time",
		"27009KT":   "wind",
		"090V150":   "wind_variation",
		"10SM":      "visibility",
		"9999":      "visibility",
		"CAVOK":     "visibility",
		"OVC015":    "cloud_layer",
		"VV007":     "vertical_visibility",
		"09/06":     "temperature",
		"A3029":     "altimeter_inhg",
		"Q1020":     "altimeter_hpa",
		"SLP260":    "sea_level_pressure",
		"T00940061": "precise_temperature",
		"-TSRA":     "weather",
		"AO2":       "",
		"NOSIG":     "",
	}

	for group, want := range cases {
		d := &decoder{report: &Report{}}
		assert.Equal(t, want, d.decodeGroup(group), group)
	}
}

func TestDecodeGroup_SkipsDecodedField(t *testing.T) {
	d := &decoder{report: &Report{}}
	require.Equal(t, "wind", d.decodeGroup("27009KT"))
	assert.Empty(t, d.decodeGroup("10100"), "second wind-shaped group is not reconsidered")

	d = &decoder{report: &Report{}}
	require.Equal(t, "station", d.decodeGroup("KORD"))
	assert.Equal(t, "weather", d.decodeGroup("RASN"), "four letters fall through to weather once the station is known")
}

func TestDecodeGroup_RemarksStopWeather(t *testing.T) {
	d := &decoder{report: &Report{}}
	assert.Equal(t, "weather", d.decodeGroup("BR"))
	assert.Empty(t, d.decodeGroup(remarksMarker))
	assert.Empty(t, d.decodeGroup("BR"))
	assert.Equal(t, "sea_level_pressure", d.decodeGroup("SLP129"))
}

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{
		"":     0,
		"12":   12,
		"05K":  5,
		"-7":   -7,
		"XYZ":  0,
		"007":  7,
		"121K": 121,
	}
	for in, want := range cases {
		assert.Equal(t, want, leadingInt(in), in)
	}
}

func TestLeadingFloat(t *testing.T) {
	assert.InDelta(t, 10.0, leadingFloat("10SM"), floatTol)
	assert.InDelta(t, 2.5, leadingFloat("2.5"), floatTol)
	assert.InDelta(t, 0.0, leadingFloat(""), floatTol)
}
