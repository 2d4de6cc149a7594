package metar

// Summary is a flat, serializable view of a Report. Absent fields are nil
// or empty and are omitted from JSON.
type Summary struct {
	MessageType *MessageType `json:"message_type,omitempty"`
	Station     string       `json:"station,omitempty"`

	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`

	Wind       *WindSummary       `json:"wind,omitempty"`
	Visibility *VisibilitySummary `json:"visibility,omitempty"`
	CAVOK      bool               `json:"cavok,omitempty"`

	CloudLayers          []LayerSummary `json:"cloud_layers,omitempty"`
	VerticalVisibilityFt *int           `json:"vertical_visibility_ft,omitempty"`

	TemperatureC        *int     `json:"temperature_c,omitempty"`
	DewPointC           *int     `json:"dew_point_c,omitempty"`
	TemperaturePreciseC *float64 `json:"temperature_precise_c,omitempty"`
	DewPointPreciseC    *float64 `json:"dew_point_precise_c,omitempty"`

	AltimeterInHg       *float64 `json:"altimeter_inhg,omitempty"`
	AltimeterHPa        *int     `json:"altimeter_hpa,omitempty"`
	SeaLevelPressureHPa *float64 `json:"sea_level_pressure_hpa,omitempty"`

	Phenomena []Phenomenon `json:"phenomena,omitempty"`
}

// WindSummary is the decoded wind group plus any direction variation.
type WindSummary struct {
	Direction    *int      `json:"direction,omitempty"`
	Variable     bool      `json:"variable,omitempty"`
	Speed        int       `json:"speed"`
	Gust         *int      `json:"gust,omitempty"`
	Unit         SpeedUnit `json:"unit"`
	MinDirection *int      `json:"min_direction,omitempty"`
	MaxDirection *int      `json:"max_direction,omitempty"`
}

type VisibilitySummary struct {
	Value    float64      `json:"value"`
	Unit     DistanceUnit `json:"unit"`
	LessThan bool         `json:"less_than,omitempty"`
}

type LayerSummary struct {
	Cover      Cover      `json:"cover"`
	AltitudeFt *int       `json:"altitude_ft,omitempty"`
	CloudType  *CloudType `json:"cloud_type,omitempty"`
}

func ptr[T any](o optional[T]) *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Summary flattens the report for serialization.
func (r *Report) Summary() Summary {
	s := Summary{
		MessageType:          ptr(r.messageType),
		Station:              r.icao.value,
		Day:                  ptr(r.day),
		Hour:                 ptr(r.hour),
		Minute:               ptr(r.minute),
		CAVOK:                r.cavok,
		VerticalVisibilityFt: ptr(r.verticalVisibility),
		TemperatureC:         ptr(r.temperature),
		DewPointC:            ptr(r.dewPoint),
		TemperaturePreciseC:  ptr(r.temperaturePrecise),
		DewPointPreciseC:     ptr(r.dewPointPrecise),
		AltimeterInHg:        ptr(r.altimeterInHg),
		AltimeterHPa:         ptr(r.altimeterHPa),
		SeaLevelPressureHPa:  ptr(r.seaLevelPressure),
		Phenomena:            r.Phenomena(),
	}

	if r.windSpeed.ok {
		s.Wind = &WindSummary{
			Direction:    ptr(r.windDirection),
			Variable:     r.variableWind,
			Speed:        r.windSpeed.value,
			Gust:         ptr(r.windGust),
			Unit:         r.windSpeedUnit,
			MinDirection: ptr(r.minWindDirection),
			MaxDirection: ptr(r.maxWindDirection),
		}
	}

	if r.visibility.ok {
		s.Visibility = &VisibilitySummary{
			Value:    r.visibility.value,
			Unit:     r.visibilityUnit,
			LessThan: r.visibilityLessThan,
		}
	}

	for _, l := range r.layers {
		s.CloudLayers = append(s.CloudLayers, LayerSummary{
			Cover:      l.cover,
			AltitudeFt: ptr(l.altitude),
			CloudType:  ptr(l.cloudType),
		})
	}

	return s
}
