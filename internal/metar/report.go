package metar

// MaxCloudLayers is the number of cloud layers a report retains.
const MaxCloudLayers = 3

// optional holds a value together with whether it was ever set.
type optional[T any] struct {
	value T
	ok    bool
}

func (o *optional[T]) set(v T) {
	o.value = v
	o.ok = true
}

// SkyCondition is one cloud layer.
type SkyCondition struct {
	cover     Cover
	altitude  optional[int]
	cloudType optional[CloudType]
	temporary bool
}

func (s SkyCondition) Cover() Cover { return s.cover }

// Altitude is the layer base in feet. Only meaningful when HasAltitude.
func (s SkyCondition) Altitude() int     { return s.altitude.value }
func (s SkyCondition) HasAltitude() bool { return s.altitude.ok }

func (s SkyCondition) CloudType() CloudType { return s.cloudType.value }
func (s SkyCondition) HasCloudType() bool   { return s.cloudType.ok }

// Temporary reports whether the layer belongs to a temporary trend group.
// The current grammar never sets it.
func (s SkyCondition) Temporary() bool { return s.temporary }

// Report is a decoded observation. It is built once by Decode and is
// read-only afterwards. Accessors for absent fields return zero values;
// check the matching Has method first.
type Report struct {
	raw string

	messageType optional[MessageType]
	icao        optional[string]

	day    optional[int]
	hour   optional[int]
	minute optional[int]

	windDirection    optional[int]
	variableWind     bool
	windSpeed        optional[int]
	windGust         optional[int]
	windSpeedUnit    SpeedUnit
	minWindDirection optional[int]
	maxWindDirection optional[int]

	visibility         optional[float64]
	visibilityUnit     DistanceUnit
	visibilityLessThan bool
	cavok              bool

	layers             []SkyCondition
	verticalVisibility optional[int]

	temperature        optional[int]
	dewPoint           optional[int]
	temperaturePrecise optional[float64]
	dewPointPrecise    optional[float64]

	altimeterInHg    optional[float64]
	altimeterHPa     optional[int]
	seaLevelPressure optional[float64]

	phenomena    []Phenomenon
	unrecognized []string
}

// Raw returns the report text exactly as passed to Decode.
func (r *Report) Raw() string { return r.raw }

func (r *Report) MessageType() MessageType { return r.messageType.value }
func (r *Report) HasMessageType() bool     { return r.messageType.ok }

func (r *Report) ICAO() string  { return r.icao.value }
func (r *Report) HasICAO() bool { return r.icao.ok }

func (r *Report) Day() int    { return r.day.value }
func (r *Report) Hour() int   { return r.hour.value }
func (r *Report) Minute() int { return r.minute.value }

// HasObservationTime reports whether day, hour and minute were decoded.
func (r *Report) HasObservationTime() bool { return r.minute.ok }

func (r *Report) WindDirection() int     { return r.windDirection.value }
func (r *Report) HasWindDirection() bool { return r.windDirection.ok }

// IsVariableWindDirection reports a VRB wind group. WindDirection is then absent.
func (r *Report) IsVariableWindDirection() bool { return r.variableWind }

func (r *Report) WindSpeed() int           { return r.windSpeed.value }
func (r *Report) HasWindSpeed() bool       { return r.windSpeed.ok }
func (r *Report) WindGust() int            { return r.windGust.value }
func (r *Report) HasWindGust() bool        { return r.windGust.ok }
func (r *Report) WindSpeedUnit() SpeedUnit { return r.windSpeedUnit }

func (r *Report) MinWindDirection() int     { return r.minWindDirection.value }
func (r *Report) HasMinWindDirection() bool { return r.minWindDirection.ok }
func (r *Report) MaxWindDirection() int     { return r.maxWindDirection.value }
func (r *Report) HasMaxWindDirection() bool { return r.maxWindDirection.ok }

func (r *Report) Visibility() float64          { return r.visibility.value }
func (r *Report) HasVisibility() bool          { return r.visibility.ok }
func (r *Report) VisibilityUnit() DistanceUnit { return r.visibilityUnit }

// VisibilityLessThan reports an "M" prefix: visibility is below the value given.
func (r *Report) VisibilityLessThan() bool { return r.visibilityLessThan }

// IsCAVOK reports "ceiling and visibility OK". Visibility is then absent.
func (r *Report) IsCAVOK() bool { return r.cavok }

// VerticalVisibility is in feet.
func (r *Report) VerticalVisibility() int     { return r.verticalVisibility.value }
func (r *Report) HasVerticalVisibility() bool { return r.verticalVisibility.ok }

// Temperature and DewPoint are whole degrees Celsius from the body of the
// report; the Precise variants carry tenths from the remarks T-group.
func (r *Report) Temperature() int            { return r.temperature.value }
func (r *Report) HasTemperature() bool        { return r.temperature.ok }
func (r *Report) DewPoint() int               { return r.dewPoint.value }
func (r *Report) HasDewPoint() bool           { return r.dewPoint.ok }
func (r *Report) TemperaturePrecise() float64 { return r.temperaturePrecise.value }
func (r *Report) HasTemperaturePrecise() bool { return r.temperaturePrecise.ok }
func (r *Report) DewPointPrecise() float64    { return r.dewPointPrecise.value }
func (r *Report) HasDewPointPrecise() bool    { return r.dewPointPrecise.ok }

// A report carries at most one of AltimeterInHg and AltimeterHPa.
func (r *Report) AltimeterInHg() float64 { return r.altimeterInHg.value }
func (r *Report) HasAltimeterInHg() bool { return r.altimeterInHg.ok }
func (r *Report) AltimeterHPa() int      { return r.altimeterHPa.value }
func (r *Report) HasAltimeterHPa() bool  { return r.altimeterHPa.ok }

// SeaLevelPressure is in hectopascals.
func (r *Report) SeaLevelPressure() float64 { return r.seaLevelPressure.value }
func (r *Report) HasSeaLevelPressure() bool { return r.seaLevelPressure.ok }

func (r *Report) NumCloudLayers() int { return len(r.layers) }
func (r *Report) NumPhenomena() int   { return len(r.phenomena) }

// Phenomenon returns the i-th decoded weather occurrence. It panics when i
// is out of range, like a slice index.
func (r *Report) Phenomenon(i int) Phenomenon { return r.phenomena[i] }

// Layer returns the i-th cloud layer in report order. ok is false when i is
// out of range.
func (r *Report) Layer(i int) (layer SkyCondition, ok bool) {
	if i < 0 || i >= len(r.layers) {
		return SkyCondition{}, false
	}
	return r.layers[i], true
}

// CloudLayers returns a copy of the cloud layers in report order.
func (r *Report) CloudLayers() []SkyCondition {
	return append([]SkyCondition(nil), r.layers...)
}

// Phenomena returns a copy of the decoded weather in report order.
func (r *Report) Phenomena() []Phenomenon {
	return append([]Phenomenon(nil), r.phenomena...)
}

// Unrecognized returns the groups that matched no rule, in report order.
func (r *Report) Unrecognized() []string {
	return append([]string(nil), r.unrecognized...)
}
