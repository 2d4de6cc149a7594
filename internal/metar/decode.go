package metar

import "strings"

// remarksMarker starts the free-form remarks section.
const remarksMarker = "RMK"

// decoder carries the state of one Decode call.
type decoder struct {
	report  *Report
	prev    string // previous group, for split statute-mile fractions
	remarks bool   // RMK has been seen
}

// rule decodes one field. skip reports that the field is already decoded
// (or, for weather, that the group is in the remarks); shape classifies a
// group; apply decodes it.
type rule struct {
	name  string
	skip  func(d *decoder) bool
	shape func(s string) bool
	apply func(d *decoder, s string)
}

// rules in priority order. The first rule that is not skipped and whose
// shape matches decodes the group.
var rules = []rule{
	{
		name:  "message_type",
		skip:  func(d *decoder) bool { return d.report.messageType.ok },
		shape: isMessageType,
		apply: func(d *decoder, s string) { d.report.messageType.set(parseMessageType(s)) },
	},
	{
		name:  "station",
		skip:  func(d *decoder) bool { return d.report.icao.ok },
		shape: isICAO,
		apply: func(d *decoder, s string) { d.report.icao.set(s) },
	},
	{
		name:  "observation_time",
		skip:  func(d *decoder) bool { return d.report.minute.ok },
		shape: isObservationTime,
		apply: func(d *decoder, s string) { parseObservationTime(d.report, s) },
	},
	{
		name:  "wind",
		skip:  func(d *decoder) bool { return d.report.windSpeed.ok },
		shape: isWind,
		apply: func(d *decoder, s string) { parseWind(d.report, s) },
	},
	{
		name:  "wind_variation",
		skip:  func(d *decoder) bool { return d.report.minWindDirection.ok },
		shape: isWindVariation,
		apply: func(d *decoder, s string) { parseWindVariation(d.report, s) },
	},
	{
		name:  "visibility",
		skip:  func(d *decoder) bool { return d.report.visibility.ok || d.report.cavok },
		shape: isVisibility,
		apply: func(d *decoder, s string) { parseVisibility(d.report, s, d.prev) },
	},
	{
		name:  "cloud_layer",
		skip:  func(d *decoder) bool { return len(d.report.layers) >= MaxCloudLayers },
		shape: isCloudLayer,
		apply: func(d *decoder, s string) { parseCloudLayer(d.report, s) },
	},
	{
		name:  "vertical_visibility",
		skip:  func(d *decoder) bool { return d.report.verticalVisibility.ok },
		shape: isVerticalVisibility,
		apply: func(d *decoder, s string) { d.report.verticalVisibility.set(leadingInt(s[2:]) * 100) },
	},
	{
		name:  "temperature",
		skip:  func(d *decoder) bool { return d.report.temperature.ok },
		shape: isTemperature,
		apply: func(d *decoder, s string) { parseTemperature(d.report, s) },
	},
	{
		name:  "altimeter_inhg",
		skip:  func(d *decoder) bool { return d.report.altimeterInHg.ok || d.report.altimeterHPa.ok },
		shape: isAltimeterInHg,
		apply: func(d *decoder, s string) { d.report.altimeterInHg.set(float64(leadingInt(s[1:])) / 100) },
	},
	{
		name:  "altimeter_hpa",
		skip:  func(d *decoder) bool { return d.report.altimeterInHg.ok || d.report.altimeterHPa.ok },
		shape: isAltimeterHPa,
		apply: func(d *decoder, s string) { d.report.altimeterHPa.set(leadingInt(s[1:])) },
	},
	{
		name:  "sea_level_pressure",
		skip:  func(d *decoder) bool { return d.report.seaLevelPressure.ok },
		shape: isSeaLevelPressure,
		apply: func(d *decoder, s string) { d.report.seaLevelPressure.set(float64(leadingInt(s[3:]))/10 + 1000) },
	},
	{
		name:  "precise_temperature",
		skip:  func(d *decoder) bool { return d.report.temperaturePrecise.ok },
		shape: isPreciseTemperature,
		apply: func(d *decoder, s string) { parsePreciseTemperature(d.report, s) },
	},
	{
		name:  "weather",
		skip:  func(d *decoder) bool { return d.remarks },
		shape: isPhenomena,
		apply: func(d *decoder, s string) { d.report.phenomena = append(d.report.phenomena, DecodePhenomena(s)...) },
	},
}

// Decode decodes a METAR or SPECI report. It never fails: groups that match
// no rule are skipped, and an empty string yields a report with every field
// absent. The result does not share state with other calls.
func Decode(raw string) *Report {
	d := &decoder{report: &Report{raw: raw}}
	for _, group := range strings.Fields(raw) {
		d.decodeGroup(group)
	}
	return d.report
}

// decodeGroup runs one group through the rules and returns the name of the
// rule that decoded it, or "" when none did.
func (d *decoder) decodeGroup(group string) string {
	defer func() { d.prev = group }()

	if group == remarksMarker {
		d.remarks = true
		return ""
	}

	for _, r := range rules {
		if r.skip(d) || !r.shape(group) {
			continue
		}
		r.apply(d, group)
		return r.name
	}

	d.report.unrecognized = append(d.report.unrecognized, group)
	return ""
}

func parseMessageType(s string) MessageType {
	i, _ := lookupExact(messageTypeNames, s)
	return MessageType(i)
}

// parseObservationTime reads DDHHMMZ.
func parseObservationTime(r *Report, s string) {
	r.day.set(leadingInt(s[0:2]))
	r.hour.set(leadingInt(s[2:4]))
	r.minute.set(leadingInt(s[4:]))
}

// parseWind reads dddssKT, dddssGggKT, VRBssKT and their MPS/KPH forms.
// Speed is the three characters after the direction (or VRB); trailing unit
// letters end the number early.
func parseWind(r *Report, s string) {
	switch {
	case strings.Contains(s, "MPS"):
		r.windSpeedUnit = MetersPerSecond
	case strings.Contains(s, "KPH"):
		r.windSpeedUnit = KilometersPerHour
	default:
		r.windSpeedUnit = Knots
	}

	if strings.HasPrefix(s, "VRB") {
		r.variableWind = true
	} else {
		r.windDirection.set(leadingInt(substr(s, 0, 3)))
	}
	r.windSpeed.set(leadingInt(substr(s, 3, 3)))

	if g := strings.IndexByte(s, 'G'); g >= 0 {
		r.windGust.set(leadingInt(substr(s, g+1, 3)))
	}
}

// parseWindVariation reads dddVddd.
func parseWindVariation(r *Report, s string) {
	r.minWindDirection.set(leadingInt(s[0:3]))
	r.maxWindDirection.set(leadingInt(s[4:]))
}

// parseVisibility reads CAVOK, meters, or statute miles. prev is the group
// before s; a single digit there is the whole part of a split fraction
// such as "2 1/2SM".
func parseVisibility(r *Report, s, prev string) {
	if s == "CAVOK" {
		r.cavok = true
		return
	}

	unit := strings.Index(s, "SM")
	if unit < 0 {
		r.visibility.set(leadingFloat(s))
		r.visibilityUnit = Meters
		return
	}

	value := s[:unit]
	lessThan := strings.HasPrefix(value, "M")
	if lessThan {
		value = value[1:]
	}

	var miles float64
	if slash := strings.IndexByte(value, '/'); slash < 0 {
		miles = leadingFloat(value)
	} else {
		denominator := leadingFloat(value[slash+1:])
		if denominator == 0 {
			return
		}
		miles = leadingFloat(value[:slash]) / denominator
		if matchShape("#", prev) {
			miles += float64(prev[0] - '0')
		}
	}

	r.visibility.set(miles)
	r.visibilityUnit = StatuteMiles
	r.visibilityLessThan = lessThan
}

// parseCloudLayer reads CCC, CCChhh or CCChhhTT where hhh is hundreds of feet.
func parseCloudLayer(r *Report, s string) {
	i, ok := lookupPrefix(coverNames, s)
	if !ok {
		return
	}

	layer := SkyCondition{cover: Cover(i)}
	if rest := s[3:]; rest != "" && isDigit(rest[0]) {
		layer.altitude.set(leadingInt(rest) * 100)
	}
	if len(s) > 6 {
		if t, ok := lookupExact(cloudTypeNames, s[6:]); ok {
			layer.cloudType.set(CloudType(t))
		}
	}

	r.layers = append(r.layers, layer)
}

// parseTemperature reads TT/DD where either side may carry an M for minus
// and the dew point may be missing.
func parseTemperature(r *Report, s string) {
	slash := strings.IndexByte(s, '/')
	r.temperature.set(signedCelsius(s[:slash]))
	if dew := s[slash+1:]; dew != "" {
		r.dewPoint.set(signedCelsius(dew))
	}
}

func signedCelsius(s string) int {
	if strings.HasPrefix(s, "M") {
		return -leadingInt(s[1:])
	}
	return leadingInt(s)
}

// parsePreciseTemperature reads TsTTTsDDD: s is 1 for below zero, values
// are tenths of a degree.
func parsePreciseTemperature(r *Report, s string) {
	r.temperaturePrecise.set(signedTenths(s[1:5]))
	r.dewPointPrecise.set(signedTenths(s[5:9]))
}

func signedTenths(s string) float64 {
	if s[0] == '1' {
		return -float64(leadingInt(s[1:])) / 10
	}
	return float64(leadingInt(s)) / 10
}

// substr returns up to n bytes of s starting at start.
func substr(s string, start, n int) string {
	if start >= len(s) {
		return ""
	}
	end := min(start+n, len(s))
	return s[start:end]
}

// leadingInt parses the optional sign and digits at the start of s and
// ignores the rest. It returns 0 when s has no leading digits.
func leadingInt(s string) int {
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// leadingFloat parses leading digits with an optional decimal fraction.
func leadingFloat(s string) float64 {
	whole := leadingInt(s)
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != '.' {
		return float64(whole)
	}

	frac, scale := 0.0, 1.0
	for _, c := range []byte(s[i+1:]) {
		if !isDigit(c) {
			break
		}
		scale /= 10
		frac += float64(c-'0') * scale
	}
	return float64(whole) + frac
}
