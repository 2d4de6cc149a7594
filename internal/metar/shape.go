package metar

import "strings"

// Shape patterns use '#' for a digit and '$' for a letter; every other byte
// matches itself.

func matchChar(p, c byte) bool {
	switch p {
	case '#':
		return isDigit(c)
	case '$':
		return isLetter(c)
	default:
		return p == c
	}
}

// matchShape reports whether s has exactly the shape of pattern.
func matchShape(pattern, s string) bool {
	return len(s) == len(pattern) && hasShapePrefix(pattern, s)
}

// hasShapePrefix reports whether s begins with the shape of pattern.
func hasShapePrefix(pattern, s string) bool {
	if len(s) < len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if !matchChar(pattern[i], s[i]) {
			return false
		}
	}
	return true
}

func matchAnyShape(patterns []string, s string) bool {
	for _, p := range patterns {
		if matchShape(p, s) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

func isMessageType(s string) bool {
	_, ok := lookupExact(messageTypeNames, s)
	return ok
}

func isICAO(s string) bool               { return matchShape("$$$$", s) }
func isObservationTime(s string) bool    { return matchShape("######Z", s) }
func isWindVariation(s string) bool      { return matchShape("###V###", s) }
func isVerticalVisibility(s string) bool { return matchShape("VV###", s) }
func isAltimeterInHg(s string) bool      { return matchShape("A####", s) }
func isAltimeterHPa(s string) bool       { return matchShape("Q####", s) }
func isSeaLevelPressure(s string) bool   { return matchShape("SLP###", s) }
func isPreciseTemperature(s string) bool { return matchShape("T########", s) }
func isTemperature(s string) bool        { return matchAnyShape(temperatureShapes, s) }

func isCloudLayer(s string) bool {
	_, ok := lookupPrefix(coverNames, s)
	return ok
}

func isPhenomena(s string) bool {
	return isWeatherGroup(s) && len(DecodePhenomena(s)) > 0
}

var windShapes = []string{"#####", "#####G##", "######G###"}

func isWind(s string) bool {
	if strings.HasPrefix(s, "VRB") {
		return true
	}
	for _, p := range windShapes {
		if hasShapePrefix(p, s) {
			return true
		}
	}
	return false
}

var temperatureShapes = []string{"##/##", "##/M##", "M##/M##", "##/", "M##/"}

// isVisibility accepts CAVOK, a bare four-digit meter value, or a
// statute-mile group: a digit or "M" followed by digits and slashes, ending
// in the only "SM" of the group.
func isVisibility(s string) bool {
	if s == "CAVOK" {
		return true
	}

	unit := strings.Index(s, "SM")
	if unit < 0 {
		return matchShape("####", s)
	}
	if unit != len(s)-2 || unit == 0 {
		return false
	}
	if !isDigit(s[0]) && s[0] != 'M' {
		return false
	}
	for i := 1; i < unit; i++ {
		if !isDigit(s[i]) && s[i] != '/' {
			return false
		}
	}
	return true
}

// isWeatherGroup accepts an optional intensity sign followed only by letters.
func isWeatherGroup(s string) bool {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}
