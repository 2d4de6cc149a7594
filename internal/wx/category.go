package wx

import "github.com/couchcryptid/metar-etl/internal/metar"

// FlightCategory is the FAA ceiling and visibility classification.
type FlightCategory string

const (
	CategoryUnknown FlightCategory = ""
	CategoryVFR     FlightCategory = "VFR"
	CategoryMVFR    FlightCategory = "MVFR"
	CategoryIFR     FlightCategory = "IFR"
	CategoryLIFR    FlightCategory = "LIFR"
)

// Ceiling returns the height in feet of the lowest broken or overcast layer,
// or the vertical visibility when the sky is obscured.
func Ceiling(r *metar.Report) (int, bool) {
	ceiling, found := 0, false
	for _, l := range r.CloudLayers() {
		if l.Cover() != metar.CoverBKN && l.Cover() != metar.CoverOVC || !l.HasAltitude() {
			continue
		}
		if !found || l.Altitude() < ceiling {
			ceiling, found = l.Altitude(), true
		}
	}
	if r.HasVerticalVisibility() && (!found || r.VerticalVisibility() < ceiling) {
		ceiling, found = r.VerticalVisibility(), true
	}
	return ceiling, found
}

// Category classifies the report. The worse of ceiling and visibility
// decides; a missing value does not restrict. With neither known the result
// is CategoryUnknown.
func Category(r *metar.Report) FlightCategory {
	ceiling, hasCeiling := Ceiling(r)
	vis, hasVis := VisibilityMiles(r)
	if !hasCeiling && !hasVis {
		return CategoryUnknown
	}

	below := func(ft int, sm float64) bool {
		return hasCeiling && ceiling < ft || hasVis && vis < sm
	}

	switch {
	case below(500, 1):
		return CategoryLIFR
	case below(1000, 3):
		return CategoryIFR
	case hasCeiling && ceiling <= 3000 || hasVis && vis <= 5:
		return CategoryMVFR
	default:
		return CategoryVFR
	}
}
