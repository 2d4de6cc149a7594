package metar

import (
	"fmt"
	"strings"
)

// Kind is a present-weather phenomenon.
type Kind int

const (
	KindUnknown Kind = iota
	Mist
	DustStorm
	Dust
	Drizzle
	FunnelCloud
	Fog
	Smoke
	Hail
	SmallHail
	Haze
	IceCrystals
	IcePellets
	DustSandWhorls
	Spray
	Rain
	Sand
	SnowGrains
	Shower
	Snow
	Squalls
	SandStorm
	UnknownPrecipitation
	VolcanicAsh
	Sleet
	Thunderstorm
)

var kindNames = []string{
	"UNKNOWN",
	"MIST",
	"DUST_STORM",
	"DUST",
	"DRIZZLE",
	"FUNNEL_CLOUD",
	"FOG",
	"SMOKE",
	"HAIL",
	"SMALL_HAIL",
	"HAZE",
	"ICE_CRYSTALS",
	"ICE_PELLETS",
	"DUST_SAND_WHORLS",
	"SPRAY",
	"RAIN",
	"SAND",
	"SNOW_GRAINS",
	"SHOWER",
	"SNOW",
	"SQUALLS",
	"SAND_STORM",
	"UNKNOWN_PRECIPITATION",
	"VOLCANIC_ASH",
	"SLEET",
	"THUNDERSTORM",
}

var kindDescriptions = []string{
	"unknown phenomenon",
	"mist",
	"dust storm",
	"dust",
	"drizzle",
	"funnel cloud",
	"fog",
	"smoke",
	"hail",
	"small hail",
	"haze",
	"ice crystals",
	"ice pellets",
	"dust/sand whirls",
	"spray",
	"rain",
	"sand",
	"snow grains",
	"showers",
	"snow",
	"squalls",
	"sand storm",
	"unknown precipitation",
	"volcanic ash",
	"sleet",
	"thunderstorm",
}

// vocabulary maps two-letter weather codes to phenomena. PE is the
// pre-2005 spelling of PL.
var vocabulary = map[string]Kind{
	"BR": Mist,
	"DS": DustStorm,
	"DU": Dust,
	"DZ": Drizzle,
	"FC": FunnelCloud,
	"FG": Fog,
	"FU": Smoke,
	"GR": Hail,
	"GS": SmallHail,
	"HZ": Haze,
	"IC": IceCrystals,
	"PL": IcePellets,
	"PE": IcePellets,
	"PO": DustSandWhorls,
	"PY": Spray,
	"RA": Rain,
	"SA": Sand,
	"SG": SnowGrains,
	"SN": Snow,
	"SQ": Squalls,
	"SS": SandStorm,
	"UP": UnknownPrecipitation,
	"VA": VolcanicAsh,
}

func (k Kind) String() string { return enumName(kindNames, int(k)) }

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	return unmarshalEnum(kindNames, "phenomenon", text, (*int)(k))
}

// Description returns the lower-case English name of the phenomenon.
func (k Kind) Description() string { return enumName(kindDescriptions, int(k)) }

// Intensity of a phenomenon. The zero value is Normal.
type Intensity int

const (
	Light  Intensity = -1
	Normal Intensity = 0
	Heavy  Intensity = 1
)

func (i Intensity) String() string {
	switch i {
	case Light:
		return "LIGHT"
	case Normal:
		return "NORMAL"
	case Heavy:
		return "HEAVY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(i))
	}
}

func (i Intensity) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Intensity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LIGHT":
		*i = Light
	case "NORMAL", "":
		*i = Normal
	case "HEAVY":
		*i = Heavy
	default:
		return fmt.Errorf("unknown intensity %q", text)
	}
	return nil
}

// Phenomenon is one decoded occurrence from a weather group.
type Phenomenon struct {
	Kind         Kind      `json:"kind"`
	Intensity    Intensity `json:"intensity"`
	Blowing      bool      `json:"blowing,omitempty"`
	Freezing     bool      `json:"freezing,omitempty"`
	Drifting     bool      `json:"drifting,omitempty"`
	Vicinity     bool      `json:"vicinity,omitempty"`
	Shower       bool      `json:"shower,omitempty"`
	Partial      bool      `json:"partial,omitempty"`
	Shallow      bool      `json:"shallow,omitempty"`
	Patches      bool      `json:"patches,omitempty"`
	Thunderstorm bool      `json:"thunderstorm,omitempty"`
}

// qualifiers are descriptor and proximity prefixes, stripped in this order
// until none applies.
var qualifiers = []struct {
	code string
	set  func(*Phenomenon)
}{
	{"VC", func(p *Phenomenon) { p.Vicinity = true }},
	{"BL", func(p *Phenomenon) { p.Blowing = true }},
	{"DR", func(p *Phenomenon) { p.Drifting = true }},
	{"FZ", func(p *Phenomenon) { p.Freezing = true }},
	{"MI", func(p *Phenomenon) { p.Shallow = true }},
	{"PR", func(p *Phenomenon) { p.Partial = true }},
	{"BC", func(p *Phenomenon) { p.Patches = true }},
	{"SH", func(p *Phenomenon) { p.Shower = true }},
	{"TS", func(p *Phenomenon) { p.Thunderstorm = true }},
}

// DecodePhenomena decodes one present-weather group such as "-RA",
// "+VCBLSN" or "TSRA". Every occurrence shares the group's intensity and
// qualifiers. Rain with snow in the same group decodes to a single Sleet
// occurrence. A group made only of the TS or SH qualifier decodes to
// Thunderstorm or Shower respectively. Unknown codes are dropped, so the
// result may be empty.
func DecodePhenomena(group string) []Phenomenon {
	var proto Phenomenon
	s := group

	switch {
	case strings.HasPrefix(s, "+"):
		proto.Intensity = Heavy
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		proto.Intensity = Light
		s = s[1:]
	}

	s = stripQualifiers(&proto, s)

	var kinds []Kind
	for ; len(s) >= 2; s = s[2:] {
		if k, ok := vocabulary[s[:2]]; ok {
			kinds = append(kinds, k)
		}
	}

	if len(kinds) == 0 {
		switch {
		case proto.Thunderstorm:
			kinds = []Kind{Thunderstorm}
		case proto.Shower:
			kinds = []Kind{Shower}
		default:
			return nil
		}
	}

	kinds = combineSleet(kinds)

	out := make([]Phenomenon, len(kinds))
	for i, k := range kinds {
		out[i] = proto
		out[i].Kind = k
	}
	return out
}

func stripQualifiers(p *Phenomenon, s string) string {
	for {
		stripped := false
		for _, q := range qualifiers {
			if strings.HasPrefix(s, q.code) {
				q.set(p)
				s = s[len(q.code):]
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}

// combineSleet replaces a rain/snow pair with one Sleet at the position of
// whichever came first.
func combineSleet(kinds []Kind) []Kind {
	rain, snow := -1, -1
	for i, k := range kinds {
		switch {
		case k == Rain && rain < 0:
			rain = i
		case k == Snow && snow < 0:
			snow = i
		}
	}
	if rain < 0 || snow < 0 {
		return kinds
	}

	first, second := min(rain, snow), max(rain, snow)
	kinds[first] = Sleet
	return append(kinds[:second], kinds[second+1:]...)
}

// String renders the phenomenon in plain English, e.g.
// "light freezing drizzle" or "heavy rain showers in the vicinity".
func (p Phenomenon) String() string {
	var words []string

	switch p.Intensity {
	case Light:
		words = append(words, "light")
	case Heavy:
		words = append(words, "heavy")
	}
	if p.Shallow {
		words = append(words, "shallow")
	}
	if p.Partial {
		words = append(words, "partial")
	}
	if p.Patches {
		words = append(words, "patches of")
	}
	if p.Drifting {
		words = append(words, "low drifting")
	}
	if p.Blowing {
		words = append(words, "blowing")
	}
	if p.Freezing {
		words = append(words, "freezing")
	}

	words = append(words, p.Kind.Description())

	if p.Shower && p.Kind != Shower {
		words = append(words, "showers")
	}
	if p.Thunderstorm && p.Kind != Thunderstorm {
		words = append(words, "with thunderstorm")
	}
	if p.Vicinity {
		words = append(words, "in the vicinity")
	}

	return strings.Join(words, " ")
}
