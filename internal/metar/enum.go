package metar

import "fmt"

// MessageType distinguishes routine from special reports.
type MessageType int

const (
	MessageMETAR MessageType = iota
	MessageSPECI
)

var messageTypeNames = []string{"METAR", "SPECI"}

// SpeedUnit is the unit a wind group was reported in.
type SpeedUnit int

const (
	Knots SpeedUnit = iota
	MetersPerSecond
	KilometersPerHour
)

var speedUnitNames = []string{"KT", "MPS", "KPH"}

// DistanceUnit is the unit a visibility group was reported in.
type DistanceUnit int

const (
	Meters DistanceUnit = iota
	StatuteMiles
)

var distanceUnitNames = []string{"M", "SM"}

// Cover is the sky cover code of a cloud layer, in increasing coverage.
type Cover int

const (
	CoverSKC Cover = iota
	CoverCLR
	CoverNSC
	CoverFEW
	CoverSCT
	CoverBKN
	CoverOVC
)

var coverNames = []string{"SKC", "CLR", "NSC", "FEW", "SCT", "BKN", "OVC"}

// CloudType is the significant convective cloud type appended to a layer.
type CloudType int

const (
	CloudTCU CloudType = iota
	CloudCB
	CloudACC
)

var cloudTypeNames = []string{"TCU", "CB", "ACC"}

func (m MessageType) String() string  { return enumName(messageTypeNames, int(m)) }
func (u SpeedUnit) String() string    { return enumName(speedUnitNames, int(u)) }
func (u DistanceUnit) String() string { return enumName(distanceUnitNames, int(u)) }
func (c Cover) String() string        { return enumName(coverNames, int(c)) }
func (c CloudType) String() string    { return enumName(cloudTypeNames, int(c)) }

func (m MessageType) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (u SpeedUnit) MarshalText() ([]byte, error)    { return []byte(u.String()), nil }
func (u DistanceUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
func (c Cover) MarshalText() ([]byte, error)        { return []byte(c.String()), nil }
func (c CloudType) MarshalText() ([]byte, error)    { return []byte(c.String()), nil }

func (m *MessageType) UnmarshalText(text []byte) error {
	return unmarshalEnum(messageTypeNames, "message type", text, (*int)(m))
}

func (u *SpeedUnit) UnmarshalText(text []byte) error {
	return unmarshalEnum(speedUnitNames, "speed unit", text, (*int)(u))
}

func (u *DistanceUnit) UnmarshalText(text []byte) error {
	return unmarshalEnum(distanceUnitNames, "distance unit", text, (*int)(u))
}

func (c *Cover) UnmarshalText(text []byte) error {
	return unmarshalEnum(coverNames, "cover", text, (*int)(c))
}

func (c *CloudType) UnmarshalText(text []byte) error {
	return unmarshalEnum(cloudTypeNames, "cloud type", text, (*int)(c))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("UNKNOWN(%d)", i)
	}
	return names[i]
}

func unmarshalEnum(names []string, what string, text []byte, dst *int) error {
	for i, name := range names {
		if name == string(text) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", what, text)
}

// lookupPrefix returns the index of the first name s starts with.
func lookupPrefix(names []string, s string) (int, bool) {
	for i, name := range names {
		if len(s) >= len(name) && s[:len(name)] == name {
			return i, true
		}
	}
	return 0, false
}

func lookupExact(names []string, s string) (int, bool) {
	for i, name := range names {
		if name == s {
			return i, true
		}
	}
	return 0, false
}
