package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/metar-etl/internal/metar"
)

// RawReportRecord is the JSON envelope produced by the collector. Raw may be
// empty when the collector only names a station; the latest report is then
// fetched during transformation.
type RawReportRecord struct {
	Station    string `json:"station"`
	Raw        string `json:"raw"`
	ObservedAt string `json:"observed_at"` // RFC 3339, optional
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Report sources.
const (
	SourceMessage = "message" // report text arrived in the message
	SourceNOAA    = "noaa"    // fetched from the NOAA station feed
	SourceFailed  = "failed"  // fetch attempted and failed
)

// Observation is a decoded report with derived quantities.
type Observation struct {
	ID           string        `json:"id"`
	Station      string        `json:"station"`
	MessageType  string        `json:"message_type"`
	Raw          string        `json:"raw"`
	ReportSource string        `json:"report_source,omitempty"`
	ObservedAt   time.Time     `json:"observed_at,omitzero"`
	Report       metar.Summary `json:"report"`

	TemperatureC     *float64 `json:"temperature_c,omitempty"`
	TemperatureF     *float64 `json:"temperature_f,omitempty"`
	DewPointC        *float64 `json:"dew_point_c,omitempty"`
	RelativeHumidity *float64 `json:"relative_humidity,omitempty"`
	FeelsLikeC       *float64 `json:"feels_like_c,omitempty"`
	WindKph          *float64 `json:"wind_kph,omitempty"`
	CeilingFt        *int     `json:"ceiling_ft,omitempty"`
	FlightCategory   string   `json:"flight_category,omitempty"`

	UnrecognizedGroups []string `json:"unrecognized_groups,omitempty"`

	ReceivedAt  time.Time `json:"-"`
	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
