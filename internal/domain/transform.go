package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/metar-etl/internal/metar"
	"github.com/couchcryptid/metar-etl/internal/wx"
)

// ParseRawEvent reads a RawEvent's value into an Observation. The value is a
// JSON RawReportRecord, a NOAA station file, or the bare report text.
func ParseRawEvent(raw RawEvent) (Observation, error) {
	obs := Observation{
		ReceivedAt: raw.Timestamp,
		RawPayload: raw.Value,
	}

	value := bytes.TrimSpace(raw.Value)
	switch {
	case len(value) > 0 && value[0] == '{':
		var rec RawReportRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return Observation{}, fmt.Errorf("parse raw event: %w", err)
		}
		obs.Station = strings.ToUpper(strings.TrimSpace(rec.Station))
		obs.Raw = normalizeReport(rec.Raw)
		if rec.ObservedAt != "" {
			t, err := time.Parse(time.RFC3339, rec.ObservedAt)
			if err != nil {
				return Observation{}, fmt.Errorf("parse observed_at: %w", err)
			}
			obs.ObservedAt = t.UTC()
		}

	case isBulletin(string(value)):
		b, err := ParseBulletin(string(value))
		if err != nil {
			return Observation{}, fmt.Errorf("parse raw event: %w", err)
		}
		obs.Raw = b.Raw
		obs.ObservedAt = b.IssuedAt

	default:
		obs.Raw = normalizeReport(string(value))
	}

	if obs.Raw == "" && obs.Station == "" {
		return Observation{}, fmt.Errorf("parse raw event: %w", ErrEmptyReport)
	}
	if obs.Raw != "" {
		obs.ReportSource = SourceMessage
	}
	return obs, nil
}

// EnrichObservation decodes the report and derives the station, observation
// time, temperatures in both scales, humidity, feels-like temperature, wind
// speed, ceiling and flight category. It fails only when the observation has
// no report text.
func EnrichObservation(obs Observation) (Observation, error) {
	if obs.Raw == "" {
		return obs, fmt.Errorf("enrich %q: %w", obs.Station, ErrEmptyReport)
	}

	r := metar.Decode(obs.Raw)
	obs.Report = r.Summary()
	obs.UnrecognizedGroups = r.Unrecognized()

	if obs.Station == "" {
		obs.Station = r.ICAO()
	}
	obs.MessageType = metar.MessageMETAR.String()
	if r.HasMessageType() {
		obs.MessageType = r.MessageType().String()
	}

	if obs.ObservedAt.IsZero() && r.HasObservationTime() {
		ref := obs.ReceivedAt
		if ref.IsZero() {
			ref = clock.Now()
		}
		obs.ObservedAt = resolveObservationTime(ref, r.Day(), r.Hour(), r.Minute())
	}

	if temp, ok := wx.Temperature(r); ok {
		obs.TemperatureC = &temp
		f := wx.CelsiusToFahrenheit(temp)
		obs.TemperatureF = &f

		if dew, ok := wx.DewPoint(r); ok {
			obs.DewPointC = &dew
			rh := wx.Humidity(temp, dew)
			obs.RelativeHumidity = &rh
		}
		if feels, ok := wx.FeelsLike(r); ok && feels != temp {
			obs.FeelsLikeC = &feels
		}
	}
	if kph, ok := wx.WindKph(r); ok {
		obs.WindKph = &kph
	}
	if ceiling, ok := wx.Ceiling(r); ok {
		obs.CeilingFt = &ceiling
	}
	obs.FlightCategory = string(wx.Category(r))

	obs.ID = generateID(obs.Station, obs.ObservedAt, obs.Raw)
	obs.ProcessedAt = clock.Now()
	return obs, nil
}

// resolveObservationTime places a day-of-month and time in the month of ref.
// Reports carry no month, so a day more than a day ahead of ref, or one the
// month does not have, belongs to the previous month.
func resolveObservationTime(ref time.Time, day, hour, minute int) time.Time {
	ref = ref.UTC()
	t := time.Date(ref.Year(), ref.Month(), day, hour, minute, 0, 0, time.UTC)
	if t.Month() != ref.Month() || t.After(ref.Add(24*time.Hour)) {
		t = time.Date(ref.Year(), ref.Month()-1, day, hour, minute, 0, 0, time.UTC)
	}
	return t
}

// generateID produces a deterministic ID from the report's identity so
// replays of the same report map to the same ID.
func generateID(station string, observedAt time.Time, raw string) string {
	input := fmt.Sprintf("%s|%s|%s", station, observedAt.UTC().Format(time.RFC3339), raw)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if station == "" {
		return short
	}
	return station + "-" + short
}

// SerializeObservation marshals an observation for the sink topic.
func SerializeObservation(obs Observation) (OutputEvent, error) {
	value, err := json.Marshal(obs)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("marshal observation: %w", err)
	}

	return OutputEvent{
		Key:   []byte(obs.ID),
		Value: value,
		Headers: map[string]string{
			"station":      obs.Station,
			"type":         obs.MessageType,
			"processed_at": obs.ProcessedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
