package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BulletinTimeLayout is the first line of a NOAA station file, in UTC.
const BulletinTimeLayout = "2006/01/02 15:04"

var (
	// ErrEmptyReport marks a message that carries neither a report nor a station.
	ErrEmptyReport = errors.New("empty report")

	// ErrNoReport marks a station file without a report line.
	ErrNoReport = errors.New("no report in bulletin")

	// ErrStationNotFound marks an unknown station.
	ErrStationNotFound = errors.New("station not found")
)

// Bulletin is the latest report published for a station.
type Bulletin struct {
	IssuedAt time.Time
	Raw      string
}

// StationFetcher retrieves the latest report for an ICAO station.
type StationFetcher interface {
	Latest(ctx context.Context, station string) (Bulletin, error)
}

// ParseBulletin reads a NOAA station file: an issue time line followed by
// the report.
func ParseBulletin(body string) (Bulletin, error) {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return Bulletin{}, ErrNoReport
	}

	issued, err := time.Parse(BulletinTimeLayout, strings.TrimSpace(lines[0]))
	if err != nil {
		return Bulletin{}, fmt.Errorf("parse bulletin time: %w", err)
	}

	raw := normalizeReport(strings.Join(lines[1:], " "))
	if raw == "" {
		return Bulletin{}, ErrNoReport
	}
	return Bulletin{IssuedAt: issued.UTC(), Raw: raw}, nil
}

// isBulletin reports whether body starts with a bulletin time line.
func isBulletin(body string) bool {
	first, _, found := strings.Cut(body, "\n")
	if !found {
		return false
	}
	_, err := time.Parse(BulletinTimeLayout, strings.TrimSpace(first))
	return err == nil
}

// normalizeReport collapses line breaks and runs of spaces to single spaces.
func normalizeReport(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
