// Package domain turns source-topic messages into decoded observations.
//
// # Message Formats
//
// The collector publishes one report per message in any of three forms:
//
//	JSON envelope:  {"station":"KSTL","raw":"KSTL 231751Z ...","observed_at":"2024-04-23T17:51:00Z"}
//	Station file:   "2024/04/23 17:51\nKSTL 231751Z ..."   (as served by NOAA)
//	Bare report:    "KSTL 231751Z 27009KT 10SM OVC015 09/06 A3029"
//
// An envelope may omit raw; the latest report for the station is then
// fetched through a [StationFetcher] (see [ResolveReport]). A message with
// neither report nor station fails with [ErrEmptyReport] and is dropped as a
// poison pill.
//
// # Observation Time
//
// Reports carry day of month, hour and minute but no month or year. The
// month is taken from the message timestamp; a day more than one day ahead
// of it is read as the previous month. Envelope observed_at and station file
// issue times take precedence over the report group.
//
// # Derived Fields
//
// Temperatures prefer the tenths-of-a-degree remarks group. Feels-like is
// wind chill when it applies and heat index otherwise, and is omitted when
// equal to the air temperature. Flight category follows FAA ceiling and
// visibility bands (VFR, MVFR, IFR, LIFR).
//
// # ID Generation
//
// Observation IDs are "<station>-<hex>" where hex is the first 8 bytes of
// SHA-256 over station|observed_at|raw. Replays of a report keep their ID so
// downstream stores can upsert idempotently. See [generateID].
package domain
