// Command validate performs end-to-end integrity checks across the mock
// report fixtures: the raw report text file, the collector envelope JSON, and
// the decoded observation JSON. It verifies record counts, that envelopes
// carry the source reports unchanged, that re-decoding reproduces the decoded
// fixture exactly, and that decoded values stay inside their enumerations.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -reports data/mock/metar_reports.txt \
//	  -raw-json data/mock/metar_reports_raw.json \
//	  -decoded-json data/mock/metar_reports_decoded.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar-etl/internal/domain"
)

// receivedAt must match genmock for ID and timestamp reproducibility.
var receivedAt = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

var (
	messageTypes = map[string]bool{"METAR": true, "SPECI": true}
	categories   = map[string]bool{"": true, "VFR": true, "MVFR": true, "IFR": true, "LIFR": true}
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	reportsPath := flag.String("reports", "", "text file with one raw report per line")
	rawJSON := flag.String("raw-json", "", "path to the collector envelope fixture")
	decodedJSON := flag.String("decoded-json", "", "path to the decoded observation fixture")
	flag.Parse()

	if *reportsPath == "" || *rawJSON == "" || *decodedJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*reportsPath, *rawJSON, *decodedJSON); code != 0 {
		os.Exit(code)
	}
}

func run(reportsPath, rawJSONPath, decodedJSONPath string) int {
	domain.SetClock(clockwork.NewFakeClockAt(receivedAt))
	defer domain.SetClock(nil)

	// ── Load all data sources ──
	fmt.Println("=== METAR Fixture Integrity Validation ===")
	fmt.Println()

	reports, err := loadReports(reportsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load reports: %v\n", err)
		return 1
	}

	records, err := loadJSON[domain.RawReportRecord](rawJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	decoded, err := loadJSON[domain.Observation](decodedJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load decoded JSON: %v\n", err)
		return 1
	}

	// ── Run validation phases ──
	phases := []*phase{
		validateSourceParity(reports, records),
		validateDecoding(records, decoded),
		validateSchema(decoded),
	}

	// ── Report results ──
	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d reports, %d raw JSON, %d decoded JSON\n", len(reports), len(records), len(decoded))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

func loadReports(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reports []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reports = append(reports, line)
	}
	return reports, scanner.Err()
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Phase 1: Source Parity ──
// Validates that the envelope fixture carries every source report verbatim.

func validateSourceParity(reports []string, records []domain.RawReportRecord) *phase {
	p := &phase{name: "Phase 1: Source Parity (text vs envelopes)"}

	if len(reports) != len(records) {
		p.errorf("count mismatch: %d reports, %d envelopes", len(reports), len(records))
	}
	for i := range min(len(reports), len(records)) {
		if records[i].Raw != reports[i] {
			p.errorf("record %d: raw %q does not match source %q", i, records[i].Raw, reports[i])
		}
	}
	return p
}

// ── Phase 2: Decoding ──
// Re-runs parse and enrich on each envelope and compares with the fixture.

func validateDecoding(records []domain.RawReportRecord, decoded []domain.Observation) *phase {
	p := &phase{name: "Phase 2: Decoding (re-run vs fixture)"}

	byID := make(map[string]*domain.Observation, len(decoded))
	for i := range decoded {
		if _, exists := byID[decoded[i].ID]; exists {
			p.errorf("decoded record %d: duplicate ID %s", i, decoded[i].ID)
			continue
		}
		byID[decoded[i].ID] = &decoded[i]
	}

	ignore := cmpopts.IgnoreFields(domain.Observation{}, "ReceivedAt", "RawPayload")
	for i := range records {
		want, err := decodeRecord(records[i])
		if err != nil {
			p.errorf("record %d: %v", i, err)
			continue
		}
		got, ok := byID[want.ID]
		if !ok {
			p.errorf("record %d (%s): ID %q not found in decoded JSON", i, want.Station, want.ID)
			continue
		}
		if diff := cmp.Diff(want, *got, ignore, cmpopts.EquateEmpty()); diff != "" {
			p.errorf("ID %s: mismatch (-want +got):\n%s", want.ID, diff)
		}
	}
	return p
}

func decodeRecord(rec domain.RawReportRecord) (domain.Observation, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("marshal error: %w", err)
	}
	parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: value, Timestamp: receivedAt})
	if err != nil {
		return domain.Observation{}, fmt.Errorf("parse error: %w", err)
	}
	return domain.EnrichObservation(parsed)
}

// ── Phase 3: Schema ──
// Validates required fields and enumerated values of decoded observations.

func validateSchema(decoded []domain.Observation) *phase {
	p := &phase{name: "Phase 3: Schema (required fields, enums)"}
	for i := range decoded {
		o := &decoded[i]
		pf := func(format string, args ...any) {
			p.errorf("decoded record %d (%s): %s", i, o.ID, fmt.Sprintf(format, args...))
		}

		if o.ID == "" {
			pf("missing id")
		}
		if o.Station == "" {
			pf("missing station")
		} else if !strings.HasPrefix(o.ID, o.Station+"-") {
			pf("id does not start with station %s", o.Station)
		}
		if o.Raw == "" {
			pf("missing raw")
		}
		if o.ProcessedAt.IsZero() {
			pf("missing processed_at")
		}
		if !messageTypes[o.MessageType] {
			pf("invalid message_type %q", o.MessageType)
		}
		if !categories[o.FlightCategory] {
			pf("invalid flight_category %q", o.FlightCategory)
		}
		if (o.TemperatureC == nil) != (o.TemperatureF == nil) {
			pf("temperature_c and temperature_f must be set together")
		}
		if o.RelativeHumidity != nil && (*o.RelativeHumidity < 0 || *o.RelativeHumidity > 100.5) {
			pf("relative_humidity %.1f out of range", *o.RelativeHumidity)
		}
	}
	return p
}
