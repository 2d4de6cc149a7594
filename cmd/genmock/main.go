// Command genmock reads a text file of raw reports and generates the JSON
// fixtures used by downstream test suites: the collector envelopes the ETL
// consumes and the decoded observations it produces. It runs the actual
// domain package so the fixtures match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -reports data/mock/metar_reports.txt \
//	  -raw-out data/mock/metar_reports_raw.json \
//	  -decoded-out data/mock/metar_reports_decoded.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar-etl/internal/domain"
)

// receivedAt anchors month resolution and ProcessedAt for reproducible output.
var receivedAt = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	reportsPath := flag.String("reports", "", "text file with one raw report per line")
	rawOut := flag.String("raw-out", "", "output path for the collector envelope fixture")
	decodedOut := flag.String("decoded-out", "", "output path for the decoded observation fixture")
	flag.Parse()

	if *reportsPath == "" || *rawOut == "" || *decodedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -reports, -raw-out, -decoded-out")
	}

	domain.SetClock(clockwork.NewFakeClockAt(receivedAt))
	defer domain.SetClock(nil)

	reports, err := readReports(*reportsPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *reportsPath, err)
	}

	records := make([]domain.RawReportRecord, 0, len(reports))
	decoded := make([]domain.Observation, 0, len(reports))
	for i, report := range reports {
		rec := domain.RawReportRecord{Raw: report}
		obs, err := decode(rec)
		if err != nil {
			return fmt.Errorf("report %d: %w", i+1, err)
		}
		records = append(records, rec)
		decoded = append(decoded, obs)
	}
	log.Printf("total: %d reports", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*decodedOut, decoded); err != nil {
		return fmt.Errorf("writing decoded fixture: %w", err)
	}
	log.Printf("wrote decoded fixture: %s", *decodedOut)

	printStats(decoded)
	return nil
}

// readReports returns the non-blank lines of path that are not # comments.
func readReports(path string) ([]string, error) {
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

// decode runs the pipeline's parse and enrich steps on one envelope.
func decode(rec domain.RawReportRecord) (domain.Observation, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("marshal record: %w", err)
	}
	parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: value, Timestamp: receivedAt})
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.EnrichObservation(parsed)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	typeCounts     map[string]int
	categoryCounts map[string]int
	stationCounts  map[string]int
	withPhenomena  int
	unrecognized   int
}

func collectStats(obs []domain.Observation) statsResult {
	s := statsResult{
		typeCounts:     map[string]int{},
		categoryCounts: map[string]int{},
		stationCounts:  map[string]int{},
	}
	for i := range obs {
		o := &obs[i]
		s.typeCounts[o.MessageType]++
		s.categoryCounts[o.FlightCategory]++
		s.stationCounts[o.Station]++
		if len(o.Report.Phenomena) > 0 {
			s.withPhenomena++
		}
		s.unrecognized += len(o.UnrecognizedGroups)
	}
	return s
}

type stationCount struct {
	station string
	count   int
}

func printStats(obs []domain.Observation) {
	stats := collectStats(obs)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(obs))
	fmt.Printf("By type: METAR=%d, SPECI=%d\n", stats.typeCounts["METAR"], stats.typeCounts["SPECI"])
	fmt.Printf("By category: VFR=%d, MVFR=%d, IFR=%d, LIFR=%d, unknown=%d\n",
		stats.categoryCounts["VFR"], stats.categoryCounts["MVFR"],
		stats.categoryCounts["IFR"], stats.categoryCounts["LIFR"], stats.categoryCounts[""])
	fmt.Printf("With phenomena: %d\n", stats.withPhenomena)
	fmt.Printf("Unrecognized groups: %d\n", stats.unrecognized)

	counts := make([]stationCount, 0, len(stats.stationCounts))
	for station, n := range stats.stationCounts {
		counts = append(counts, stationCount{station, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].station < counts[j].station
	})

	fmt.Println("By station:")
	for _, c := range counts {
		fmt.Printf("  %s: %d\n", c.station, c.count)
	}
}
