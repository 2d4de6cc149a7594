// Command metar decodes METAR/SPECI reports and prints them in plain English.
//
// Usage:
//
//	metar [-f] -d "KSTL 231751Z 27009KT 10SM OVC015 09/06 A3029"
//	metar [-f] KSTL KHLN
//	metar [-f] -stations stations.yaml
//
// Station reports are fetched from the NOAA station feed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/metar-etl/internal/adapter/noaa"
	"github.com/couchcryptid/metar-etl/internal/config"
	"github.com/couchcryptid/metar-etl/internal/domain"
	"github.com/couchcryptid/metar-etl/internal/metar"
)

// stationList is the YAML station file:
//
//	stations:
//	  - KSTL
//	  - KHLN
type stationList struct {
	Stations []string `yaml:"stations"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fahrenheit := fs.Bool("f", false, "print temperatures in Fahrenheit")
	raw := fs.String("d", "", "decode this report instead of fetching")
	stationsFile := fs.String("stations", "", "YAML file listing stations to fetch")
	baseURL := fs.String("base-url", config.DefaultNOAABaseURL, "NOAA station feed base URL")
	timeout := fs.Duration("timeout", 10*time.Second, "fetch timeout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: metar [options] [STATION...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *raw != "" {
		printReport(stdout, metar.Decode(*raw), *fahrenheit)
		return 0
	}

	stations := fs.Args()
	if *stationsFile != "" {
		list, err := loadStations(*stationsFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		stations = append(stations, list...)
	}
	if len(stations) == 0 {
		fs.Usage()
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := noaa.NewClient(*baseURL, *timeout, nil, logger)

	status := 0
	for i, station := range stations {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		b, err := client.Latest(context.Background(), station)
		if err != nil {
			if errors.Is(err, domain.ErrStationNotFound) {
				fmt.Fprintf(stderr, "%s: unknown station\n", station)
			} else {
				fmt.Fprintf(stderr, "%s: %v\n", station, err)
			}
			status = 1
			continue
		}
		printReport(stdout, metar.Decode(b.Raw), *fahrenheit)
	}
	return status
}

func loadStations(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}

	var list stationList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse stations file: %w", err)
	}

	stations := make([]string, 0, len(list.Stations))
	for _, s := range list.Stations {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			stations = append(stations, s)
		}
	}
	return stations, nil
}
