package main

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/couchcryptid/metar-etl/internal/metar"
	"github.com/couchcryptid/metar-etl/internal/wx"
)

const degree = "°"

func printReport(w io.Writer, r *metar.Report, fahrenheit bool) {
	fmt.Fprintln(w, r.Raw())
	if r.HasICAO() {
		fmt.Fprintln(w, r.ICAO())
	}

	tempStr := func(c float64) string {
		if fahrenheit {
			return fmt.Sprintf("%.1f%sF", wx.CelsiusToFahrenheit(c), degree)
		}
		return fmt.Sprintf("%.1f%sC", c, degree)
	}

	if temp, ok := wx.Temperature(r); ok {
		fmt.Fprintf(w, "Temperature: %s\n", tempStr(temp))
		if dew, ok := wx.DewPoint(r); ok {
			if feels, _ := wx.FeelsLike(r); feels != temp {
				fmt.Fprintf(w, "Feels Like:  %s\n", tempStr(feels))
			}
			fmt.Fprintf(w, "Dew Point:   %s\n", tempStr(dew))
			fmt.Fprintf(w, "Humidity:    %.1f%%\n", wx.Humidity(temp, dew))
		}
	}

	switch {
	case r.HasAltimeterInHg():
		fmt.Fprintf(w, "Pressure:    %.2f inHg\n", r.AltimeterInHg())
	case r.HasAltimeterHPa():
		fmt.Fprintf(w, "Pressure:    %d hPa\n", r.AltimeterHPa())
	}

	if r.HasWindSpeed() {
		dir := "VRB"
		if !r.IsVariableWindDirection() {
			dir = fmt.Sprintf("%d%s", r.WindDirection(), degree)
		}
		fmt.Fprintf(w, "Wind:        %s / %d", dir, r.WindSpeed())
		if r.HasWindGust() {
			fmt.Fprintf(w, " (%d)", r.WindGust())
		}
		fmt.Fprintf(w, " %s\n", r.WindSpeedUnit())
	}

	switch {
	case r.IsCAVOK():
		fmt.Fprintln(w, "Visibility:  CAVOK")
	case r.HasVisibility():
		unit := "miles"
		if r.VisibilityUnit() == metar.Meters {
			unit = "meters"
		}
		fmt.Fprintf(w, "Visibility:  %.2f %s\n", r.Visibility(), unit)
	}

	if cat := wx.Category(r); cat != wx.CategoryUnknown {
		fmt.Fprintf(w, "Category:    %s\n", cat)
	}

	if r.NumCloudLayers() > 0 || r.HasVerticalVisibility() {
		fmt.Fprintln(w)
	}
	for _, layer := range r.CloudLayers() {
		if layer.Temporary() {
			continue
		}
		fmt.Fprint(w, layer.Cover())
		if layer.HasAltitude() {
			fmt.Fprintf(w, ": %d feet", layer.Altitude())
			if layer.HasCloudType() {
				fmt.Fprintf(w, " (%s)", layer.CloudType())
			}
		}
		fmt.Fprintln(w)
	}
	if r.HasVerticalVisibility() {
		fmt.Fprintf(w, "Vertical visibility: %d feet\n", r.VerticalVisibility())
	}

	title := cases.Title(language.English)
	for _, p := range r.Phenomena() {
		fmt.Fprintln(w, title.String(p.String()))
	}
}
