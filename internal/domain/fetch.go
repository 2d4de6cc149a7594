package domain

import (
	"context"
	"log/slog"
)

// ResolveReport fills in the report of a station-only observation from the
// fetcher. Observations that already carry a report, and any observation when
// fetcher is nil, are returned unchanged. A failed fetch is logged and
// recorded in ReportSource; the observation is returned without a report.
func ResolveReport(ctx context.Context, obs Observation, fetcher StationFetcher, logger *slog.Logger) Observation {
	if fetcher == nil || obs.Raw != "" || obs.Station == "" {
		return obs
	}

	b, err := fetcher.Latest(ctx, obs.Station)
	if err != nil {
		logger.Warn("station report fetch failed",
			"station", obs.Station,
			"error", err,
		)
		obs.ReportSource = SourceFailed
		return obs
	}

	obs.Raw = b.Raw
	obs.ReportSource = SourceNOAA
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = b.IssuedAt
	}
	return obs
}
