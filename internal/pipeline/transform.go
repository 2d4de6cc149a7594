package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/metar-etl/internal/domain"
	"github.com/couchcryptid/metar-etl/internal/observability"
)

// ReportTransformer implements Transformer by parsing, optionally fetching,
// decoding and serializing a report.
type ReportTransformer struct {
	fetcher domain.StationFetcher
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a ReportTransformer. fetcher may be nil, in which
// case station-only messages fail to decode. metrics may be nil.
func NewTransformer(fetcher domain.StationFetcher, logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	return &ReportTransformer{fetcher: fetcher, logger: logger, metrics: metrics}
}

func (t *ReportTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	obs, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	obs = domain.ResolveReport(ctx, obs, t.fetcher, t.logger)

	obs, err = domain.EnrichObservation(obs)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.record(obs)

	return domain.SerializeObservation(obs)
}

func (t *ReportTransformer) record(obs domain.Observation) {
	if t.metrics == nil {
		return
	}
	msgType := obs.MessageType
	if msgType == "" {
		msgType = "UNKNOWN"
	}
	t.metrics.ReportsDecoded.WithLabelValues(msgType).Inc()
	if n := len(obs.UnrecognizedGroups); n > 0 {
		t.metrics.GroupsUnrecognized.Add(float64(n))
	}
}
