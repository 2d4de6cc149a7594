package pipeline

import (
	"context"
	"errors"

	"github.com/couchcryptid/metar-etl/internal/domain"
)

// FanoutLoader loads each batch into every wrapped loader in order. All
// loaders are attempted; their errors are joined.
type FanoutLoader struct {
	loaders []BatchLoader
}

// NewFanoutLoader creates a loader that writes to all of loaders.
func NewFanoutLoader(loaders ...BatchLoader) *FanoutLoader {
	return &FanoutLoader{loaders: loaders}
}

func (f *FanoutLoader) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	var errs []error
	for _, l := range f.loaders {
		if err := l.LoadBatch(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
