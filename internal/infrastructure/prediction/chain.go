package prediction

import (
	"context"
	"time"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Observer receives source attempt outcomes for metrics collection.
type Observer interface {
	ObserveSourceAttempt(source mtypes.SourceName, success bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSourceAttempt(mtypes.SourceName, bool, time.Duration) {}

// Chain tries an ordered list of sources until one succeeds.  Every failed
// attempt is recorded as a warning on the eventual report, so a degraded
// answer is always visibly degraded.
type Chain struct {
	sources  []Source
	logger   logging.Logger
	observer Observer
}

// NewChain builds a fallback chain over the given sources, consulted in
// order.  observer may be nil.
func NewChain(sources []Source, log logging.Logger, observer Observer) *Chain {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Chain{
		sources:  sources,
		logger:   log.Named("chain"),
		observer: observer,
	}
}

// Sources lists the configured source names in consultation order.
func (c *Chain) Sources() []mtypes.SourceName {
	names := make([]mtypes.SourceName, len(c.sources))
	for i, s := range c.sources {
		names[i] = s.Name()
	}
	return names
}

// Resolve walks the chain for the given normalized SMILES.  It returns the
// first successful result together with one warning per source that failed
// before it.  A SRC_007 error is returned only when every source fails,
// which cannot happen in default configurations because the demo source
// never fails.
func (c *Chain) Resolve(ctx context.Context, smiles string) (*Result, []mtypes.SourceWarning, error) {
	if len(c.sources) == 0 {
		return nil, nil, errors.New(errors.ErrCodeSourceExhausted, "no data sources configured")
	}

	var warnings []mtypes.SourceWarning
	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, warnings, errors.Wrap(err, errors.ErrCodeSourceTimeout, "screening cancelled")
		}

		start := time.Now()
		result, err := src.Fetch(ctx, smiles)
		elapsed := time.Since(start)
		c.observer.ObserveSourceAttempt(src.Name(), err == nil, elapsed)

		if err != nil {
			c.logger.Warn("source failed, degrading to next",
				logging.String("source", string(src.Name())),
				logging.Duration("elapsed", elapsed),
				logging.Err(err))
			warnings = append(warnings, mtypes.SourceWarning{
				Source:  src.Name(),
				Message: warningMessage(err),
			})
			continue
		}

		c.logger.Debug("source resolved",
			logging.String("source", string(src.Name())),
			logging.Duration("elapsed", elapsed))
		return result, warnings, nil
	}

	return nil, warnings, errors.New(errors.ErrCodeSourceExhausted, "all prediction sources failed")
}

// ResolveOne consults a single named source, bypassing the fallback order.
// Used when a request pins its data source explicitly.
func (c *Chain) ResolveOne(ctx context.Context, name mtypes.SourceName, smiles string) (*Result, error) {
	for _, src := range c.sources {
		if src.Name() != name {
			continue
		}
		start := time.Now()
		result, err := src.Fetch(ctx, smiles)
		c.observer.ObserveSourceAttempt(name, err == nil, time.Since(start))
		return result, err
	}
	return nil, errors.Newf(errors.ErrCodeSourceUnavailable, "data source %q is not configured", name)
}

// warningMessage renders a compact warning for the report.  AppError messages
// are already user-facing; everything else falls back to the error string.
func warningMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
