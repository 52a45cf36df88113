package build

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prebid/comscore-destination/analytics/comscore"
	"github.com/prebid/comscore-destination/config"
	"github.com/prebid/comscore-destination/logger"
)

// SinkDeps are shared by all sink builders.
type SinkDeps struct {
	Clock  clock.Clock
	Logger logger.Logger
}

// NewSink builds the sink selected by cfg.Type. Missing deps default to the wall clock and a
// glog logger.
func NewSink(cfg config.Sink, deps SinkDeps) (comscore.Sink, error) {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewGlogLogger("sink")
	}

	buildFn, ok := builders()[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown sink type %q", cfg.Type)
	}
	sink, err := buildFn(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("could not initialize %s sink: %w", cfg.Type, err)
	}
	return sink, nil
}
