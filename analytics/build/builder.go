package build

import (
	"github.com/prebid/comscore-destination/analytics/comscore"
	"github.com/prebid/comscore-destination/analytics/filesystem"
	"github.com/prebid/comscore-destination/config"
)

// SinkBuilder builds one kind of sink from its configuration.
type SinkBuilder func(cfg config.Sink, deps SinkDeps) (comscore.Sink, error)

// builders returns mapping between sink type and its builder.
func builders() map[string]SinkBuilder {
	return map[string]SinkBuilder{
		config.SinkTypeLog: func(cfg config.Sink, deps SinkDeps) (comscore.Sink, error) {
			return comscore.NewLogSink(deps.Logger), nil
		},
		config.SinkTypeFile: func(cfg config.Sink, deps SinkDeps) (comscore.Sink, error) {
			return filesystem.NewFileSink(cfg.File, deps.Clock, deps.Logger)
		},
	}
}
