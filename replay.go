package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prebid/comscore-destination/analytics"
	"github.com/prebid/comscore-destination/analytics/build"
	"github.com/prebid/comscore-destination/analytics/comscore"
	"github.com/prebid/comscore-destination/config"
	"github.com/prebid/comscore-destination/errortypes"
	"github.com/prebid/comscore-destination/logger"
	metricsConf "github.com/prebid/comscore-destination/metrics/config"
	"github.com/prebid/comscore-destination/util/jsonutil"
	"github.com/prometheus/common/expfmt"
	gometrics "github.com/rcrowley/go-metrics"
)

// replayStats summarizes one replay.
type replayStats struct {
	Dispatched int
	Malformed  int
}

// run replays the newline delimited messages of cfg.Input through a comScore integration and
// writes the recorded metrics to out. stdin is read when the input path is "-".
func run(ctx context.Context, cfg *config.Configuration, stdin io.Reader, out io.Writer) error {
	in := stdin
	if cfg.Input.Path != "-" {
		f, err := os.Open(cfg.Input.Path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	bag, err := cfg.Destination.LoadSettings()
	if err != nil {
		return err
	}

	sink, err := build.NewSink(cfg.Sink, build.SinkDeps{Logger: logger.NewGlogLogger("sink")})
	if err != nil {
		return err
	}

	metricsEngine := metricsConf.NewMetricsEngine(cfg)
	integration := comscore.New(ctx, bag, comscore.Deps{
		Sink:          sink,
		Logger:        logger.NewGlogLogger(comscore.Key),
		MetricsEngine: metricsEngine,
	})

	stats, err := replay(integration, in)
	integration.Shutdown()
	if err != nil {
		return err
	}
	logger.Infof("replayed %d messages, skipped %d malformed", stats.Dispatched, stats.Malformed)

	return writeMetrics(metricsEngine, out)
}

// replay decodes the message stream and dispatches every message. Messages that cannot be
// decoded are logged and skipped. A stream that is not JSON stops the replay.
func replay(integration analytics.Integration, in io.Reader) (replayStats, error) {
	var stats replayStats
	decoder := jsonutil.NewLineDecoder(in)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, &errortypes.BadInput{Message: fmt.Sprintf("reading message %d: %v", stats.Dispatched+stats.Malformed+1, err)}
		}
		if len(raw) == 0 {
			// trailing whitespace
			continue
		}

		msg, err := analytics.DecodeMessage(raw)
		if err != nil {
			stats.Malformed++
			logger.Warnf("skipping message %d (code %d): %v", stats.Dispatched+stats.Malformed, errortypes.ReadCode(err), err)
			continue
		}
		analytics.Dispatch(integration, msg)
		stats.Dispatched++
	}
}

func writeMetrics(engine *metricsConf.DetailedMetricsEngine, out io.Writer) error {
	if engine.GoMetrics != nil {
		gometrics.WriteOnce(engine.GoMetrics.MetricsRegistry, out)
	}
	if engine.PrometheusMetrics != nil {
		families, err := engine.PrometheusMetrics.Registry.Gather()
		if err != nil {
			return fmt.Errorf("gathering prometheus metrics: %w", err)
		}
		for _, family := range families {
			if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
				return err
			}
		}
	}
	return nil
}
