// Use the OS "logrotate" daemon with copytruncate option

package filesystem

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/docker/go-units"
	"github.com/prebid/comscore-destination/analytics/comscore"
	"github.com/prebid/comscore-destination/config"
	"github.com/prebid/comscore-destination/errortypes"
	"github.com/prebid/comscore-destination/logger"
	"github.com/prebid/comscore-destination/util/jsonutil"
)

// record is one line of the sink file.
type record struct {
	Time string `json:"time"`
	comscore.Call
}

// fileSink writes every native SDK call as a JSON line, through a buffered event channel.
type fileSink struct {
	comscore.Sink

	out     io.Closer
	channel *eventChannel
	clock   clock.Clock
	logger  logger.Logger
}

// NewFileSink opens cfg.Filename for appending and returns a sink writing to it. Records are
// flushed every cfg.MaxEvents calls, every cfg.BufferSize bytes, every cfg.FlushInterval and on
// Shutdown.
func NewFileSink(cfg config.FileSink, clk clock.Clock, l logger.Logger) (comscore.Sink, error) {
	maxByteSize, err := units.FromHumanSize(cfg.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("invalid sink.file.buffer_size: %w", err)
	}

	f, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error creating file sink: %w", err)
	}

	return newFileSink(f, clk, l, maxByteSize, cfg.MaxEvents, cfg.FlushInterval), nil
}

func newFileSink(out io.WriteCloser, clk clock.Clock, l logger.Logger, maxByteSize, maxEventCount int64, maxTime time.Duration) *fileSink {
	s := &fileSink{
		out:     out,
		channel: newEventChannel(out, clk, l, maxByteSize, maxEventCount, maxTime),
		clock:   clk,
		logger:  l,
	}
	s.Sink = comscore.NewCallSink(s.write)
	return s
}

func (s *fileSink) write(call comscore.Call) {
	line, err := jsonutil.MarshalLine(record{
		Time: s.clock.Now().UTC().Format(time.RFC3339Nano),
		Call: call,
	})
	if err != nil {
		s.logger.Errorf("[filesystem] %v", &errortypes.FailedToMarshal{Message: fmt.Sprintf("call %s badly formed: %v", call, err)})
		return
	}
	s.channel.push(line)
}

// Shutdown flushes the buffered records and closes the file.
func (s *fileSink) Shutdown() {
	s.channel.close()
	if err := s.out.Close(); err != nil {
		s.logger.Errorf("[filesystem] fail to close the sink file: %v", err)
	}
}
