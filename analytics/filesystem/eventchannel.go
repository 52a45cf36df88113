package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prebid/comscore-destination/errortypes"
	"github.com/prebid/comscore-destination/logger"
)

type channelMetrics struct {
	bufferSize int64
	eventCount int64
}

type limit struct {
	maxByteSize   int64
	maxEventCount int64
	maxTime       time.Duration
}

// eventChannel buffers newline delimited records and writes them out when the buffer holds
// maxEventCount records or maxByteSize bytes, when maxTime has passed, and on close.
type eventChannel struct {
	buff *bytes.Buffer
	out  io.Writer

	ch        chan []byte
	endCh     chan struct{}
	doneCh    chan struct{}
	metrics   channelMetrics
	muxBuffer sync.RWMutex
	limit     limit
	clock     clock.Clock
	logger    logger.Logger
	closeOnce sync.Once
}

func newEventChannel(out io.Writer, clock clock.Clock, l logger.Logger, maxByteSize, maxEventCount int64, maxTime time.Duration) *eventChannel {
	c := eventChannel{
		buff:   &bytes.Buffer{},
		out:    out,
		ch:     make(chan []byte),
		endCh:  make(chan struct{}),
		doneCh: make(chan struct{}),
		limit:  limit{maxByteSize, maxEventCount, maxTime},
		clock:  clock,
		logger: l,
	}
	go c.start()
	return &c
}

// push hands a record to the channel. Records pushed after close are dropped.
func (c *eventChannel) push(event []byte) {
	select {
	case c.ch <- event:
	case <-c.doneCh:
	}
}

// close flushes what is still buffered and waits for the write to finish.
func (c *eventChannel) close() {
	c.closeOnce.Do(func() {
		close(c.endCh)
		<-c.doneCh
	})
}

func (c *eventChannel) buffer(event []byte) {
	c.muxBuffer.Lock()
	defer c.muxBuffer.Unlock()

	c.buff.Write(event)
	c.metrics.eventCount++
	c.metrics.bufferSize += int64(len(event))
}

func (c *eventChannel) isBufferFull() bool {
	c.muxBuffer.RLock()
	defer c.muxBuffer.RUnlock()
	return c.metrics.eventCount >= c.limit.maxEventCount || c.metrics.bufferSize >= c.limit.maxByteSize
}

func (c *eventChannel) reset() {
	c.buff.Reset()
	c.metrics.eventCount = 0
	c.metrics.bufferSize = 0
}

func (c *eventChannel) flush() {
	c.muxBuffer.Lock()
	defer c.muxBuffer.Unlock()

	if c.metrics.eventCount == 0 || c.metrics.bufferSize == 0 {
		return
	}

	defer c.reset()

	if _, err := c.out.Write(c.buff.Bytes()); err != nil {
		c.logger.Errorf("[filesystem] %v", &errortypes.SinkWrite{Message: fmt.Sprintf("fail to write %d records: %v", c.metrics.eventCount, err)})
	}
}

func (c *eventChannel) start() {
	ticker := c.clock.Ticker(c.limit.maxTime)
	defer ticker.Stop()
	defer close(c.doneCh)

	for {
		select {
		case <-c.endCh:
			c.flush()
			return

		// event is received
		case event := <-c.ch:
			c.buffer(event)
			if c.isBufferFull() {
				c.flush()
			}

		// time between 2 flushes has passed
		case <-ticker.C:
			c.flush()
		}
	}
}
