package publish

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

const defaultQueueSize = 16

// Publisher forwards successful scan batches to a BatchSink. It
// implements scanner.Listener and never blocks the delivery path: a
// full queue drops the batch. Failed cycles are not exported.
type Publisher struct {
	sink  BatchSink
	iface string
	log   Logger

	queue chan models.ScanBatch
	done  chan struct{}
	wg    sync.WaitGroup

	closeOnce sync.Once
	closeErr  error
}

// PublisherOption customizes a Publisher.
type PublisherOption func(*Publisher)

// WithPublishLogger routes the publisher's logging.
func WithPublishLogger(log Logger) PublisherOption {
	return func(p *Publisher) { p.log = log }
}

// WithQueueSize bounds how many batches may wait for the sink.
func WithQueueSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n > 0 {
			p.queue = make(chan models.ScanBatch, n)
		}
	}
}

// NewPublisher starts the delivery worker for the given sink.
func NewPublisher(sink BatchSink, iface string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		sink:  sink,
		iface: iface,
		log:   noopLogger{},
		queue: make(chan models.ScanBatch, defaultQueueSize),
		done:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(1)

	go p.run()

	return p
}

// OnBatch implements scanner.Listener. The batch is queued for
// asynchronous delivery; when the sink cannot keep up the batch is
// dropped and the next one will carry the current picture anyway.
func (p *Publisher) OnBatch(batch models.ScanBatch) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.queue <- batch:
	default:
		p.log.Warnf("publish queue full, dropping batch of %d networks", len(batch.Networks))
	}
}

// OnError implements scanner.Listener. Failure events are alerting
// concerns, not export data.
func (p *Publisher) OnError(scanner.Event) {}

func (p *Publisher) run() {
	defer p.wg.Done()

	for {
		select {
		case batch := <-p.queue:
			p.deliver(batch)
		case <-p.done:
			for {
				select {
				case batch := <-p.queue:
					p.deliver(batch)
				default:
					return
				}
			}
		}
	}
}

func (p *Publisher) deliver(batch models.ScanBatch) {
	data, err := json.Marshal(&batch)
	if err != nil {
		p.log.Errorf("failed to encode batch: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	attrs := map[string]string{
		"interface": p.iface,
		"networks":  strconv.Itoa(len(batch.Networks)),
	}

	if err := p.sink.Send(ctx, data, attrs); err != nil {
		p.log.Errorf("failed to publish batch: %v", err)
		return
	}

	p.log.Debugf("published batch of %d networks", len(batch.Networks))
}

// Close drains queued batches, stops the worker and closes the sink.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.closeErr = p.sink.Close()
	})

	return p.closeErr
}
