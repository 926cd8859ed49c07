// Package revalidate signals that a cached read view is stale.
package revalidate

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Egor213/EndpointLog/internal/broker"
	"github.com/Egor213/EndpointLog/pkg/clock"
	"github.com/Egor213/EndpointLog/pkg/logger"
	log "github.com/sirupsen/logrus"
)

// LogsView is the listing view refreshed after every log mutation.
const LogsView = "/logs"

const defaultPublishTimeout = 5 * time.Second

var lg = logger.Component("revalidate")

// Revalidator is fire-and-forget: failures are logged, never returned.
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

type Signal struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

type BrokerRevalidator struct {
	producer       broker.Producer
	clock          clock.Clock
	publishTimeout time.Duration
	wg             sync.WaitGroup
}

func NewBrokerRevalidator(p broker.Producer, c clock.Clock) *BrokerRevalidator {
	return &BrokerRevalidator{
		producer:       p,
		clock:          c,
		publishTimeout: defaultPublishTimeout,
	}
}

// Revalidate publishes in the background and returns immediately. The
// publish outlives the caller's context but is bounded by publishTimeout.
func (r *BrokerRevalidator) Revalidate(ctx context.Context, path string) {
	payload, err := json.Marshal(Signal{Path: path, At: r.clock.Now()})
	if err != nil {
		lg.WithField("path", path).Warnf("Cannot encode revalidation signal: %v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.publishTimeout)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()

		if err := r.producer.SendMessage(pubCtx, []byte(path), payload); err != nil {
			lg.WithFields(log.Fields{
				"path":  path,
				"error": err,
			}).Warn("Revalidation signal dropped")
			return
		}

		lg.WithField("path", path).Debug("View revalidation requested")
	}()
}

// Wait blocks until every in-flight signal is published or dropped.
func (r *BrokerRevalidator) Wait() {
	r.wg.Wait()
}

type Nop struct{}

func (Nop) Revalidate(ctx context.Context, path string) {
	lg.WithField("path", path).Debug("View revalidation skipped: no broker")
}
