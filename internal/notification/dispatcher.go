package notification

import (
	"context"

	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

// Dispatcher queues notification intents and delivers them from a background
// worker. Delivery is best-effort: failures are logged and swallowed, never
// surfaced to the operation that emitted the intent.
type Dispatcher struct {
	sender Sender
	queue  chan Intent
	log    *logger.Logger
}

// NewDispatcher creates a dispatcher with a bounded intent queue
func NewDispatcher(sender Sender, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		sender: sender,
		queue:  make(chan Intent, queueSize),
		log:    log,
	}
}

// Emit queues an intent without blocking. A full queue drops the intent;
// notifications are best-effort and must never stall the originating request.
func (d *Dispatcher) Emit(intent Intent) {
	select {
	case d.queue <- intent:
	default:
		d.log.WithField("event", string(intent.Event)).
			Warn("notification queue full, intent dropped")
	}
}

// Run delivers queued intents until ctx is cancelled
func (d *Dispatcher) Run(ctx context.Context) {
	d.log.Info("notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info("notification dispatcher stopped")
			return
		case intent := <-d.queue:
			if err := d.sender.Send(intent); err != nil {
				d.log.WithError(err).
					WithField("event", string(intent.Event)).
					Warn("notification delivery failed")
			}
		}
	}
}
