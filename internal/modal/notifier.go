package modal

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Notifier raises success modals after a fixed delay, simulating the
// latency a user would see before success feedback.
// The delay carries no correctness semantics: the mutation is already
// persisted when a notification is scheduled. Cancellation is tied to the
// caller's context so a torn-down screen never receives a stale modal.
type Notifier struct {
	center *Center
	delay  time.Duration
	log    zerolog.Logger
}

// NewNotifier creates a notifier publishing to center after delay.
// A zero or negative delay publishes synchronously, which tests rely on.
func NewNotifier(center *Center, delay time.Duration, log zerolog.Logger) *Notifier {
	return &Notifier{center: center, delay: delay, log: log}
}

// Success schedules the success modal with the given message.
func (n *Notifier) Success(ctx context.Context, message string) {
	if n.delay <= 0 {
		n.center.ShowSuccess(message)
		return
	}

	go func() {
		timer := time.NewTimer(n.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			n.center.ShowSuccess(message)
		case <-ctx.Done():
			n.log.Debug().Str("message", message).Msg("Success notification dropped, context done")
		}
	}()
}
