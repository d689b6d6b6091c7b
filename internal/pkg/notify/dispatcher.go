// Package notify builds admin notification emails for form submissions and
// delivers them asynchronously. Delivery is best-effort: an outcome is
// logged, never propagated to the request path.
package notify

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/uynm/backend/internal/pkg/email"
)

// Kind identifies the notification template to render
type Kind string

const (
	KindContact    Kind = "contact"
	KindMember     Kind = "member"
	KindNewsletter Kind = "newsletter"
)

// Outcome describes the result of a delivery attempt
type Outcome struct {
	Delivered bool
	// Reference is the transport's message reference when delivered
	Reference string
	// Reason explains why delivery did not happen
	Reason string
}

// ContactData carries the fields rendered into a contact notification
type ContactData struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

// MemberData carries the fields rendered into a member notification
type MemberData struct {
	FullName         string
	Email            string
	Phone            string
	Location         string
	InvolvementTrack string
	Reason           string
}

// NewsletterData carries the fields rendered into a newsletter notification
type NewsletterData struct {
	Email string
}

// Notifier is the interface handlers use to fire a notification
type Notifier interface {
	Notify(kind Kind, data interface{})
}

type task struct {
	kind Kind
	data interface{}
}

// Dispatcher queues notification tasks and drains them on a worker
// goroutine, keeping mail-transport latency off the request path.
type Dispatcher struct {
	sender    email.Sender
	recipient string
	logger    zerolog.Logger
	queue     chan task
	wg        sync.WaitGroup
	closeOnce sync.Once

	// mu orders enqueues against Close so no send can race the channel close
	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its worker. Recipient is the
// admin address notifications are delivered to.
func NewDispatcher(sender email.Sender, recipient string, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender:    sender,
		recipient: recipient,
		logger:    logger.With().Str("component", "notify").Logger(),
		queue:     make(chan task, 64),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Notify enqueues a notification without blocking the caller. When the queue
// is full or the dispatcher is already closed the task is dropped and the
// drop is logged.
func (d *Dispatcher) Notify(kind Kind, data interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn().Str("kind", string(kind)).Msg("Dispatcher closed, dropping task")
		return
	}

	select {
	case d.queue <- task{kind: kind, data: data}:
	default:
		d.logger.Warn().Str("kind", string(kind)).Msg("Notification queue full, dropping task")
	}
}

// Close stops accepting tasks and waits for queued deliveries to finish
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.queue {
		outcome := d.Send(t.kind, t.data)
		if outcome.Delivered {
			d.logger.Info().
				Str("kind", string(t.kind)).
				Str("reference", outcome.Reference).
				Msg("Notification delivered")
		} else {
			d.logger.Warn().
				Str("kind", string(t.kind)).
				Str("reason", outcome.Reason).
				Msg("Notification not delivered")
		}
	}
}

// Send renders and delivers a notification synchronously, returning its
// outcome. Errors never escape this boundary.
func (d *Dispatcher) Send(kind Kind, data interface{}) Outcome {
	subject, body, err := buildMessage(kind, data)
	if err != nil {
		return Outcome{Reason: err.Error()}
	}

	reference, err := d.sender.Send(d.recipient, subject, body)
	if err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return Outcome{Reason: "email not configured"}
		}
		return Outcome{Reason: err.Error()}
	}

	return Outcome{Delivered: true, Reference: reference}
}
