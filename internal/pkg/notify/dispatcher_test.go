package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uynm/backend/internal/pkg/email"
)

type captureSender struct {
	mu       sync.Mutex
	to       []string
	subjects []string
	bodies   []string
	err      error
}

func (c *captureSender) Send(to, subject, htmlBody string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	c.to = append(c.to, to)
	c.subjects = append(c.subjects, subject)
	c.bodies = append(c.bodies, htmlBody)
	return "ref-1", nil
}

func TestSendContactNotification(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "admin@example.org", zerolog.Nop())
	defer d.Close()

	outcome := d.Send(KindContact, ContactData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Volunteering",
		Message:   "I would like to help.",
	})

	require.True(t, outcome.Delivered)
	assert.Equal(t, "ref-1", outcome.Reference)
	require.Len(t, sender.to, 1)
	assert.Equal(t, "admin@example.org", sender.to[0])
	assert.Contains(t, sender.subjects[0], "Volunteering")
	assert.Contains(t, sender.bodies[0], "Ada")
	assert.Contains(t, sender.bodies[0], "ada@example.com")
}

func TestSendWhenEmailNotConfigured(t *testing.T) {
	// An SMTP sender without credentials short-circuits; the outcome says
	// so instead of surfacing an error.
	sender := email.NewSMTPSender(email.SMTPConfig{Host: "localhost", Port: 587}, zerolog.Nop())
	d := NewDispatcher(sender, "admin@example.org", zerolog.Nop())
	defer d.Close()

	outcome := d.Send(KindNewsletter, NewsletterData{Email: "reader@example.com"})

	assert.False(t, outcome.Delivered)
	assert.Equal(t, "email not configured", outcome.Reason)
}

func TestSendTransportFailure(t *testing.T) {
	sender := &captureSender{err: errors.New("connection refused")}
	d := NewDispatcher(sender, "admin@example.org", zerolog.Nop())
	defer d.Close()

	outcome := d.Send(KindMember, MemberData{
		FullName:         "Ada Lovelace",
		Email:            "ada@example.com",
		InvolvementTrack: "mentor",
	})

	assert.False(t, outcome.Delivered)
	assert.Equal(t, "connection refused", outcome.Reason)
}

func TestNotifyDeliversAsynchronously(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "admin@example.org", zerolog.Nop())

	d.Notify(KindMember, MemberData{
		FullName:         "Ada Lovelace",
		Email:            "ada@example.com",
		Phone:            "0800",
		Location:         "Lagos",
		InvolvementTrack: "mentor",
	})
	d.Notify(KindNewsletter, NewsletterData{Email: "reader@example.com"})

	// Close drains the queue before returning.
	d.Close()

	require.Len(t, sender.to, 2)
	assert.Contains(t, sender.subjects[0], "mentor")
	assert.Contains(t, sender.bodies[1], "reader@example.com")
}

func TestNotifyAfterCloseDropsTask(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "admin@example.org", zerolog.Nop())
	d.Close()

	// A request finishing after shutdown must not panic on the closed queue.
	assert.NotPanics(t, func() {
		d.Notify(KindNewsletter, NewsletterData{Email: "reader@example.com"})
	})
	assert.Empty(t, sender.to)
}

func TestSendUnknownKind(t *testing.T) {
	d := NewDispatcher(&captureSender{}, "admin@example.org", zerolog.Nop())
	defer d.Close()

	outcome := d.Send(Kind("bogus"), nil)
	assert.False(t, outcome.Delivered)
	assert.NotEmpty(t, outcome.Reason)
}
