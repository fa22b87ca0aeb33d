package services

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"eventdesk/internal/adapters/email"
	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	subject string
	html    string
	text    string
}

// fakeMailer records sends and can be set to fail.
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notificationEvent() *domain.Event {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e := domain.NewEvent("Tech Conf", "Annual conference", "alice", start, start.Add(8*time.Hour))
	e.ID = "ev-1"
	e.Attendees = []*domain.Attendee{
		{ID: "a-1", Email: "bob@example.com", Name: "Bob", Status: domain.AttendeeStatusInvited},
		{ID: "a-2", Email: "carol@example.com", Name: "", Status: domain.AttendeeStatusConfirmed},
	}
	return e
}

func TestNotificationService_SendInvitation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &notificationService{mailer: mailer, renderer: email.NewTemplateRenderer(), logger: testLogger()}
	e := notificationEvent()

	require.NoError(t, svc.sendInvitation(e, e.Attendees[0]))
	require.Len(t, mailer.sent, 1)
	got := mailer.sent[0]
	assert.Equal(t, "bob@example.com", got.to)
	assert.Equal(t, "You're Invited: Tech Conf", got.subject)
	assert.Contains(t, got.text, "Hi Bob,")
	assert.Contains(t, got.text, "March 10, 2026 at 09:00 AM")
	assert.Contains(t, got.html, "Tech Conf")
}

func TestNotificationService_SendInvitation_FallsBackToEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &notificationService{mailer: mailer, renderer: email.NewTemplateRenderer(), logger: testLogger()}
	e := notificationEvent()

	// attendee without a name is addressed by email
	require.NoError(t, svc.sendInvitation(e, e.Attendees[1]))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].text, "Hi carol@example.com,")
}

func TestNotificationService_Broadcast(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &notificationService{mailer: mailer, renderer: email.NewTemplateRenderer(), logger: testLogger()}
	e := notificationEvent()

	svc.broadcast(e, "event_updated")
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "Event Updated: Tech Conf", mailer.sent[0].subject)
	assert.Equal(t, "bob@example.com", mailer.sent[0].to)
	assert.Equal(t, "carol@example.com", mailer.sent[1].to)

	mailer.sent = nil
	svc.broadcast(e, "event_cancelled")
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "Event Cancelled: Tech Conf", mailer.sent[0].subject)
	assert.True(t, strings.Contains(mailer.sent[0].text, "has been cancelled") ||
		strings.Contains(mailer.sent[0].text, "cancelled"))
}

func TestNotificationService_Broadcast_MailerFailureDoesNotPanic(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := &notificationService{mailer: mailer, renderer: email.NewTemplateRenderer(), logger: testLogger()}
	e := notificationEvent()

	// failures are logged, never propagated
	svc.broadcast(e, "event_updated")
	assert.Empty(t, mailer.sent)

	err := svc.sendInvitation(e, e.Attendees[0])
	require.Error(t, err)
}
