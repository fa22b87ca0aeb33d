package services

import (
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
)

const emailTimeFormat = "January 02, 2006 at 03:04 PM"

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewNotificationService returns a NotificationDispatcher that emails attendees
// through the given Mailer. Delivery runs in the background and failures are
// logged, never returned: notifications must not block or fail a mutation
// that has already been committed.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.NotificationDispatcher {
	return &notificationService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *notificationService) NotifyInvitation(event *domain.Event, attendees []*domain.Attendee) {
	go func() {
		for _, a := range attendees {
			if err := s.sendInvitation(event, a); err != nil {
				s.logger.Error("invitation email failed",
					"event_id", event.ID, "attendee", a.Email, "error", err)
			}
		}
	}()
}

func (s *notificationService) NotifyEventUpdated(event *domain.Event) {
	go s.broadcast(event, "event_updated")
}

func (s *notificationService) NotifyEventCancelled(event *domain.Event) {
	go s.broadcast(event, "event_cancelled")
}

func (s *notificationService) sendInvitation(event *domain.Event, a *domain.Attendee) error {
	data := &domain.InvitationEmailData{
		Name:      attendeeName(a),
		EventName: event.Name,
		StartDate: event.StartDate.Format(emailTimeFormat),
		EndDate:   event.EndDate.Format(emailTimeFormat),
		Details:   event.Description,
	}
	subject, htmlBody, textBody, err := s.renderer.Render("invitation", data)
	if err != nil {
		return fmt.Errorf("render invitation template: %w", err)
	}
	if err := s.mailer.Send(a.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send invitation email: %w", err)
	}
	return nil
}

// broadcast renders the named template once per attendee and sends it to the
// full attendee list of the event.
func (s *notificationService) broadcast(event *domain.Event, templateName string) {
	for _, a := range event.Attendees {
		if err := s.sendChange(event, a, templateName); err != nil {
			s.logger.Error("notification email failed",
				"event_id", event.ID, "template", templateName, "attendee", a.Email, "error", err)
		}
	}
}

func (s *notificationService) sendChange(event *domain.Event, a *domain.Attendee, templateName string) error {
	data := &domain.EventChangeEmailData{
		Name:      attendeeName(a),
		EventName: event.Name,
		StartDate: event.StartDate.Format(emailTimeFormat),
		EndDate:   event.EndDate.Format(emailTimeFormat),
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(a.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send %s email: %w", templateName, err)
	}
	return nil
}

func attendeeName(a *domain.Attendee) string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}
