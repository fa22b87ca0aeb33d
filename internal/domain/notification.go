package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the attendee invitation email.
type InvitationEmailData struct {
	Name      string
	EventName string
	StartDate string
	EndDate   string
	Details   string
}

// EventChangeEmailData holds data for the update and cancellation emails.
type EventChangeEmailData struct {
	Name      string
	EventName string
	StartDate string
	EndDate   string
}

// NotificationDispatcher notifies attendees after a committed state change.
// All calls are fire-and-forget: implementations must never block the caller
// or surface a failure, and a notification failure never rolls back the
// mutation that triggered it.
type NotificationDispatcher interface {
	// NotifyInvitation notifies only the newly added attendees.
	NotifyInvitation(event *Event, attendees []*Attendee)
	NotifyEventUpdated(event *Event)
	NotifyEventCancelled(event *Event)
}
