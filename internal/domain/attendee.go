package domain

import (
	"fmt"
	"strings"
)

// AttendeeStatus is the closed set of attendee states.
type AttendeeStatus string

const (
	AttendeeStatusInvited   AttendeeStatus = "INVITED"
	AttendeeStatusConfirmed AttendeeStatus = "CONFIRMED"
	AttendeeStatusDeclined  AttendeeStatus = "DECLINED"
	AttendeeStatusPending   AttendeeStatus = "PENDING"
)

// ParseAttendeeStatus validates a caller-supplied status string.
func ParseAttendeeStatus(s string) (AttendeeStatus, error) {
	switch AttendeeStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case AttendeeStatusInvited:
		return AttendeeStatusInvited, nil
	case AttendeeStatusConfirmed:
		return AttendeeStatusConfirmed, nil
	case AttendeeStatusDeclined:
		return AttendeeStatusDeclined, nil
	case AttendeeStatusPending:
		return AttendeeStatusPending, nil
	default:
		return "", fmt.Errorf("%w: unknown attendee status %q", ErrInvalidInput, s)
	}
}

// Attendee is an invited participant. Email is unique within an event,
// case-insensitive.
type Attendee struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone,omitempty"`
	Name   string         `json:"name"`
	Status AttendeeStatus `json:"status"`
}

// AttendeeInvite is one invitation request.
type AttendeeInvite struct {
	Email string
	Phone string
	Name  string
}

func equalFoldEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
