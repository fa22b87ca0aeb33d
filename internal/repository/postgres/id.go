package postgres

import "github.com/google/uuid"

// newEventID generates an opaque, globally unique event id. Nested entity
// ids are generated the same way by the domain layer at mutation time.
func newEventID() string {
	return uuid.New().String()
}
