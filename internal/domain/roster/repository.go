package roster

import "context"

// RosterRepository reads the team roster for an event. An event with no
// rostered members returns an empty slice, not an error.
type RosterRepository interface {
	GetByEventID(ctx context.Context, eventID string) ([]TeamMember, error)
}
