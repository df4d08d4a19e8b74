package activity

import "context"

// Store abstracts activity persistence. The Postgres-backed Repository is
// used in production; MemStore backs tests and database-less deployments.
type Store interface {
	// List returns all activities in roster order.
	List(ctx context.Context) (*Roster, error)

	// Get retrieves a single activity by name, returning nil if absent.
	Get(ctx context.Context, name string) (*Activity, error)

	// AddParticipant appends email to the activity's participant list.
	AddParticipant(ctx context.Context, name, email string) error

	// RemoveParticipant removes email from the activity's participant list.
	RemoveParticipant(ctx context.Context, name, email string) error
}
