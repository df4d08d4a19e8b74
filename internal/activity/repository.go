package activity

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles activity data persistence in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE activities (
//	    id               SERIAL PRIMARY KEY,
//	    name             TEXT NOT NULL UNIQUE,
//	    description      TEXT NOT NULL,
//	    schedule         TEXT NOT NULL,
//	    max_participants INTEGER NOT NULL
//	);
//
//	CREATE TABLE signups (
//	    id            SERIAL PRIMARY KEY,
//	    activity_id   INTEGER NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
//	    email         TEXT NOT NULL,
//	    UNIQUE (activity_id, email)
//	);
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new activity repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all activities with their participants, ordered by
// insertion so the roster order is stable across fetches
func (r *Repository) List(ctx context.Context) (*Roster, error) {
	query := `
		SELECT a.name, a.description, a.schedule, a.max_participants, s.email
		FROM activities a
		LEFT JOIN signups s ON s.activity_id = a.id
		ORDER BY a.id, s.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	roster := NewRoster()
	for rows.Next() {
		var name, description, schedule string
		var maxParticipants int
		var email sql.NullString
		if err := rows.Scan(&name, &description, &schedule, &maxParticipants, &email); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}

		a := roster.Get(name)
		if a == nil {
			a = &Activity{
				Description:     description,
				Schedule:        schedule,
				MaxParticipants: maxParticipants,
				Participants:    []string{},
			}
			roster.Add(name, a)
		}
		if email.Valid {
			a.Participants = append(a.Participants, email.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity rows: %w", err)
	}

	return roster, nil
}

// Get retrieves a single activity by name
func (r *Repository) Get(ctx context.Context, name string) (*Activity, error) {
	query := `
		SELECT description, schedule, max_participants
		FROM activities
		WHERE name = $1
	`

	a := &Activity{Participants: []string{}}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&a.Description,
		&a.Schedule,
		&a.MaxParticipants,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	participantsQuery := `
		SELECT s.email
		FROM signups s
		JOIN activities a ON a.id = s.activity_id
		WHERE a.name = $1
		ORDER BY s.id
	`
	rows, err := r.db.QueryContext(ctx, participantsQuery, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		a.Participants = append(a.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participant rows: %w", err)
	}

	return a, nil
}

// AddParticipant appends email to the activity's participant list
func (r *Repository) AddParticipant(ctx context.Context, name, email string) error {
	query := `
		INSERT INTO signups (activity_id, email)
		SELECT id, $2 FROM activities WHERE name = $1
	`

	result, err := r.db.ExecContext(ctx, query, name, email)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check signup insert: %w", err)
	}
	if affected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// RemoveParticipant removes email from the activity's participant list
func (r *Repository) RemoveParticipant(ctx context.Context, name, email string) error {
	query := `
		DELETE FROM signups
		WHERE email = $2
		  AND activity_id = (SELECT id FROM activities WHERE name = $1)
	`

	result, err := r.db.ExecContext(ctx, query, name, email)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check signup delete: %w", err)
	}
	if affected == 0 {
		return ErrNotSignedUp
	}

	return nil
}
