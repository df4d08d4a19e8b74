package activity

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store. It backs tests and deployments that run
// without a database; state is lost on restart.
type MemStore struct {
	mu     sync.RWMutex
	roster *Roster
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{roster: NewRoster()}
}

// NewSeededMemStore creates an in-memory store preloaded with the default
// school activities
func NewSeededMemStore() *MemStore {
	s := NewMemStore()
	for _, seed := range defaultActivities {
		a := seed.activity
		a.Participants = append([]string{}, seed.activity.Participants...)
		s.roster.Add(seed.name, &a)
	}
	return s
}

// List returns a snapshot of all activities in roster order
func (s *MemStore) List(ctx context.Context) (*Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := NewRoster()
	for _, name := range s.roster.Names() {
		out.Add(name, copyActivity(s.roster.Get(name)))
	}
	return out, nil
}

// Get returns a copy of the named activity, or nil if absent
func (s *MemStore) Get(ctx context.Context, name string) (*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyActivity(s.roster.Get(name)), nil
}

// AddParticipant appends email to the activity's participant list
func (s *MemStore) AddParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.roster.Get(name)
	if a == nil {
		return ErrActivityNotFound
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes email from the activity's participant list
func (s *MemStore) RemoveParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.roster.Get(name)
	if a == nil {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

// Put inserts or replaces an activity. Used by seeding and tests.
func (s *MemStore) Put(name string, a *Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Add(name, copyActivity(a))
}

func copyActivity(a *Activity) *Activity {
	if a == nil {
		return nil
	}
	out := *a
	out.Participants = append([]string{}, a.Participants...)
	return &out
}

type seedActivity struct {
	name     string
	activity Activity
}

// defaultActivities is the initial roster for a fresh deployment
var defaultActivities = []seedActivity{
	{"Chess Club", Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}},
	{"Programming Class", Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	}},
	{"Gym Class", Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	}},
	{"Soccer Team", Activity{
		Description:     "Join the school soccer team and compete in local tournaments",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"alex@mergington.edu"},
	}},
	{"Basketball Club", Activity{
		Description:     "Practice basketball skills and play friendly matches",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{"james@mergington.edu", "lucas@mergington.edu"},
	}},
	{"Art Studio", Activity{
		Description:     "Explore various art mediums including painting, drawing, and sculpture",
		Schedule:        "Mondays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"lily@mergington.edu"},
	}},
	{"Drama Club", Activity{
		Description:     "Acting, stagecraft, and theatrical productions",
		Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
	}},
	{"Debate Team", Activity{
		Description:     "Develop critical thinking and public speaking through competitive debates",
		Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"ava@mergington.edu"},
	}},
	{"Science Olympiad", Activity{
		Description:     "Compete in science and engineering challenges",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 18,
		Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
	}},
}
