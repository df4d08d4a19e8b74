package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity represents an extracurricular activity students can sign up for
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity. It can go negative if the
// server data exceeds max_participants; display code shows it as-is.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is already on the participant list
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Roster is the full set of activities keyed by name. Iteration order is
// preserved across JSON encoding and decoding because the server is the
// ordering authority: clients render activities in the order received.
type Roster struct {
	names      []string
	activities map[string]*Activity
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{activities: make(map[string]*Activity)}
}

// Add appends an activity under the given name, or replaces it in place
// if the name is already present
func (r *Roster) Add(name string, a *Activity) {
	if r.activities == nil {
		r.activities = make(map[string]*Activity)
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}
	if _, exists := r.activities[name]; !exists {
		r.names = append(r.names, name)
	}
	r.activities[name] = a
}

// Get returns the activity under name, or nil if absent
func (r *Roster) Get(name string) *Activity {
	return r.activities[name]
}

// Names returns the activity names in roster order
func (r *Roster) Names() []string {
	return r.names
}

// Len returns the number of activities
func (r *Roster) Len() int {
	return len(r.names)
}

// MarshalJSON encodes the roster as a JSON object in roster order
func (r *Roster) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the roster, preserving the
// key order of the document
func (r *Roster) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object for roster, got %v", tok)
	}

	r.names = nil
	r.activities = make(map[string]*Activity)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected activity name, got %v", tok)
		}

		a := &Activity{}
		if err := dec.Decode(a); err != nil {
			return fmt.Errorf("failed to decode activity %q: %w", name, err)
		}
		r.Add(name, a)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
