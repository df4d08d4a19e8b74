package view

import (
	"sync"
	"time"
)

// Kind classifies a status message
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultMessageTTL is how long a status message stays visible before it is
// dismissed automatically
const DefaultMessageTTL = 5 * time.Second

// Message is a transient user-facing notification
type Message struct {
	Kind Kind
	Text string
}

// StatusArea holds the currently visible status message. Each Show bumps a
// generation counter and schedules a dismissal bound to that generation, so
// an expiring older message can never clear a newer one.
type StatusArea struct {
	mu      sync.Mutex
	gen     uint64
	current *Message
	ttl     time.Duration
}

// NewStatusArea creates a status area whose messages expire after ttl
func NewStatusArea(ttl time.Duration) *StatusArea {
	return &StatusArea{ttl: ttl}
}

// Show displays a message, replacing any current one, and schedules its
// automatic dismissal
func (s *StatusArea) Show(kind Kind, text string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.current = &Message{Kind: kind, Text: text}
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() {
		s.clearGeneration(gen)
	})
}

// Current returns the visible message, if any
func (s *StatusArea) Current() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Message{}, false
	}
	return *s.current, true
}

func (s *StatusArea) clearGeneration(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == gen {
		s.current = nil
	}
}
