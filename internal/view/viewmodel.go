// Package view renders the activity roster for the terminal and wires user
// intent (signup, cancellation) to the API client. Building the view model
// is kept separate from writing output so the projection is testable on its
// own.
package view

import "github.com/mergington/activities/internal/activity"

// Card is the display projection of one activity
type Card struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []string
}

// BuildCards projects a roster into display cards, one per activity, in
// roster order. SpotsLeft is capacity minus participant count and is not
// clamped: bad server data shows up as a negative number rather than being
// silently hidden.
func BuildCards(roster *activity.Roster) []Card {
	cards := make([]Card, 0, roster.Len())
	for _, name := range roster.Names() {
		a := roster.Get(name)
		cards = append(cards, Card{
			Name:         name,
			Description:  a.Description,
			Schedule:     a.Schedule,
			SpotsLeft:    a.SpotsLeft(),
			Participants: a.Participants,
		})
	}
	return cards
}
