package view

import (
	"fmt"
	"io"
)

// NoParticipantsPlaceholder is shown for activities with an empty roster
const NoParticipantsPlaceholder = "No participants yet"

// Render writes the full roster view: one numbered card per activity. The
// number doubles as the selection option for signup and cancellation
// prompts. The whole view is rewritten on every call; there is no
// incremental update.
func Render(w io.Writer, cards []Card) {
	for i, card := range cards {
		fmt.Fprintf(w, "[%d] %s\n", i+1, card.Name)
		fmt.Fprintf(w, "    %s\n", card.Description)
		fmt.Fprintf(w, "    Schedule: %s\n", card.Schedule)
		fmt.Fprintf(w, "    %d spots left\n", card.SpotsLeft)
		if len(card.Participants) == 0 {
			fmt.Fprintf(w, "    %s\n", NoParticipantsPlaceholder)
		} else {
			fmt.Fprintln(w, "    Participants:")
			for _, email := range card.Participants {
				fmt.Fprintf(w, "      - %s\n", email)
			}
		}
		fmt.Fprintln(w)
	}
}

// RenderLoadFailure writes the fallback shown when the roster cannot be
// fetched
func RenderLoadFailure(w io.Writer) {
	fmt.Fprintln(w, "Failed to load activities. Please try again later.")
}
