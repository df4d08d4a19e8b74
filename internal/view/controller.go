package view

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mergington/activities/internal/activity"
	"github.com/mergington/activities/internal/client"
)

// API is the slice of the activities client the controller needs
type API interface {
	FetchRoster(ctx context.Context) (*activity.Roster, error)
	SignUp(ctx context.Context, name, email string) (string, error)
	CancelSignup(ctx context.Context, name, email string) (string, error)
}

// Controller drives the roster view: it fetches, renders, and routes user
// actions to the API. Every successful mutation triggers one full refresh
// so the view stays authoritative; failed mutations only surface a message.
type Controller struct {
	api     API
	out     io.Writer
	status  *StatusArea
	confirm func(prompt string) bool

	cards []Card
}

// NewController creates a controller writing to out. confirm is consulted
// before a cancellation is sent; returning false aborts it.
func NewController(api API, out io.Writer, status *StatusArea, confirm func(string) bool) *Controller {
	return &Controller{api: api, out: out, status: status, confirm: confirm}
}

// Refresh fetches the roster and rewrites the view. Fetch failures are
// absorbed here: the fallback text is rendered and no error escapes.
func (c *Controller) Refresh(ctx context.Context) {
	roster, err := c.api.FetchRoster(ctx)
	if err != nil {
		c.cards = nil
		RenderLoadFailure(c.out)
		return
	}

	c.cards = BuildCards(roster)
	Render(c.out, c.cards)
}

// Cards returns the cards from the last successful refresh, in roster
// order. Selection prompts index into this slice.
func (c *Controller) Cards() []Card {
	return c.cards
}

// SubmitSignup sends a signup and reports whether it succeeded, which is
// the caller's cue to reset its input. Success shows the server's message
// and refreshes the roster exactly once; failure only shows an error.
func (c *Controller) SubmitSignup(ctx context.Context, name, email string) bool {
	message, err := c.api.SignUp(ctx, name, email)
	if err != nil {
		c.showError(err, "Failed to sign up. Please try again.")
		return false
	}

	c.status.Show(KindSuccess, message)
	c.Refresh(ctx)
	return true
}

// CancelParticipant asks for confirmation and, if granted, sends the
// cancellation. Declining makes no network call at all.
func (c *Controller) CancelParticipant(ctx context.Context, name, email string) {
	if !c.confirm(fmt.Sprintf("Remove %s from %s?", email, name)) {
		return
	}

	message, err := c.api.CancelSignup(ctx, name, email)
	if err != nil {
		c.showError(err, "Failed to cancel signup. Please try again.")
		return
	}

	c.status.Show(KindSuccess, message)
	c.Refresh(ctx)
}

// showError surfaces a server-reported detail verbatim and degrades
// transport failures to the generic fallback
func (c *Controller) showError(err error, fallback string) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.status.Show(KindError, apiErr.Detail)
		return
	}
	c.status.Show(KindError, fallback)
}
