package view

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/activity"
	"github.com/mergington/activities/internal/client"
)

// fakeAPI counts calls and returns scripted results
type fakeAPI struct {
	roster      *activity.Roster
	fetchErr    error
	fetchCount  int
	signupMsg   string
	signupErr   error
	signupCount int
	cancelMsg   string
	cancelErr   error
	cancelCount int
}

func (f *fakeAPI) FetchRoster(ctx context.Context) (*activity.Roster, error) {
	f.fetchCount++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.roster, nil
}

func (f *fakeAPI) SignUp(ctx context.Context, name, email string) (string, error) {
	f.signupCount++
	return f.signupMsg, f.signupErr
}

func (f *fakeAPI) CancelSignup(ctx context.Context, name, email string) (string, error) {
	f.cancelCount++
	return f.cancelMsg, f.cancelErr
}

func testRoster() *activity.Roster {
	roster := activity.NewRoster()
	roster.Add("Chess Club", &activity.Activity{
		Description:     "d",
		Schedule:        "Mon",
		MaxParticipants: 2,
		Participants:    []string{"a@x.com"},
	})
	return roster
}

func newTestController(api API) (*Controller, *bytes.Buffer, *StatusArea) {
	var out bytes.Buffer
	status := NewStatusArea(time.Hour)
	c := NewController(api, &out, status, func(string) bool { return true })
	return c, &out, status
}

func TestRefreshRendersRoster(t *testing.T) {
	api := &fakeAPI{roster: testRoster()}
	c, out, _ := newTestController(api)

	c.Refresh(context.Background())

	assert.Contains(t, out.String(), "Chess Club")
	assert.Contains(t, out.String(), "1 spots left")
	require.Len(t, c.Cards(), 1)
	assert.Equal(t, "Chess Club", c.Cards()[0].Name)
}

func TestRefreshFetchFailureShowsFallback(t *testing.T) {
	api := &fakeAPI{fetchErr: errors.New("connection refused")}
	c, out, _ := newTestController(api)

	c.Refresh(context.Background())

	assert.Contains(t, out.String(), "Failed to load activities")
	assert.Empty(t, c.Cards())
}

func TestSubmitSignupSuccess(t *testing.T) {
	api := &fakeAPI{roster: testRoster(), signupMsg: "Signed up"}
	c, _, status := newTestController(api)

	reset := c.SubmitSignup(context.Background(), "Chess Club", "b@x.com")

	assert.True(t, reset)
	// Success triggers exactly one roster refresh
	assert.Equal(t, 1, api.fetchCount)

	msg, ok := status.Current()
	require.True(t, ok)
	assert.Equal(t, KindSuccess, msg.Kind)
	assert.Equal(t, "Signed up", msg.Text)
}

func TestSubmitSignupServerErrorShowsDetail(t *testing.T) {
	api := &fakeAPI{
		roster:    testRoster(),
		signupErr: &client.APIError{StatusCode: http.StatusBadRequest, Detail: "Activity full"},
	}
	c, _, status := newTestController(api)

	reset := c.SubmitSignup(context.Background(), "Chess Club", "b@x.com")

	assert.False(t, reset)
	// Failure triggers zero refreshes
	assert.Equal(t, 0, api.fetchCount)

	msg, ok := status.Current()
	require.True(t, ok)
	assert.Equal(t, KindError, msg.Kind)
	assert.Equal(t, "Activity full", msg.Text)
}

func TestSubmitSignupTransportErrorShowsGenericMessage(t *testing.T) {
	api := &fakeAPI{roster: testRoster(), signupErr: errors.New("connection reset")}
	c, _, status := newTestController(api)

	c.SubmitSignup(context.Background(), "Chess Club", "b@x.com")

	assert.Equal(t, 0, api.fetchCount)
	msg, ok := status.Current()
	require.True(t, ok)
	assert.Equal(t, KindError, msg.Kind)
	assert.Equal(t, "Failed to sign up. Please try again.", msg.Text)
}

func TestCancelParticipantConfirmed(t *testing.T) {
	api := &fakeAPI{roster: testRoster(), cancelMsg: "Removed a@x.com from Chess Club"}
	var out bytes.Buffer
	status := NewStatusArea(time.Hour)

	var prompt string
	c := NewController(api, &out, status, func(p string) bool {
		prompt = p
		return true
	})

	c.CancelParticipant(context.Background(), "Chess Club", "a@x.com")

	assert.Equal(t, "Remove a@x.com from Chess Club?", prompt)
	assert.Equal(t, 1, api.cancelCount)
	assert.Equal(t, 1, api.fetchCount)

	msg, ok := status.Current()
	require.True(t, ok)
	assert.Equal(t, KindSuccess, msg.Kind)
}

func TestCancelParticipantDeclinedMakesNoCalls(t *testing.T) {
	api := &fakeAPI{roster: testRoster()}
	var out bytes.Buffer
	status := NewStatusArea(time.Hour)
	c := NewController(api, &out, status, func(string) bool { return false })

	c.CancelParticipant(context.Background(), "Chess Club", "a@x.com")

	assert.Equal(t, 0, api.cancelCount)
	assert.Equal(t, 0, api.fetchCount)
	_, ok := status.Current()
	assert.False(t, ok)
}

func TestCancelParticipantServerErrorShowsDetailOnly(t *testing.T) {
	api := &fakeAPI{
		roster:    testRoster(),
		cancelErr: &client.APIError{StatusCode: http.StatusBadRequest, Detail: "Student is not signed up for this activity"},
	}
	c, _, status := newTestController(api)

	c.CancelParticipant(context.Background(), "Chess Club", "a@x.com")

	assert.Equal(t, 1, api.cancelCount)
	assert.Equal(t, 0, api.fetchCount)

	msg, ok := status.Current()
	require.True(t, ok)
	assert.Equal(t, KindError, msg.Kind)
	assert.Equal(t, "Student is not signed up for this activity", msg.Text)
}
