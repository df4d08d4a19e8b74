package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterPreservesOrder(t *testing.T) {
	roster := NewRoster()
	roster.Add("Chess Club", &Activity{MaxParticipants: 12})
	roster.Add("Art Studio", &Activity{MaxParticipants: 15})
	roster.Add("Debate Team", &Activity{MaxParticipants: 16})

	assert.Equal(t, []string{"Chess Club", "Art Studio", "Debate Team"}, roster.Names())

	// Re-adding an existing name replaces in place, not at the end
	roster.Add("Art Studio", &Activity{MaxParticipants: 20})
	assert.Equal(t, []string{"Chess Club", "Art Studio", "Debate Team"}, roster.Names())
	assert.Equal(t, 20, roster.Get("Art Studio").MaxParticipants)
}

func TestRosterJSONRoundTrip(t *testing.T) {
	doc := `{
		"Chess Club": {"description": "d", "schedule": "Mon", "max_participants": 2, "participants": ["a@x.com"]},
		"Art Studio": {"description": "paint", "schedule": "Tue", "max_participants": 15, "participants": []}
	}`

	roster := NewRoster()
	require.NoError(t, json.Unmarshal([]byte(doc), roster))

	assert.Equal(t, []string{"Chess Club", "Art Studio"}, roster.Names())
	assert.Equal(t, []string{"a@x.com"}, roster.Get("Chess Club").Participants)
	assert.Equal(t, 15, roster.Get("Art Studio").MaxParticipants)

	// Marshaling writes keys back in the same order
	out, err := json.Marshal(roster)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Chess Club":{"description":"d","schedule":"Mon","max_participants":2,"participants":["a@x.com"]},`+
			`"Art Studio":{"description":"paint","schedule":"Tue","max_participants":15,"participants":[]}}`,
		string(out))
}

func TestRosterUnmarshalRejectsNonObject(t *testing.T) {
	roster := NewRoster()
	assert.Error(t, json.Unmarshal([]byte(`["Chess Club"]`), roster))
	assert.Error(t, json.Unmarshal([]byte(`"Chess Club"`), roster))
}

func TestSpotsLeft(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     int
	}{
		{
			name:     "open spots",
			activity: Activity{MaxParticipants: 2, Participants: []string{"a@x.com"}},
			want:     1,
		},
		{
			name:     "full",
			activity: Activity{MaxParticipants: 1, Participants: []string{"a@x.com"}},
			want:     0,
		},
		{
			name:     "over capacity goes negative",
			activity: Activity{MaxParticipants: 1, Participants: []string{"a@x.com", "b@x.com"}},
			want:     -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.SpotsLeft())
		})
	}
}
