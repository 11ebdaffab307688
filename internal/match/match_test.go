package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesBoard(t *testing.T) {
	b, err := NewBoard(Fixtures())
	require.NoError(t, err)
	require.Len(t, b.List(), 5)

	m, err := b.Get("123467")
	require.NoError(t, err)
	assert.Equal(t, "England", m.Home.Name)
	assert.Equal(t, "1 - 2", m.Scoreline())
	assert.Equal(t, "75'", m.MinuteLabel())
	assert.Empty(t, m.SeatMapPath())

	_, err = b.Get("nope")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestMinuteOnlyWhileLive(t *testing.T) {
	b, _ := NewBoard(Fixtures())
	m, _ := b.Get("123464")
	assert.Equal(t, 67, m.CurrentMinute)
	assert.Empty(t, m.MinuteLabel())
}

func TestSeatMapPath(t *testing.T) {
	assert.Equal(t, "/v1/matches/123465/seatmap", Match{ID: "123465", TicketsAvailable: true}.SeatMapPath())
}

func TestEventLabel(t *testing.T) {
	assert.Equal(t, "Kane", Event{Type: Goal, Player: "Kane"}.Label())
	assert.Equal(t, "A ↔ B", Event{Type: Substitution, PlayerOut: "A", PlayerIn: "B"}.Label())

	m := Match{Home: Team{Name: "Spain"}, Away: Team{Name: "Italy"}}
	assert.Equal(t, "Spain", m.TeamName(Home))
	assert.Equal(t, "Italy", m.TeamName(Away))
}

func TestNewBoardRejectsBadIDs(t *testing.T) {
	_, err := NewBoard([]Match{{ID: "1"}, {ID: "1"}})
	assert.Error(t, err)
	_, err = NewBoard([]Match{{}})
	assert.Error(t, err)
}

func TestListIsACopy(t *testing.T) {
	b, _ := NewBoard(Fixtures())
	l := b.List()
	l[0].ID = "changed"
	m, err := b.Get("123464")
	require.NoError(t, err)
	assert.Equal(t, "123464", m.ID)
}

func TestLoadBoard(t *testing.T) {
	b, err := LoadBoard("")
	require.NoError(t, err)
	assert.Len(t, b.List(), 5)

	path := filepath.Join(t.TempDir(), "matches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: "9"
  home: {name: Chile, code: CL, score: 1}
  away: {name: Peru, code: PE}
  live: true
  minute: 12
  tickets_available: true
  events:
    - {type: goal, team: home, player: Sanchez, minute: 9}
`), 0o600))
	b, err = LoadBoard(path)
	require.NoError(t, err)
	m, err := b.Get("9")
	require.NoError(t, err)
	assert.Equal(t, "12'", m.MinuteLabel())
	assert.Equal(t, Goal, m.Events[0].Type)
	assert.Equal(t, "Chile", m.TeamName(m.Events[0].Team))
}
