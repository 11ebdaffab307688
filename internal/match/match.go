// Package match holds the match information shown on the board: teams,
// score, live minute, key events and whether tickets are on sale.
package match

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var ErrMatchNotFound = errors.New("match not found")

type Team struct {
	Name  string `json:"name" yaml:"name"`
	Code  string `json:"code" yaml:"code"` // ISO country or subdivision code for the flag
	Score int    `json:"score" yaml:"score"`
}

type EventKind string

const (
	Goal         EventKind = "goal"
	YellowCard   EventKind = "yellowCard"
	RedCard      EventKind = "redCard"
	Substitution EventKind = "substitution"
)

// Side is "home" or "away".
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

type Event struct {
	Type      EventKind `json:"type" yaml:"type"`
	Team      Side      `json:"team" yaml:"team"`
	Player    string    `json:"player,omitempty" yaml:"player"`
	PlayerOut string    `json:"player_out,omitempty" yaml:"player_out"`
	PlayerIn  string    `json:"player_in,omitempty" yaml:"player_in"`
	Minute    int       `json:"minute" yaml:"minute"`
}

// Label is the player shown for the event; substitutions show both.
func (e Event) Label() string {
	if e.Type == Substitution {
		return e.PlayerOut + " ↔ " + e.PlayerIn
	}
	return e.Player
}

type Match struct {
	ID               string  `json:"id" yaml:"id"`
	Home             Team    `json:"home_team" yaml:"home"`
	Away             Team    `json:"away_team" yaml:"away"`
	Date             string  `json:"date" yaml:"date"`
	Time             string  `json:"time" yaml:"time"`
	Venue            string  `json:"venue" yaml:"venue"`
	Live             bool    `json:"is_live" yaml:"live"`
	CurrentMinute    int     `json:"current_minute,omitempty" yaml:"minute"`
	TicketsAvailable bool    `json:"tickets_available" yaml:"tickets_available"`
	Events           []Event `json:"events,omitempty" yaml:"events"`
}

// Scoreline formats the score as "2 - 1".
func (m Match) Scoreline() string { return fmt.Sprintf("%d - %d", m.Home.Score, m.Away.Score) }

// MinuteLabel is "67'" while the match is live with a known minute, "" otherwise.
func (m Match) MinuteLabel() string {
	if !m.Live || m.CurrentMinute <= 0 {
		return ""
	}
	return strconv.Itoa(m.CurrentMinute) + "'"
}

// TeamName resolves a side to its team name.
func (m Match) TeamName(s Side) string {
	if s == Home {
		return m.Home.Name
	}
	return m.Away.Name
}

// SeatMapPath is where tickets are bought, or "" when none are on sale.
func (m Match) SeatMapPath() string {
	if !m.TicketsAvailable {
		return ""
	}
	return "/v1/matches/" + m.ID + "/seatmap"
}

// Board is a read-only, ordered set of matches.
type Board struct {
	matches []Match
	byID    map[string]int
}

// NewBoard indexes ms by id. Duplicate ids are rejected.
func NewBoard(ms []Match) (*Board, error) {
	b := &Board{matches: ms, byID: make(map[string]int, len(ms))}
	for i, m := range ms {
		if m.ID == "" {
			return nil, fmt.Errorf("match %d: empty id", i)
		}
		if _, dup := b.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate match id %q", m.ID)
		}
		b.byID[m.ID] = i
	}
	return b, nil
}

// List returns the matches in board order.
func (b *Board) List() []Match { return append([]Match(nil), b.matches...) }

func (b *Board) Get(id string) (Match, error) {
	i, ok := b.byID[id]
	if !ok {
		return Match{}, ErrMatchNotFound
	}
	return b.matches[i], nil
}

// LoadBoard reads a YAML list of matches. An empty path yields the
// built-in fixtures.
func LoadBoard(path string) (*Board, error) {
	if path == "" {
		return NewBoard(Fixtures())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match board: %w", err)
	}
	var ms []Match
	if err := yaml.Unmarshal(raw, &ms); err != nil {
		return nil, fmt.Errorf("parse match board: %w", err)
	}
	return NewBoard(ms)
}
