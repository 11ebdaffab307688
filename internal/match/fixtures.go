package match

// Fixtures is the built-in board.
func Fixtures() []Match {
	return []Match{
		{
			ID:   "123464",
			Home: Team{Name: "Brazil", Code: "BR", Score: 2},
			Away: Team{Name: "Argentina", Code: "AR", Score: 1},
			Date: "July 15, 2024", Time: "20:00 GMT", Venue: "Maracanã Stadium",
			CurrentMinute: 67,
			Events: []Event{
				{Type: Goal, Team: Home, Player: "Neymar", Minute: 23},
				{Type: YellowCard, Team: Away, Player: "Messi", Minute: 35},
				{Type: Goal, Team: Away, Player: "Di Maria", Minute: 42},
				{Type: Goal, Team: Home, Player: "Jesus", Minute: 65},
			},
		},
		{
			ID:   "123465",
			Home: Team{Name: "Germany", Code: "DE", Score: 3},
			Away: Team{Name: "France", Code: "FR", Score: 3},
			Date: "July 16, 2024", Time: "18:00 GMT", Venue: "Allianz Arena",
			TicketsAvailable: true,
		},
		{
			ID:   "123466",
			Home: Team{Name: "Spain", Code: "ES"},
			Away: Team{Name: "Italy", Code: "IT"},
			Date: "July 17, 2024", Time: "19:30 GMT", Venue: "Santiago Bernabéu",
			TicketsAvailable: true,
		},
		{
			ID:   "123467",
			Home: Team{Name: "England", Code: "GB-ENG", Score: 1},
			Away: Team{Name: "Portugal", Code: "PT", Score: 2},
			Date: "July 18, 2024", Time: "20:00 GMT", Venue: "Wembley Stadium",
			Live: true, CurrentMinute: 75,
			Events: []Event{
				{Type: Goal, Team: Away, Player: "Ronaldo", Minute: 20},
				{Type: Goal, Team: Home, Player: "Kane", Minute: 55},
				{Type: Goal, Team: Away, Player: "Fernandes", Minute: 70},
			},
		},
		{
			ID:   "123468",
			Home: Team{Name: "Netherlands", Code: "NL", Score: 2},
			Away: Team{Name: "Belgium", Code: "BE", Score: 2},
			Date: "July 19, 2024", Time: "18:30 GMT", Venue: "Johan Cruyff Arena",
			TicketsAvailable: true,
		},
	}
}
