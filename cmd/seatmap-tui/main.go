// seatmap-tui opens a seat map in the terminal. It works offline against
// the stadium layout file: sold seats come from --sold and the final
// selection is printed on exit, one 1-based seat number per line.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/pitchside/seatmap/internal/config"
	"github.com/pitchside/seatmap/internal/match"
	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/session"
	"github.com/pitchside/seatmap/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("seatmap-tui", pflag.ContinueOnError)
	stadiumFile := flags.String("stadium", "", "stadium layout YAML (default: built-in 2500-seat stadium)")
	matchID := flags.String("match", "123465", "match to pick seats for")
	matchesFile := flags.String("matches", "", "match board YAML (default: built-in fixtures)")
	sold := flags.IntSlice("sold", nil, "0-based indices of seats already sold")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	st, err := config.LoadStadium(*stadiumFile)
	if err != nil {
		return err
	}
	layout, err := session.NewLayout(st.Geometry(), st.Pitch, st.SectionColors, st.ViewOptions())
	if err != nil {
		return err
	}
	board, err := match.LoadBoard(*matchesFile)
	if err != nil {
		return err
	}
	m, err := board.Get(*matchID)
	if err != nil {
		return fmt.Errorf("match %s: %w", *matchID, err)
	}
	if !m.TicketsAvailable {
		return fmt.Errorf("match %s: tickets not available", m.ID)
	}

	s := session.New(layout, "terminal", m.ID)
	s.MarkSold(seatstate.Dedupe(*sold))

	fmt.Fprintf(os.Stderr, "%s vs %s, %s\n", m.Home.Name, m.Away.Name, m.Venue)
	final, err := tea.NewProgram(tui.NewModel(s, st.Zoom.Step), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	for _, idx := range final.(tui.Model).Selected() {
		fmt.Println(idx + 1)
	}
	return nil
}
