package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/RenzoDavila27/Truco-AI/internal/i18n"
	"golang.org/x/text/language"
)

var csvHeader = []string{
	"game", "agent_0", "agent_1", "winner",
	"points_j0", "points_j1", "points_lost_j0", "points_lost_j1",
	"hands_played", "hands_won_j0", "hands_won_j1",
}

// WriteCSV writes one row per match.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Game), r.Agents[0], r.Agents[1], r.Winner,
			strconv.Itoa(r.Points[0]), strconv.Itoa(r.Points[1]),
			strconv.Itoa(r.PointsLost(0)), strconv.Itoa(r.PointsLost(1)),
			strconv.Itoa(r.HandsPlayed), strconv.Itoa(r.HandsWon[0]), strconv.Itoa(r.HandsWon[1]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes the series summary, one line per figure.
func WriteSummary(w io.Writer, s Summary, lang language.Tag) error {
	p := i18n.NewPrinter(lang)
	low, high := s.WilsonCI95()
	lines := []string{
		p.Sprintf("summary.agent0", s.Agents[0]),
		p.Sprintf("summary.agent1", s.Agents[1]),
		p.Sprintf("summary.games", s.Games),
		p.Sprintf("summary.wins0", s.Wins[0]),
		p.Sprintf("summary.wins1", s.Wins[1]),
		p.Sprintf("summary.ties", s.Ties),
		p.Sprintf("summary.points0", s.AvgPoints[0]),
		p.Sprintf("summary.points1", s.AvgPoints[1]),
		p.Sprintf("summary.hands", s.AvgHandsPlayed),
		p.Sprintf("summary.hands0", s.AvgHandsWon[0]),
		p.Sprintf("summary.hands1", s.AvgHandsWon[1]),
		p.Sprintf("summary.winrate", s.WinRate(), low, high),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
