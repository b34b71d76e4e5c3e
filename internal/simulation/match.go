// Package simulation plays agents against each other and reports on the series.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
)

// MaxRejections is how many rejected actions in a row abort a match.
const MaxRejections = 100

var ErrTooManyRejections = errors.New("too many rejected actions in a row")

// Winner labels used in reports.
const (
	WinnerPlayer0 = "J0"
	WinnerPlayer1 = "J1"
	WinnerTie     = "Empate"
)

// Result is the record of one finished match.
type Result struct {
	Game        int
	Agents      [2]string
	Winner      string
	Points      [2]int
	HandsPlayed int
	HandsWon    [2]int
	Rejected    int
}

// PointsLost returns what seat conceded, i.e. the opponent's score.
func (r Result) PointsLost(seat engine.Player) int {
	return r.Points[seat.Other()]
}

// Observer follows a match as it is played.
type Observer interface {
	Accepted(seat engine.Player, a engine.Action, out engine.Outcome, g *engine.Game)
	Rejected(seat engine.Player, a engine.Action, err error)
}

// PlayMatch resets g and lets seats play it to the end.
func PlayMatch(ctx context.Context, g *engine.Game, seats [2]player.Player, observers ...Observer) (Result, error) {
	g.ResetMatch()
	var res Result
	streak := 0
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		seat := g.CurrentActor()
		mask := g.ActionMask(seat)
		if !mask.Any() {
			break
		}
		a, err := seats[seat].ChooseAction(g.View(seat), mask)
		if err != nil {
			return res, fmt.Errorf("%s choosing: %w", seats[seat].Name(), err)
		}
		out, err := g.Apply(a, seat)
		if err != nil {
			for _, o := range observers {
				o.Rejected(seat, a, err)
			}
			res.Rejected++
			streak++
			if streak >= MaxRejections {
				return res, fmt.Errorf("%s: %w", seats[seat].Name(), ErrTooManyRejections)
			}
			continue
		}
		streak = 0
		for _, o := range observers {
			o.Accepted(seat, a, out, g)
		}
		if out.HandOver {
			res.HandsPlayed++
			if last := g.LastHand(); last != nil {
				res.HandsWon[last.Winner]++
			}
		}
	}

	res.Points = g.Scores()
	switch {
	case res.Points[0] > res.Points[1]:
		res.Winner = WinnerPlayer0
	case res.Points[1] > res.Points[0]:
		res.Winner = WinnerPlayer1
	default:
		res.Winner = WinnerTie
	}
	return res, nil
}
