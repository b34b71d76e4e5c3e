// Package console draws the game in a terminal and lets a person play it.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/i18n"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer prints boards and game events.
type Renderer struct {
	out   io.Writer
	p     *message.Printer
	names [2]string
}

// NewRenderer writes to out in lang. names label the two seats; empty
// names fall back to J0 and J1.
func NewRenderer(out io.Writer, lang language.Tag, names [2]string) *Renderer {
	r := &Renderer{out: out, p: i18n.NewPrinter(lang), names: names}
	for seat, name := range r.names {
		if name == "" {
			r.names[seat] = i18n.Seat(r.p, engine.Player(seat))
		}
	}
	return r
}

// Printer exposes the message printer the renderer uses.
func (r *Renderer) Printer() *message.Printer { return r.p }

func (r *Renderer) name(seat engine.Player) string { return r.names[seat] }

// Board draws v. The opponent's cards are shown only when v carries them.
func (r *Renderer) Board(v engine.View) error {
	opp := v.Seat.Other()
	oppHand := r.p.Sprintf("hand.hidden", 3-len(v.OpponentPlayed()))
	if v.Opponent != nil {
		oppHand = r.cards(v.Opponent)
	}
	box := pterm.DefaultBox.WithHorizontalPadding(2)
	opponent := box.WithTitle(r.p.Sprintf("hand.opponent", r.name(opp))).WithTitleTopLeft().Sprint(oppHand)
	table := box.WithTitle(r.p.Sprintf("table.title")).WithTitleTopCenter().Sprint(r.table(v))
	mine := box.WithTitle(r.p.Sprintf("hand.mine")).WithTitleTopLeft().Sprint(pterm.LightCyan(r.cards(v.Hand)))
	status := box.Sprint(r.status(v))

	s, err := pterm.DefaultPanel.WithPanels(pterm.Panels{
		{{Data: opponent}},
		{{Data: table}, {Data: status}},
		{{Data: mine}},
	}).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, s)
	return err
}

func (r *Renderer) cards(cards []engine.Card) string {
	if len(cards) == 0 {
		return r.p.Sprintf("table.empty")
	}
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = fmt.Sprintf("%d) %s", i+1, i18n.Card(r.p, c))
	}
	return strings.Join(labels, "\n")
}

func (r *Renderer) table(v engine.View) string {
	if len(v.Table) == 0 {
		return r.p.Sprintf("table.empty")
	}
	lines := make([]string, 0, len(v.Table))
	for _, pl := range v.Table {
		lines = append(lines, r.p.Sprintf("event.action", r.name(pl.Player), i18n.Card(r.p, pl.Card)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) status(v engine.View) string {
	me, opp := v.Seat, v.Seat.Other()
	mano := opp
	if v.Mano {
		mano = me
	}
	lines := []string{
		r.p.Sprintf("status.score", r.name(me), v.Scores[0], r.name(opp), v.Scores[1]),
		r.p.Sprintf("status.trick", v.Trick),
		r.p.Sprintf("status.mano", r.name(mano)),
		r.p.Sprintf("status.truco", i18n.TrucoLevel(r.p, v.TrucoLevel)),
		r.p.Sprintf("status.envido", i18n.EnvidoLevel(r.p, v.EnvidoLevel)),
	}
	if v.EnvidoPending || v.TrucoPending {
		waiting := me
		if v.MyTurn {
			waiting = opp
		}
		lines = append(lines, pterm.LightYellow(r.p.Sprintf("status.pending", r.name(waiting))))
	}
	return strings.Join(lines, "\n")
}

// Accepted reports an accepted action and what it settled.
func (r *Renderer) Accepted(seat engine.Player, a engine.Action, out engine.Outcome, g *engine.Game) {
	label := i18n.Action(r.p, a)
	if a.IsPlayCard() {
		if played := lastPlayBy(g, seat, out); played != nil {
			label = i18n.Card(r.p, *played)
		}
	}
	pterm.Fprintln(r.out, r.p.Sprintf("event.action", pterm.LightCyan(r.name(seat)), label))

	if a.IsPlayCard() {
		var results []engine.TrickResult
		if out.HandOver {
			if last := g.LastHand(); last != nil {
				results = last.Tricks
			}
		} else if n := len(g.Table()); n > 0 && n%2 == 0 {
			results = g.TrickResults()
		}
		if len(results) > 0 {
			pterm.Fprintln(r.out, r.p.Sprintf("event.trick", len(results), r.trickResult(results[len(results)-1])))
		}
	}

	if out.HandOver {
		if last := g.LastHand(); last != nil {
			key := "event.hand"
			if last.Forfeited {
				key = "event.forfeit"
			}
			pterm.Fprintln(r.out, pterm.LightGreen(r.p.Sprintf(key, r.name(last.Winner), last.Points)))
		}
	}
	if out.MatchOver {
		if w := g.Winner(); w != nil {
			s := g.Scores()
			pterm.Fprintln(r.out, pterm.LightGreen(r.p.Sprintf("event.match", r.name(*w), s[*w], s[w.Other()])))
		}
	}
}

// Rejected reports an action the engine refused.
func (r *Renderer) Rejected(seat engine.Player, a engine.Action, err error) {
	pterm.Fprintln(r.out, pterm.LightRed(r.p.Sprintf("event.action", r.name(seat), i18n.Action(r.p, a))))
	pterm.Fprintln(r.out, pterm.LightRed(r.p.Sprintf("event.rejected", err)))
}

func (r *Renderer) trickResult(res engine.TrickResult) string {
	if p, ok := res.Winner(); ok {
		return r.name(p)
	}
	return r.p.Sprintf("event.tie")
}

// lastPlayBy finds the card seat just played. Once the hand is over the
// engine has redealt, so the closed hand is searched instead.
func lastPlayBy(g *engine.Game, seat engine.Player, out engine.Outcome) *engine.Card {
	table := g.Table()
	if out.HandOver {
		last := g.LastHand()
		if last == nil {
			return nil
		}
		table = last.Plays
	}
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].Player == seat {
			c := table[i].Card
			return &c
		}
	}
	return nil
}
