package engine

// Hand returns a copy of the cards p still holds, in slot order.
func (g *Game) Hand(p Player) []Card {
	return append([]Card(nil), g.deal.Hands[p]...)
}

// PlayedBy returns the cards p has put on the table this deal.
func (g *Game) PlayedBy(p Player) []Card {
	var out []Card
	for _, pl := range g.deal.Table {
		if pl.Player == p {
			out = append(out, pl.Card)
		}
	}
	return out
}

// Table returns the cards played this deal in order.
func (g *Game) Table() []Play { return append([]Play(nil), g.deal.Table...) }

func (g *Game) Scores() [2]int { return g.match.Scores }

// Trick returns the number of the trick being played, 1 to 3.
func (g *Game) Trick() int { return min(g.deal.Trick, 3) }

// TrucoLevel is the accepted stake level, 0 to 3.
func (g *Game) TrucoLevel() int { return g.deal.Truco.Level }

// EnvidoLevel is the envido display level, 0 to 3.
func (g *Game) EnvidoLevel() int { return g.deal.Envido.DisplayLevel() }

// EnvidoPending reports whether an envido call waits for an answer.
func (g *Game) EnvidoPending() bool { return g.deal.Envido.Pending }

// TrucoPending reports whether a truco call waits for an answer.
func (g *Game) TrucoPending() bool { return g.deal.Truco.Pending }

// EnvidoStake is the stake of the current envido call, 0 if none.
func (g *Game) EnvidoStake() int { return g.deal.Envido.Stake }

func (g *Game) Mano() Player { return g.deal.Mano }

func (g *Game) TrickResults() []TrickResult {
	return append([]TrickResult(nil), g.deal.Results...)
}

// LastHand describes the most recently finished deal, nil before the first one ends.
func (g *Game) LastHand() *HandResult {
	if g.lastHand == nil {
		return nil
	}
	h := *g.lastHand
	h.Tricks = append([]TrickResult(nil), h.Tricks...)
	h.Plays = append([]Play(nil), h.Plays...)
	return &h
}

// Winner returns the seat that won the match, nil while it is running.
func (g *Game) Winner() *Player {
	if g.match.Winner == nil {
		return nil
	}
	w := *g.match.Winner
	return &w
}

func (g *Game) Over() bool { return g.match.Winner != nil }

// View is what one seat is allowed to see of the game.
type View struct {
	Seat Player
	Hand []Card
	// Opponent holds the opponent's cards; it is filled only by FullView.
	Opponent []Card
	Table    []Play
	// Scores are ordered mine, theirs.
	Scores        [2]int
	Trick         int
	Mano          bool
	MyTurn        bool
	TrucoLevel    int
	EnvidoLevel   int
	EnvidoStake   int
	EnvidoPending bool
	TrucoPending  bool
	TrickResults  []TrickResult
	TricksWon     [2]int
}

// View returns the game as seen from p's seat.
func (g *Game) View(p Player) View {
	d := &g.deal
	return View{
		Seat:          p,
		Hand:          g.Hand(p),
		Table:         g.Table(),
		Scores:        [2]int{g.match.Scores[p], g.match.Scores[p.Other()]},
		Trick:         g.Trick(),
		Mano:          d.Mano == p,
		MyTurn:        g.match.Winner == nil && g.CurrentActor() == p,
		TrucoLevel:    d.Truco.Level,
		EnvidoLevel:   d.Envido.DisplayLevel(),
		EnvidoStake:   d.Envido.Stake,
		EnvidoPending: d.Envido.Pending,
		TrucoPending:  d.Truco.Pending,
		TrickResults:  g.TrickResults(),
		TricksWon:     [2]int{d.Won[p], d.Won[p.Other()]},
	}
}

// FullView is View with the opponent's hand revealed.
func (g *Game) FullView(p Player) View {
	v := g.View(p)
	v.Opponent = g.Hand(p.Other())
	return v
}

// OpponentPlayed returns the cards the other seat has put on the table.
func (v View) OpponentPlayed() []Card {
	var out []Card
	for _, pl := range v.Table {
		if pl.Player != v.Seat {
			out = append(out, pl.Card)
		}
	}
	return out
}

// MyPlayed returns the cards v.Seat has put on the table.
func (v View) MyPlayed() []Card {
	var out []Card
	for _, pl := range v.Table {
		if pl.Player == v.Seat {
			out = append(out, pl.Card)
		}
	}
	return out
}

// Leading reports whether the seat opens the current trick.
func (v View) Leading() bool { return len(v.Table)%2 == 0 }
