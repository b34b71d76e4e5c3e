package engine

// TrucoState is the stakes sub-protocol of one deal.
type TrucoState struct {
	// Level is the accepted stake: 0 none, 1 truco, 2 retruco, 3 vale cuatro.
	Level int
	// Proposed is the level of the call waiting for an answer.
	Proposed int
	Pending  bool
	Caller   *Player
	// Acceptor accepted the current Level and holds the right to raise it.
	Acceptor *Player
}

// HandValue is what the hand is worth at a locked truco level.
func HandValue(level int) int {
	if level <= 0 {
		return 1
	}
	return level + 1
}

func trucoLevel(a Action) int {
	return int(a-ActionTruco) + 1
}

func (s *TrucoState) reset() {
	*s = TrucoState{Level: s.Level}
}

// canCallTruco reports whether p may make the truco call a right now.
// A raise is allowed either as a direct answer to the call one level below
// or, with nothing pending, by whoever accepted the current level.
func (g *Game) canCallTruco(a Action, p Player) bool {
	d := &g.deal
	if d.Envido.Pending {
		return false
	}
	t := &d.Truco
	want := trucoLevel(a)
	if want == 1 {
		return !t.Pending && t.Level == 0
	}
	if t.Pending {
		return t.Proposed == want-1
	}
	return t.Level == want-1 && t.Acceptor != nil && *t.Acceptor == p
}

func (g *Game) callTruco(a Action, p Player) {
	t := &g.deal.Truco
	t.Proposed = trucoLevel(a)
	t.Pending = true
	t.Caller = &p
	g.logger.Debug("truco call", "player", p, "call", a)
}

// answerTruco settles the pending truco call. A decline ends the deal.
func (g *Game) answerTruco(accept bool, p Player) (reward float64, handOver bool) {
	t := &g.deal.Truco
	if accept {
		t.Level = t.Proposed
		t.Acceptor = &p
		t.Pending = false
		t.Proposed = 0
		g.logger.Debug("truco accepted", "player", p, "level", t.Level)
		return 0, false
	}
	points := HandValue(t.Proposed - 1)
	winner := p.Other()
	g.match.Scores[winner] += points
	t.Pending = false
	g.finishHand(winner, points, true)
	g.logger.Debug("truco declined", "player", p, "points", points)
	return signed(winner, float64(points)), true
}
