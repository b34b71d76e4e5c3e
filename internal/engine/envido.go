package engine

import "sort"

// EnvidoCall is the rung reached on the envido ladder.
type EnvidoCall int

const (
	EnvidoNotCalled EnvidoCall = iota
	EnvidoCalled
	EnvidoEnvidoCalled
	RealEnvidoCalled
	FaltaEnvidoCalled
	EnvidoClosed
)

// EnvidoState is the point-bid sub-protocol of one deal.
type EnvidoState struct {
	Call    EnvidoCall
	Pending bool
	// Caller made the last escalation; the other seat has to answer it.
	Caller *Player
	Stake  int
	// PrevStake is the stake before the last escalation, paid on a decline.
	PrevStake int
	Resolved  bool
}

// DisplayLevel folds the ladder into 0 (none), 1 (envido), 2 (real) or 3 (falta).
func (s EnvidoState) DisplayLevel() int {
	switch s.Call {
	case EnvidoCalled, EnvidoEnvidoCalled:
		return 1
	case RealEnvidoCalled:
		return 2
	case FaltaEnvidoCalled:
		return 3
	}
	return 0
}

// Suspension remembers a truco call cut off by an envido.
type Suspension struct {
	// Caller made the interrupted truco call.
	Caller Player
	// Actor gets the turn back once the envido is settled.
	Actor Player
}

// BestEnvido returns the best envido total that can be formed from cards:
// 20 plus the two highest values of a suit holding two or more cards,
// otherwise the highest single value.
func BestEnvido(cards []Card) int {
	bySuit := map[Suit][]int{}
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], EnvidoValue(c))
	}
	best := 0
	for _, values := range bySuit {
		sort.Sort(sort.Reverse(sort.IntSlice(values)))
		points := values[0]
		if len(values) >= 2 {
			points = 20 + values[0] + values[1]
		}
		if points > best {
			best = points
		}
	}
	return best
}

// envidoRaises lists the escalations allowed from a rung.
func envidoRaises(from EnvidoCall) []Action {
	switch from {
	case EnvidoNotCalled:
		return []Action{ActionEnvido, ActionRealEnvido, ActionFaltaEnvido}
	case EnvidoCalled:
		return []Action{ActionEnvidoEnvido, ActionRealEnvido, ActionFaltaEnvido}
	case EnvidoEnvidoCalled:
		return []Action{ActionRealEnvido, ActionFaltaEnvido}
	case RealEnvidoCalled:
		return []Action{ActionFaltaEnvido}
	}
	return nil
}

// faltaEnvido is what is left for the leader to reach the target, at least 1.
func faltaEnvido(scores [2]int) int {
	return max(1, MatchTarget-max(scores[0], scores[1]))
}

// escalate moves the ladder one call up and stores the new stake.
func (s *EnvidoState) escalate(a Action, caller Player, scores [2]int) {
	s.PrevStake = s.Stake
	switch a {
	case ActionEnvido:
		s.Stake = 2
		s.Call = EnvidoCalled
	case ActionEnvidoEnvido:
		s.Stake = 4
		s.Call = EnvidoEnvidoCalled
	case ActionRealEnvido:
		switch s.Call {
		case EnvidoNotCalled:
			s.Stake = 3
		case EnvidoCalled:
			s.Stake = 5
		case EnvidoEnvidoCalled:
			s.Stake = 7
		}
		s.Call = RealEnvidoCalled
	case ActionFaltaEnvido:
		s.Stake = faltaEnvido(scores)
		s.Call = FaltaEnvidoCalled
	}
	s.Pending = true
	s.Caller = &caller
}

// close ends the envido for the rest of the deal.
func (s *EnvidoState) close() {
	s.Pending = false
	s.Resolved = true
	s.Call = EnvidoClosed
}

func (g *Game) canCallEnvido() bool {
	d := &g.deal
	return d.Trick == 1 && !d.Envido.Resolved && d.Truco.Level == 0
}

func (g *Game) callEnvido(a Action, p Player) {
	d := &g.deal
	if d.Envido.Call == EnvidoNotCalled && d.Truco.Pending {
		d.Suspended = &Suspension{Caller: *d.Truco.Caller, Actor: d.ToAct}
		d.Truco.reset()
		g.logger.Debug("envido interrupts truco", "caller", p, "suspended", d.Suspended.Caller)
	}
	d.Envido.escalate(a, p, g.match.Scores)
	g.logger.Debug("envido call", "player", p, "call", a, "stake", d.Envido.Stake)
}

// envidoPoints counts the hand still held plus the cards already played by p.
func (g *Game) envidoPoints(p Player) int {
	return BestEnvido(append(g.Hand(p), g.PlayedBy(p)...))
}

// answerEnvido settles the pending envido and returns the reward for Player0.
func (g *Game) answerEnvido(accept bool, p Player) float64 {
	d := &g.deal
	var winner Player
	var points int
	if accept {
		mine, theirs := g.envidoPoints(Player0), g.envidoPoints(Player1)
		winner = Player1
		if mine > theirs || (mine == theirs && d.Mano == Player0) {
			winner = Player0
		}
		points = d.Envido.Stake
	} else {
		winner = p.Other()
		points = max(1, d.Envido.PrevStake)
	}
	g.match.Scores[winner] += points
	g.logger.Debug("envido settled", "accepted", accept, "winner", winner, "points", points)

	d.Envido.close()
	if d.Suspended != nil {
		d.ToAct = d.Suspended.Actor
		d.Suspended = nil
	}
	return signed(winner, float64(points))
}

func signed(winner Player, v float64) float64 {
	if winner == Player0 {
		return v
	}
	return -v
}
