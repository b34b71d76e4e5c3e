package engine

// CurrentActor returns the seat expected to act next. A pending envido
// answer takes precedence over a pending truco answer, which takes
// precedence over trick play.
func (g *Game) CurrentActor() Player {
	d := &g.deal
	switch {
	case d.Envido.Pending:
		return d.Envido.Caller.Other()
	case d.Truco.Pending:
		return d.Truco.Caller.Other()
	}
	return d.ToAct
}

// ActionMask returns which of the actions p may take now. It is all false
// when p is not the current actor or the match is over.
func (g *Game) ActionMask(p Player) Mask {
	var m Mask
	if g.match.Winner != nil || p != g.CurrentActor() {
		return m
	}
	d := &g.deal
	pending := d.Envido.Pending || d.Truco.Pending

	if !pending {
		for slot := range d.Hands[p] {
			m[ActionPlayCard1+Action(slot)] = true
		}
	}
	if g.canCallEnvido() {
		for _, a := range envidoRaises(d.Envido.Call) {
			m[a] = true
		}
	}
	for a := ActionTruco; a <= ActionValeCuatro; a++ {
		m[a] = g.canCallTruco(a, p)
	}
	m[ActionQuiero] = pending
	m[ActionNoQuiero] = pending
	m[ActionIrAlMazo] = true
	return m
}

// Phase reports where the deal stands.
func (g *Game) Phase() Phase {
	d := &g.deal
	switch {
	case g.match.Winner != nil:
		return PhaseMatchOver
	case d.Envido.Pending:
		return PhaseEnvidoPending
	case d.Truco.Pending:
		return PhaseTrucoPending
	case len(d.Table) == 0 && d.Envido.Call == EnvidoNotCalled && d.Truco.Level == 0:
		return PhaseDealt
	}
	return PhaseTrickPlay
}
