package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// RuleError is returned together with PenaltyReward when an action is rejected.
type RuleError string

func (e RuleError) Error() string { return string(e) }

const (
	ErrNotYourTurn     RuleError = "not the player's turn"
	ErrResponsePending RuleError = "a call is waiting for an answer"
	ErrNoSuchCard      RuleError = "no card in that hand slot"
	ErrIllegalAction   RuleError = "action not allowed now"
	ErrMatchOver       RuleError = "match is over"
)

// PhaseError reports a setup call made at the wrong point of a deal.
type PhaseError string

func (e PhaseError) Error() string { return string(e) }

const (
	// MatchTarget is the score that ends the match.
	MatchTarget = 30
	// HandSize is the number of cards dealt to each player.
	HandSize = 3

	PenaltyReward  = -5.0
	TrickReward    = 0.5
	TerminalReward = 100.0
)

// Game is one match between two seats. It is not safe for concurrent use;
// each match owns its own Game.
type Game struct {
	deal     DealState
	match    MatchState
	lastHand *HandResult

	deck   []Card
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRand makes deals reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sends deal and hand transitions to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// NewGame returns a game ready for ResetMatch.
func NewGame(opts ...Option) *Game {
	g := &Game{deck: NewDeck()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	return g
}

// ResetMatch sets both scores to zero and deals the first hand with
// Player0 as mano.
func (g *Game) ResetMatch() {
	g.match = MatchState{}
	g.lastHand = nil
	g.deal.Mano = Player1
	g.NewDeal()
}

// NewDeal shuffles, deals three cards to each seat, clears both call
// protocols and hands the first turn to the new mano.
func (g *Game) NewDeal() {
	cards := Shuffle(g.deck, g.rng)
	mano := g.deal.Mano.Other()
	g.deal = DealState{
		Hands: [2][]Card{
			append([]Card(nil), cards[:HandSize]...),
			append([]Card(nil), cards[HandSize:2*HandSize]...),
		},
		Trick: 1,
		Mano:  mano,
		ToAct: mano,
	}
	g.logger.Debug("new deal", "mano", mano, "scores", g.match.Scores)
}

// SetDealtCards replaces the hands of a deal that has not started yet.
func (g *Game) SetDealtCards(hands [2][]Card) error {
	d := &g.deal
	if len(d.Table) != 0 || d.Trick != 1 || d.Envido.Call != EnvidoNotCalled || d.Truco.Pending || d.Truco.Level != 0 {
		return PhaseError("deal already in progress")
	}
	seen := map[Card]bool{}
	for p, hand := range hands {
		if len(hand) != HandSize {
			return fmt.Errorf("player %d must have %d cards", p, HandSize)
		}
		for _, c := range hand {
			if !c.IsValid() {
				return fmt.Errorf("unknown card: %v", c)
			}
			if seen[c] {
				return fmt.Errorf("duplicate card detected: %v", c)
			}
			seen[c] = true
		}
	}
	d.Hands = [2][]Card{append([]Card(nil), hands[0]...), append([]Card(nil), hands[1]...)}
	return nil
}

// SetScores overrides the match score, for resuming or staging a match.
func (g *Game) SetScores(scores [2]int) {
	g.match.Scores = scores
	g.checkMatchOver()
}

// Apply validates and applies action a for player p. A rejected action
// returns PenaltyReward and a RuleError and leaves the game untouched.
func (g *Game) Apply(a Action, p Player) (Outcome, error) {
	if err := g.validate(a, p); err != nil {
		g.logger.Debug("action rejected", "player", p, "action", a, "reason", err)
		return Outcome{Reward: PenaltyReward, MatchOver: g.match.Winner != nil}, err
	}

	var out Outcome
	switch {
	case a.IsPlayCard():
		out.Reward, out.HandOver = g.playCard(int(a-ActionPlayCard1), p)
	case a.IsEnvidoCall():
		g.callEnvido(a, p)
	case a.IsTrucoCall():
		g.callTruco(a, p)
	case a == ActionQuiero || a == ActionNoQuiero:
		accept := a == ActionQuiero
		if g.deal.Envido.Pending {
			out.Reward = g.answerEnvido(accept, p)
		} else {
			out.Reward, out.HandOver = g.answerTruco(accept, p)
		}
	case a == ActionIrAlMazo:
		winner := p.Other()
		g.match.Scores[winner]++
		g.finishHand(winner, 1, true)
		out.Reward, out.HandOver = signed(winner, 1), true
	}

	if winner, over := g.checkMatchOver(); over {
		out.MatchOver = true
		out.Reward += signed(winner, TerminalReward)
		g.logger.Debug("match over", "winner", winner, "scores", g.match.Scores)
		return out, nil
	}
	if out.HandOver {
		g.NewDeal()
	}
	return out, nil
}

func (g *Game) validate(a Action, p Player) error {
	switch {
	case g.match.Winner != nil:
		return ErrMatchOver
	case !a.Valid():
		return ErrIllegalAction
	case p != g.CurrentActor():
		return ErrNotYourTurn
	}
	if g.ActionMask(p)[a] {
		return nil
	}
	if a.IsPlayCard() {
		if g.deal.Envido.Pending || g.deal.Truco.Pending {
			return ErrResponsePending
		}
		return ErrNoSuchCard
	}
	return ErrIllegalAction
}

// playCard moves a card to the table and resolves the trick once both
// seats have played. It returns the reward for Player0.
func (g *Game) playCard(slot int, p Player) (reward float64, handOver bool) {
	d := &g.deal
	hand := d.Hands[p]
	card := hand[slot]
	d.Hands[p] = append(hand[:slot:slot], hand[slot+1:]...)
	d.Table = append(d.Table, Play{Player: p, Card: card})
	d.ToAct = p.Other()

	if len(d.Table)%2 != 0 {
		return 0, false
	}

	first, second := d.Table[len(d.Table)-2], d.Table[len(d.Table)-1]
	var result TrickResult
	switch compareCards(first.Card, second.Card) {
	case -1:
		result = trickWonBy(first.Player)
	case 1:
		result = trickWonBy(second.Player)
	default:
		result = TrickTie
	}
	d.Results = append(d.Results, result)
	if winner, ok := result.Winner(); ok {
		d.Won[winner]++
		d.ToAct = winner
		reward = signed(winner, TrickReward)
	} else {
		d.Ties++
		d.ToAct = d.Mano
	}
	d.Trick++
	g.logger.Debug("trick", "number", len(d.Results), "result", result)

	winner, done := handWinner(d.Results, d.Won, d.Ties, d.Mano)
	if !done {
		return reward, false
	}
	points := HandValue(d.Truco.Level)
	g.match.Scores[winner] += points
	g.finishHand(winner, points, false)
	return reward + signed(winner, float64(points)), true
}

// handWinner applies the hand-completion rule to the tricks played so far.
func handWinner(results []TrickResult, won [2]int, ties int, mano Player) (Player, bool) {
	if won[Player0] >= 2 {
		return Player0, true
	}
	if won[Player1] >= 2 {
		return Player1, true
	}
	if len(results) < 2 {
		return 0, false
	}

	last, hasLast := lastDecided(results)
	if len(results) == 2 {
		// One win and one tie settles it; 1-1 and two ties go to the third trick.
		if ties == 1 && hasLast {
			return last, true
		}
		return 0, false
	}

	switch {
	case won[Player0] > won[Player1]:
		return Player0, true
	case won[Player1] > won[Player0]:
		return Player1, true
	case ties == 3:
		return mano, true
	case hasLast:
		return last, true
	}
	return mano, true
}

func lastDecided(results []TrickResult) (Player, bool) {
	for i := len(results) - 1; i >= 0; i-- {
		if p, ok := results[i].Winner(); ok {
			return p, true
		}
	}
	return 0, false
}

func (g *Game) finishHand(winner Player, points int, forfeited bool) {
	g.lastHand = &HandResult{
		Winner:    winner,
		Points:    points,
		Forfeited: forfeited,
		Tricks:    append([]TrickResult(nil), g.deal.Results...),
		Plays:     append([]Play(nil), g.deal.Table...),
	}
	g.logger.Debug("hand over", "winner", winner, "points", points, "forfeited", forfeited)
}

func (g *Game) checkMatchOver() (Player, bool) {
	if g.match.Winner != nil {
		return *g.match.Winner, true
	}
	for _, p := range []Player{Player0, Player1} {
		if g.match.Scores[p] >= MatchTarget {
			winner := p
			g.match.Winner = &winner
			return winner, true
		}
	}
	return 0, false
}
