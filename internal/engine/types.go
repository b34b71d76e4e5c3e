package engine

import "strconv"

// Suit represents a card suit of the Spanish deck.
type Suit int

const (
	Espada Suit = iota
	Basto
	Oro
	Copa
)

var suitNames = [...]string{"espada", "basto", "oro", "copa"}

func (s Suit) String() string {
	if s < Espada || s > Copa {
		return "?"
	}
	return suitNames[s]
}

// Rank is the printed number of a card: 1-7, 10, 11 or 12.
type Rank int

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return strconv.Itoa(int(c.Rank)) + " de " + c.Suit.String()
}

// Player identifies one of the two seats.
type Player int

const (
	Player0 Player = iota
	Player1
)

// Other returns the opposing seat.
func (p Player) Other() Player { return 1 - p }

func (p Player) String() string {
	if p == Player0 {
		return "J0"
	}
	return "J1"
}

// Action is an index into the discrete action space.
type Action int

const (
	ActionPlayCard1    Action = iota // jugar carta 1
	ActionPlayCard2                  // jugar carta 2
	ActionPlayCard3                  // jugar carta 3
	ActionEnvido                     // envido
	ActionEnvidoEnvido               // envido envido
	ActionRealEnvido                 // real envido
	ActionFaltaEnvido                // falta envido
	ActionTruco                      // truco
	ActionRetruco                    // retruco
	ActionValeCuatro                 // vale cuatro
	ActionQuiero                     // quiero
	ActionNoQuiero                   // no quiero
	ActionIrAlMazo                   // ir al mazo

	NumActions int = iota
)

var actionNames = [...]string{
	"PLAY_CARD_1", "PLAY_CARD_2", "PLAY_CARD_3",
	"ENVIDO", "ENVIDO_ENVIDO", "REAL_ENVIDO", "FALTA_ENVIDO",
	"TRUCO", "RETRUCO", "VALE_CUATRO",
	"QUIERO", "NO_QUIERO", "IR_AL_MAZO",
}

func (a Action) String() string {
	if !a.Valid() {
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
	return actionNames[a]
}

// Valid reports whether a is inside the action space.
func (a Action) Valid() bool { return a >= 0 && int(a) < NumActions }

// IsPlayCard reports whether a plays a card from the hand.
func (a Action) IsPlayCard() bool { return a >= ActionPlayCard1 && a <= ActionPlayCard3 }

// IsEnvidoCall reports whether a is one of the four envido escalations.
func (a Action) IsEnvidoCall() bool { return a >= ActionEnvido && a <= ActionFaltaEnvido }

// IsTrucoCall reports whether a is one of the three truco escalations.
func (a Action) IsTrucoCall() bool { return a >= ActionTruco && a <= ActionValeCuatro }

// Mask holds the legality of every action, indexed by Action.
type Mask [NumActions]bool

// Legal lists the actions allowed by the mask in index order.
func (m Mask) Legal() []Action {
	var out []Action
	for i, ok := range m {
		if ok {
			out = append(out, Action(i))
		}
	}
	return out
}

// Any reports whether at least one action is allowed.
func (m Mask) Any() bool {
	for _, ok := range m {
		if ok {
			return true
		}
	}
	return false
}

// Play is a card on the table together with its owner.
type Play struct {
	Player Player
	Card   Card
}

// TrickResult is the outcome of one completed trick.
type TrickResult int

const (
	TrickPlayer0 TrickResult = iota
	TrickPlayer1
	TrickTie
)

func (r TrickResult) String() string {
	switch r {
	case TrickPlayer0:
		return "J0"
	case TrickPlayer1:
		return "J1"
	default:
		return "parda"
	}
}

// Winner returns the winning seat, false on a tie.
func (r TrickResult) Winner() (Player, bool) {
	switch r {
	case TrickPlayer0:
		return Player0, true
	case TrickPlayer1:
		return Player1, true
	}
	return 0, false
}

func trickWonBy(p Player) TrickResult {
	if p == Player0 {
		return TrickPlayer0
	}
	return TrickPlayer1
}

// Phase is the derived position of the deal in its state machine.
type Phase int

const (
	PhaseDealt Phase = iota
	PhaseTrickPlay
	PhaseEnvidoPending
	PhaseTrucoPending
	PhaseMatchOver
)

var phaseNames = [...]string{"dealt", "trick play", "envido pending", "truco pending", "match over"}

func (p Phase) String() string {
	if p < PhaseDealt || p > PhaseMatchOver {
		return "?"
	}
	return phaseNames[p]
}

// Outcome is what Apply reports back for one action.
type Outcome struct {
	// Reward is measured from Player0's point of view.
	Reward    float64
	HandOver  bool
	MatchOver bool
}

// RewardFor returns the reward seen from p's side of the table.
func (o Outcome) RewardFor(p Player) float64 {
	if p == Player0 {
		return o.Reward
	}
	return -o.Reward
}

// HandResult summarizes the last finished deal.
type HandResult struct {
	Winner    Player
	Points    int
	Forfeited bool
	Tricks    []TrickResult
	// Plays are the cards that reached the table before the hand ended.
	Plays []Play
}

// DealState holds everything that is reset between deals.
type DealState struct {
	Hands [2][]Card
	Table []Play
	Trick int
	Mano  Player
	// ToAct is the trick-play actor. Pending calls override it, see CurrentActor.
	ToAct Player

	Results []TrickResult
	Won     [2]int
	Ties    int

	Envido EnvidoState
	Truco  TrucoState
	// Suspended is set when an envido call interrupted a pending truco call.
	Suspended *Suspension
}

// MatchState persists across deals.
type MatchState struct {
	Scores [2]int
	Winner *Player
}
