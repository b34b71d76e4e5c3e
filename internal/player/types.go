package player

import (
	"errors"
	"math/rand"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
)

// Player picks one action for its seat from what the seat can see.
type Player interface {
	Name() string
	ChooseAction(engine.View, engine.Mask) (engine.Action, error)
}

// PlayerFactory builds a fresh agent. Agents that draw randomness take it from rng.
type PlayerFactory func(rng *rand.Rand) Player

// ErrNoLegalAction is returned when an agent is asked to act with an empty mask.
var ErrNoLegalAction = errors.New("no legal action")
