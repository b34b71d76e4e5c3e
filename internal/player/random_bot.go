package player

import (
	"math/rand"
	"strconv"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
)

// RandomBot picks uniformly among the legal actions.
type RandomBot struct {
	BotName string
	rng     *rand.Rand
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(b.rng.Intn(100))
	}
	return b.BotName
}

func (b *RandomBot) ChooseAction(_ engine.View, mask engine.Mask) (engine.Action, error) {
	legal := mask.Legal()
	if len(legal) == 0 {
		return 0, ErrNoLegalAction
	}
	return legal[b.rng.Intn(len(legal))], nil
}

func NewRandomBot(rng *rand.Rand) Player {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomBot{rng: rng}
}
