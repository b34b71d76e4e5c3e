package player

import (
	"math/rand"
	"slices"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
)

// Thresholds on the bot's own envido total.
const (
	envidoRaiseAbove  = 30
	envidoAcceptAbove = 25
	envidoCallAbove   = 27
	envidoBest        = 33
)

// RationalBot plays a fixed heuristic: it answers and calls envido by its
// own total, calls truco once it has a trick and a top card, and spends
// the cheapest card that wins the trick.
type RationalBot struct {
	BotName string
}

func (b *RationalBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RationalBot"
	}
	return b.BotName
}

func (b *RationalBot) ChooseAction(v engine.View, mask engine.Mask) (engine.Action, error) {
	legal := mask.Legal()
	if len(legal) == 0 {
		return 0, ErrNoLegalAction
	}
	envido := engine.BestEnvido(slices.Concat(v.Hand, v.MyPlayed()))

	if v.TrucoPending {
		if allWeak(v.Hand) && mask[engine.ActionNoQuiero] {
			return engine.ActionNoQuiero, nil
		}
		if mask[engine.ActionQuiero] {
			return engine.ActionQuiero, nil
		}
	}

	if v.EnvidoPending {
		raise, ok := bestEnvidoRaise(mask)
		if ok && (envido > envidoRaiseAbove || (envido == envidoBest && v.Mano)) {
			return raise, nil
		}
		if envido > envidoAcceptAbove && mask[engine.ActionQuiero] {
			return engine.ActionQuiero, nil
		}
		if mask[engine.ActionNoQuiero] {
			return engine.ActionNoQuiero, nil
		}
	} else {
		if envido > envidoRaiseAbove && mask[engine.ActionRealEnvido] {
			return engine.ActionRealEnvido, nil
		}
		if envido > envidoCallAbove && mask[engine.ActionEnvido] {
			return engine.ActionEnvido, nil
		}
	}

	if mask[engine.ActionTruco] && v.TricksWon[0] > 0 && hasTopCard(v.Hand) {
		return engine.ActionTruco, nil
	}

	if a, ok := chooseCard(v, mask); ok {
		return a, nil
	}
	return legal[0], nil
}

// bestEnvidoRaise returns the highest envido escalation the mask allows.
func bestEnvidoRaise(mask engine.Mask) (engine.Action, bool) {
	for _, a := range []engine.Action{engine.ActionFaltaEnvido, engine.ActionRealEnvido, engine.ActionEnvidoEnvido} {
		if mask[a] {
			return a, true
		}
	}
	return 0, false
}

// chooseCard beats a led card with the weakest card that still wins. When
// leading it opens trick 1 with its strongest card and later tricks with
// its weakest.
func chooseCard(v engine.View, mask engine.Mask) (engine.Action, bool) {
	var slots []int
	for i := range v.Hand {
		if mask[engine.ActionPlayCard1+engine.Action(i)] {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		return 0, false
	}
	rank := func(slot int) int { return engine.TrickRank(v.Hand[slot]) }

	if !v.Leading() {
		led := engine.TrickRank(v.Table[len(v.Table)-1].Card)
		best := -1
		for _, s := range slots {
			if rank(s) < led && (best < 0 || rank(s) > rank(best)) {
				best = s
			}
		}
		if best >= 0 {
			return engine.ActionPlayCard1 + engine.Action(best), true
		}
	}

	pick := slots[0]
	for _, s := range slots[1:] {
		if v.Trick == 1 && v.Leading() {
			if rank(s) < rank(pick) {
				pick = s
			}
		} else if rank(s) > rank(pick) {
			pick = s
		}
	}
	return engine.ActionPlayCard1 + engine.Action(pick), true
}

func hasTopCard(hand []engine.Card) bool {
	for _, c := range hand {
		if engine.TrickRank(c) <= 2 {
			return true
		}
	}
	return false
}

func allWeak(hand []engine.Card) bool {
	for _, c := range hand {
		if engine.TrickRank(c) < 10 {
			return false
		}
	}
	return true
}

func NewRationalBot(*rand.Rand) Player {
	return &RationalBot{}
}
