// Package observation flattens what one seat sees into a fixed numeric
// vector for learning agents.
package observation

import (
	"log/slog"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
)

// Size is the number of slots in a Vector.
const Size = 13

// Slot offsets.
const (
	MyCards       = 0 // three slots, trick rank of each held card, 0 when empty
	OpponentCards = 3 // three slots, trick rank of each card the opponent played
	MyScore       = 6
	OpponentScore = 7
	Trick         = 8
	MyTurn        = 9
	TrucoLevel    = 10
	EnvidoLevel   = 11
	Mano          = 12
)

// Vector is one encoded observation.
type Vector [Size]float32

var slotNames = [Size]string{
	"card_1", "card_2", "card_3",
	"opp_card_1", "opp_card_2", "opp_card_3",
	"score", "opp_score", "trick", "my_turn", "truco", "envido", "mano",
}

// Low and High bound every slot.
var (
	Low  = Vector{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}
	High = Vector{14, 14, 14, 14, 14, 14, engine.MatchTarget, engine.MatchTarget, 3, 1, 3, 3, 1}
)

// Encode builds the vector for v. Scores are clamped to the match target.
func Encode(v engine.View) Vector {
	var obs Vector
	for i, c := range v.Hand {
		if i == 3 {
			break
		}
		obs[MyCards+i] = float32(engine.TrickRank(c))
	}
	for i, c := range v.OpponentPlayed() {
		if i == 3 {
			break
		}
		obs[OpponentCards+i] = float32(engine.TrickRank(c))
	}
	obs[MyScore] = float32(min(v.Scores[0], engine.MatchTarget))
	obs[OpponentScore] = float32(min(v.Scores[1], engine.MatchTarget))
	obs[Trick] = float32(v.Trick)
	obs[MyTurn] = boolSlot(v.MyTurn)
	obs[TrucoLevel] = float32(v.TrucoLevel)
	obs[EnvidoLevel] = float32(v.EnvidoLevel)
	obs[Mano] = boolSlot(v.Mano)
	return obs
}

// Normalized scales every slot into [0, 1] using Low and High.
func (o Vector) Normalized() Vector {
	var out Vector
	for i, x := range o {
		out[i] = (x - Low[i]) / (High[i] - Low[i])
	}
	return out
}

// LogValue lets a Vector be passed straight to slog.
func (o Vector) LogValue() slog.Value {
	attrs := make([]slog.Attr, Size)
	for i, x := range o {
		attrs[i] = slog.Float64(slotNames[i], float64(x))
	}
	return slog.GroupValue(attrs...)
}

func boolSlot(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
