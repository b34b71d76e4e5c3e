package player

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
)

func card(r engine.Rank, s engine.Suit) engine.Card { return engine.Card{Rank: r, Suit: s} }

func mask(actions ...engine.Action) engine.Mask {
	var m engine.Mask
	for _, a := range actions {
		m[a] = true
	}
	return m
}

func TestRandomBotPicksLegalActions(t *testing.T) {
	b := NewRandomBot(rand.New(rand.NewSource(1)))
	m := mask(engine.ActionPlayCard2, engine.ActionTruco, engine.ActionIrAlMazo)
	seen := map[engine.Action]bool{}
	for i := 0; i < 200; i++ {
		a, err := b.ChooseAction(engine.View{}, m)
		if err != nil {
			t.Fatalf("choose: %v", err)
		}
		if !m[a] {
			t.Fatalf("illegal pick %v", a)
		}
		seen[a] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all legal actions to come up, saw %v", seen)
	}
	if _, err := b.ChooseAction(engine.View{}, engine.Mask{}); !errors.Is(err, ErrNoLegalAction) {
		t.Fatalf("expected ErrNoLegalAction, got %v", err)
	}
}

func TestRationalBotDecisions(t *testing.T) {
	type tc struct {
		name string
		view engine.View
		mask engine.Mask
		want engine.Action
	}
	answer := mask(engine.ActionQuiero, engine.ActionNoQuiero, engine.ActionIrAlMazo)
	cases := []tc{
		{
			name: "declines truco with weak cards",
			view: engine.View{TrucoPending: true, Hand: []engine.Card{card(4, engine.Oro), card(5, engine.Copa), card(10, engine.Basto)}},
			mask: answer,
			want: engine.ActionNoQuiero,
		},
		{
			name: "accepts truco with a playable hand",
			view: engine.View{TrucoPending: true, Hand: []engine.Card{card(3, engine.Oro), card(5, engine.Copa)}},
			mask: answer,
			want: engine.ActionQuiero,
		},
		{
			name: "raises envido with 33 as mano",
			view: engine.View{EnvidoPending: true, Mano: true, Hand: []engine.Card{card(7, engine.Espada), card(6, engine.Espada), card(4, engine.Oro)}},
			mask: mask(engine.ActionEnvidoEnvido, engine.ActionRealEnvido, engine.ActionFaltaEnvido, engine.ActionQuiero, engine.ActionNoQuiero),
			want: engine.ActionFaltaEnvido,
		},
		{
			name: "accepts envido above 25",
			view: engine.View{EnvidoPending: true, Hand: []engine.Card{card(4, engine.Espada), card(3, engine.Espada), card(12, engine.Oro)}},
			mask: mask(engine.ActionRealEnvido, engine.ActionQuiero, engine.ActionNoQuiero),
			want: engine.ActionQuiero,
		},
		{
			name: "declines a low envido",
			view: engine.View{EnvidoPending: true, Hand: []engine.Card{card(4, engine.Espada), card(3, engine.Oro), card(12, engine.Copa)}},
			mask: mask(engine.ActionRealEnvido, engine.ActionQuiero, engine.ActionNoQuiero),
			want: engine.ActionNoQuiero,
		},
		{
			name: "calls envido with 28",
			view: engine.View{Trick: 1, Hand: []engine.Card{card(5, engine.Basto), card(3, engine.Basto), card(12, engine.Copa)}},
			mask: mask(engine.ActionPlayCard1, engine.ActionPlayCard2, engine.ActionPlayCard3, engine.ActionEnvido, engine.ActionRealEnvido, engine.ActionTruco),
			want: engine.ActionEnvido,
		},
		{
			name: "calls truco after a won trick with a top card",
			view: engine.View{Trick: 2, TricksWon: [2]int{1, 0}, Hand: []engine.Card{card(1, engine.Espada), card(4, engine.Copa)}},
			mask: mask(engine.ActionPlayCard1, engine.ActionPlayCard2, engine.ActionTruco),
			want: engine.ActionTruco,
		},
		{
			name: "beats a led card as cheaply as possible",
			view: engine.View{
				Trick: 1,
				Hand:  []engine.Card{card(1, engine.Espada), card(3, engine.Oro), card(4, engine.Copa)},
				Table: []engine.Play{{Player: engine.Player0, Card: card(12, engine.Oro)}},
				Seat:  engine.Player1,
			},
			mask: mask(engine.ActionPlayCard1, engine.ActionPlayCard2, engine.ActionPlayCard3),
			want: engine.ActionPlayCard2,
		},
		{
			name: "leads the first trick with the strongest card",
			view: engine.View{Trick: 1, Hand: []engine.Card{card(4, engine.Copa), card(2, engine.Oro), card(11, engine.Basto)}},
			mask: mask(engine.ActionPlayCard1, engine.ActionPlayCard2, engine.ActionPlayCard3),
			want: engine.ActionPlayCard2,
		},
		{
			name: "leads later tricks with the weakest card",
			view: engine.View{
				Trick: 2,
				Hand:  []engine.Card{card(2, engine.Oro), card(4, engine.Copa)},
				Table: []engine.Play{{Player: engine.Player0, Card: card(3, engine.Oro)}, {Player: engine.Player1, Card: card(5, engine.Oro)}},
			},
			mask: mask(engine.ActionPlayCard1, engine.ActionPlayCard2),
			want: engine.ActionPlayCard2,
		},
	}
	b := NewRationalBot(nil)
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ChooseAction(tt.view, tt.mask)
			if err != nil {
				t.Fatalf("choose: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "random" || names[1] != "rational" {
		t.Fatalf("names: %v", names)
	}
	for _, name := range names {
		p, err := New(name, rand.New(rand.NewSource(1)))
		if err != nil || p == nil {
			t.Fatalf("new %s: %v", name, err)
		}
	}
	if _, err := New("minimax", nil); err == nil {
		t.Fatalf("expected unknown agent error")
	}
}

// TestBotsFinishMatches runs every registered agent through whole matches
// and checks each choice is legal.
func TestBotsFinishMatches(t *testing.T) {
	for _, a0 := range Names() {
		for _, a1 := range Names() {
			t.Run(a0+"_vs_"+a1, func(t *testing.T) {
				rng := rand.New(rand.NewSource(9))
				g := engine.NewGame(engine.WithRand(rng))
				g.ResetMatch()
				p0, _ := New(a0, rng)
				p1, _ := New(a1, rng)
				seats := [2]Player{p0, p1}
				for step := 0; !g.Over(); step++ {
					if step > 5000 {
						t.Fatalf("match did not finish")
					}
					seat := g.CurrentActor()
					a, err := seats[seat].ChooseAction(g.View(seat), g.ActionMask(seat))
					if err != nil {
						t.Fatalf("choose: %v", err)
					}
					if _, err := g.Apply(a, seat); err != nil {
						t.Fatalf("%s chose rejected %v: %v", seats[seat].Name(), a, err)
					}
				}
			})
		}
	}
}
