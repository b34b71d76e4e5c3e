package engine

import "math/rand"

// DeckSize is the number of cards in the Spanish deck without 8s and 9s.
const DeckSize = 40

var ranks = []Rank{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

// trickRanks maps a card to its strength in a trick, 1 beats everything.
var trickRanks = map[Card]int{
	{1, Espada}: 1,
	{1, Basto}:  2,
	{7, Espada}: 3,
	{7, Oro}:    4,

	{3, Espada}: 5, {3, Basto}: 5, {3, Oro}: 5, {3, Copa}: 5,
	{2, Espada}: 6, {2, Basto}: 6, {2, Oro}: 6, {2, Copa}: 6,
	{1, Oro}: 7, {1, Copa}: 7,
	{12, Espada}: 8, {12, Basto}: 8, {12, Oro}: 8, {12, Copa}: 8,
	{11, Espada}: 9, {11, Basto}: 9, {11, Oro}: 9, {11, Copa}: 9,
	{10, Espada}: 10, {10, Basto}: 10, {10, Oro}: 10, {10, Copa}: 10,
	{7, Basto}: 11, {7, Copa}: 11,
	{6, Espada}: 12, {6, Basto}: 12, {6, Oro}: 12, {6, Copa}: 12,
	{5, Espada}: 13, {5, Basto}: 13, {5, Oro}: 13, {5, Copa}: 13,
	{4, Espada}: 14, {4, Basto}: 14, {4, Oro}: 14, {4, Copa}: 14,
}

// TrickRank returns the trick strength of c, 1 (strongest) to 14 (weakest).
// Unknown cards rank 0.
func TrickRank(c Card) int { return trickRanks[c] }

// EnvidoValue returns what c adds to an envido total. Face cards are worth 0.
func EnvidoValue(c Card) int {
	if c.Rank >= 1 && c.Rank <= 7 {
		return int(c.Rank)
	}
	return 0
}

// IsValid reports whether c belongs to the deck.
func (c Card) IsValid() bool {
	_, ok := trickRanks[c]
	return ok
}

// NewDeck returns the 40 cards ordered by suit then rank.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Espada; s <= Copa; s++ {
		for _, r := range ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of deck.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// compareCards returns -1 when a beats b, 1 when b beats a and 0 on a tie.
func compareCards(a, b Card) int {
	ra, rb := TrickRank(a), TrickRank(b)
	switch {
	case ra < rb:
		return -1
	case rb < ra:
		return 1
	}
	return 0
}
