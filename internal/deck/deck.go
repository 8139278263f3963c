package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

// Deck represents a shuffled 52-card deck. The random source is always
// supplied by the caller so that shuffles are reproducible and no code
// path can reach a process-global generator.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a new 52-card deck shuffled with the provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for i := range 52 {
		d.cards = append(d.cards, FromIndex(i))
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmpty
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Deal removes and returns n cards from the top. The request is
// validated before any card is removed.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards, only %d remain: %w", n, len(d.cards), ErrEmpty)
	}
	cards := make([]Card, 0, n)
	for range n {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards. It exists for invariant
// checks and tests; gameplay code must not inspect deck order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
