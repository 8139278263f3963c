package bot

import (
	rand "math/rand/v2"

	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
)

// RandomBot makes uniformly random legal moves. It is the baseline any
// real strategy should beat consistently.
type RandomBot struct {
	rng             *rand.Rand
	drewFromDiscard *deck.Card
}

// NewRandomBot creates a bot that plays randomly using the given RNG.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) Name() string { return "RandomBot" }

func (b *RandomBot) DrawDecision(view game.View) game.DrawChoice {
	top, ok := view.TopOfDiscard()
	if ok && b.rng.IntN(2) == 0 {
		drawn := top
		b.drewFromDiscard = &drawn
		return game.DrawDiscard
	}
	b.drewFromDiscard = nil
	return game.DrawDeck
}

func (b *RandomBot) DiscardDecision(view game.View) deck.Card {
	choices := view.Hand
	if b.drewFromDiscard != nil {
		legal := make([]deck.Card, 0, len(choices))
		for _, c := range choices {
			if c != *b.drewFromDiscard {
				legal = append(legal, c)
			}
		}
		choices = legal
	}
	return choices[b.rng.IntN(len(choices))]
}

func (b *RandomBot) KnockDecision(view game.View) bool {
	return b.rng.IntN(2) == 0
}
