package bot

import (
	"github.com/lox/ginforbots/internal/analysis"
	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
)

// BasicBot plays the simplest sound strategy: always draw from the
// deck, discard whatever leaves the least deadwood, knock at every
// opportunity. A good opponent for first tests.
type BasicBot struct{}

// NewBasicBot creates a BasicBot.
func NewBasicBot() *BasicBot {
	return &BasicBot{}
}

func (b *BasicBot) Name() string { return "BasicBot" }

func (b *BasicBot) DrawDecision(view game.View) game.DrawChoice {
	return game.DrawDeck
}

func (b *BasicBot) DiscardDecision(view game.View) deck.Card {
	return analysis.BestDiscard(view.Hand)
}

func (b *BasicBot) KnockDecision(view game.View) bool {
	return true
}
