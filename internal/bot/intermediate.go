package bot

import (
	"github.com/lox/ginforbots/internal/analysis"
	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/rules"
)

// intermediateKnockThreshold keeps knocks conservative to reduce the
// undercut risk.
const intermediateKnockThreshold = 5

// IntermediateBot adds positional awareness on top of BasicBot: it
// evaluates the discard pile before drawing, tracks seen discards to
// rate its own discards, and only knocks with low deadwood. It
// implements the optional Observer hooks and resets its tracking at
// every game start, so a single instance can be reused across games.
type IntermediateBot struct {
	seenDiscards    analysis.CardSet
	lastDiscardLen  int
	drewFromDiscard *deck.Card
}

// NewIntermediateBot creates an IntermediateBot.
func NewIntermediateBot() *IntermediateBot {
	return &IntermediateBot{seenDiscards: make(analysis.CardSet)}
}

func (b *IntermediateBot) Name() string { return "IntermediateBot" }

func (b *IntermediateBot) OnGameStart(player int, view game.View) {
	b.seenDiscards = analysis.NewCardSet(view.DiscardPile)
	b.lastDiscardLen = len(view.DiscardPile)
	b.drewFromDiscard = nil
}

func (b *IntermediateBot) OnTurnEnd(view game.View) {
	b.seenDiscards.Add(view.DiscardPile...)
	b.lastDiscardLen = len(view.DiscardPile)
}

func (b *IntermediateBot) DrawDecision(view game.View) game.DrawChoice {
	top, ok := view.TopOfDiscard()
	if !ok {
		b.drewFromDiscard = nil
		return game.DrawDeck
	}

	// Take the discard only when it clearly improves the hand.
	currentDW := rules.Deadwood(view.Hand)
	ifTake := analysis.EvaluateDiscardDraw(view.Hand, top)
	if ifTake < currentDW-2 {
		drawn := top
		b.drewFromDiscard = &drawn
		return game.DrawDiscard
	}

	b.drewFromDiscard = nil
	return game.DrawDeck
}

func (b *IntermediateBot) DiscardDecision(view game.View) deck.Card {
	hand := view.Hand
	unmelded := rules.UnmeldedCards(hand)

	candidates := unmelded
	if len(candidates) == 0 {
		candidates = hand
	}
	if b.drewFromDiscard != nil {
		filtered := make([]deck.Card, 0, len(candidates))
		for _, c := range candidates {
			if c != *b.drewFromDiscard {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			for _, c := range hand {
				if c != *b.drewFromDiscard {
					candidates = append(candidates, c)
				}
			}
		}
	}

	// Prefer high deadwood, with a bonus for ranks already seen in the
	// pile: the opponent is less likely to need those.
	best := candidates[0]
	bestScore := -1
	for _, card := range candidates {
		score := card.Points()
		for seen := range b.seenDiscards {
			if seen.Rank == card.Rank {
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = card
		}
	}
	return best
}

func (b *IntermediateBot) KnockDecision(view game.View) bool {
	dw := rules.Deadwood(view.Hand)
	if dw == 0 {
		return true
	}
	return dw <= intermediateKnockThreshold
}
