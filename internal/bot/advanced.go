package bot

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/ginforbots/internal/analysis"
	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/rules"
)

// AdvancedBot layers several edges on top of the simpler strategies:
// aggressive knocking (captures games before opponents improve),
// card counting for provably safe discards, live-out counting for
// meld potential, and tracking of opponent pickups to avoid feeding
// their hand.
type AdvancedBot struct {
	logger *log.Logger

	drewFromDiscard  *deck.Card
	seenCards        analysis.CardSet
	opponentPicks    []deck.Card
	opponentDiscards []deck.Card
	prevDiscardTop   *deck.Card
	prevDiscardLen   int
}

// NewAdvancedBot creates an AdvancedBot. A nil logger disables debug
// output.
func NewAdvancedBot(logger *log.Logger) *AdvancedBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AdvancedBot{
		logger:    logger.WithPrefix("advanced-bot"),
		seenCards: make(analysis.CardSet),
	}
}

func (b *AdvancedBot) Name() string { return "AdvancedBot" }

func (b *AdvancedBot) OnGameStart(player int, view game.View) {
	b.drewFromDiscard = nil
	b.seenCards = analysis.NewCardSet(view.Hand, view.DiscardPile)
	b.opponentPicks = nil
	b.opponentDiscards = nil
	b.prevDiscardLen = len(view.DiscardPile)
	b.prevDiscardTop = nil
	if top, ok := view.TopOfDiscard(); ok {
		b.prevDiscardTop = &top
	}
}

func (b *AdvancedBot) OnTurnEnd(view game.View) {
	b.seenCards.Add(view.Hand...)
	b.seenCards.Add(view.DiscardPile...)

	// After an opponent turn, a pile that did not grow means they took
	// the top discard; a pile that grew means the new top is what they
	// threw away.
	if !view.MyTurn {
		if len(view.DiscardPile) <= b.prevDiscardLen && b.prevDiscardTop != nil {
			b.opponentPicks = append(b.opponentPicks, *b.prevDiscardTop)
		} else if top, ok := view.TopOfDiscard(); ok && len(view.DiscardPile) > b.prevDiscardLen {
			b.opponentDiscards = append(b.opponentDiscards, top)
		}
	}

	b.prevDiscardTop = nil
	if top, ok := view.TopOfDiscard(); ok {
		b.prevDiscardTop = &top
	}
	b.prevDiscardLen = len(view.DiscardPile)
}

func (b *AdvancedBot) DrawDecision(view game.View) game.DrawChoice {
	top, ok := view.TopOfDiscard()
	if !ok {
		b.drewFromDiscard = nil
		return game.DrawDeck
	}

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

func (b *AdvancedBot) DiscardDecision(view game.View) deck.Card {
	hand := view.Hand
	excluded := b.drewFromDiscard
	b.drewFromDiscard = nil

	melds, _ := rules.BestMelds(hand)
	melded := make(analysis.CardSet)
	for _, m := range melds {
		melded.Add(m...)
	}

	candidates := make([]deck.Card, 0, len(hand))
	for _, c := range hand {
		if excluded == nil || c != *excluded {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = hand
	}

	myHand := analysis.NewCardSet(hand)
	currentDW := rules.Deadwood(hand)

	best := candidates[0]
	bestScore := 0.0
	for i, card := range candidates {
		score := 0.0

		afterDW, err := analysis.DeadwoodAfterDiscard(hand, card)
		if err != nil {
			continue
		}
		score += float64(currentDW-afterDW) * 10

		if melded[card] {
			// Never break melds.
			score -= 50
		} else {
			outs := analysis.CountMeldOuts(card, hand, b.seenCards)
			score -= float64(outs) * 8

			if analysis.IsProvablySafeDiscard(card, b.seenCards, myHand) {
				score += 20
			}
		}

		score += analysis.DiscardSafety(card, b.opponentDiscards, b.seenCards) * 4

		// Never hand the opponent a card near something they picked up.
		for _, pick := range b.opponentPicks {
			diff := int(pick.Rank) - int(card.Rank)
			if diff < 0 {
				diff = -diff
			}
			if pick.Rank == card.Rank || (pick.Suit == card.Suit && diff <= 2) {
				score -= 6
			}
		}

		score += float64(card.Points()) * 0.3

		if i == 0 || score > bestScore {
			bestScore = score
			best = card
		}
	}

	b.logger.Debug("discard chosen", "card", best, "score", bestScore)
	return best
}

func (b *AdvancedBot) KnockDecision(view game.View) bool {
	// Knock whenever eligible. Winning games before the opponent can
	// improve outweighs the occasional undercut.
	return true
}
