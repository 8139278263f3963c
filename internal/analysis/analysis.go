// Package analysis provides hand-evaluation helpers for bot authors:
// discard selection, draw evaluation, card counting, and safety
// scoring. Everything here is built on the rules package's optimal
// meld partitioning.
package analysis

import (
	"fmt"

	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/rules"
)

// CardSet is a presence set over the 52-card universe.
type CardSet map[deck.Card]bool

// NewCardSet builds a set from one or more card slices.
func NewCardSet(groups ...[]deck.Card) CardSet {
	s := make(CardSet)
	for _, cards := range groups {
		for _, c := range cards {
			s[c] = true
		}
	}
	return s
}

// Add inserts cards into the set.
func (s CardSet) Add(cards ...deck.Card) {
	for _, c := range cards {
		s[c] = true
	}
}

// DeadwoodAfterDiscard returns the deadwood of the hand with one card
// removed. Evaluating it for every held card is how bots pick their
// discard.
func DeadwoodAfterDiscard(hand []deck.Card, card deck.Card) (int, error) {
	remaining, err := without(hand, card)
	if err != nil {
		return 0, err
	}
	return rules.Deadwood(remaining), nil
}

// BestDiscard returns the card whose removal leaves the lowest
// deadwood. Ties go to the earliest card in hand order, keeping the
// choice deterministic.
func BestDiscard(hand []deck.Card) deck.Card {
	best := hand[0]
	bestDW := -1
	for _, c := range hand {
		dw, err := DeadwoodAfterDiscard(hand, c)
		if err != nil {
			continue
		}
		if bestDW < 0 || dw < bestDW {
			bestDW = dw
			best = c
		}
	}
	return best
}

// EvaluateDiscardDraw returns the best deadwood achievable by picking
// up the given discard and then discarding optimally. The card just
// picked up is excluded from the discard candidates, per the rules.
// Compare against the current deadwood to decide where to draw.
func EvaluateDiscardDraw(hand []deck.Card, discard deck.Card) int {
	extended := append(append([]deck.Card(nil), hand...), discard)
	best := -1
	for _, c := range hand {
		dw, err := DeadwoodAfterDiscard(extended, c)
		if err != nil {
			continue
		}
		if best < 0 || dw < best {
			best = dw
		}
	}
	return best
}

// CardDeadwoodContribution returns how much holding the card costs:
// deadwood with it minus deadwood without it.
func CardDeadwoodContribution(hand []deck.Card, card deck.Card) (int, error) {
	remaining, err := without(hand, card)
	if err != nil {
		return 0, err
	}
	return rules.Deadwood(hand) - rules.Deadwood(remaining), nil
}

// IsProvablySafeDiscard reports whether the opponent cannot use the
// card in any meld, given the cards known to be out of their reach.
// seen should contain the player's hand plus the discard pile; myHand,
// when non-nil, is subtracted since the opponent could still acquire
// cards we merely hold.
//
// Set-safe: at least 2 of the other 3 same-rank cards are unavailable.
// Run-safe: every 3-card run through this card is blocked by at least
// one unavailable card.
func IsProvablySafeDiscard(card deck.Card, seen, myHand CardSet) bool {
	unavailable := make(CardSet, len(seen))
	for c := range seen {
		if myHand != nil && myHand[c] && c != card {
			continue
		}
		unavailable[c] = true
	}
	unavailable[card] = true

	sameRank := 0
	for c := range unavailable {
		if c.Rank == card.Rank && c != card {
			sameRank++
		}
	}
	setSafe := sameRank >= 2

	cv := int(card.Rank)
	runSafe := true
	for start := cv - 2; start <= cv; start++ {
		if start < 1 || start+2 > 13 {
			continue
		}
		blocked := false
		for v := start; v <= start+2; v++ {
			if v == cv {
				continue
			}
			if unavailable[deck.NewCard(deck.Rank(v), card.Suit)] {
				blocked = true
				break
			}
		}
		if !blocked {
			runSafe = false
			break
		}
	}

	return setSafe && runSafe
}

// CountMeldOuts counts the unseen cards that would complete a meld
// involving the given card. Cards with more outs are worth keeping.
func CountMeldOuts(card deck.Card, hand []deck.Card, seen CardSet) int {
	outs := make(CardSet)
	others, _ := without(hand, card)

	held := NewCardSet(hand)
	unseen := func(c deck.Card) bool { return !seen[c] && !held[c] }

	// Set outs: holding a pair means any unseen same-rank card helps.
	sameRank := 0
	for _, c := range others {
		if c.Rank == card.Rank {
			sameRank++
		}
	}
	if sameRank >= 1 {
		for s := deck.Clubs; s <= deck.Spades; s++ {
			c := deck.NewCard(card.Rank, s)
			if c != card && unseen(c) {
				outs[c] = true
			}
		}
	}

	// Run outs: look at same-suit neighbours within two ranks.
	cv := int(card.Rank)
	suitVals := make(map[int]bool)
	for _, c := range others {
		if c.Suit == card.Suit {
			suitVals[int(c.Rank)] = true
		}
	}
	addOut := func(v int) {
		if v >= 1 && v <= 13 {
			c := deck.NewCard(deck.Rank(v), card.Suit)
			if unseen(c) {
				outs[c] = true
			}
		}
	}
	if suitVals[cv-1] {
		addOut(cv - 2)
		addOut(cv + 1)
	}
	if suitVals[cv+1] {
		addOut(cv - 1)
		addOut(cv + 2)
	}
	if suitVals[cv-2] && !suitVals[cv-1] {
		addOut(cv - 1)
	}
	if suitVals[cv+2] && !suitVals[cv+1] {
		addOut(cv + 1)
	}

	return len(outs)
}

// DiscardSafety rates how safe discarding the card is, based on what
// the opponent has shown no interest in and how blocked its melds are.
// Higher is safer.
func DiscardSafety(card deck.Card, opponentDiscards []deck.Card, seen CardSet) float64 {
	safety := 0.0

	for _, disc := range opponentDiscards {
		if disc.Rank == card.Rank {
			safety += 5.0
		}
		if disc.Suit == card.Suit && absInt(int(disc.Rank)-int(card.Rank)) <= 2 {
			safety += 3.0
		}
	}

	seenSameRank := 0
	for c := range seen {
		if c.Rank == card.Rank && c != card {
			seenSameRank++
		}
	}
	safety += float64(seenSameRank) * 1.5

	return safety
}

// CountNearMelds counts groupings one card short of a meld: pairs, and
// same-suit rank-adjacent card pairs. Each adjacency counts once.
func CountNearMelds(hand []deck.Card) int {
	near := 0

	var rankCounts [14]int
	for _, c := range hand {
		rankCounts[c.Rank]++
	}
	for _, n := range rankCounts {
		if n == 2 {
			near++
		}
	}

	held := NewCardSet(hand)
	for _, c := range hand {
		if c.Rank < deck.King && held[deck.NewCard(c.Rank+1, c.Suit)] {
			near++
		}
	}
	return near
}

// HandStrength scores a hand from 0 (hopeless) to 1 (gin), blending
// deadwood, formed melds, and near-meld potential.
func HandStrength(hand []deck.Card) float64 {
	if len(hand) == 0 {
		return 0
	}

	dw := rules.Deadwood(hand)
	if dw == 0 {
		return 1
	}

	base := 1 - float64(dw)/100
	if base < 0 {
		base = 0
	}

	melds, _ := rules.BestMelds(hand)
	strength := base + float64(len(melds))*0.1 + float64(CountNearMelds(hand))*0.05

	return min(1, max(0, strength))
}

func without(hand []deck.Card, card deck.Card) ([]deck.Card, error) {
	for i, c := range hand {
		if c == card {
			out := make([]deck.Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			return append(out, hand[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("card %s is not in the hand", card)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
