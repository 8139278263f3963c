// Package rules implements Gin Rummy meld detection, optimal meld
// partitioning, deadwood calculation, and hand scoring with layoffs.
package rules

import (
	"sort"
	"strings"

	"github.com/lox/ginforbots/internal/deck"
)

// Meld is a group of 3+ cards forming either a set (same rank, distinct
// suits) or a run (consecutive ranks, same suit). Melds are derived from
// a hand on demand, never stored in game state.
type Meld []deck.Card

// String returns the meld as space-separated cards, e.g. "5♥ 5♦ 5♣".
func (m Meld) String() string {
	parts := make([]string, len(m))
	for i, c := range m {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// IsValidSet reports whether cards form a valid set: 3 or 4 cards of the
// same rank with all-distinct suits.
func IsValidSet(cards []deck.Card) bool {
	if len(cards) != 3 && len(cards) != 4 {
		return false
	}
	var suits [4]bool
	for _, c := range cards {
		if c.Rank != cards[0].Rank {
			return false
		}
		if suits[c.Suit] {
			return false
		}
		suits[c.Suit] = true
	}
	return true
}

// IsValidRun reports whether cards form a valid run: 3 or more cards of
// the same suit with consecutive ranks. Aces are low only; Q-K-A never
// forms a run.
func IsValidRun(cards []deck.Card) bool {
	if len(cards) < 3 {
		return false
	}
	ranks := make([]int, len(cards))
	for i, c := range cards {
		if c.Suit != cards[0].Suit {
			return false
		}
		ranks[i] = int(c.Rank)
	}
	sort.Ints(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// IsValidMeld reports whether cards form a valid set or run.
func IsValidMeld(cards []deck.Card) bool {
	return IsValidSet(cards) || IsValidRun(cards)
}

// FindSets enumerates every set present in the hand: all 3-card
// combinations of each rank group, plus the 4-card set when a rank
// appears four times.
func FindSets(hand []deck.Card) []Meld {
	var byRank [14][]deck.Card
	for _, c := range hand {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	var sets []Meld
	for _, cards := range byRank {
		if len(cards) < 3 {
			continue
		}
		for i := 0; i < len(cards); i++ {
			for j := i + 1; j < len(cards); j++ {
				for k := j + 1; k < len(cards); k++ {
					sets = append(sets, Meld{cards[i], cards[j], cards[k]})
				}
			}
		}
		if len(cards) == 4 {
			sets = append(sets, Meld(append([]deck.Card(nil), cards...)))
		}
	}
	return sets
}

// FindRuns enumerates every run present in the hand, including all
// overlapping windows of length 3 or more within a longer sequence.
func FindRuns(hand []deck.Card) []Meld {
	var bySuit [4][]deck.Card
	for _, c := range hand {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var runs []Meld
	for _, cards := range bySuit {
		if len(cards) < 3 {
			continue
		}
		sorted := deck.Sorted(cards)
		for start := 0; start < len(sorted); start++ {
			for end := start + 3; end <= len(sorted); end++ {
				window := sorted[start:end]
				consecutive := true
				for i := 1; i < len(window); i++ {
					if window[i].Rank != window[i-1].Rank+1 {
						consecutive = false
						break
					}
				}
				if consecutive {
					runs = append(runs, Meld(append([]deck.Card(nil), window...)))
				}
			}
		}
	}
	return runs
}

// FindAllMelds enumerates every set and run present in the hand. The
// result is a candidate list, not a partition: melds may overlap.
func FindAllMelds(hand []deck.Card) []Meld {
	return append(FindSets(hand), FindRuns(hand)...)
}
