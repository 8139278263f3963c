package rules

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lox/ginforbots/internal/deck"
)

const (
	// KnockThreshold is the maximum deadwood with which a player may knock.
	KnockThreshold = 10

	// GinBonus is awarded for going gin, and equally as the undercut bonus.
	GinBonus = 25
)

// meldCacheSize bounds the memo of optimal partitions. Identical hand
// compositions recur heavily within a single bot decision (one
// deadwood-after-discard query per candidate card), so even a small
// cache removes most repeat searches.
const meldCacheSize = 4096

type meldResult struct {
	melds    []Meld
	unmelded []deck.Card
	deadwood int
}

var meldCache, _ = lru.New[string, meldResult](meldCacheSize)

// BestMelds finds the partition of the hand into disjoint melds that
// minimizes deadwood. It returns the chosen melds and the leftover
// unmelded cards. The search is exhaustive but deterministic: for equal
// deadwood the first partition found wins, so repeated queries on the
// same hand composition always agree.
func BestMelds(hand []deck.Card) ([]Meld, []deck.Card) {
	res := bestMelds(hand)
	return copyMelds(res.melds), append([]deck.Card(nil), res.unmelded...)
}

// Deadwood returns the minimum total point value of unmelded cards over
// all valid disjoint meld partitions of the hand.
func Deadwood(hand []deck.Card) int {
	return bestMelds(hand).deadwood
}

// UnmeldedCards returns the leftover cards of the optimal partition.
func UnmeldedCards(hand []deck.Card) []deck.Card {
	_, unmelded := BestMelds(hand)
	return unmelded
}

// IsGin reports whether the hand has zero deadwood.
func IsGin(hand []deck.Card) bool {
	return Deadwood(hand) == 0
}

// CanKnock reports whether the hand is knock-eligible (deadwood <= 10).
func CanKnock(hand []deck.Card) bool {
	return Deadwood(hand) <= KnockThreshold
}

func bestMelds(hand []deck.Card) meldResult {
	if len(hand) == 0 {
		return meldResult{}
	}

	sorted := deck.Sorted(hand)
	key := cacheKey(sorted)
	if res, ok := meldCache.Get(key); ok {
		return res
	}

	res := searchBestMelds(sorted)
	meldCache.Add(key, res)
	return res
}

// searchBestMelds performs the exhaustive backtracking search over
// disjoint subsets of the candidate melds. Hands are represented as
// 52-bit masks so disjointness checks are single AND operations.
// Candidates are only considered at or after the current index, which
// prevents revisiting the same partition in a different order.
func searchBestMelds(sorted []deck.Card) meldResult {
	total := pointSum(sorted)
	base := meldResult{
		unmelded: append([]deck.Card(nil), sorted...),
		deadwood: total,
	}

	candidates := FindAllMelds(sorted)
	if len(candidates) == 0 {
		return base
	}

	masks := make([]uint64, len(candidates))
	points := make([]int, len(candidates))
	for i, m := range candidates {
		masks[i] = maskOf(m)
		points[i] = pointSum(m)
	}

	best := base
	var chosen []int

	var search func(remaining uint64, start, dw int)
	search = func(remaining uint64, start, dw int) {
		if dw < best.deadwood {
			melds := make([]Meld, len(chosen))
			for i, idx := range chosen {
				melds[i] = append(Meld(nil), candidates[idx]...)
			}
			best = meldResult{
				melds:    melds,
				unmelded: cardsOf(remaining),
				deadwood: dw,
			}
		}
		for i := start; i < len(candidates); i++ {
			m := masks[i]
			if m&remaining != m {
				continue
			}
			chosen = append(chosen, i)
			search(remaining&^m, i+1, dw-points[i])
			chosen = chosen[:len(chosen)-1]
		}
	}
	search(maskOf(sorted), 0, total)

	return best
}

func maskOf(cards []deck.Card) uint64 {
	var mask uint64
	for _, c := range cards {
		mask |= 1 << uint(c.Index())
	}
	return mask
}

// cardsOf expands a bitmask back into cards. Bit order matches the
// canonical card order, so the result is already sorted.
func cardsOf(mask uint64) []deck.Card {
	var cards []deck.Card
	for i := 0; i < 52; i++ {
		if mask&(1<<uint(i)) != 0 {
			cards = append(cards, deck.FromIndex(i))
		}
	}
	return cards
}

func pointSum(cards []deck.Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

func cacheKey(sorted []deck.Card) string {
	b := make([]byte, len(sorted))
	for i, c := range sorted {
		b[i] = byte(c.Index())
	}
	return string(b)
}

func copyMelds(melds []Meld) []Meld {
	out := make([]Meld, len(melds))
	for i, m := range melds {
		out[i] = append(Meld(nil), m...)
	}
	return out
}
