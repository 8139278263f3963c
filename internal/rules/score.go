package rules

import "github.com/lox/ginforbots/internal/deck"

// ResultKind classifies how a hand ended.
type ResultKind string

const (
	ResultGin      ResultKind = "gin"
	ResultKnock    ResultKind = "knock"
	ResultUndercut ResultKind = "undercut"
	ResultDraw     ResultKind = "draw"
)

// ScoreHand scores a completed hand without layoffs. Points are positive
// when the knocker wins and negative on an undercut; callers flip the
// attribution on a negative score.
//
// The game engine uses ScoreWithLayoffs instead; this raw comparison
// exists for strategy evaluation.
func ScoreHand(knockerHand, defenderHand []deck.Card, gin bool) (int, ResultKind) {
	knockerDW := Deadwood(knockerHand)
	defenderDW := Deadwood(defenderHand)

	if gin {
		return defenderDW + GinBonus, ResultGin
	}
	if defenderDW <= knockerDW {
		return -(knockerDW - defenderDW + GinBonus), ResultUndercut
	}
	return defenderDW - knockerDW, ResultKnock
}

// CanLayOff reports whether a card legally extends an existing meld:
// either the fourth card of a set, or one more rank on either end of a
// run in the same suit.
func CanLayOff(card deck.Card, meld Meld) bool {
	extended := append(append(Meld(nil), meld...), card)
	return IsValidSet(extended) || IsValidRun(extended)
}

// ApplyLayoffs lays the defender's unmelded cards off onto the knocker's
// melds wherever legal, iterating to a fixed point since a freshly laid
// card can open a spot for another (extending a run two ranks deep).
// The melds passed in are not mutated; extended copies are returned
// along with the cards that could not be laid off.
func ApplyLayoffs(knockerMelds []Meld, defenderUnmelded []deck.Card) ([]Meld, []deck.Card) {
	melds := copyMelds(knockerMelds)
	remaining := append([]deck.Card(nil), defenderUnmelded...)

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(remaining); i++ {
			card := remaining[i]
			for j := range melds {
				if CanLayOff(card, melds[j]) {
					melds[j] = append(melds[j], card)
					remaining = append(remaining[:i], remaining[i+1:]...)
					i--
					changed = true
					break
				}
			}
		}
	}
	return melds, remaining
}

// ScoreWithLayoffs scores a knock after giving the defender credit for
// laying off unmelded cards onto the knocker's melds. Layoffs are not
// permitted against gin. Equal deadwood after layoffs counts as an
// undercut. Sign convention matches ScoreHand.
func ScoreWithLayoffs(knockerHand, defenderHand []deck.Card, gin bool) (int, ResultKind) {
	if gin {
		return Deadwood(defenderHand) + GinBonus, ResultGin
	}

	knockerMelds, knockerUnmelded := BestMelds(knockerHand)
	knockerDW := pointSum(knockerUnmelded)

	_, defenderUnmelded := BestMelds(defenderHand)
	_, remaining := ApplyLayoffs(knockerMelds, defenderUnmelded)
	defenderDW := pointSum(remaining)

	if defenderDW <= knockerDW {
		return -(knockerDW - defenderDW + GinBonus), ResultUndercut
	}
	return defenderDW - knockerDW, ResultKnock
}
