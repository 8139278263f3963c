package rules

import (
	"reflect"
	"testing"

	"github.com/lox/ginforbots/internal/deck"
)

func TestScoreHand(t *testing.T) {
	tests := []struct {
		name     string
		knocker  string
		defender string
		gin      bool
		points   int
		kind     ResultKind
	}{
		{
			// Knocker 5, defender 20: knocker wins the difference.
			name:     "knock win",
			knocker:  "KH KD KC QS QD QC 2H 3H 4H 5S",
			defender: "6H 6D 6C 6S 9H 10H JH 7D 8C 5C",
			points:   15,
			kind:     ResultKnock,
		},
		{
			// Knocker 8, defender 5: defender undercuts for 3 + 25.
			name:     "undercut",
			knocker:  "KH KD KC QS QD QC JH JD JC 8D",
			defender: "AH AD AC 4H 4D 4C 7S 8S 9S 5C",
			points:   -28,
			kind:     ResultUndercut,
		},
		{
			// Equal deadwood goes to the defender.
			name:     "undercut on tie",
			knocker:  "KH KD KC QS QD QC JH JD JC 5D",
			defender: "AH AD AC 4H 4D 4C 7S 8S 9S 5C",
			points:   -25,
			kind:     ResultUndercut,
		},
		{
			// Gin scores the defender's full deadwood plus the bonus.
			name:     "gin",
			knocker:  "AS 2S 3S 4S 5H 5D 5C 9H 9D 9C",
			defender: "KH QD 9S 2C 3D AH 4C 6D 7S 8H",
			gin:      true,
			points:   85,
			kind:     ResultGin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, kind := ScoreHand(mustCards(t, tt.knocker), mustCards(t, tt.defender), tt.gin)
			if points != tt.points || kind != tt.kind {
				t.Errorf("ScoreHand = %d %s, want %d %s", points, kind, tt.points, tt.kind)
			}
		})
	}
}

func TestCanLayOff(t *testing.T) {
	set := Meld(mustCards(t, "5H 5D 5C"))
	run := Meld(mustCards(t, "4H 5H 6H"))

	tests := []struct {
		card string
		meld Meld
		ok   bool
	}{
		{card: "5S", meld: set, ok: true},
		{card: "6S", meld: set, ok: false},
		{card: "3H", meld: run, ok: true},
		{card: "7H", meld: run, ok: true},
		{card: "7D", meld: run, ok: false},
		{card: "8H", meld: run, ok: false},
	}

	for _, tt := range tests {
		card := mustCards(t, tt.card)[0]
		if got := CanLayOff(card, tt.meld); got != tt.ok {
			t.Errorf("CanLayOff(%s, %s) = %v, want %v", card, tt.meld, got, tt.ok)
		}
	}
}

func TestApplyLayoffsChain(t *testing.T) {
	// 7H extends the run, which then admits 8H. Order in the input
	// slice must not matter: the loop iterates to a fixed point.
	melds := []Meld{Meld(mustCards(t, "4H 5H 6H"))}
	unmelded := mustCards(t, "8H KS 7H")

	extended, remaining := ApplyLayoffs(melds, unmelded)

	if len(remaining) != 1 || remaining[0].Rank != deck.King {
		t.Errorf("remaining = %v, want only K♠", remaining)
	}
	if len(extended[0]) != 5 {
		t.Errorf("run grew to %d cards, want 5: %v", len(extended[0]), extended[0])
	}
	if !IsValidRun(extended[0]) {
		t.Errorf("extended run is invalid: %v", extended[0])
	}

	// The caller's meld must be untouched.
	if len(melds[0]) != 3 {
		t.Errorf("input meld was mutated: %v", melds[0])
	}
}

func TestScoreWithLayoffs(t *testing.T) {
	// Defender's 5S lays off on the knocker's fives, dropping defender
	// deadwood from 35 to 30 and the knock from 29 to 24.
	knocker := mustCards(t, "5H 5D 5C 2H 3H 4H AS AD AC 6D")
	defender := mustCards(t, "KH KD KC QS QD QC JS JD 5S 10H")

	knockerCopy := append([]deck.Card(nil), knocker...)
	defenderCopy := append([]deck.Card(nil), defender...)

	points, kind := ScoreWithLayoffs(knocker, defender, false)
	if kind != ResultKnock || points != 24 {
		t.Errorf("ScoreWithLayoffs = %d %s, want 24 knock", points, kind)
	}

	if !reflect.DeepEqual(knocker, knockerCopy) || !reflect.DeepEqual(defender, defenderCopy) {
		t.Error("ScoreWithLayoffs mutated its inputs")
	}
}

func TestScoreWithLayoffsUndercutAfterLayoff(t *testing.T) {
	// A straight comparison gives the knocker the hand 5 to 3, but the
	// defender lays the lone 5S off on the knocker's fives and drops to
	// zero, flipping the result to an undercut.
	knocker := mustCards(t, "5H 5D 5C 2H 3H 4H AS AD AC 3S")
	defender := mustCards(t, "KH KD KC QS QD QC JS JD JC 5S")

	points, kind := ScoreWithLayoffs(knocker, defender, false)
	if kind != ResultUndercut || points != -28 {
		t.Errorf("ScoreWithLayoffs = %d %s, want -28 undercut", points, kind)
	}
}
