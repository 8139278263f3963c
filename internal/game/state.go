package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/ginforbots/internal/deck"
)

// Phase identifies where in the turn cycle a game is.
type Phase int

const (
	PhaseDraw Phase = iota
	PhaseDiscard
	PhaseKnock
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "draw"
	case PhaseDiscard:
		return "discard"
	case PhaseKnock:
		return "knock"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// DrawChoice selects where a player draws from.
type DrawChoice string

const (
	DrawDeck    DrawChoice = "deck"
	DrawDiscard DrawChoice = "discard"
)

// State is the authoritative record of one game. It is mutated only by
// the engine's action handlers; bots see it exclusively through Views.
type State struct {
	deck        *deck.Deck
	hands       [2][]deck.Card
	discardPile []deck.Card
	current     int
	dealer      int
	phase       Phase
}

// NewState deals a fresh game: 10 cards to each player (non-dealer
// first), one card flipped to seed the discard pile, non-dealer to act,
// phase Draw. The RNG drives the shuffle and is always caller-supplied.
func NewState(rng *rand.Rand, dealer int) (*State, error) {
	s := &State{
		deck:   deck.New(rng),
		dealer: dealer,
		phase:  PhaseDraw,
	}

	nonDealer := 1 - dealer
	hand, err := s.deck.Deal(10)
	if err != nil {
		return nil, err
	}
	s.hands[nonDealer] = hand

	hand, err = s.deck.Deal(10)
	if err != nil {
		return nil, err
	}
	s.hands[dealer] = hand

	up, err := s.deck.Draw()
	if err != nil {
		return nil, err
	}
	s.discardPile = append(s.discardPile, up)

	s.current = nonDealer
	return s, nil
}

// View builds the restricted, defensively-copied projection of the
// state for one player: own hand and full discard history, but only the
// size of the deck and of the opponent's hand.
func (s *State) View(player int) View {
	opponent := 1 - player
	return View{
		Hand:             append([]deck.Card(nil), s.hands[player]...),
		DiscardPile:      append([]deck.Card(nil), s.discardPile...),
		DeckSize:         s.deck.Remaining(),
		Phase:            s.phase,
		MyTurn:           s.current == player,
		OpponentHandSize: len(s.hands[opponent]),
	}
}

// Hand returns a copy of the given player's hand.
func (s *State) Hand(player int) []deck.Card {
	return append([]deck.Card(nil), s.hands[player]...)
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// CurrentPlayer returns the index of the player to act.
func (s *State) CurrentPlayer() int { return s.current }

// Dealer returns the index of the dealer.
func (s *State) Dealer() int { return s.dealer }

// DeckRemaining returns how many cards are left in the deck.
func (s *State) DeckRemaining() int { return s.deck.Remaining() }

// CheckConservation verifies the card-conservation invariant: the two
// hands, the discard pile, and the deck together hold exactly the
// 52-card universe. A violation always indicates an engine bug.
func (s *State) CheckConservation() error {
	var seen [52]int
	count := 0
	add := func(cards []deck.Card) {
		for _, c := range cards {
			seen[c.Index()]++
			count++
		}
	}
	add(s.hands[0])
	add(s.hands[1])
	add(s.discardPile)
	add(s.deck.Cards())

	if count != 52 {
		return fmt.Errorf("card universe has %d cards, want 52", count)
	}
	for i, n := range seen {
		if n != 1 {
			return fmt.Errorf("card %s appears %d times", deck.FromIndex(i), n)
		}
	}
	return nil
}

// View is the read-only projection of a State handed to bots. All
// slices are copies; mutating them cannot corrupt the game.
type View struct {
	Hand             []deck.Card
	DiscardPile      []deck.Card
	DeckSize         int
	Phase            Phase
	MyTurn           bool
	OpponentHandSize int
}

// TopOfDiscard returns the most recent discard, if any.
func (v View) TopOfDiscard() (deck.Card, bool) {
	if len(v.DiscardPile) == 0 {
		return deck.Card{}, false
	}
	return v.DiscardPile[len(v.DiscardPile)-1], true
}
