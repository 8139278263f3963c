package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are always low in Gin Rummy.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Points returns the deadwood point value of the card.
// Face cards are worth 10, an Ace is worth 1, number cards their face value.
func (c Card) Points() int {
	if c.Rank > Ten {
		return 10
	}
	return int(c.Rank)
}

// Index returns the card's position in the 52-card universe (0-51),
// suit-major. Used for bitmask hands and cache keys.
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank) - 1
}

// FromIndex returns the card at the given 0-51 index.
func FromIndex(i int) Card {
	return Card{Rank: Rank(i%13 + 1), Suit: Suit(i / 13)}
}

// Less defines the canonical total order over cards: suit first, then
// rank. Gameplay never depends on it; it exists for deterministic
// sorting of melds and cache keys.
func (c Card) Less(o Card) bool {
	return c.Index() < o.Index()
}

// Sorted returns a copy of cards in canonical order.
func Sorted(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ParseCard parses a card from text like "AS", "10h", "Td" or "Q♥".
func ParseCard(s string) (Card, error) {
	if s == "" {
		return Card{}, fmt.Errorf("empty card string")
	}
	rest := s

	var rank Rank
	switch {
	case strings.HasPrefix(rest, "10"):
		rank = Ten
		rest = rest[2:]
	default:
		switch rest[0] {
		case 'A', 'a':
			rank = Ace
		case 'T', 't':
			rank = Ten
		case 'J', 'j':
			rank = Jack
		case 'Q', 'q':
			rank = Queen
		case 'K', 'k':
			rank = King
		default:
			if rest[0] >= '2' && rest[0] <= '9' {
				rank = Rank(rest[0] - '0')
			} else {
				return Card{}, fmt.Errorf("invalid rank in card %q", s)
			}
		}
		rest = rest[1:]
	}

	var suit Suit
	switch rest {
	case "C", "c", "♣":
		suit = Clubs
	case "D", "d", "♦":
		suit = Diamonds
	case "H", "h", "♥":
		suit = Hearts
	case "S", "s", "♠":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace-separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
