package game

import "github.com/lox/ginforbots/internal/deck"

// Bot is the decision-making contract a participant must satisfy. All
// three methods are invoked synchronously by the engine, each wrapped
// in a bounded wall-clock budget. Bots receive only Views — never the
// authoritative state — and their return values are fully validated
// before being applied.
type Bot interface {
	// Name returns the display name of the bot.
	Name() string

	// DrawDecision chooses where to draw from at the start of a turn.
	DrawDecision(view View) DrawChoice

	// DiscardDecision chooses which of the 11 held cards to discard.
	// The card just drawn from the discard pile may not be returned.
	DiscardDecision(view View) deck.Card

	// KnockDecision decides whether to end the hand. Only invoked when
	// the bot's deadwood is at or below the knock threshold.
	KnockDecision(view View) bool
}

// Observer is the optional lifecycle extension of Bot. OnTurnEnd fires
// for both players after every completed turn, which is what lets a bot
// infer opponent pickups from discard-pile deltas without ever seeing
// the opponent's hand. Bots that don't implement Observer are simply
// not notified.
type Observer interface {
	// OnGameStart fires once before the first turn.
	OnGameStart(player int, view View)

	// OnTurnEnd fires after each completed turn, own and opponent's.
	OnTurnEnd(view View)
}
