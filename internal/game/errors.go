package game

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel causes for invalid moves. Wrapped by InvalidMoveError so
// callers can test the specific violation with errors.Is.
var (
	ErrWrongPhase      = errors.New("action not valid in current phase")
	ErrWrongPlayer     = errors.New("not your turn")
	ErrBadDrawChoice   = errors.New("draw choice must be deck or discard")
	ErrEmptyDeck       = errors.New("cannot draw from empty deck")
	ErrEmptyDiscard    = errors.New("cannot draw from empty discard pile")
	ErrWrongHandSize   = errors.New("must hold exactly 11 cards to discard")
	ErrCardNotHeld     = errors.New("card is not in your hand")
	ErrSameCardDiscard = errors.New("cannot discard the card just drawn from the discard pile")
)

// InvalidMoveError reports a structural rule violation by a bot: wrong
// phase, wrong player, malformed choice, or an illegal discard. The
// engine never corrects or retries these; they propagate out of
// PlayGame and are downgraded to per-game errors by the match runner.
type InvalidMoveError struct {
	Player int
	Err    error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move by player %d: %v", e.Player, e.Err)
}

func (e *InvalidMoveError) Unwrap() error { return e.Err }

// TimeoutError reports that a bot exceeded its wall-clock budget for a
// single decision call. Distinct from InvalidMoveError so runners can
// report the two separately.
type TimeoutError struct {
	Player int
	Stage  string
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("player %d timed out in %s after %s", e.Player, e.Stage, e.Budget)
}

// AgentError reports a panic raised inside a bot's decision or
// lifecycle method. The engine recovers the panic so a faulty bot
// cannot take down the match runner.
type AgentError struct {
	Player int
	Stage  string
	Value  any
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("player %d panicked in %s: %v", e.Player, e.Stage, e.Value)
}
