// Package game implements the Gin Rummy state machine: per-game state,
// restricted player views, move validation, and the engine that drives
// two bots through a full game to a terminal result.
package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/rules"
)

// NoPlayer marks a result field that names no player (drawn games).
const NoPlayer = -1

// DefaultDecisionTimeout is the wall-clock budget for a single bot call.
const DefaultDecisionTimeout = 5 * time.Second

// Result is the immutable outcome of a completed game.
type Result struct {
	Winner  int // player index, or NoPlayer
	Score   int // always non-negative
	Kind    rules.ResultKind
	Knocker int // player index, or NoPlayer
}

// Engine manages the flow and rules of a single Gin Rummy game. It
// validates and executes every bot decision; bots only ever see Views.
type Engine struct {
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration

	state            *State
	drawnFromDiscard *deck.Card
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock injects the clock used for decision timeouts. Tests pass a
// quartz.Mock to trigger timeouts without waiting.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithTimeout sets the per-decision wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// NewEngine creates a game engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
		timeout: DefaultDecisionTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the game state for inspection after PlayGame returns.
func (e *Engine) State() *State { return e.state }

// PlayGame runs a complete game between two bots and returns the
// terminal result. The RNG drives the shuffle and must be dedicated to
// this game for reproducibility. Any rule violation, timeout, or bot
// panic aborts the game with the corresponding error; engine state is
// never left half-mutated.
func (e *Engine) PlayGame(rng *rand.Rand, bot0, bot1 Bot, dealer int) (Result, error) {
	state, err := NewState(rng, dealer)
	if err != nil {
		return Result{}, err
	}
	e.state = state
	e.drawnFromDiscard = nil
	bots := [2]Bot{bot0, bot1}

	e.logger.Debug("game start", "dealer", dealer, "bot0", bot0.Name(), "bot1", bot1.Name())

	for i, b := range bots {
		if obs, ok := b.(Observer); ok {
			view := e.state.View(i)
			if err := e.notify(i, "game-start", func() { obs.OnGameStart(i, view) }); err != nil {
				return Result{}, err
			}
		}
	}

	for e.state.phase != PhaseEnd {
		player := e.state.current
		b := bots[player]

		view := e.state.View(player)
		choice, err := dispatch(e, player, "draw", func() DrawChoice { return b.DrawDecision(view) })
		if err != nil {
			return Result{}, err
		}
		if err := e.executeDraw(player, choice); err != nil {
			return Result{}, err
		}

		view = e.state.View(player)
		card, err := dispatch(e, player, "discard", func() deck.Card { return b.DiscardDecision(view) })
		if err != nil {
			return Result{}, err
		}
		if err := e.executeDiscard(player, card); err != nil {
			return Result{}, err
		}

		e.logger.Debug("turn", "player", player, "bot", b.Name(), "discarded", card, "deck", e.state.deck.Remaining())

		// The hand cannot continue once draws would be impossible.
		if e.state.deck.Remaining() < 2 {
			e.state.phase = PhaseEnd
			e.logger.Debug("deck exhausted, game is a draw")
			return Result{Winner: NoPlayer, Score: 0, Kind: rules.ResultDraw, Knocker: NoPlayer}, nil
		}

		if rules.CanKnock(e.state.hands[player]) {
			e.state.phase = PhaseKnock
			view = e.state.View(player)
			knock, err := dispatch(e, player, "knock", func() bool { return b.KnockDecision(view) })
			if err != nil {
				return Result{}, err
			}
			if knock {
				result := e.executeKnock(player)
				e.logger.Debug("knock", "player", player, "kind", result.Kind, "winner", result.Winner, "score", result.Score)
				return result, nil
			}
		}

		if err := e.state.CheckConservation(); err != nil {
			return Result{}, fmt.Errorf("card conservation violated: %w", err)
		}

		for i, bb := range bots {
			if obs, ok := bb.(Observer); ok {
				v := e.state.View(i)
				if err := e.notify(i, "turn-end", func() { obs.OnTurnEnd(v) }); err != nil {
					return Result{}, err
				}
			}
		}

		e.state.current = 1 - player
		e.state.phase = PhaseDraw
	}

	return Result{Winner: NoPlayer, Score: 0, Kind: rules.ResultDraw, Knocker: NoPlayer}, nil
}

// executeDraw validates and applies a draw action.
func (e *Engine) executeDraw(player int, choice DrawChoice) error {
	if e.state.phase != PhaseDraw {
		return &InvalidMoveError{Player: player, Err: ErrWrongPhase}
	}
	if e.state.current != player {
		return &InvalidMoveError{Player: player, Err: ErrWrongPlayer}
	}

	switch DrawChoice(strings.ToLower(string(choice))) {
	case DrawDeck:
		if e.state.deck.IsEmpty() {
			return &InvalidMoveError{Player: player, Err: ErrEmptyDeck}
		}
		card, err := e.state.deck.Draw()
		if err != nil {
			return &InvalidMoveError{Player: player, Err: err}
		}
		e.state.hands[player] = append(e.state.hands[player], card)
		e.drawnFromDiscard = nil

	case DrawDiscard:
		if len(e.state.discardPile) == 0 {
			return &InvalidMoveError{Player: player, Err: ErrEmptyDiscard}
		}
		card := e.state.discardPile[len(e.state.discardPile)-1]
		e.state.discardPile = e.state.discardPile[:len(e.state.discardPile)-1]
		e.state.hands[player] = append(e.state.hands[player], card)
		drawn := card
		e.drawnFromDiscard = &drawn

	default:
		return &InvalidMoveError{Player: player, Err: fmt.Errorf("%w: got %q", ErrBadDrawChoice, string(choice))}
	}

	e.state.phase = PhaseDiscard
	return nil
}

// executeDiscard validates and applies a discard action. Validation is
// complete before any mutation, so a rejected discard leaves the hand
// and pile untouched.
func (e *Engine) executeDiscard(player int, card deck.Card) error {
	if e.state.phase != PhaseDiscard {
		return &InvalidMoveError{Player: player, Err: ErrWrongPhase}
	}
	if e.state.current != player {
		return &InvalidMoveError{Player: player, Err: ErrWrongPlayer}
	}
	hand := e.state.hands[player]
	if len(hand) != 11 {
		return &InvalidMoveError{Player: player, Err: fmt.Errorf("%w: have %d", ErrWrongHandSize, len(hand))}
	}
	idx := -1
	for i, c := range hand {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &InvalidMoveError{Player: player, Err: fmt.Errorf("%w: %s", ErrCardNotHeld, card)}
	}
	if e.drawnFromDiscard != nil && card == *e.drawnFromDiscard {
		return &InvalidMoveError{Player: player, Err: ErrSameCardDiscard}
	}

	e.state.hands[player] = append(hand[:idx], hand[idx+1:]...)
	e.state.discardPile = append(e.state.discardPile, card)
	e.state.phase = PhaseKnock
	return nil
}

// executeKnock scores the hand and ends the game. An undercut flips the
// win to the defender with the point value made non-negative.
func (e *Engine) executeKnock(player int) Result {
	opponent := 1 - player
	hand := e.state.hands[player]

	gin := rules.IsGin(hand)
	points, kind := rules.ScoreWithLayoffs(hand, e.state.hands[opponent], gin)
	e.state.phase = PhaseEnd

	if kind == rules.ResultUndercut {
		return Result{Winner: opponent, Score: -points, Kind: kind, Knocker: player}
	}
	return Result{Winner: player, Score: points, Kind: kind, Knocker: player}
}

// notify routes a lifecycle hook through the same isolation boundary as
// decision calls.
func (e *Engine) notify(player int, stage string, fn func()) error {
	_, err := dispatch(e, player, stage, func() struct{} {
		fn()
		return struct{}{}
	})
	return err
}

// dispatch is the boundary every bot call crosses. The call runs on its
// own goroutine so nothing of the engine's calling context is reachable
// from bot code, a recovered panic becomes an AgentError, and the
// injected clock enforces the wall-clock budget. On timeout the
// goroutine is abandoned; its eventual result lands in a buffered
// channel nobody reads.
func dispatch[T any](e *Engine, player int, stage string, fn func() T) (T, error) {
	var zero T
	resultCh := make(chan T, 1)
	panicCh := make(chan any, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicCh <- r
			}
		}()
		resultCh <- fn()
	}()

	timedOut := make(chan struct{})
	timer := e.clock.AfterFunc(e.timeout, func() { close(timedOut) })
	defer timer.Stop()

	select {
	case v := <-resultCh:
		return v, nil
	case r := <-panicCh:
		return zero, &AgentError{Player: player, Stage: stage, Value: r}
	case <-timedOut:
		return zero, &TimeoutError{Player: player, Stage: stage, Budget: e.timeout}
	}
}
