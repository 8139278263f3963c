// Package bot provides the built-in Gin Rummy bots and a registry for
// constructing them by strategy name.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/ginforbots/internal/game"
)

// New constructs a built-in bot by strategy name. The RNG is only used
// by strategies that randomize; deterministic strategies ignore it.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.Bot, error) {
	switch strategy {
	case "random":
		return NewRandomBot(rng), nil
	case "basic":
		return NewBasicBot(), nil
	case "intermediate":
		return NewIntermediateBot(), nil
	case "advanced":
		return NewAdvancedBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q (have %v)", strategy, Names())
	}
}

// Names lists the available built-in strategies.
func Names() []string {
	return slices.Clone([]string{"random", "basic", "intermediate", "advanced"})
}
