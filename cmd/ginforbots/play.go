package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/randutil"
	"github.com/lox/ginforbots/internal/rules"
)

type PlayCmd struct {
	Bot0    string `default:"basic" help:"Strategy for player 0"`
	Bot1    string `default:"random" help:"Strategy for player 1"`
	Seed    int64  `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Dealer  int    `default:"0" help:"Which player deals (0 or 1)"`
	Timeout int    `default:"5" help:"Per-decision timeout in seconds"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)
	seed := resolveSeed(c.Seed, logger)

	if c.Dealer != 0 && c.Dealer != 1 {
		return fmt.Errorf("dealer must be 0 or 1, got %d", c.Dealer)
	}

	bot0, err := bot.New(c.Bot0, randutil.New(randutil.Derive(seed, 1)), logger)
	if err != nil {
		return err
	}
	bot1, err := bot.New(c.Bot1, randutil.New(randutil.Derive(seed, 2)), logger)
	if err != nil {
		return err
	}

	engine := game.NewEngine(
		game.WithLogger(logger),
		game.WithTimeout(time.Duration(c.Timeout)*time.Second),
	)

	result, err := engine.PlayGame(randutil.New(seed), bot0, bot1, c.Dealer)
	if err != nil {
		var invalid *game.InvalidMoveError
		var timeout *game.TimeoutError
		switch {
		case errors.As(err, &invalid):
			return fmt.Errorf("game aborted: %w", err)
		case errors.As(err, &timeout):
			return fmt.Errorf("game aborted: %w", err)
		default:
			return err
		}
	}

	names := [2]string{bot0.Name(), bot1.Name()}
	switch {
	case result.Winner == game.NoPlayer:
		fmt.Printf("Result: draw (deck exhausted)\n")
	case result.Kind == rules.ResultUndercut:
		fmt.Printf("Result: %s undercut %s for %d points\n",
			names[result.Winner], names[result.Knocker], result.Score)
	default:
		fmt.Printf("Result: %s wins by %s for %d points\n",
			names[result.Winner], result.Kind, result.Score)
	}
	return nil
}
