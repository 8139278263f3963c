package main

import (
	"fmt"
	"time"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/randutil"
	"github.com/lox/ginforbots/internal/tournament"
)

type MatchCmd struct {
	Bot0    string `default:"basic" help:"Strategy for the first bot"`
	Bot1    string `default:"random" help:"Strategy for the second bot"`
	Games   int    `default:"100" help:"Number of games to play"`
	Seed    int64  `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Timeout int    `default:"5" help:"Per-decision timeout in seconds"`
}

func (c *MatchCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)
	seed := resolveSeed(c.Seed, logger)

	bot0, err := bot.New(c.Bot0, randutil.New(randutil.Derive(seed, 1)), logger)
	if err != nil {
		return err
	}
	bot1, err := bot.New(c.Bot1, randutil.New(randutil.Derive(seed, 2)), logger)
	if err != nil {
		return err
	}

	result := tournament.RunMatch(bot0, bot1, tournament.Config{
		Games:   c.Games,
		Seed:    seed,
		Timeout: time.Duration(c.Timeout) * time.Second,
		Logger:  logger,
	})

	fmt.Printf("%s\n", result)
	fmt.Printf("  %s: %d points, %d gins, %d undercuts\n",
		result.Bot0Name, result.Bot0Points, result.Bot0Gins, result.Bot0Undercuts)
	fmt.Printf("  %s: %d points, %d gins, %d undercuts\n",
		result.Bot1Name, result.Bot1Points, result.Bot1Gins, result.Bot1Undercuts)
	if len(result.Errors) > 0 {
		fmt.Printf("  %d games failed:\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("    %s\n", e)
		}
	}
	return nil
}
