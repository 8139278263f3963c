package main

import (
	"fmt"
	"time"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/randutil"
	"github.com/lox/ginforbots/internal/validate"
)

type ValidateCmd struct {
	Strategy string `arg:"" help:"Strategy name of the bot to validate"`
	Games    int    `default:"20" help:"Games per validation check"`
	Seed     int64  `default:"42" help:"RNG seed for the checks"`
	Timeout  int    `default:"5" help:"Per-decision timeout in seconds"`
}

func (c *ValidateCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	// Probe the strategy name before handing a factory to the checks.
	if _, err := bot.New(c.Strategy, randutil.New(0), logger); err != nil {
		return err
	}

	report := validate.Run(func() game.Bot {
		b, _ := bot.New(c.Strategy, randutil.New(c.Seed), logger)
		return b
	}, validate.Config{
		Games:   c.Games,
		Seed:    c.Seed,
		Timeout: time.Duration(c.Timeout) * time.Second,
		Logger:  logger,
	})

	fmt.Print(report)
	if !report.Passed() {
		return fmt.Errorf("bot %q failed validation", c.Strategy)
	}
	return nil
}
