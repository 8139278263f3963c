package main

import (
	"fmt"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/randutil"
)

type BotsCmd struct{}

func (c *BotsCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)
	for _, strategy := range bot.Names() {
		b, err := bot.New(strategy, randutil.New(0), logger)
		if err != nil {
			return err
		}
		fmt.Printf("%-14s %s\n", strategy, b.Name())
	}
	return nil
}
