package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/randutil"
	"github.com/lox/ginforbots/internal/tournament"
)

type TournamentCmd struct {
	Config   string   `help:"HCL tournament config file" type:"existingfile"`
	Bots     []string `help:"Strategies to enter (default: all built-ins)"`
	Games    int      `default:"100" help:"Games per pairing"`
	Seed     int64    `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Timeout  int      `default:"5" help:"Per-decision timeout in seconds"`
	Parallel int      `default:"1" help:"Matches to run concurrently"`
	NoH2H    bool     `name:"no-h2h" help:"Skip head-to-head details"`
}

func (c *TournamentCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	fileCfg, err := c.fileConfig()
	if err != nil {
		return err
	}
	seed := resolveSeed(c.Seed, logger)
	if fileCfg.Tournament.Seed != 0 {
		seed = fileCfg.Tournament.Seed
	}

	entrants, err := buildEntrants(fileCfg.Bots, seed, logger)
	if err != nil {
		return err
	}

	cfg := tournament.Config{
		Games:    fileCfg.Tournament.Games,
		Seed:     seed,
		Timeout:  time.Duration(fileCfg.Tournament.TimeoutSeconds) * time.Second,
		Parallel: fileCfg.Tournament.Parallel,
		Logger:   logger,
	}

	logger.Info("tournament start", "bots", len(entrants), "games", cfg.Games, "seed", seed)
	rankings, matches, err := tournament.RunTournament(entrants, cfg)
	if err != nil {
		return err
	}

	fmt.Println(tournament.FormatRankings(rankings))
	if !c.NoH2H {
		fmt.Println(tournament.FormatHeadToHead(rankings))
	}
	if summary := tournament.FormatMatchErrors(matches); summary != "" {
		fmt.Println(summary)
	}
	return nil
}

// fileConfig merges the HCL file (when given) with command-line flags;
// flags fill the roster and settings when no file is used.
func (c *TournamentCmd) fileConfig() (*tournament.FileConfig, error) {
	if c.Config != "" {
		return tournament.LoadFileConfig(c.Config)
	}

	cfg := tournament.DefaultFileConfig()
	cfg.Tournament.Games = c.Games
	cfg.Tournament.TimeoutSeconds = c.Timeout
	cfg.Tournament.Parallel = c.Parallel

	if len(c.Bots) > 0 {
		cfg.Bots = nil
		for _, strategy := range c.Bots {
			cfg.Bots = append(cfg.Bots, tournament.BotEntry{Name: strategy, Strategy: strategy})
		}
	}
	return cfg, nil
}

func buildEntrants(entries []tournament.BotEntry, seed int64, logger *log.Logger) ([]tournament.Entrant, error) {
	entrants := make([]tournament.Entrant, 0, len(entries))
	for i, entry := range entries {
		// Fail on unknown strategies up front, not mid-tournament.
		if _, err := bot.New(entry.Strategy, randutil.New(0), logger); err != nil {
			return nil, err
		}

		strategy := entry.Strategy
		botSeed := entry.Seed
		if botSeed == 0 {
			botSeed = randutil.Derive(seed, int64(i)+1)
		}
		entrants = append(entrants, tournament.Entrant{
			Name: entry.Name,
			New: func() game.Bot {
				b, _ := bot.New(strategy, randutil.New(botSeed), logger)
				return b
			},
		})
	}
	return entrants, nil
}
