package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Play       PlayCmd       `cmd:"" help:"Play a single game between two bots"`
	Match      MatchCmd      `cmd:"" help:"Run a multi-game match between two bots"`
	Tournament TournamentCmd `cmd:"" help:"Run a round-robin tournament"`
	Validate   ValidateCmd   `cmd:"" help:"Check a bot against the engine contract"`
	Bots       BotsCmd       `cmd:"" help:"List the built-in bots"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ginforbots"),
		kong.Description("Gin Rummy engine and tournament runner for bot-vs-bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// setupLogger configures the shared logger for all commands.
func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// resolveSeed picks a clock-derived seed when none was given, logging
// it so the run can be replayed.
func resolveSeed(seed int64, logger *log.Logger) int64 {
	if seed != 0 {
		return seed
	}
	seed = time.Now().UnixNano()
	logger.Info("using random seed", "seed", seed)
	return seed
}
