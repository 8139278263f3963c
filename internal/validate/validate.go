// Package validate checks a candidate bot against the engine contract
// before it is let into a tournament: legal play, per-game state reset,
// reproducibility, and decision speed.
package validate

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/tournament"
)

// Finding is the outcome of one validation check.
type Finding struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects the findings for one bot.
type Report struct {
	BotName  string
	Findings []Finding
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, f := range r.Findings {
		if !f.Passed {
			return false
		}
	}
	return true
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation report for %s\n", r.BotName)
	for _, f := range r.Findings {
		status := "PASS"
		if !f.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  [%s] %-14s %s\n", status, f.Name, f.Detail)
	}
	return b.String()
}

// Config holds validation settings.
type Config struct {
	Games   int           // games per check run
	Seed    int64         // base seed
	Timeout time.Duration // per-decision budget
	Logger  *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Games <= 0 {
		c.Games = 20
	}
	if c.Timeout <= 0 {
		c.Timeout = game.DefaultDecisionTimeout
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// Run exercises a candidate bot through the full battery. The factory
// must return a fresh instance on each call; the reproducibility check
// depends on it.
func Run(newBot func() game.Bot, cfg Config) *Report {
	cfg = cfg.withDefaults()

	candidate := newBot()
	report := &Report{BotName: candidate.Name()}

	report.Findings = append(report.Findings, checkName(candidate))
	report.Findings = append(report.Findings, checkLegalPlay(candidate, cfg))
	report.Findings = append(report.Findings, checkReproducibility(newBot, cfg))
	report.Findings = append(report.Findings, checkSpeed(newBot, cfg))

	return report
}

func checkName(candidate game.Bot) Finding {
	if strings.TrimSpace(candidate.Name()) == "" {
		return Finding{Name: "name", Passed: false, Detail: "Name() must return a non-empty string"}
	}
	return Finding{Name: "name", Passed: true, Detail: fmt.Sprintf("%q", candidate.Name())}
}

// checkLegalPlay reuses one instance across every game of a match, so
// it also catches bots that leak tracking state between games.
func checkLegalPlay(candidate game.Bot, cfg Config) Finding {
	opponent := bot.NewBasicBot()
	match := tournament.RunMatch(candidate, opponent, tournament.Config{
		Games:   cfg.Games,
		Seed:    cfg.Seed,
		Timeout: cfg.Timeout,
		Logger:  cfg.Logger,
	})

	if len(match.Errors) > 0 {
		return Finding{
			Name:   "legal-play",
			Passed: false,
			Detail: fmt.Sprintf("%d of %d games failed; first: %s", len(match.Errors), cfg.Games, match.Errors[0]),
		}
	}
	return Finding{
		Name:   "legal-play",
		Passed: true,
		Detail: fmt.Sprintf("%d games without an illegal move", cfg.Games),
	}
}

// checkReproducibility plays the same seeded match twice with fresh
// instances. Diverging results mean the bot reaches outside its inputs
// for randomness or time.
func checkReproducibility(newBot func() game.Bot, cfg Config) Finding {
	run := func() *tournament.MatchResult {
		return tournament.RunMatch(newBot(), bot.NewBasicBot(), tournament.Config{
			Games:   cfg.Games,
			Seed:    cfg.Seed,
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		})
	}

	first := run()
	second := run()

	if first.Bot0Wins != second.Bot0Wins ||
		first.Bot1Wins != second.Bot1Wins ||
		first.Draws != second.Draws ||
		first.Bot0Points != second.Bot0Points ||
		first.Bot1Points != second.Bot1Points {
		return Finding{
			Name:   "reproducible",
			Passed: false,
			Detail: fmt.Sprintf("same seed produced %s then %s", first, second),
		}
	}
	return Finding{Name: "reproducible", Passed: true, Detail: "identical results across two seeded runs"}
}

func checkSpeed(newBot func() game.Bot, cfg Config) Finding {
	start := time.Now()
	tournament.RunMatch(newBot(), bot.NewBasicBot(), tournament.Config{
		Games:   cfg.Games,
		Seed:    cfg.Seed,
		Timeout: cfg.Timeout,
		Logger:  cfg.Logger,
	})
	elapsed := time.Since(start)
	perGame := elapsed / time.Duration(cfg.Games)

	// A bot anywhere near the per-decision budget per whole game will
	// not finish a real tournament in reasonable time.
	if perGame > cfg.Timeout {
		return Finding{
			Name:   "speed",
			Passed: false,
			Detail: fmt.Sprintf("%s per game on average over %d games", perGame, cfg.Games),
		}
	}
	return Finding{
		Name:   "speed",
		Passed: true,
		Detail: fmt.Sprintf("%s per game on average", perGame),
	}
}
