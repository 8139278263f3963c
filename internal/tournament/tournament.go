// Package tournament runs multi-game matches and round-robin
// tournaments between Gin Rummy bots, downgrading per-game failures
// into recorded errors so a single faulty bot cannot abort a run.
package tournament

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/randutil"
)

// Config holds tournament and match settings.
type Config struct {
	Games    int           // games per pairing
	Seed     int64         // base seed; per-match and per-game seeds derive from it
	Timeout  time.Duration // per-decision budget (0 = engine default)
	Parallel int           // concurrent matches (<=1 = sequential)
	Logger   *log.Logger
}

func (c Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

func (c Config) engineOptions() []game.Option {
	opts := []game.Option{game.WithLogger(c.logger())}
	if c.Timeout > 0 {
		opts = append(opts, game.WithTimeout(c.Timeout))
	}
	return opts
}

// Entrant names a tournament participant and knows how to build a
// fresh instance of it. Fresh instances per match keep bots with
// internal tracking state safe to run in parallel matches.
type Entrant struct {
	Name string
	New  func() game.Bot
}

// RunMatch plays a multi-game match between two bot instances,
// alternating seats every game and the dealer every two games so that
// first-mover advantage is evenly distributed. Per-game failures are
// recorded on the result; only setup errors abort the match.
func RunMatch(bot0, bot1 game.Bot, cfg Config) *MatchResult {
	result := NewMatchResult(bot0.Name(), bot1.Name())
	engine := game.NewEngine(cfg.engineOptions()...)
	logger := cfg.logger()

	for gameNum := 0; gameNum < cfg.Games; gameNum++ {
		rng := randutil.New(randutil.Derive(cfg.Seed, int64(gameNum)))

		p0, p1 := bot0, bot1
		bot0Index := 0
		if gameNum%2 == 1 {
			p0, p1 = bot1, bot0
			bot0Index = 1
		}
		dealer := (gameNum / 2) % 2

		gameResult, err := engine.PlayGame(rng, p0, p1, dealer)
		if err != nil {
			logger.Warn("game failed", "bot0", bot0.Name(), "bot1", bot1.Name(), "game", gameNum, "error", err)
			result.RecordError(gameNum, err)
			continue
		}
		result.RecordGame(gameResult, bot0Index)
	}

	return result
}

// RunTournament plays a round-robin between all entrants: every pairing
// plays cfg.Games games. Matches run concurrently when cfg.Parallel is
// above one; aggregation order stays deterministic regardless.
func RunTournament(entrants []Entrant, cfg Config) ([]*BotStats, []*MatchResult, error) {
	if len(entrants) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 bots for a tournament, have %d", len(entrants))
	}
	seen := make(map[string]bool, len(entrants))
	for _, e := range entrants {
		if seen[e.Name] {
			return nil, nil, fmt.Errorf("duplicate bot name %q", e.Name)
		}
		seen[e.Name] = true
	}

	type pairing struct{ i, j int }
	var pairings []pairing
	for i := 0; i < len(entrants); i++ {
		for j := i + 1; j < len(entrants); j++ {
			pairings = append(pairings, pairing{i, j})
		}
	}

	logger := cfg.logger()
	matches := make([]*MatchResult, len(pairings))

	var g errgroup.Group
	if cfg.Parallel > 1 {
		g.SetLimit(cfg.Parallel)
	} else {
		g.SetLimit(1)
	}

	for matchNum, p := range pairings {
		g.Go(func() error {
			matchCfg := cfg
			matchCfg.Seed = randutil.Derive(cfg.Seed, int64(matchNum)*1000)

			bot0 := entrants[p.i].New()
			bot1 := entrants[p.j].New()
			logger.Info("match start", "bot0", bot0.Name(), "bot1", bot1.Name(), "games", cfg.Games)

			match := RunMatch(bot0, bot1, matchCfg)
			// Roster names win over display names so two entrants of
			// the same strategy stay distinguishable.
			match.Bot0Name = entrants[p.i].Name
			match.Bot1Name = entrants[p.j].Name
			matches[matchNum] = match
			logger.Info("match done", "result", match.String(), "errors", len(match.Errors))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats := make(map[string]*BotStats, len(entrants))
	for _, e := range entrants {
		stats[e.Name] = NewBotStats(e.Name)
	}
	for matchNum, p := range pairings {
		match := matches[matchNum]
		stats[entrants[p.i].Name].RecordMatch(entrants[p.j].Name, match, true)
		stats[entrants[p.j].Name].RecordMatch(entrants[p.i].Name, match, false)
	}

	rankings := make([]*BotStats, 0, len(stats))
	for _, s := range stats {
		rankings = append(rankings, s)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].WinRate() != rankings[j].WinRate() {
			return rankings[i].WinRate() > rankings[j].WinRate()
		}
		if rankings[i].TotalPoints != rankings[j].TotalPoints {
			return rankings[i].TotalPoints > rankings[j].TotalPoints
		}
		return rankings[i].Name < rankings[j].Name
	})

	return rankings, matches, nil
}
