package tournament

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/randutil"
)

func TestRunMatchPlaysEveryGame(t *testing.T) {
	result := RunMatch(bot.NewBasicBot(), bot.NewBasicBot(), Config{Games: 10, Seed: 1})

	require.Empty(t, result.Errors)
	assert.Equal(t, 10, result.GamesPlayed)
	assert.Equal(t, 10, result.Bot0Wins+result.Bot1Wins+result.Draws)
}

func TestRunMatchDeterministic(t *testing.T) {
	play := func() *MatchResult {
		return RunMatch(
			bot.NewRandomBot(randutil.New(1)),
			bot.NewBasicBot(),
			Config{Games: 20, Seed: 55},
		)
	}

	a := play()
	b := play()
	assert.Equal(t, a.Bot0Wins, b.Bot0Wins)
	assert.Equal(t, a.Bot1Wins, b.Bot1Wins)
	assert.Equal(t, a.Draws, b.Draws)
	assert.Equal(t, a.Bot0Points, b.Bot0Points)
	assert.Equal(t, a.Bot1Points, b.Bot1Points)
}

// panicBot blows up on its first decision every game.
type panicBot struct{}

func (panicBot) Name() string                           { return "PanicBot" }
func (panicBot) DrawDecision(game.View) game.DrawChoice { panic("boom") }
func (panicBot) DiscardDecision(v game.View) deck.Card  { return v.Hand[0] }
func (panicBot) KnockDecision(game.View) bool           { return false }

func TestRunMatchRecordsFailuresWithoutAborting(t *testing.T) {
	result := RunMatch(panicBot{}, bot.NewBasicBot(), Config{Games: 5, Seed: 1})

	assert.Equal(t, 0, result.GamesPlayed)
	assert.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], "boom")
}

func TestRunTournamentRoundRobin(t *testing.T) {
	entrants := []Entrant{
		{Name: "basic", New: func() game.Bot { return bot.NewBasicBot() }},
		{Name: "intermediate", New: func() game.Bot { return bot.NewIntermediateBot() }},
		{Name: "random", New: func() game.Bot { return bot.NewRandomBot(randutil.New(9)) }},
	}

	rankings, matches, err := RunTournament(entrants, Config{Games: 10, Seed: 3})
	require.NoError(t, err)

	require.Len(t, matches, 3)
	require.Len(t, rankings, 3)

	for _, s := range rankings {
		assert.Equal(t, 20, s.GamesPlayed, "each bot plays both pairings")
		assert.Len(t, s.HeadToHead, 2)
	}

	// Rankings are sorted best-first.
	for i := 1; i < len(rankings); i++ {
		assert.GreaterOrEqual(t, rankings[i-1].WinRate(), rankings[i].WinRate())
	}
}

func TestRunTournamentParallelMatchesSequential(t *testing.T) {
	entrants := func() []Entrant {
		return []Entrant{
			{Name: "a", New: func() game.Bot { return bot.NewIntermediateBot() }},
			{Name: "b", New: func() game.Bot { return bot.NewBasicBot() }},
			{Name: "c", New: func() game.Bot { return bot.NewRandomBot(randutil.New(2)) }},
		}
	}

	seq, _, err := RunTournament(entrants(), Config{Games: 8, Seed: 11})
	require.NoError(t, err)
	par, _, err := RunTournament(entrants(), Config{Games: 8, Seed: 11, Parallel: 4})
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Name, par[i].Name)
		assert.Equal(t, seq[i].Wins, par[i].Wins)
		assert.Equal(t, seq[i].TotalPoints, par[i].TotalPoints)
	}
}

func TestRunTournamentValidatesEntrants(t *testing.T) {
	_, _, err := RunTournament([]Entrant{
		{Name: "only", New: func() game.Bot { return bot.NewBasicBot() }},
	}, Config{Games: 1})
	assert.Error(t, err)

	_, _, err = RunTournament([]Entrant{
		{Name: "dup", New: func() game.Bot { return bot.NewBasicBot() }},
		{Name: "dup", New: func() game.Bot { return bot.NewBasicBot() }},
	}, Config{Games: 1})
	assert.ErrorContains(t, err, "duplicate")
}

func TestRunTournamentKeepsRosterNames(t *testing.T) {
	entrants := []Entrant{
		{Name: "rando-one", New: func() game.Bot { return bot.NewRandomBot(randutil.New(1)) }},
		{Name: "rando-two", New: func() game.Bot { return bot.NewRandomBot(randutil.New(2)) }},
	}

	rankings, matches, err := RunTournament(entrants, Config{Games: 4, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, "rando-one", matches[0].Bot0Name)
	assert.Equal(t, "rando-two", matches[0].Bot1Name)

	names := []string{rankings[0].Name, rankings[1].Name}
	assert.ElementsMatch(t, []string{"rando-one", "rando-two"}, names)
}

func TestBotStatsAggregation(t *testing.T) {
	match := NewMatchResult("a", "b")
	match.RecordGame(game.Result{Winner: 0, Score: 15, Kind: "knock"}, 0)
	match.RecordGame(game.Result{Winner: 1, Score: 40, Kind: "gin"}, 1)
	match.RecordGame(game.Result{Winner: game.NoPlayer, Kind: "draw"}, 0)

	assert.Equal(t, 2, match.Bot0Wins)
	assert.Equal(t, 0, match.Bot1Wins)
	assert.Equal(t, 1, match.Draws)
	assert.Equal(t, 55, match.Bot0Points)
	assert.Equal(t, 1, match.Bot0Gins)

	stats := NewBotStats("a")
	stats.RecordMatch("b", match, true)
	assert.Equal(t, 1.0, stats.WinRate())
	assert.Equal(t, [2]int{2, 0}, stats.HeadToHead["b"])
}

func TestFormatRankingsRendersEveryBot(t *testing.T) {
	stats := NewBotStats("alpha")
	stats.Wins, stats.Losses, stats.GamesPlayed, stats.TotalPoints = 6, 4, 10, 120

	out := FormatRankings([]*BotStats{stats})
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "60.0%")
}

func TestEngineTimeoutFromConfig(t *testing.T) {
	cfg := Config{Games: 1, Timeout: 250 * time.Millisecond}
	opts := cfg.engineOptions()
	assert.Len(t, opts, 2)

	cfg.Timeout = 0
	assert.Len(t, cfg.engineOptions(), 1)
}
