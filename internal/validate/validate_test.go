package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ginforbots/internal/bot"
	"github.com/lox/ginforbots/internal/deck"
	"github.com/lox/ginforbots/internal/game"
)

func TestRunPassesBuiltins(t *testing.T) {
	for _, strategy := range []string{"basic", "intermediate", "advanced"} {
		t.Run(strategy, func(t *testing.T) {
			t.Parallel()

			report := Run(func() game.Bot {
				b, err := bot.New(strategy, nil, nil)
				require.NoError(t, err)
				return b
			}, Config{Games: 10, Seed: 42})

			assert.True(t, report.Passed(), report.String())
			assert.Len(t, report.Findings, 4)
		})
	}
}

// greedyRebounder always takes the face-up card and throws it straight
// back, which the engine forbids.
type greedyRebounder struct{}

func (greedyRebounder) Name() string { return "GreedyRebounder" }

func (greedyRebounder) DrawDecision(game.View) game.DrawChoice { return game.DrawDiscard }

func (greedyRebounder) DiscardDecision(v game.View) deck.Card {
	return v.Hand[len(v.Hand)-1]
}

func (greedyRebounder) KnockDecision(game.View) bool { return false }

func TestRunFlagsIllegalPlay(t *testing.T) {
	report := Run(func() game.Bot { return greedyRebounder{} }, Config{Games: 5, Seed: 1})

	assert.False(t, report.Passed())

	var legal *Finding
	for i := range report.Findings {
		if report.Findings[i].Name == "legal-play" {
			legal = &report.Findings[i]
		}
	}
	require.NotNil(t, legal)
	assert.False(t, legal.Passed)
	assert.Contains(t, legal.Detail, "games failed")
}

// namelessBot violates the most basic contract there is.
type namelessBot struct{ bot.BasicBot }

func (namelessBot) Name() string { return "   " }

func TestRunFlagsEmptyName(t *testing.T) {
	report := Run(func() game.Bot { return &namelessBot{} }, Config{Games: 2, Seed: 1})

	assert.False(t, report.Passed())
	assert.Contains(t, report.String(), "FAIL")
}

func TestReportString(t *testing.T) {
	report := &Report{
		BotName: "TestBot",
		Findings: []Finding{
			{Name: "name", Passed: true, Detail: `"TestBot"`},
			{Name: "legal-play", Passed: false, Detail: "2 of 5 games failed"},
		},
	}

	out := report.String()
	assert.True(t, strings.Contains(out, "[PASS] name"))
	assert.True(t, strings.Contains(out, "[FAIL] legal-play"))
	assert.False(t, report.Passed())
}
