package tournament

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tournament.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
tournament {
  games           = 250
  seed            = 42
  timeout_seconds = 10
  parallel        = 4
}

bot "careful" {
  strategy = "intermediate"
}

bot "yolo" {
  strategy = "random"
  seed     = 7
}
`)

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Tournament.Games)
	assert.Equal(t, int64(42), cfg.Tournament.Seed)
	assert.Equal(t, 10, cfg.Tournament.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Tournament.Parallel)

	require.Len(t, cfg.Bots, 2)
	assert.Equal(t, "careful", cfg.Bots[0].Name)
	assert.Equal(t, "intermediate", cfg.Bots[0].Strategy)
	assert.Equal(t, int64(7), cfg.Bots[1].Seed)
}

func TestLoadFileConfigDefaultsWithoutTournamentBlock(t *testing.T) {
	path := writeConfig(t, `
bot "a" {
  strategy = "basic"
}

bot "b" {
  strategy = "random"
}
`)

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Tournament.Games)
	assert.Equal(t, 5, cfg.Tournament.TimeoutSeconds)
}

func TestLoadFileConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "too few bots",
			contents: `bot "solo" { strategy = "basic" }`,
			wantErr:  "at least 2 bots",
		},
		{
			name: "duplicate names",
			contents: `
bot "twin" { strategy = "basic" }
bot "twin" { strategy = "random" }
`,
			wantErr: "duplicate",
		},
		{
			name: "missing strategy",
			contents: `
bot "a" { strategy = "basic" }
bot "b" { strategy = "" }
`,
			wantErr: "name and a strategy",
		},
		{
			name:     "invalid syntax",
			contents: `bot "a" { strategy = `,
			wantErr:  "config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFileConfig(writeConfig(t, tt.contents))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestDefaultFileConfigCoversBuiltins(t *testing.T) {
	cfg := DefaultFileConfig()
	assert.Len(t, cfg.Bots, 4)
	assert.Equal(t, 100, cfg.Tournament.Games)
}
