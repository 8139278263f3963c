package tournament

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the on-disk tournament configuration.
type FileConfig struct {
	// Tournament is optional in the file; defaults apply when absent.
	Tournament *TournamentSettings `hcl:"tournament,block"`
	Bots       []BotEntry          `hcl:"bot,block"`
}

// TournamentSettings contains run-level settings.
type TournamentSettings struct {
	Games          int   `hcl:"games,optional"`
	Seed           int64 `hcl:"seed,optional"`
	TimeoutSeconds int   `hcl:"timeout_seconds,optional"`
	Parallel       int   `hcl:"parallel,optional"`
}

// BotEntry declares one tournament participant. Seed overrides the
// derived per-bot seed for strategies that randomize.
type BotEntry struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Seed     int64  `hcl:"seed,optional"`
}

// DefaultFileConfig returns the configuration used when no file is given:
// all built-in bots, 100 games per pairing.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Tournament: &TournamentSettings{
			Games:          100,
			Seed:           0,
			TimeoutSeconds: 5,
			Parallel:       1,
		},
		Bots: []BotEntry{
			{Name: "random", Strategy: "random"},
			{Name: "basic", Strategy: "basic"},
			{Name: "intermediate", Strategy: "intermediate"},
			{Name: "advanced", Strategy: "advanced"},
		},
	}
}

// LoadFileConfig parses a tournament configuration from an HCL file.
// Missing settings fall back to the defaults.
func LoadFileConfig(filename string) (*FileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file: %s", diags.Error())
	}

	var config FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file: %s", diags.Error())
	}

	if config.Tournament == nil {
		config.Tournament = DefaultFileConfig().Tournament
	}
	if config.Tournament.Games <= 0 {
		config.Tournament.Games = 100
	}
	if config.Tournament.TimeoutSeconds <= 0 {
		config.Tournament.TimeoutSeconds = 5
	}
	if len(config.Bots) < 2 {
		return nil, fmt.Errorf("config must declare at least 2 bots, has %d", len(config.Bots))
	}
	names := make(map[string]bool, len(config.Bots))
	for _, b := range config.Bots {
		if b.Name == "" || b.Strategy == "" {
			return nil, fmt.Errorf("bot entries need both a name and a strategy")
		}
		if names[b.Name] {
			return nil, fmt.Errorf("duplicate bot name %q in config", b.Name)
		}
		names[b.Name] = true
	}

	return &config, nil
}
