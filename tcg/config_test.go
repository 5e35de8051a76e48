package tcg

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HTTP.Address != ":3000" || cfg.DB.Port != 5432 || cfg.Log.Level != slog.LevelInfo {
		t.Errorf("LoadConfig() defaults = %+v", cfg)
	}
	if cfg.Bot.Enabled() {
		t.Error("Bot.Enabled() = true without a token")
	}

	cat, err := cfg.BuildCatalog()
	if err != nil || cat.Len() != catalog.Default().Len() {
		t.Errorf("BuildCatalog() = %d cards, %v", cat.Len(), err)
	}
	weights, err := cfg.DrawWeights()
	if err != nil || weights[catalog.Legendary] != 5 {
		t.Errorf("DrawWeights() = %v, %v", weights, err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
[log]
level = "debug"

[http]
address = ":8080"

[db]
host = "db.internal"
password = "oink"

[draw]
seed = 7
timezone = "UTC"

[draw.weights]
common = 60
legendary = 1

[[catalog.generations]]
cards = [
  { name = "A", rarity = 1 },
  { name = "B", rarity = 5 },
]
`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Log.Level != slog.LevelDebug || cfg.HTTP.Address != ":8080" || cfg.DB.Host != "db.internal" || cfg.DB.Port != 5432 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		t.Fatalf("BuildCatalog() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("BuildCatalog() has %d cards, want 2", cat.Len())
	}

	weights, err := cfg.DrawWeights()
	if err != nil {
		t.Fatalf("DrawWeights() error = %v", err)
	}
	if weights[catalog.Common] != 60 || weights[catalog.Legendary] != 1 || len(weights) != 2 {
		t.Errorf("DrawWeights() = %v", weights)
	}

	opts, err := cfg.DrawOptions()
	if err != nil || len(opts) != 2 {
		t.Errorf("DrawOptions() = %d options, %v", len(opts), err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "weight table misses a rarity the catalog uses",
			body: `
[draw.weights]
common = 40
uncommon = 30
rare = 15
epic = 10
`,
			wantErr: domain.ErrUnmappedRarity,
		},
		{
			name: "unknown rarity key",
			body: `
[draw.weights]
mythic = 1
`,
		},
		{
			name: "duplicate card name",
			body: `
[[catalog.generations]]
cards = [{ name = "A", rarity = 1 }]

[[catalog.generations]]
cards = [{ name = "A", rarity = 2 }]
`,
		},
		{
			name: "unknown timezone",
			body: `
[draw]
timezone = "Mars/Olympus_Mons"
`,
		},
		{
			name: "broken toml",
			body: `[http`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !domain.IsConfig(err) {
				t.Fatalf("LoadConfig() error = %v, want ConfigError", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() on missing file returned nil error")
	}
}
