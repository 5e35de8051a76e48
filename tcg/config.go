package tcg

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/disgoorg/snowflake/v2"
	webconfig "github.com/kampfschwein/schweinchen-tcg/backend/config"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/images"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, &domain.ConfigError{Reason: "invalid toml", Err: err}
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig is what an empty config file yields.
func DefaultConfig() *Config {
	return &Config{
		Log:  LogConfig{Level: slog.LevelInfo, Color: true},
		HTTP: webconfig.Default(),
		DB: database.DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "schweinchen",
			PoolSize: 10,
		},
		Spaces: images.Config{CardRoot: "cards"},
		Draw:   DrawConfig{Timezone: "UTC"},
	}
}

type Config struct {
	Log     LogConfig         `toml:"log"`
	HTTP    webconfig.Config  `toml:"http"`
	Bot     BotConfig         `toml:"bot"`
	DB      database.DBConfig `toml:"db"`
	Spaces  images.Config     `toml:"spaces"`
	Draw    DrawConfig        `toml:"draw"`
	Catalog CatalogConfig     `toml:"catalog"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
	Color bool       `toml:"color"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

func (c BotConfig) Enabled() bool {
	return c.Token != ""
}

type DrawConfig struct {
	// Weights keys are rarity names or numbers. Empty means the default table.
	Weights  map[string]int `toml:"weights"`
	Seed     uint64         `toml:"seed"`
	Timezone string         `toml:"timezone"`
}

type CatalogConfig struct {
	Generations []GenerationConfig `toml:"generations"`
}

type GenerationConfig struct {
	Cards []catalog.Definition `toml:"cards"`
}

// Validate builds everything derived from the config once so startup fails on bad values.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return &domain.ConfigError{Reason: "http.address is empty"}
	}
	cat, err := c.BuildCatalog()
	if err != nil {
		return err
	}
	weights, err := c.DrawWeights()
	if err != nil {
		return err
	}
	if err := weights.Validate(cat); err != nil {
		return err
	}
	_, err = c.Location()
	return err
}

func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	if len(c.Catalog.Generations) == 0 {
		return catalog.Default(), nil
	}
	defs := make([][]catalog.Definition, len(c.Catalog.Generations))
	for i, gen := range c.Catalog.Generations {
		defs[i] = gen.Cards
	}
	return catalog.New(defs)
}

func (c *Config) DrawWeights() (draw.Weights, error) {
	if len(c.Draw.Weights) == 0 {
		return draw.DefaultWeights(), nil
	}
	weights := make(draw.Weights, len(c.Draw.Weights))
	for key, weight := range c.Draw.Weights {
		rarity, err := catalog.ParseRarity(key)
		if err != nil {
			return nil, &domain.ConfigError{Reason: "draw.weights", Err: err}
		}
		weights[rarity] = weight
	}
	return weights, nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.Draw.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Draw.Timezone)
	if err != nil {
		return nil, &domain.ConfigError{Reason: "draw.timezone", Err: err}
	}
	return loc, nil
}

// DrawOptions wires the seed and timezone into a draw engine.
func (c *Config) DrawOptions() ([]draw.Option, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	opts := []draw.Option{draw.WithClock(func() time.Time { return time.Now().In(loc) })}
	if c.Draw.Seed != 0 {
		opts = append(opts, draw.WithRNG(draw.NewSeededRNG(c.Draw.Seed)))
	}
	return opts, nil
}
