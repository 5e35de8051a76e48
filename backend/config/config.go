package config

import "time"

// Config is the [http] section.
type Config struct {
	Address     string   `toml:"address"`
	CardsDir    string   `toml:"cards_dir"`
	CardsMaxAge int      `toml:"cards_max_age"`
	CORSOrigins []string `toml:"cors_origins"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

func Default() Config {
	return Config{
		Address:         ":3000",
		CardsDir:        "cards",
		CardsMaxAge:     int((30 * 24 * time.Hour).Seconds()),
		ShutdownTimeout: 10,
	}
}

func (c Config) ShutdownGrace() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeout) * time.Second
}
