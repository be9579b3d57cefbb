package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Http   HttpConfig
	Scores ScoresConfig
}

type HttpConfig struct {
	Port   string `envconfig:"HTTP_PORT" default:"8080"`
	Origin string `envconfig:"HTTP_ORIGIN" default:"*"`
}

// ScoresConfig selects the external results provider. "oddsapi" is the keyed,
// rate-limited provider; "espn" is the free public scoreboard and needs no
// key. BaseURL overrides the provider endpoint, mainly for tests.
type ScoresConfig struct {
	Provider string `envconfig:"SCORES_PROVIDER" default:"espn"`
	APIKey   string `envconfig:"ODDS_API_KEY"`
	BaseURL  string `envconfig:"SCORES_BASE_URL"`
	DaysFrom int    `envconfig:"ODDS_API_DAYS_FROM" default:"3"`
}

func New() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
