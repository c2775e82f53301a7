// Package config reads glox's REPL settings from the environment. It is a
// small surface deliberately: glox has no config file, just a handful of
// environment variables that customize the interactive prompt.
package config

import "github.com/caarlos0/env/v6"

// REPL holds the environment-derived settings for the interactive prompt.
type REPL struct {
	Prompt      string `env:"GLOX_PROMPT" envDefault:">>> "`
	HistoryFile string `env:"GLOX_HISTORY_FILE"`
	NoColor     bool   `env:"GLOX_NO_COLOR"`
}

// Load parses the REPL config from the process environment.
func Load() (REPL, error) {
	var cfg REPL
	if err := env.Parse(&cfg); err != nil {
		return REPL{}, err
	}

	return cfg, nil
}
