package config

import (
	"dsc/store"
)

// Config dsc node config
type Config struct {
	App      App          `json:"app"`
	DB       store.Config `json:"db"`
	Genesis  Genesis      `json:"genesis"`
	Watchdog Watchdog     `json:"watchdog"`
}

// App app config
type App struct {
	Port       int    `json:"port"`
	DebtSymbol string `json:"debt_symbol"`
}

// Genesis immutable construction-time registration: parallel asset and
// feed lists (must be equal length) and the seed price per feed in the
// 8-decimal convention.
type Genesis struct {
	Assets []string          `json:"assets"`
	Feeds  []string          `json:"feeds"`
	Prices map[string]string `json:"prices"`
}

// Watchdog watchdog config
type Watchdog struct {
	Spec string `json:"spec"`
}

func defaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 9000
	}

	if cfg.App.DebtSymbol == "" {
		cfg.App.DebtSymbol = "DSC"
	}

	if cfg.Watchdog.Spec == "" {
		cfg.Watchdog.Spec = "@every 10s"
	}
}
