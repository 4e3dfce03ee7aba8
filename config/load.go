package config

import (
	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *Config) error {
	configUtil.AutomaticLoadEnv("DSC")
	if err := configUtil.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}
