package config

import (
	"oasis/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("OASIS")
	if configFile != "" {
		if err := configUtil.LoadYaml(configFile, config); err != nil {
			return err
		}
	}

	defaults(config)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.Browse.MaxSelection <= 0 {
		cfg.Browse.MaxSelection = 32
	}

	if cfg.Session.Capacity <= 0 {
		cfg.Session.Capacity = 1024
	}

	if cfg.Session.Expire <= 0 {
		cfg.Session.Expire = 1800
	}
}
