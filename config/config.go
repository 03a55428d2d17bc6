package config

import (
	"github.com/spf13/viper"
)

// Config holds the evaluation service settings.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug, release
}

// Load reads the yaml config at path. A missing file is not an error: the
// defaults stand in for it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":7777")
	v.SetDefault("server.mode", "debug")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
