package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type serverConfig struct {
	Listen      string
	MaxMsgBytes int
	LogLevel    zerolog.Level
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Listen:      "127.0.0.1:7747",
		MaxMsgBytes: 0,
		LogLevel:    zerolog.InfoLevel,
	}
}

// caif-codecd config.toml key mapping to daemon settings.
type fileConfig struct {
	Listen      string `toml:"listen"`
	MaxMsgBytes int    `toml:"max_msg_bytes"`
	LogLevel    string `toml:"log_level"`
}

// loadServerConfig overlays a TOML file onto the defaults; keys absent from
// the file keep their defaults.
func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serverConfig{}, fmt.Errorf("load codecd config: %w", err)
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}
	if meta.IsDefined("max_msg_bytes") {
		if raw.MaxMsgBytes < 0 {
			return serverConfig{}, fmt.Errorf("max_msg_bytes must be >= 0, got %d", raw.MaxMsgBytes)
		}
		cfg.MaxMsgBytes = raw.MaxMsgBytes
	}
	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return serverConfig{}, fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}
