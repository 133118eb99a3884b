package config

import (
	"log/slog"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the analyzer configuration. Values act as defaults that
// CLI flags override.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	Language string     `mapstructure:"LANGUAGE"`
	Report   Report     `mapstructure:",squash"`
}

type Report struct {
	TicketsFile     string `mapstructure:"TICKETS_FILE"`
	OriginName      string `mapstructure:"ORIGIN_NAME"`
	DestinationName string `mapstructure:"DESTINATION_NAME"`
}
