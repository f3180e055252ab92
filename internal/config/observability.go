package config

import (
	"log/slog"

	"sc2ladder/pkg/logx"
)

type Log struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	FieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"1024" validate:"gte=0"`
}

func (l Log) SlogLevel() slog.Level {
	level, _ := logx.ParseLevel(l.Level) //nolint:errcheck // validated on load

	return level
}

// Probe and Metrics listeners are off while their address is empty.
type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" validate:"omitempty,hostname_port"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" validate:"omitempty,hostname_port"`
}
