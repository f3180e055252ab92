package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sc2ladder/internal/config"
	"sc2ladder/internal/domain"
	"sc2ladder/pkg/errcodes"
)

func TestParseDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Parse(map[string]string{})
	rq.NoError(err)

	rq.Equal(8080, cfg.HTTP.Port)
	rq.Equal(":8080", cfg.HTTP.ListenAddress())
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("dist/sc2ladder.json", cfg.Assets.DataDir)
	rq.Equal("dist/sc2ladder", cfg.Assets.AppDir)
	rq.Equal("players.json", cfg.Assets.DatasetFile)
	rq.Equal("SC2 Ladder", cfg.Assets.PageTitle)
	rq.Equal(slog.LevelInfo, cfg.Log.SlogLevel())
	rq.Equal(1024, cfg.Log.FieldMaxLen)
	rq.Empty(cfg.Probe.ListenAddress)
	rq.Empty(cfg.Metrics.ListenAddress)
}

func TestParse(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		environment map[string]string
		check       func(config.Config)
		wantErr     bool
	}{
		{
			name:        "Port from environment",
			environment: map[string]string{"PORT": "3000"},
			check: func(cfg config.Config) {
				rq.Equal(":3000", cfg.HTTP.ListenAddress())
			},
		},
		{
			name: "Side listeners and log level",
			environment: map[string]string{
				"PROBE_LISTEN_ADDRESS":   ":8081",
				"METRICS_LISTEN_ADDRESS": "localhost:9090",
				"LOG_LEVEL":              "debug",
			},
			check: func(cfg config.Config) {
				rq.Equal(":8081", cfg.Probe.ListenAddress)
				rq.Equal("localhost:9090", cfg.Metrics.ListenAddress)
				rq.Equal(slog.LevelDebug, cfg.Log.SlogLevel())
			},
		},
		{
			name:        "Asset roots",
			environment: map[string]string{"STATIC_DATA_DIR": "/srv/data", "STATIC_APP_DIR": "/srv/app"},
			check: func(cfg config.Config) {
				rq.Equal("/srv/data", cfg.Assets.DataDir)
				rq.Equal("/srv/app", cfg.Assets.AppDir)
			},
		},
		{
			name:        "Port is not a number",
			environment: map[string]string{"PORT": "http"},
			wantErr:     true,
		},
		{
			name:        "Port out of range",
			environment: map[string]string{"PORT": "70000"},
			wantErr:     true,
		},
		{
			name:        "Unknown log level",
			environment: map[string]string{"LOG_LEVEL": "trace"},
			wantErr:     true,
		},
		{
			name:        "Probe address without port",
			environment: map[string]string{"PROBE_LISTEN_ADDRESS": "localhost"},
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			cfg, err := config.Parse(tc.environment)

			if tc.wantErr {
				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(errcodes.InvalidConfig, code)

				return
			}

			rq.NoError(err)
			tc.check(cfg)
		})
	}
}

func TestParseProcessEnvironment(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PORT", "9999")

	cfg, err := config.Parse(nil)
	rq.NoError(err)
	rq.Equal(9999, cfg.HTTP.Port)
}
