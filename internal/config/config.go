package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"sc2ladder/internal/domain"
	"sc2ladder/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	HTTP    HTTP
	Assets  Assets
	Log     Log
	Probe   Probe
	Metrics Metrics
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(nil)
}

// Parse builds the config from environment, or from the process environment
// when environment is nil.
func Parse(environment map[string]string) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, env.Options{Environment: environment}); err != nil {
		return Config{}, domain.WrapError(err, errcodes.InvalidConfig, "env.Parse")
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, domain.WrapError(err, errcodes.InvalidConfig, "validate.Struct")
	}

	return config, nil
}

func (c Config) String() string {
	return fmt.Sprintf(
		"port=%d data=%s app=%s dataset=%s log=%s probe=%q metrics=%q",
		c.HTTP.Port, c.Assets.DataDir, c.Assets.AppDir, c.Assets.DatasetFile,
		c.Log.Level, c.Probe.ListenAddress, c.Metrics.ListenAddress,
	)
}
