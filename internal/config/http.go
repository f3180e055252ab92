package config

import (
	"net"
	"strconv"
	"time"
)

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"8080" validate:"min=0,max=65535"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

func (h HTTP) ListenAddress() string {
	return net.JoinHostPort("", strconv.Itoa(h.Port))
}
