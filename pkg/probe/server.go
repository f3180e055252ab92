package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"sc2ladder/pkg/contextx"
	"sc2ladder/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ReadinessChecker reports whether the service can answer page requests.
type ReadinessChecker interface {
	Ready() bool
}

type Server struct {
	listenAddress string
	state         []byte
	readiness     ReadinessChecker
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewServer(
	listenAddress string,
	options Options,
	readiness ReadinessChecker,
) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		listenAddress: listenAddress,
		state:         stateJSON,
		readiness:     readiness,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handlerHealthz)
	mux.HandleFunc("GET /ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}

func (s Server) handlerReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.readiness != nil && !s.readiness.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	w.Write(s.state) //nolint:errcheck
}
