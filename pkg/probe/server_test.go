package probe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"sc2ladder/pkg/probe"
)

type readiness bool

func (r readiness) Ready() bool {
	return bool(r)
}

func TestServerHandler(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		endpoint   string
		readiness  probe.ReadinessChecker
		statusCode int
		body       string
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			readiness:  readiness(false),
			statusCode: http.StatusOK,
			body:       `{"name":"sc2ladder","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler",
			endpoint:   "/ready",
			readiness:  readiness(true),
			statusCode: http.StatusOK,
			body:       `{"name":"sc2ladder","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler before the page is built",
			endpoint:   "/ready",
			readiness:  readiness(false),
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"sc2ladder","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler without checker",
			endpoint:   "/ready",
			statusCode: http.StatusOK,
			body:       `{"name":"sc2ladder","version":"v0.0.1"}`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			readiness:  readiness(true),
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			probeServer := probe.NewServer(
				":0",
				probe.Options{Name: "sc2ladder", Version: "v0.0.1"},
				tc.readiness,
			)

			rec := httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Equal(tc.body, rec.Body.String())
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10001", probe.Options{Name: "sc2ladder"}, readiness(true))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10001/healthz", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	rq.NoError(err)

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.JSONEq(`{"name":"sc2ladder","version":""}`, string(bodyBytes))

	cancel()

	rq.NoError(g.Wait())
}
