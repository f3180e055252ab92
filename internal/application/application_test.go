package application_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sc2ladder/internal/application"
	"sc2ladder/internal/config"
	"sc2ladder/internal/server"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newRouter(t *testing.T, srv server.Server) (http.Handler, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, nil))

	return application.NewRouter(log, 256, srv), &buf
}

func TestNewServerEmbeddedRoots(t *testing.T) {
	rq := require.New(t)

	missing := filepath.Join(t.TempDir(), "missing")

	srv, err := application.NewServer(context.Background(), config.Assets{
		DataDir:     missing,
		AppDir:      missing,
		DatasetFile: "players.json",
		PageTitle:   "SC2 Ladder",
	})
	rq.NoError(err)
	rq.True(srv.Ready())

	router, _ := newRouter(t, srv)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.Contains(rec.Body.String(), "<title>SC2 Ladder</title>")
	rq.Equal(10, strings.Count(rec.Body.String(), `<tr class="ranking-row">`))
}

func TestNewServerDiskRoots(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "dist", "sc2ladder.json")
	appDir := filepath.Join(dir, "dist", "sc2ladder")

	writeFile(t, dataDir, "players.json", `[{"name":"Serral"},{"name":"Clem"},{"name":"Maru"}]`)
	writeFile(t, appDir, "index.html", `<h1>{{ .Title }}</h1><p>{{ .Count }}</p>{{ .Table }}`)
	writeFile(t, appDir, "main.js", `console.log("ladder")`)

	srv, err := application.NewServer(context.Background(), config.Assets{
		DataDir:     dataDir,
		AppDir:      appDir,
		DatasetFile: "players.json",
		PageTitle:   "Grandmaster",
	})
	rq.NoError(err)

	router, _ := newRouter(t, srv)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/eu/grandmaster", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.Contains(rec.Body.String(), "<h1>Grandmaster</h1><p>3</p>")
	rq.Equal(3, strings.Count(rec.Body.String(), `<tr class="ranking-row">`))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main.js", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.Equal(`console.log("ladder")`, rec.Body.String())
}

func TestNewServerWithoutEntryDocument(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	appDir := filepath.Join(dir, "app")

	writeFile(t, dataDir, "players.json", `[]`)
	writeFile(t, appDir, "styles.css", `body {}`)

	srv, err := application.NewServer(context.Background(), config.Assets{
		DataDir:     dataDir,
		AppDir:      appDir,
		DatasetFile: "players.json",
	})
	rq.NoError(err)
	rq.False(srv.Ready())
}

func TestNewServerErrors(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "data"), "players.json", `{"season": 61}`)

	_, err := application.NewServer(context.Background(), config.Assets{
		DataDir:     filepath.Join(dir, "data"),
		AppDir:      filepath.Join(dir, "app"),
		DatasetFile: "players.json",
	})
	rq.ErrorContains(err, "dataset.Load")

	writeFile(t, filepath.Join(dir, "data"), "players.json", `[]`)
	writeFile(t, filepath.Join(dir, "app"), "index.html", `{{ .Table `)

	_, err = application.NewServer(context.Background(), config.Assets{
		DataDir:     filepath.Join(dir, "data"),
		AppDir:      filepath.Join(dir, "app"),
		DatasetFile: "players.json",
	})
	rq.ErrorContains(err, "server.BuildEntryDocument")
}

func TestRouterMiddleware(t *testing.T) {
	rq := require.New(t)

	router, logs := newRouter(t, server.NewServer([]byte("<html></html>")))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Trace-Id", "trace-from-client")
	req.Header.Set("Cookie", "session=secret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusOK, rec.Code)
	rq.Equal("trace-from-client", rec.Header().Get("X-Trace-Id"))
	rq.Contains(logs.String(), `"trace-id":"trace-from-client"`)
	rq.Contains(logs.String(), "Cookie: [MASKED]")
	rq.NotContains(logs.String(), "session=secret")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Len(rec.Header().Get("X-Trace-Id"), 20)
}
