package application

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"sc2ladder/internal/config"
	"sc2ladder/internal/domain"
	"sc2ladder/internal/infrastructure/dataset"
	"sc2ladder/internal/server"
	"sc2ladder/internal/view"
	"sc2ladder/pkg/application/modules"
	"sc2ladder/pkg/contextx"
	"sc2ladder/pkg/errcodes"
	"sc2ladder/pkg/logx"
	"sc2ladder/pkg/metrics"
	"sc2ladder/pkg/middlewarex"
	"sc2ladder/web"
)

const Name = "sc2ladder"

func Run(ctx context.Context, log *slog.Logger, cfg config.Config, version string) error {
	ctx = contextx.WithLogger(ctx, log)

	log.Info("starting", slog.String(logx.FieldAppName, Name), slog.String(logx.FieldAppVersion, version))
	log.Debug("config", slog.String("value", cfg.String()))

	srv, err := NewServer(ctx, cfg.Assets)
	if err != nil {
		return fmt.Errorf("NewServer: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		Address:         cfg.HTTP.ListenAddress(),
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, NewRouter(log, cfg.Log.FieldMaxLen, srv))

	modules.ProbeServer{
		Name:          Name,
		Version:       version,
		ListenAddress: cfg.Probe.ListenAddress,
		Readiness:     srv,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// NewServer loads the ranking once, binds it to the table view and renders
// the entry document. A missing entry document is tolerated: the asset
// roots are still served and unmatched paths answer 404.
func NewServer(ctx context.Context, assets config.Assets) (server.Server, error) {
	dataRoot := assetRoot(ctx, "data", assets.DataDir, web.DataRoot())
	appRoot := assetRoot(ctx, "app", assets.AppDir, web.AppRoot())

	ranking, err := dataset.Load(dataRoot.FS, assets.DatasetFile)
	if err != nil {
		return server.Server{}, fmt.Errorf("dataset.Load: %w", err)
	}

	metrics.RankingRecords.Set(float64(ranking.Len()))

	logger(ctx).Info(
		"ranking loaded",
		slog.Int(logx.FieldRecords, ranking.Len()),
		slog.Any("columns", ranking.Columns),
	)

	entryDocument, err := server.BuildEntryDocument(appRoot.FS, assets.PageTitle, view.NewRankingTable(ranking))
	if err != nil {
		code, _ := domain.GetCode(err)
		if code != errcodes.EntryDocumentNotFound {
			return server.Server{}, fmt.Errorf("server.BuildEntryDocument: %w", err)
		}

		logger(ctx).Warn("entry document not found, unmatched paths will answer 404", logx.Error(err))
	}

	return server.NewServer(entryDocument, dataRoot, appRoot), nil
}

func NewRouter(log *slog.Logger, logFieldMaxLen int, srv server.Server) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return r
}

// assetRoot prefers dir on disk and falls back to the embedded copy.
func assetRoot(ctx context.Context, name, dir string, embedded fs.FS) server.Root {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		logger(ctx).Info("serving asset root from disk", slog.String(logx.FieldRoot, name), slog.String("dir", dir))

		return server.Root{Name: name, FS: os.DirFS(dir)}
	}

	logger(ctx).Info("serving embedded asset root", slog.String(logx.FieldRoot, name), slog.String("dir", dir))

	return server.Root{Name: name, FS: embedded}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
