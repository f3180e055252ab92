package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5/middleware"

	"sc2ladder/internal/view"
	"sc2ladder/pkg/errcodes"
	"sc2ladder/pkg/httpx/reply"
	"sc2ladder/pkg/logx"
	"sc2ladder/pkg/metrics"
)

func (s Server) getAsset(w http.ResponseWriter, r *http.Request) error {
	name := assetName(r.URL.Path)

	if name != "" && name != view.EntryDocumentName {
		for _, root := range s.roots {
			served, err := s.serveFile(w, r, root, name)
			if err != nil {
				return fmt.Errorf("serveFile %s: %w", root.Name, err)
			}

			if served {
				return nil
			}
		}
	}

	return s.serveEntryDocument(w, r)
}

func (s Server) serveEntryDocument(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if s.entryDocument == nil {
		metrics.HTTPRequestsTotal.WithLabelValues(metrics.KindEntry, strconv.Itoa(http.StatusNotFound)).Inc()

		return failure.NewNotFoundError(
			"entry document is missing",
			failure.WithCode(errcodes.EntryDocumentNotFound),
			failure.WithDescription("The page is not available"),
		)
	}

	instrument(metrics.KindEntry, w, r, func(w http.ResponseWriter) {
		reply.HTML(ctx, w, r, http.StatusOK, s.entryDocument)
	})

	return nil
}

// serveFile reports false when name is not a regular file in root.
func (s Server) serveFile(w http.ResponseWriter, r *http.Request, root Root, name string) (bool, error) {
	f, err := root.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return false, nil
		}

		return false, fmt.Errorf("fs.Open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("f.Stat: %w", err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	content, err := readSeeker(f)
	if err != nil {
		return false, err
	}

	logger(r.Context()).Debug(
		"asset served",
		slog.String(logx.FieldRoot, root.Name),
		slog.String(logx.FieldAssetPath, name),
	)

	instrument(metrics.KindAsset, w, r, func(w http.ResponseWriter) {
		http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	})

	return true, nil
}

// assetName maps a URL path to an fs.FS name, "" for the root.
func assetName(urlPath string) string {
	return strings.TrimPrefix(path.Clean("/"+urlPath), "/")
}

func readSeeker(f fs.File) (io.ReadSeeker, error) {
	if rs, ok := f.(io.ReadSeeker); ok {
		return rs, nil
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return bytes.NewReader(b), nil
}

func instrument(kind string, w http.ResponseWriter, r *http.Request, serve func(http.ResponseWriter)) {
	start := time.Now()
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

	serve(ww)

	status := ww.Status()
	if status == 0 {
		status = http.StatusOK
	}

	metrics.HTTPRequestsTotal.WithLabelValues(kind, strconv.Itoa(status)).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
