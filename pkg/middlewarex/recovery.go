package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"sc2ladder/pkg/httpx/reply"
	"sc2ladder/pkg/logx"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,err113
					panic(rec)
				}

				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
