package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"sc2ladder/pkg/logx"
)

// RequestLogging dumps the request line and headers. Bodies are never read:
// the server only answers GET and HEAD.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, false)

			if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
