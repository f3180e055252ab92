package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"sc2ladder/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID propagates the caller's X-Trace-Id or mints an xid when it is
// missing or longer than maxTraceIDLen.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
