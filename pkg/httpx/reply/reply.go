package reply

import (
	"context"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"sc2ladder/pkg/contextx"
	"sc2ladder/pkg/errcodes"
	"sc2ladder/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// HTML writes a pre-rendered document. The body is skipped for HEAD.
func HTML(ctx context.Context, w http.ResponseWriter, r *http.Request, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(body); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
