package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldAssetKind       = "asset-kind"
	FieldAssetPath       = "asset-path"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRecords         = "records"
	FieldRequestBody     = "request-body"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRoot            = "root"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
