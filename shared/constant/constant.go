package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamTimestamp = "ts"
	RequestParamFormat    = "format"
	RequestParamLocale    = "locale"
	RequestParamTimezone  = "tz"
	RequestParamGMTOffset = "gmt_offset"
	RequestParamPublished = "published"
	RequestParamLayout    = "layout"
	RequestParamSeparator = "sep"
)

const (
	CompactLayoutYMD  = "ymd"
	CompactLayoutYMDH = "ymdh"
	CompactLayoutYM   = "ym"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderAcceptLanguage     = "Accept-Language"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
