package constants

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Field limits, mirrored by the validate tags
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 200
	MaxSearchLength      = 100
)

// HTTP
const (
	APIPrefix           = "/api/v1"
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-Id"
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)
