package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyAdminID contextKey = "admin_id"
	ContextKeyTokenID contextKey = "token_id"
)

const (
	ContextGuest = "guest"
	AdminSubject = "admin"
)

const (
	VehicleStatusAvailable = "Available"
	VehicleStatusSold      = "Sold"
	VehicleStatusReserved  = "Reserved"
)

const (
	VehicleConditionExcellent = "Excellent"
	VehicleConditionGood      = "Good"
	VehicleConditionFair      = "Fair"
)

const (
	// PlaceholderImage is stored on vehicles created without any uploads.
	PlaceholderImage = "/drive4less.jpg"
	// FallbackImage is substituted at render time when the derived display
	// list is empty.
	FallbackImage = "/drive-4-less-logo.jpg"

	// UploadDirectory is the bucket prefix every vehicle image lives under.
	UploadDirectory = "public"

	// UploadConcurrency bounds the parallel upload workers for one batch.
	UploadConcurrency = 3
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamBrand   = "brand"
	RequestParamSort    = "sort"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 32 << 20 // 32 MB, multi-file upload batches
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"

	FeaturedLimit = 4
)

const (
	SortKeyName  = "name"
	SortKeyPrice = "price"
	SortKeyYear  = "year"

	BrandFilterAll = "all"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelKafkaScopeName    = "kafka"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	FormFiles       = "files"
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

const (
	Empty = ""
)
