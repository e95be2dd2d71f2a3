package chi

import "github.com/kailas-cloud/recodex/internal/domain/recommend/result"

// ErrorCode is a machine-readable error kind.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeDatasetUnavailable ErrorCode = "dataset_unavailable"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendRequest is the POST /recommendations body.
type RecommendRequest struct {
	City     string   `json:"city" validate:"required"`
	Cuisines []string `json:"cuisines" validate:"required,min=1,dive,required"`
	TopN     *int     `json:"top_n,omitempty" validate:"omitempty,min=1"`
	SortBy   string   `json:"sort_by,omitempty" validate:"omitempty,oneof=similarity rating"`
}

// RecommendResponse is a ranked list, or an empty state with Message set.
type RecommendResponse struct {
	City         string        `json:"city"`
	Count        int           `json:"count"`
	SortBy       string        `json:"sort_by"`
	IncludesArea bool          `json:"includes_area"`
	Items        []result.Item `json:"items"`
	Message      string        `json:"message,omitempty"`
}

// CitiesResponse lists the queryable cities.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// CuisinesResponse lists the cuisines of one city.
type CuisinesResponse struct {
	City     string   `json:"city"`
	Cuisines []string `json:"cuisines"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
