package recodex

import "github.com/kailas-cloud/recodex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest     = domain.ErrInvalidRequest
	ErrDatasetUnavailable = domain.ErrDatasetUnavailable
	ErrMalformedTable     = domain.ErrMalformedTable
	ErrMisalignedTables   = domain.ErrMisalignedTables
)
