package recommend

import (
	"context"

	"github.com/kailas-cloud/recodex/internal/dataset"
)

// TableSource provides the loaded restaurant tables.
type TableSource interface {
	Tables(ctx context.Context) (*dataset.Tables, error)
}
