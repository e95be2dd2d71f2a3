// Package dataset loads the restaurant tables: a descriptive table and a
// numeric feature-encoding table, row-aligned by a shared identifier.
package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Supported table formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Source locates the two input tables.
type Source struct {
	RestaurantsPath string
	EncodingsPath   string
	Format          string // empty: by file extension
	IDColumn        string // empty: leading column
}

// Load reads and aligns both tables. Any failure leaves nothing loaded.
func Load(ctx context.Context, src Source) (*Tables, error) {
	desc, err := readTable(src.RestaurantsPath, src.Format, src.IDColumn)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	enc, err := readTable(src.EncodingsPath, src.Format, src.IDColumn)
	if err != nil {
		return nil, fmt.Errorf("load encodings: %w", err)
	}

	tables, err := buildTables(desc, enc)
	if err != nil {
		return nil, fmt.Errorf("align tables: %w", err)
	}
	return tables, nil
}

func readTable(path, format, idColumn string) (*rawTable, error) {
	switch detectFormat(path, format) {
	case FormatParquet:
		return readParquet(path, idColumn)
	default:
		return readCSV(path, idColumn)
	}
}

func detectFormat(path, format string) string {
	if format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatCSV
}
