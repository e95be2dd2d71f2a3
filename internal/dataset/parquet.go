package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/kailas-cloud/recodex/internal/domain"
)

// readParquet flattens a Parquet file into string cells so both formats share one typing path.
// Only flat schemas are supported: every leaf column must hold one value per row.
func readParquet(path, idColumn string) (*rawTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, domain.NewTableError(path, 0, "open parquet: %v", err)
	}

	leafs := pf.Schema().Columns()
	header := make([]string, len(leafs))
	for i, p := range leafs {
		header[i] = strings.Join(p, ".")
	}

	idIdx, columns, err := splitIDColumn(path, header, idColumn)
	if err != nil {
		return nil, err
	}

	t := &rawTable{path: path, columns: columns}
	rowNum := 0
	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(t, rg, len(header), idIdx, &rowNum); err != nil {
			return nil, err
		}
	}

	if len(t.ids) == 0 {
		return nil, domain.NewTableError(path, 0, "no data rows")
	}
	return t, nil
}

func readRowGroup(t *rawTable, rg parquet.RowGroup, width, idIdx int, rowNum *int) error {
	rows := parquet.NewRowGroupReader(rg)
	buf := make([]parquet.Row, 256)

	for {
		n, readErr := rows.ReadRows(buf)
		for i := 0; i < n; i++ {
			*rowNum++
			record := make([]string, width)
			for _, v := range buf[i] {
				col := v.Column()
				if col < 0 || col >= width {
					return domain.NewTableError(t.path, *rowNum, "unexpected column index %d", col)
				}
				record[col] = valueString(v)
			}
			if err := t.appendRow(record, idIdx, *rowNum); err != nil {
				return err
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return domain.NewTableError(t.path, *rowNum, "read rows: %v", readErr)
		}
	}
}

// valueString renders a Parquet value the way pandas would write it to CSV.
func valueString(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return "True"
		}
		return "False"
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	default:
		return v.String()
	}
}
