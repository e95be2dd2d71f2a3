package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/recodex/internal/domain"
)

// readCSV parses a delimited file with a header row, as written by pandas DataFrame.to_csv.
func readCSV(path, idColumn string) (*rawTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return parseCSV(path, f, idColumn)
}

func parseCSV(path string, r io.Reader, idColumn string) (*rawTable, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewTableError(path, 0, "empty file")
	}
	if err != nil {
		return nil, csvError(path, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	idIdx, columns, err := splitIDColumn(path, header, idColumn)
	if err != nil {
		return nil, err
	}

	t := &rawTable{path: path, columns: columns}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}
		line, _ := cr.FieldPos(0)
		if err := t.appendRow(record, idIdx, line); err != nil {
			return nil, err
		}
	}

	if len(t.ids) == 0 {
		return nil, domain.NewTableError(path, 0, "no data rows")
	}
	return t, nil
}

func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return domain.NewTableError(path, pe.Line, "%v", pe.Err)
	}
	return fmt.Errorf("read %s: %w", path, err)
}
