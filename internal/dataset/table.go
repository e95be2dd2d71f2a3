package dataset

import (
	"strings"

	"github.com/kailas-cloud/recodex/internal/domain"
)

// rawTable is a parsed file before typing: one identifier and a row of string cells per record.
type rawTable struct {
	path    string
	columns []string   // header without the identifier column
	ids     []string   // identifier per row
	cells   [][]string // cells[i][j] belongs to columns[j]
	lines   []int      // source line (CSV) or row number (Parquet) per row, for errors
}

// splitIDColumn removes the identifier column from a header and returns its position.
// An empty idColumn selects the leading column.
func splitIDColumn(path string, header []string, idColumn string) (int, []string, error) {
	if len(header) < 2 {
		return 0, nil, domain.NewTableError(path, 1, "expected an identifier column and at least one data column")
	}

	idx := 0
	if idColumn != "" {
		idx = -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), idColumn) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return 0, nil, domain.NewTableError(path, 1, "identifier column %q not found", idColumn)
		}
	}

	columns := make([]string, 0, len(header)-1)
	for i, h := range header {
		if i != idx {
			columns = append(columns, strings.TrimSpace(h))
		}
	}
	return idx, columns, nil
}

// appendRow splits a record into identifier and data cells.
func (t *rawTable) appendRow(record []string, idIdx, line int) error {
	if len(record) != len(t.columns)+1 {
		return domain.NewTableError(t.path, line, "expected %d fields, got %d", len(t.columns)+1, len(record))
	}
	id := strings.TrimSpace(record[idIdx])
	if id == "" {
		return domain.NewTableError(t.path, line, "empty identifier")
	}

	cells := make([]string, 0, len(t.columns))
	for i, c := range record {
		if i != idIdx {
			cells = append(cells, c)
		}
	}
	t.ids = append(t.ids, id)
	t.cells = append(t.cells, cells)
	t.lines = append(t.lines, line)
	return nil
}

// columnIndex finds a column by case-insensitive name, -1 when absent.
func (t *rawTable) columnIndex(name string) int {
	for i, c := range t.columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
