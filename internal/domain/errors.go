package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a recommendation request that breaks the caller contract.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDatasetUnavailable signals that the restaurant tables are not loaded.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	// ErrMalformedTable signals an unreadable or inconsistent input table.
	ErrMalformedTable = errors.New("malformed table")
	// ErrMisalignedTables signals that the descriptive and encoding tables disagree on identifiers.
	ErrMisalignedTables = errors.New("tables not aligned")
)

// TableError wraps ErrMalformedTable with the offending file and line.
type TableError struct {
	Path string
	Line int // 1-based, 0 when the problem is not tied to a line
	Msg  string
}

func (e *TableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", ErrMalformedTable.Error(), e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedTable.Error(), e.Path, e.Msg)
}

func (e *TableError) Unwrap() error { return ErrMalformedTable }

// NewTableError creates a malformed table error.
func NewTableError(path string, line int, format string, args ...any) error {
	return &TableError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}
