// Package data provides the generic record store used by the services.
// Rows travel as loosely typed maps because the hosted database returns
// JSON and stored values are not guaranteed to match their column types.
package data

import "errors"

// ErrNotFound is returned when a single-row fetch matches nothing
var ErrNotFound = errors.New("row not found")

// Row is a single record as returned by the store
type Row = map[string]any

// Filter restricts a query to rows matching a column condition
type Filter struct {
	Column string
	Op     string // "eq", "gte" or "ilike"
	Value  any
}

// Eq matches rows where column equals value
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: "eq", Value: value}
}

// Gte matches rows where column is greater than or equal to value
func Gte(column string, value any) Filter {
	return Filter{Column: column, Op: "gte", Value: value}
}

// ILike matches rows where column matches a case-insensitive pattern,
// with % as the wildcard
func ILike(column string, pattern string) Filter {
	return Filter{Column: column, Op: "ilike", Value: pattern}
}

// Query describes a row fetch against one table
type Query struct {
	Table   string
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Store is the table-query interface the services are written against.
// Production uses the hosted PostgREST implementation, local mode and
// tests use the sqlite one.
type Store interface {
	// FetchRows returns all rows matching the query
	FetchRows(q Query) ([]Row, error)
	// FetchSingle returns exactly one matching row or ErrNotFound
	FetchSingle(q Query) (Row, error)
	// InsertRow appends a row to a table
	InsertRow(table string, row Row) error
	// UpdateRow updates all rows matching the filters
	UpdateRow(table string, filters []Filter, row Row) error
	// DeleteRow deletes all rows matching the filters
	DeleteRow(table string, filters []Filter) error
}
