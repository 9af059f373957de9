// Package sheetq provides read-only streaming queries over xlsx workbooks.
package sheetq

// QueryOptions configures the rows and column queries.
type QueryOptions struct {
	// Limit caps the number of rows returned.
	Limit int
	// Offset skips rows after the slice's starting point.
	Offset int
	// HeaderRow is the 1-based row whose values name the columns.
	HeaderRow int
}

// DefaultQueryOptions returns the options used when no flags are given.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:     50,
		Offset:    0,
		HeaderRow: 1,
	}
}

// Validate checks option values before a query runs.
func (o QueryOptions) Validate() error {
	if o.Limit < 1 {
		return &ArgumentError{Name: "limit", Reason: "must be >= 1"}
	}
	if o.Offset < 0 {
		return &ArgumentError{Name: "offset", Reason: "must be >= 0"}
	}
	if o.HeaderRow < 1 {
		return &ArgumentError{Name: "header-row", Reason: "must be >= 1"}
	}
	return nil
}
