package prom

import "fmt"

// InvalidRangeError reports a range string that does not match \d+[smhdw].
type InvalidRangeError struct {
	Input string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range format: %s (expected e.g. 1h, 24h, 7d)", e.Input)
}

// QueryError wraps a transport failure or an error reported by the endpoint
// itself (status != "success"). The wrapped error carries the cause.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error querying Prometheus: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// NoDataError means the query succeeded but returned no series.
type NoDataError struct {
	Query string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data returned for query: %s", e.Query)
}
