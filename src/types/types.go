// Package types holds the value types shared between the query and render layers.
package types

import "time"

// TimeRange is the resolved query window: end anchored at "now", start derived
// from the requested range, step controlling point density.
type TimeRange struct {
	Start time.Time
	End   time.Time
	Step  time.Duration
}

// Series is one plotted line: a display label plus parallel time/value slices
// in the order the endpoint returned them (assumed chronological).
type Series struct {
	Label  string
	Times  []time.Time
	Values []float64
}

// MarkerEvent is a single vertical reference line, typically a deployment.
// Version is informational only; every marker renders identically.
type MarkerEvent struct {
	Time    time.Time
	Version string
}
