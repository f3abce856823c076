package prom

import (
	"regexp"
	"strconv"
	"time"

	"github.com/halfdane/prometheus-renderer/src/types"
)

var rangePattern = regexp.MustCompile(`^(\d+)([smhdw])$`)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// ParseRange converts a human range string (e.g. "24h", "7d") to seconds.
// Only whole positive values with a single unit suffix are accepted.
func ParseRange(rangeStr string) (int64, error) {
	m := rangePattern.FindStringSubmatch(rangeStr)
	if m == nil {
		return 0, &InvalidRangeError{Input: rangeStr}
	}
	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &InvalidRangeError{Input: rangeStr}
	}
	return value * unitSeconds[m[2]], nil
}

// NewTimeRange anchors the query window at now. A non-positive step selects
// the automatic resolution of roughly 300 points across the range.
func NewTimeRange(now time.Time, rangeSeconds int64, stepSeconds int64) types.TimeRange {
	if stepSeconds <= 0 {
		stepSeconds = rangeSeconds / 300
		if stepSeconds < 1 {
			stepSeconds = 1
		}
	}
	end := now
	return types.TimeRange{
		Start: end.Add(-time.Duration(rangeSeconds) * time.Second),
		End:   end,
		Step:  time.Duration(stepSeconds) * time.Second,
	}
}
