package render

import (
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Axis label format follows the requested range, not the data span: short
// clock labels inside a day, month-day beyond it.
const (
	clockFormat = "15:04"
	dateFormat  = "01-02"
)

func tickLabelFormat(rangeSeconds int64) string {
	if rangeSeconds <= 86400 {
		return clockFormat
	}
	return dateFormat
}

// tickStep selects a readable tick spacing for a given time span.
func tickStep(span time.Duration) time.Duration {
	switch {
	case span <= 2*time.Minute:
		return 10 * time.Second
	case span <= 10*time.Minute:
		return 1 * time.Minute
	case span <= 30*time.Minute:
		return 5 * time.Minute
	case span <= 2*time.Hour:
		return 10 * time.Minute
	case span <= 6*time.Hour:
		return 30 * time.Minute
	case span <= 24*time.Hour:
		return 2 * time.Hour
	case span <= 3*24*time.Hour:
		return 6 * time.Hour
	case span <= 14*24*time.Hour:
		return 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// timeTicks returns step-aligned ticks covering [minT, maxT] with labels in
// the given format. Alignment is done in UTC to avoid DST anomalies; labels
// render in local time.
func timeTicks(minT, maxT time.Time, step time.Duration, labelFmt string) []chart.Tick {
	if step <= 0 {
		return nil
	}
	st := int64(step.Seconds())
	if st <= 0 {
		st = 1
	}
	aligned := time.Unix((minT.UTC().Unix()/st)*st, 0).UTC()
	for aligned.Before(minT) {
		aligned = aligned.Add(step)
	}
	ticks := []chart.Tick{}
	for t := aligned; !t.After(maxT); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Local().Format(labelFmt)})
		if len(ticks) > 20 { // keep it readable
			break
		}
	}
	return ticks
}
