package prom

import (
	"sort"
	"strings"

	"github.com/prometheus/common/model"
)

// Tags that identify where a metric came from rather than what it measures;
// they would repeat on every line of a chart, so they are left out of labels.
var excludedLabels = map[model.LabelName]struct{}{
	model.MetricNameLabel: {},
	"job":                 {},
	"instance":            {},
}

// SeriesLabel derives a display label from a metric's tag set: remaining tags
// rendered k=v in lexicographic key order. Falls back to the metric name, then
// the literal "value", so every series gets a stable non-empty label.
func SeriesLabel(metric model.Metric) string {
	keys := make([]string, 0, len(metric))
	for name := range metric {
		if _, skip := excludedLabels[name]; skip {
			continue
		}
		keys = append(keys, string(name))
	}
	if len(keys) == 0 {
		if name, ok := metric[model.MetricNameLabel]; ok {
			return string(name)
		}
		return "value"
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + string(metric[model.LabelName(k)])
	}
	return strings.Join(parts, ", ")
}
