// Package render composes the fetched series into a raster chart and writes
// it as a PNG.
package render

import (
	"bytes"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/halfdane/prometheus-renderer/src/logging"
	"github.com/halfdane/prometheus-renderer/src/types"
)

// renderDPI is the fixed rendering density; output pixels map 1:1 to Width/Height.
const renderDPI = 100

// Marker lines are always red at reduced opacity, distinct from any palette.
var markerColor = drawing.Color{R: 0xff, G: 0x3b, B: 0x30, A: 0x8c}

// WriteError wraps a failure to compose or write the output image.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing PNG %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Options carries everything the chart needs besides the data itself.
type Options struct {
	Title        string
	Width        int
	Height       int
	StyleName    string
	RangeSeconds int64
	OutputPath   string
}

// Chart draws one line per series, optional vertical marker lines, and writes
// the result to opts.OutputPath. The image is composed fully in memory; the
// only side effect is the final file write.
func Chart(series []types.Series, markers []types.MarkerEvent, opts Options) error {
	st, known := ResolveStyle(opts.StyleName)
	if !known && opts.StyleName != "" {
		logging.Warnf("unknown style %q, falling back to %s", opts.StyleName, st.Name)
	}

	minT, maxT := timeBounds(series)
	if !maxT.After(minT) {
		// Zero span breaks range translation; pad a second out.
		maxT = minT.Add(time.Second)
	}
	xRange := &chart.ContinuousRange{
		Min: chart.TimeToFloat64(minT),
		Max: chart.TimeToFloat64(maxT),
	}
	yRange := valueRange(series)

	labelFmt := tickLabelFormat(opts.RangeSeconds)
	step := tickStep(maxT.Sub(minT))
	ticks := timeTicks(minT, maxT, step, labelFmt)
	if len(ticks) < 2 {
		// go-chart needs two ticks for a drawable axis.
		next := minT.Add(step)
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(next), Label: next.Local().Format(labelFmt)})
	}
	tickStyle := chart.Style{FontColor: st.Text}
	if labelFmt == dateFormat {
		tickStyle.TextRotationDegrees = 45
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for i, s := range series {
		times, values := s.Times, s.Values
		if len(times) == 1 {
			// Pad to at least two X values for go-chart.
			times = []time.Time{times[0], times[0].Add(time.Second)}
			values = []float64{values[0], values[0]}
		}
		chartSeries = append(chartSeries, chart.TimeSeries{
			Name:    s.Label,
			XValues: times,
			YValues: values,
			Style: chart.Style{
				StrokeColor: st.Palette[i%len(st.Palette)],
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontColor: st.Text, FontSize: 11},
		DPI:        renderDPI,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: st.Background},
		Canvas:     chart.Style{FillColor: st.Canvas},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontColor: st.Text, StrokeColor: st.Axis},
			TickStyle:      tickStyle,
			Ticks:          ticks,
			Range:          xRange,
			GridMajorStyle: chart.Style{StrokeColor: st.Grid, StrokeWidth: 0.5},
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontColor: st.Text, StrokeColor: st.Axis},
			Range:          yRange,
			GridMajorStyle: chart.Style{StrokeColor: st.Grid, StrokeWidth: 0.5},
		},
		Series: chartSeries,
	}
	if len(markers) > 0 {
		for _, ev := range markers {
			logging.Debugf("marker at %s version=%q", ev.Time.Format(time.RFC3339), ev.Version)
		}
		ch.Elements = append(ch.Elements, verticalMarkers(markers, xRange))
	}
	if len(series) > 1 {
		ch.Elements = append(ch.Elements, chart.Legend(&ch, chart.Style{
			FillColor:   st.Canvas,
			FontColor:   st.Text,
			StrokeColor: st.Axis,
			FontSize:    8,
		}))
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return &WriteError{Path: opts.OutputPath, Err: err}
	}
	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), 0o644); err != nil {
		return &WriteError{Path: opts.OutputPath, Err: err}
	}
	return nil
}

// verticalMarkers draws one full-height line per event, translated through the
// same X range the series use. Events outside the plotted span are skipped.
func verticalMarkers(events []types.MarkerEvent, xr chart.Range) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		for _, ev := range events {
			x := chart.TimeToFloat64(ev.Time)
			if x < xr.GetMin() || x > xr.GetMax() {
				continue
			}
			px := canvasBox.Left + xr.Translate(x)
			r.SetStrokeColor(markerColor)
			r.SetStrokeWidth(1)
			r.MoveTo(px, canvasBox.Top)
			r.LineTo(px, canvasBox.Bottom)
			r.Stroke()
		}
	}
}

func timeBounds(series []types.Series) (time.Time, time.Time) {
	var minT, maxT time.Time
	first := true
	for _, s := range series {
		for _, t := range s.Times {
			if first {
				minT, maxT = t, t
				first = false
				continue
			}
			if t.Before(minT) {
				minT = t
			}
			if t.After(maxT) {
				maxT = t
			}
		}
	}
	return minT, maxT
}

// valueRange pads the data extent so flat series still have a drawable Y span.
func valueRange(series []types.Series) *chart.ContinuousRange {
	var minV, maxV float64
	first := true
	for _, s := range series {
		for _, v := range s.Values {
			if first {
				minV, maxV = v, v
				first = false
				continue
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	pad := (maxV - minV) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: minV - pad, Max: maxV + pad}
}
