package main

import (
	"context"
	"time"

	"github.com/halfdane/prometheus-renderer/src/logging"
	"github.com/halfdane/prometheus-renderer/src/prom"
	"github.com/halfdane/prometheus-renderer/src/render"
	"github.com/halfdane/prometheus-renderer/src/types"
)

// config is the flat per-invocation configuration, resolved once from flags.
type config struct {
	URL         string
	Query       string
	RangeStr    string
	Title       string
	Output      string
	Width       int
	Height      int
	StepSeconds int64
	VlinesQuery string
	Style       string
}

// run executes the whole pipeline once. It never exits the process; the
// caller decides what an error is worth. now is passed in so tests can freeze
// the clock.
func run(cfg config, now time.Time) error {
	rangeSeconds, err := prom.ParseRange(cfg.RangeStr)
	if err != nil {
		return err
	}
	tr := prom.NewTimeRange(now, rangeSeconds, cfg.StepSeconds)

	client, err := prom.NewClient(cfg.URL)
	if err != nil {
		return err
	}
	ctx := context.Background()

	series, err := client.QueryRange(ctx, cfg.Query, tr)
	if err != nil {
		return err
	}

	// The marker query rides along: any failure here costs only the markers,
	// never the chart.
	var markers []types.MarkerEvent
	if cfg.VlinesQuery != "" {
		markers, err = client.QueryMarkers(ctx, cfg.VlinesQuery, tr)
		if err != nil {
			logging.Warnf("could not fetch vlines query: %v", err)
			markers = nil
		}
	}

	return render.Chart(series, markers, render.Options{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		StyleName:    cfg.Style,
		RangeSeconds: rangeSeconds,
		OutputPath:   cfg.Output,
	})
}
