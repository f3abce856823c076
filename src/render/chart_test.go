package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/halfdane/prometheus-renderer/src/types"
)

func sampleSeries(n int, base time.Time, count, stepSeconds int) []types.Series {
	series := make([]types.Series, n)
	for i := range series {
		s := types.Series{Label: "series"}
		for p := 0; p < count; p++ {
			s.Times = append(s.Times, base.Add(time.Duration(p*stepSeconds)*time.Second))
			s.Values = append(s.Values, float64(i+1)*10+float64(p))
		}
		series[i] = s
	}
	return series
}

func defaultOptions(path string) Options {
	return Options{
		Title:        "test chart",
		Width:        800,
		Height:       300,
		StyleName:    DefaultStyleName,
		RangeSeconds: 86400,
		OutputPath:   path,
	}
}

func decodeDims(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestChart_WritesPNGAtRequestedSize(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	if err := Chart(sampleSeries(2, base, 5, 6*3600), nil, defaultOptions(out)); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
	w, h := decodeDims(t, out)
	if w != 800 || h != 300 {
		t.Errorf("image is %dx%d, want 800x300", w, h)
	}
}

func TestChart_LongRangeSingleSeries(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	opts := defaultOptions(out)
	opts.RangeSeconds = 30 * 86400
	opts.Width, opts.Height = 640, 240
	if err := Chart(sampleSeries(1, base, 30, 86400), nil, opts); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	w, h := decodeDims(t, out)
	if w != 640 || h != 240 {
		t.Errorf("image is %dx%d, want 640x240", w, h)
	}
}

func TestChart_WithMarkers(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	markers := []types.MarkerEvent{
		{Time: base.Add(2 * time.Hour), Version: "1.0"},
		{Time: base.Add(10 * time.Hour), Version: "1.1"},
		{Time: base.Add(-100 * time.Hour), Version: "outside-range"},
	}
	if err := Chart(sampleSeries(2, base, 5, 6*3600), markers, defaultOptions(out)); err != nil {
		t.Fatalf("Chart with markers: %v", err)
	}
	if info, _ := os.Stat(out); info == nil || info.Size() == 0 {
		t.Fatal("output file missing or empty")
	}
}

func TestChart_SinglePointSeries(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	if err := Chart(sampleSeries(1, base, 1, 0), nil, defaultOptions(out)); err != nil {
		t.Fatalf("Chart with one point: %v", err)
	}
}

func TestChart_FlatSeries(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	flat := types.Series{Label: "flat"}
	for p := 0; p < 5; p++ {
		flat.Times = append(flat.Times, base.Add(time.Duration(p)*time.Hour))
		flat.Values = append(flat.Values, 1.0)
	}
	if err := Chart([]types.Series{flat}, nil, defaultOptions(out)); err != nil {
		t.Fatalf("Chart with constant values: %v", err)
	}
}

func TestChart_UnknownStyleStillRenders(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "chart.png")

	opts := defaultOptions(out)
	opts.StyleName = "no_such_style"
	if err := Chart(sampleSeries(1, base, 5, 3600), nil, opts); err != nil {
		t.Fatalf("Chart: %v", err)
	}
}

func TestChart_Deterministic(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")

	series := sampleSeries(2, base, 5, 6*3600)
	opts := defaultOptions(first)
	if err := Chart(series, nil, opts); err != nil {
		t.Fatalf("first render: %v", err)
	}
	opts.OutputPath = second
	if err := Chart(series, nil, opts); err != nil {
		t.Fatalf("second render: %v", err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different images")
	}
}

func TestChart_WriteFailure(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "chart.png")

	err := Chart(sampleSeries(1, base, 5, 3600), nil, defaultOptions(out))
	if err == nil {
		t.Fatal("expected write error, got none")
	}
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("error = %v (%T), want *WriteError", err, err)
	}
	if writeErr.Path != out {
		t.Errorf("WriteError.Path = %q, want %q", writeErr.Path, out)
	}
}
