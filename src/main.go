// prometheus-renderer renders a PromQL range query as a static PNG chart.
//
// One invocation is one chart: parse the requested time range, run the query
// (plus an optional marker query whose failure only costs the markers), and
// write the image. All fatal conditions print a one-line diagnostic and exit
// non-zero; nothing is retried.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/halfdane/prometheus-renderer/src/logging"
	"github.com/halfdane/prometheus-renderer/src/render"
)

// versionEnv overrides the reported version, e.g. set at release time.
const versionEnv = "PROMETHEUS_RENDERER_VERSION"

func versionString() string {
	if v := os.Getenv(versionEnv); v != "" {
		return v
	}
	return "dev"
}

func main() {
	urlFlag := flag.String("url", "http://localhost:9090", "Prometheus base URL")
	query := flag.String("query", "", "PromQL query expression (required)")
	rangeStr := flag.String("range", "24h", "Time range (e.g. 1h, 24h, 7d)")
	title := flag.String("title", "", "Chart title")
	output := flag.String("output", "", "Output PNG file path (required)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 300, "Image height in pixels")
	step := flag.Int64("step", 0, "Query resolution step in seconds (0 = auto, ~300 data points)")
	vlinesQuery := flag.String("vlines-query", "", "PromQL query for event markers: the first timestamp of each returned series is drawn as a vertical line (e.g. 'nixos_system_version')")
	styleName := flag.String("style", render.DefaultStyleName, "Chart style name (dark_background, default, ggplot)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("prometheus-renderer %s\n", versionString())
		return
	}

	logging.SetLogLevel(*logLevel)

	if *query == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "--query and --output are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{
		URL:         *urlFlag,
		Query:       *query,
		RangeStr:    *rangeStr,
		Title:       *title,
		Output:      *output,
		Width:       *width,
		Height:      *height,
		StepSeconds: *step,
		VlinesQuery: *vlinesQuery,
		Style:       *styleName,
	}
	if err := run(cfg, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
