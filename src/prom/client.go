// Package prom fetches range-query results from a Prometheus-compatible
// endpoint and shapes them for charting.
package prom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/api"
	"github.com/prometheus/common/model"

	"github.com/halfdane/prometheus-renderer/src/logging"
	"github.com/halfdane/prometheus-renderer/src/types"
)

// QueryTimeout bounds each range query, transport and body included.
const QueryTimeout = 30 * time.Second

const queryRangePath = "/api/v1/query_range"

// apiResponse is the query_range envelope. Result decoding is delegated to
// model.Matrix, which understands the [[timestamp, "value"], ...] pairs.
type apiResponse struct {
	Status   string   `json:"status"`
	Error    string   `json:"error"`
	Warnings []string `json:"warnings"`
	Data     struct {
		ResultType string       `json:"resultType"`
		Result     model.Matrix `json:"result"`
	} `json:"data"`
}

// Client issues query_range calls against one base URL.
type Client struct {
	client api.Client
}

// NewClient builds a client for the given base URL (e.g. http://localhost:9090).
// A trailing slash on the URL is tolerated.
func NewClient(baseURL string) (*Client, error) {
	c, err := api.NewClient(api.Config{Address: strings.TrimRight(baseURL, "/")})
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return &Client{client: c}, nil
}

// queryMatrix performs one GET against query_range with start/end as epoch
// seconds and decodes the envelope. Endpoint-reported errors and empty
// results both come back as typed errors.
func (c *Client) queryMatrix(ctx context.Context, query string, tr types.TimeRange) (model.Matrix, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	u := c.client.URL(queryRangePath, nil)
	params := u.Query()
	params.Set("query", query)
	params.Set("start", strconv.FormatInt(tr.Start.Unix(), 10))
	params.Set("end", strconv.FormatInt(tr.End.Unix(), 10))
	params.Set("step", strconv.FormatInt(int64(tr.Step/time.Second), 10))
	u.RawQuery = params.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	resp, body, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	var envelope apiResponse
	if decodeErr := json.Unmarshal(body, &envelope); decodeErr != nil {
		if resp.StatusCode/100 != 2 {
			return nil, &QueryError{Query: query, Err: fmt.Errorf("unexpected response status %s", resp.Status)}
		}
		return nil, &QueryError{Query: query, Err: decodeErr}
	}
	if envelope.Status != "success" {
		// The endpoint's own message is present on both 2xx and 4xx error bodies.
		msg := envelope.Error
		if msg == "" {
			msg = "unknown"
		}
		return nil, &QueryError{Query: query, Err: errors.New(msg)}
	}
	if resp.StatusCode/100 != 2 {
		return nil, &QueryError{Query: query, Err: fmt.Errorf("unexpected response status %s", resp.Status)}
	}
	if len(envelope.Warnings) > 0 {
		logging.Warnf("Prometheus query warnings for %s: %v", query, envelope.Warnings)
	}
	if len(envelope.Data.Result) == 0 {
		return nil, &NoDataError{Query: query}
	}
	return envelope.Data.Result, nil
}

// QueryRange runs the primary query and returns one Series per result stream,
// labels derived, point order as returned by the endpoint.
func (c *Client) QueryRange(ctx context.Context, query string, tr types.TimeRange) ([]types.Series, error) {
	matrix, err := c.queryMatrix(ctx, query, tr)
	if err != nil {
		return nil, err
	}
	series := make([]types.Series, 0, len(matrix))
	for _, stream := range matrix {
		if len(stream.Values) == 0 {
			continue
		}
		s := types.Series{
			Label:  SeriesLabel(stream.Metric),
			Times:  make([]time.Time, 0, len(stream.Values)),
			Values: make([]float64, 0, len(stream.Values)),
		}
		for _, point := range stream.Values {
			s.Times = append(s.Times, point.Timestamp.Time())
			s.Values = append(s.Values, float64(point.Value))
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, &NoDataError{Query: query}
	}
	return series, nil
}

// QueryMarkers runs the marker query and keeps the first timestamp of each
// stream, sorted ascending so markers draw in chronological order.
func (c *Client) QueryMarkers(ctx context.Context, query string, tr types.TimeRange) ([]types.MarkerEvent, error) {
	matrix, err := c.queryMatrix(ctx, query, tr)
	if err != nil {
		return nil, err
	}
	events := make([]types.MarkerEvent, 0, len(matrix))
	for _, stream := range matrix {
		if len(stream.Values) == 0 {
			continue
		}
		events = append(events, types.MarkerEvent{
			Time:    stream.Values[0].Timestamp.Time(),
			Version: string(stream.Metric["version"]),
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Time.Before(events[j].Time) })
	return events, nil
}
