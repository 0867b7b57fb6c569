// Package remote implements the graph computation service client over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"graphbench/application/ports"
	"graphbench/domain/core/valueobjects"
	pkgerrors "graphbench/pkg/errors"
	"graphbench/pkg/observability"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// serviceError is a non-success response from the graph service, carrying the
// optional human-readable detail from the body.
type serviceError struct {
	Status int
	Detail string
}

func (e *serviceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("graph service returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("graph service returned %d", e.Status)
}

// GraphClient talks to the remote computation service. Calls go through a
// circuit breaker that fails fast when the service is unhealthy; nothing is
// retried automatically.
type GraphClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewGraphClient creates a client for the given base URL
func NewGraphClient(baseURL string, timeout time.Duration, metrics *observability.Collector, logger *zap.Logger) *GraphClient {
	c := &GraphClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "graph-service",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return c
}

var _ ports.GraphServiceClient = (*GraphClient)(nil)

// ListInstances returns the selectable graph instances
func (c *GraphClient) ListInstances(ctx context.Context) ([]valueobjects.InstanceDescriptor, error) {
	var out struct {
		Instances []valueobjects.InstanceDescriptor `json:"instances"`
	}
	if err := c.get(ctx, "instances", "/api/instances", nil, &out); err != nil {
		return nil, asExternal(err)
	}
	return out.Instances, nil
}

// SelectInstance activates an instance on the remote service
func (c *GraphClient) SelectInstance(ctx context.Context, instanceID string) error {
	path := "/api/instances/select/" + url.PathEscape(instanceID)
	if err := c.do(ctx, http.MethodPost, "select_instance", path, nil, nil, nil); err != nil {
		return asExternal(err)
	}
	return nil
}

// FetchSchema returns the label and relation-type vocabulary of an instance
func (c *GraphClient) FetchSchema(ctx context.Context, instanceID string) (ports.Schema, error) {
	var out struct {
		Labels   []string `json:"labels"`
		RelTypes []string `json:"rel_types"`
	}
	query := url.Values{"db": []string{instanceID}}
	if err := c.get(ctx, "schema", "/api/schema", query, &out); err != nil {
		return ports.Schema{}, asExternal(err)
	}
	return ports.Schema{Labels: out.Labels, RelTypes: out.RelTypes}, nil
}

// FetchNodes returns the node name list of an instance
func (c *GraphClient) FetchNodes(ctx context.Context, instanceID string) ([]string, error) {
	var out struct {
		Nodes []string `json:"nodes"`
	}
	query := url.Values{"instance": []string{instanceID}}
	if err := c.get(ctx, "nodes", "/api/graph/nodes", query, &out); err != nil {
		return nil, asExternal(err)
	}
	return out.Nodes, nil
}

// ComputeMeasures requests the given measures for a constraint list. A
// non-success response becomes a ComputationFailed error carrying the
// response's detail message when one is present.
func (c *GraphClient) ComputeMeasures(ctx context.Context, constraints, requested []string) (map[string]float64, error) {
	payload := struct {
		Constraints       []string `json:"constraints"`
		RequestedMeasures []string `json:"requested_measures"`
	}{
		Constraints:       constraints,
		RequestedMeasures: requested,
	}

	var out struct {
		Summary map[string]float64 `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, "compute", "/api/measures/compute", nil, payload, &out); err != nil {
		if svcErr, ok := err.(*serviceError); ok {
			return nil, pkgerrors.NewComputationFailedError(svcErr.Detail).WithCause(svcErr)
		}
		return nil, pkgerrors.NewComputationFailedError("").WithCause(err)
	}
	return out.Summary, nil
}

// get issues a GET request and decodes the JSON response
func (c *GraphClient) get(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, path, query, nil, out)
}

// do runs one request through the circuit breaker and decodes the response
// into out when out is non-nil.
func (c *GraphClient) do(ctx context.Context, method, endpoint, path string, query url.Values, payload, out interface{}) error {
	start := time.Now()
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, query, payload, out)
	})
	c.metrics.RemoteDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
		c.logger.Debug("graph service call failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
	}
	c.metrics.RemoteCalls.WithLabelValues(endpoint, outcome).Inc()
	return err
}

func (c *GraphClient) roundTrip(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &serviceError{
			Status: resp.StatusCode,
			Detail: extractDetail(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// extractDetail pulls the optional detail message out of an error body
func extractDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64*1024))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

// asExternal maps transport-level failures to the external error type while
// keeping already-typed errors intact.
func asExternal(err error) error {
	if err == nil {
		return nil
	}
	if pkgerrors.IsAppError(err) {
		return err
	}
	return pkgerrors.NewExternalError("graph-service", err)
}
