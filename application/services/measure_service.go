package services

import (
	"context"
	"sync"

	"graphbench/application/ports"
	"graphbench/domain/measures"
	pkgerrors "graphbench/pkg/errors"
	"graphbench/pkg/observability"

	"go.uber.org/zap"
)

// MeasureResult is one rendered result row. A requested measure the service
// did not return keeps its row with HasValue false rather than being omitted.
type MeasureResult struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Value       *float64 `json:"value,omitempty"`
	HasValue    bool     `json:"has_value"`
}

// MeasureService owns the requested-measure subset and the computation
// lifecycle. The summary mapping is cleared at the start of every attempt and
// replaced wholesale from the response; the pending flag is cleared on every
// completion, success or failure. A completion belonging to a superseded
// compute leaves both to the compute that replaced it.
type MeasureService struct {
	client  ports.GraphServiceClient
	session *GraphSession
	logger  *zap.Logger
	metrics *observability.Collector

	mu         sync.Mutex
	requested  map[string]struct{}
	summary    map[string]float64
	hasSummary bool
	pending    bool
	generation uint64
}

// NewMeasureService creates a measure service with the full catalog requested
func NewMeasureService(client ports.GraphServiceClient, session *GraphSession, metrics *observability.Collector, logger *zap.Logger) *MeasureService {
	requested := make(map[string]struct{}, len(measures.Catalog))
	for _, m := range measures.Catalog {
		requested[m.ID] = struct{}{}
	}
	return &MeasureService{
		client:    client,
		session:   session,
		logger:    logger,
		metrics:   metrics,
		requested: requested,
	}
}

// Compute requests the currently selected measure subset for the given
// constraint list. Preconditions are checked before any network activity and
// are not retried: an active instance must be selected and the constraint
// list must be non-empty.
func (m *MeasureService) Compute(ctx context.Context, constraints []string) error {
	if !m.session.HasSelection() {
		return pkgerrors.NewNoInstanceSelectedError()
	}
	if len(constraints) == 0 {
		return pkgerrors.NewNoConstraintsProvidedError()
	}

	m.metrics.Computations.Inc()

	// Overlapping computes are allowed; each carries the generation it was
	// issued under so a slow completion cannot overwrite a newer one.
	m.mu.Lock()
	m.generation++
	generation := m.generation
	requested := m.requestedLocked()
	m.pending = true
	m.summary = nil
	m.hasSummary = false
	m.mu.Unlock()

	m.logger.Info("computing measures",
		zap.Int("constraints", len(constraints)),
		zap.Strings("requested", requested),
	)

	summary, err := m.client.ComputeMeasures(ctx, constraints, requested)

	m.mu.Lock()
	if generation == m.generation {
		m.pending = false
		if err == nil && summary != nil {
			m.summary = summary
			m.hasSummary = true
		}
	}
	m.mu.Unlock()

	if err != nil {
		m.metrics.ComputationErrors.Inc()
		m.logger.Warn("measure computation failed", zap.Error(err))
		if pkgerrors.IsComputationFailed(err) {
			return err
		}
		return pkgerrors.NewComputationFailedError("").WithCause(err)
	}
	return nil
}

// SetRequested replaces the requested-measure subset. Identifiers outside the
// catalog are rejected.
func (m *MeasureService) SetRequested(ids []string) error {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !measures.Contains(id) {
			return pkgerrors.NewValidationError("unknown measure identifier: " + id)
		}
		next[id] = struct{}{}
	}

	m.mu.Lock()
	m.requested = next
	m.mu.Unlock()
	return nil
}

// Requested returns the requested measure identifiers in catalog order
func (m *MeasureService) Requested() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestedLocked()
}

// requestedLocked returns the requested ids in catalog order; callers hold mu
func (m *MeasureService) requestedLocked() []string {
	ids := make([]string, 0, len(m.requested))
	for _, id := range measures.IDs() {
		if _, ok := m.requested[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Pending reports whether a computation is in flight
func (m *MeasureService) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// HasSummary reports whether a computation has produced a summary
func (m *MeasureService) HasSummary() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasSummary
}

// Results renders one row per requested measure, in catalog order. Entries
// the last summary omitted are present with HasValue false.
func (m *MeasureService) Results() []MeasureResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := make([]MeasureResult, 0, len(m.requested))
	for _, measure := range measures.Catalog {
		if _, ok := m.requested[measure.ID]; !ok {
			continue
		}
		row := MeasureResult{
			ID:          measure.ID,
			Label:       measure.Label,
			Description: measure.Description,
		}
		if m.hasSummary {
			if value, ok := m.summary[measure.ID]; ok {
				v := value
				row.Value = &v
				row.HasValue = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}
