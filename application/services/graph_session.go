package services

import (
	"context"
	"sync"

	"graphbench/application/ports"
	"graphbench/domain/core/valueobjects"
	pkgerrors "graphbench/pkg/errors"
	"graphbench/pkg/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SelectionState is the lifecycle state of the active instance selection
type SelectionState string

const (
	SelectionNone          SelectionState = "no_selection"
	SelectionSelecting     SelectionState = "selecting"
	SelectionSchemaLoading SelectionState = "schema_loading"
	SelectionReady         SelectionState = "ready"
	SelectionFailed        SelectionState = "failed"
)

// GraphSession owns the active instance selection and its vocabulary snapshot.
// Selecting an instance runs a two-phase sequence: the remote selection call,
// then the schema and node fetches in parallel. The vocabulary is only ever
// replaced wholesale, and only by the load that is still current; completions
// of superseded loads are discarded.
type GraphSession struct {
	client  ports.GraphServiceClient
	logger  *zap.Logger
	metrics *observability.Collector

	mu         sync.RWMutex
	state      SelectionState
	selection  string
	vocabulary valueobjects.Vocabulary
	loadToken  string
}

// NewGraphSession creates a session with no selection and an empty vocabulary
func NewGraphSession(client ports.GraphServiceClient, metrics *observability.Collector, logger *zap.Logger) *GraphSession {
	return &GraphSession{
		client:     client,
		logger:     logger,
		metrics:    metrics,
		state:      SelectionNone,
		vocabulary: valueobjects.EmptyVocabulary(),
	}
}

// Instances returns the selectable graph instances from the remote service
func (s *GraphSession) Instances(ctx context.Context) ([]valueobjects.InstanceDescriptor, error) {
	instances, err := s.client.ListInstances(ctx)
	if err != nil {
		s.logger.Warn("failed to list instances", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to list instances")
	}
	return instances, nil
}

// SelectInstance changes the active selection. An empty id clears the
// selection and the vocabulary. A non-empty id always initiates a schema
// reload; the previous vocabulary is retained until that reload completes or
// fails. When the selection changes again before a load finishes, the older
// load's completion is ignored.
func (s *GraphSession) SelectInstance(ctx context.Context, instanceID string) error {
	if instanceID == "" {
		s.mu.Lock()
		s.state = SelectionNone
		s.selection = ""
		s.vocabulary = valueobjects.EmptyVocabulary()
		s.loadToken = ""
		s.mu.Unlock()
		s.logger.Info("selection cleared")
		return nil
	}

	s.metrics.SchemaLoads.Inc()

	// Each load carries the token it was issued under; completion handlers
	// compare it against the current one before touching session state.
	token := uuid.NewString()

	s.mu.Lock()
	s.selection = instanceID
	s.state = SelectionSelecting
	s.loadToken = token
	s.mu.Unlock()

	if err := s.client.SelectInstance(ctx, instanceID); err != nil {
		return s.failLoad(token, instanceID, err)
	}

	if !s.advance(token, SelectionSchemaLoading) {
		s.logger.Debug("selection superseded before schema load",
			zap.String("instanceID", instanceID))
		return nil
	}

	var (
		schema ports.Schema
		nodes  []string
	)

	// The two fetches are independent; the join point is both-complete.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schema, err = s.client.FetchSchema(gctx, instanceID)
		return err
	})
	g.Go(func() error {
		var err error
		nodes, err = s.client.FetchNodes(gctx, instanceID)
		return err
	})

	if err := g.Wait(); err != nil {
		return s.failLoad(token, instanceID, err)
	}

	vocabulary := valueobjects.NewVocabulary(schema.Labels, schema.RelTypes, nodes)

	s.mu.Lock()
	if s.loadToken != token {
		s.mu.Unlock()
		s.logger.Debug("discarding stale schema load",
			zap.String("instanceID", instanceID))
		return nil
	}
	s.vocabulary = vocabulary
	s.state = SelectionReady
	s.mu.Unlock()

	s.logger.Info("schema loaded",
		zap.String("instanceID", instanceID),
		zap.Int("labels", len(schema.Labels)),
		zap.Int("relTypes", len(schema.RelTypes)),
		zap.Int("nodes", len(nodes)),
	)
	return nil
}

// failLoad resets the vocabulary and surfaces a SchemaLoadError, unless the
// failing load was already superseded by a newer selection.
func (s *GraphSession) failLoad(token, instanceID string, cause error) error {
	s.mu.Lock()
	if s.loadToken != token {
		s.mu.Unlock()
		s.logger.Debug("discarding stale schema load failure",
			zap.String("instanceID", instanceID), zap.Error(cause))
		return nil
	}
	s.vocabulary = valueobjects.EmptyVocabulary()
	s.state = SelectionFailed
	s.mu.Unlock()

	s.metrics.SchemaLoadFailures.Inc()
	err := pkgerrors.NewSchemaLoadError(instanceID, cause)
	s.logger.Warn("schema load failed",
		zap.String("instanceID", instanceID), zap.Error(cause))
	return err
}

// advance moves the state machine forward if the load is still current
func (s *GraphSession) advance(token string, state SelectionState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadToken != token {
		return false
	}
	s.state = state
	return true
}

// ActiveSelection returns the currently selected instance id, or ""
func (s *GraphSession) ActiveSelection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// HasSelection reports whether an instance is selected
func (s *GraphSession) HasSelection() bool {
	return s.ActiveSelection() != ""
}

// State returns the current selection lifecycle state
func (s *GraphSession) State() SelectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Vocabulary returns the current vocabulary snapshot by value
func (s *GraphSession) Vocabulary() valueobjects.Vocabulary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocabulary
}
