package services

import (
	"sync"

	"graphbench/application/ports"
	"graphbench/domain/core/codec"
	"graphbench/domain/core/validators"
	"graphbench/domain/core/valueobjects"
	pkgerrors "graphbench/pkg/errors"

	"go.uber.org/zap"
)

// ConstraintService owns the constraint text and everything derived from it:
// the normalized line list, unknown-symbol findings against the session's
// relation vocabulary, and export/import through the constraint codec.
type ConstraintService struct {
	session   *GraphSession
	validator *validators.SymbolValidator
	archive   ports.DocumentArchive
	logger    *zap.Logger

	mu          sync.RWMutex
	constraints valueobjects.ConstraintSet
}

// NewConstraintService creates a service with empty constraint text
func NewConstraintService(
	session *GraphSession,
	validator *validators.SymbolValidator,
	archive ports.DocumentArchive,
	logger *zap.Logger,
) *ConstraintService {
	return &ConstraintService{
		session:     session,
		validator:   validator,
		archive:     archive,
		logger:      logger,
		constraints: valueobjects.NewConstraintSet(""),
	}
}

// SetText replaces the constraint text unconditionally
func (s *ConstraintService) SetText(text string) {
	s.mu.Lock()
	s.constraints = valueobjects.NewConstraintSet(text)
	s.mu.Unlock()
}

// Text returns the raw constraint text
func (s *ConstraintService) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constraints.Text()
}

// Lines returns the derived constraint list
func (s *ConstraintService) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constraints.Lines()
}

// UnknownSymbols flags identifier tokens in the current constraints that the
// active instance's relation vocabulary does not contain. Findings are
// warnings; they never block a computation.
func (s *ConstraintService) UnknownSymbols() []string {
	lines := s.Lines()
	vocabulary := s.session.Vocabulary().RelTypeSet()
	return s.validator.FindUnknown(lines, vocabulary)
}

// Export serializes the current constraint list to the canonical document
func (s *ConstraintService) Export() ([]byte, error) {
	return codec.Serialize(s.Lines())
}

// Import parses a constraint document and replaces the constraint text with
// its line list. On a malformed document the current text is left untouched.
func (s *ConstraintService) Import(raw []byte) error {
	lines, err := codec.Deserialize(raw)
	if err != nil {
		s.logger.Warn("constraint import rejected", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.constraints = valueobjects.NewConstraintSetFromLines(lines)
	s.mu.Unlock()

	s.logger.Info("constraints imported", zap.Int("lines", len(lines)))
	return nil
}

// SaveToArchive writes the canonical export of the current constraints to the
// document archive and returns the stored name.
func (s *ConstraintService) SaveToArchive() (string, error) {
	document, err := s.Export()
	if err != nil {
		return "", err
	}
	name, err := s.archive.Save(document)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to save constraint document")
	}
	s.logger.Info("constraints archived", zap.String("name", name))
	return name, nil
}

// ArchivedDocuments lists the stored constraint document names
func (s *ConstraintService) ArchivedDocuments() ([]string, error) {
	names, err := s.archive.List()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list constraint documents")
	}
	return names, nil
}

// ArchivedDocument fetches one stored constraint document by name
func (s *ConstraintService) ArchivedDocument(name string) ([]byte, error) {
	return s.archive.Get(name)
}
