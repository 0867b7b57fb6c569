package handlers

import (
	"io"
	"net/http"

	"graphbench/application/services"
	"graphbench/pkg/common"
	pkgerrors "graphbench/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxDocumentBytes bounds imported constraint documents and text updates
const maxDocumentBytes = 1 << 20

// SessionHandler exposes the constraint session state over HTTP
type SessionHandler struct {
	constraints *services.ConstraintService
	session     *services.GraphSession
	measures    *services.MeasureService
	logger      *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	constraints *services.ConstraintService,
	session *services.GraphSession,
	measures *services.MeasureService,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		constraints: constraints,
		session:     session,
		measures:    measures,
		logger:      logger,
	}
}

// sessionSnapshot is the read-only view of the whole session
type sessionSnapshot struct {
	ConstraintText string   `json:"constraint_text"`
	Constraints    []string `json:"constraints"`
	UnknownSymbols []string `json:"unknown_symbols"`

	Selection struct {
		InstanceID string `json:"instance_id"`
		State      string `json:"state"`
	} `json:"selection"`

	Vocabulary struct {
		Labels   []string `json:"labels"`
		RelTypes []string `json:"rel_types"`
		Nodes    []string `json:"nodes"`
	} `json:"vocabulary"`

	Measures struct {
		Requested []string                 `json:"requested"`
		Pending   bool                     `json:"pending"`
		Results   []services.MeasureResult `json:"results"`
	} `json:"measures"`
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	var snap sessionSnapshot
	snap.ConstraintText = h.constraints.Text()
	snap.Constraints = h.constraints.Lines()
	snap.UnknownSymbols = h.constraints.UnknownSymbols()

	snap.Selection.InstanceID = h.session.ActiveSelection()
	snap.Selection.State = string(h.session.State())

	vocabulary := h.session.Vocabulary()
	snap.Vocabulary.Labels = vocabulary.Labels()
	snap.Vocabulary.RelTypes = vocabulary.RelTypes()
	snap.Vocabulary.Nodes = vocabulary.NodeNames()

	snap.Measures.Requested = h.measures.Requested()
	snap.Measures.Pending = h.measures.Pending()
	snap.Measures.Results = h.measures.Results()

	common.RespondJSON(w, http.StatusOK, snap)
}

// UpdateConstraints handles PUT /session/constraints
func (h *SessionHandler) UpdateConstraints(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := common.ParseJSONBody(r, &req, maxDocumentBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "invalid request body")
		return
	}

	h.constraints.SetText(req.Text)

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"constraints":     h.constraints.Lines(),
		"unknown_symbols": h.constraints.UnknownSymbols(),
	})
}

// ExportConstraints handles GET /session/constraints/export
func (h *SessionHandler) ExportConstraints(w http.ResponseWriter, r *http.Request) {
	document, err := h.constraints.Export()
	if err != nil {
		h.logger.Error("constraint export failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="constraints.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// ImportConstraints handles POST /session/constraints/import.
// The body is the constraint document itself; any of the accepted legacy
// shapes is allowed. A malformed document leaves the session untouched.
func (h *SessionHandler) ImportConstraints(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "failed to read request body")
		return
	}

	if err := h.constraints.Import(raw); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"constraints":     h.constraints.Lines(),
		"unknown_symbols": h.constraints.UnknownSymbols(),
	})
}

// SaveConstraints handles POST /session/constraints/archive
func (h *SessionHandler) SaveConstraints(w http.ResponseWriter, r *http.Request) {
	name, err := h.constraints.SaveToArchive()
	if err != nil {
		h.logger.Error("constraint archive save failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"file": name})
}

// ListArchivedConstraints handles GET /session/constraints/archive
func (h *SessionHandler) ListArchivedConstraints(w http.ResponseWriter, r *http.Request) {
	names, err := h.constraints.ArchivedDocuments()
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string][]string{"files": names})
}

// GetArchivedConstraints handles GET /session/constraints/archive/{name}
func (h *SessionHandler) GetArchivedConstraints(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	document, err := h.constraints.ArchivedDocument(name)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
