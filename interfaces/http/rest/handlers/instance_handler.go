package handlers

import (
	"net/http"

	"graphbench/application/services"
	"graphbench/pkg/common"
	pkgerrors "graphbench/pkg/errors"
	"graphbench/pkg/utils"

	"go.uber.org/zap"
)

// InstanceHandler exposes instance listing and selection
type InstanceHandler struct {
	session *services.GraphSession
	logger  *zap.Logger
}

// NewInstanceHandler creates a new instance handler
func NewInstanceHandler(session *services.GraphSession, logger *zap.Logger) *InstanceHandler {
	return &InstanceHandler{session: session, logger: logger}
}

// ListInstances handles GET /instances
func (h *InstanceHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	instances, err := h.session.Instances(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"instances": instances})
}

// selectInstanceRequest is the selection payload; an empty id clears the selection
type selectInstanceRequest struct {
	ID string `json:"id" validate:"omitempty,max=255"`
}

// SelectInstance handles POST /instances/select
func (h *InstanceHandler) SelectInstance(w http.ResponseWriter, r *http.Request) {
	var req selectInstanceRequest
	if err := common.ParseJSONBody(r, &req, 4096); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), err.Error())
		return
	}

	if err := h.session.SelectInstance(r.Context(), req.ID); err != nil {
		// The session already reset its vocabulary; the error is terminal
		// for this selection attempt but the session stays usable.
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"selected": h.session.ActiveSelection(),
		"state":    string(h.session.State()),
	})
}

// CurrentInstance handles GET /instances/current
func (h *InstanceHandler) CurrentInstance(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"current": h.session.ActiveSelection(),
		"state":   string(h.session.State()),
	})
}
