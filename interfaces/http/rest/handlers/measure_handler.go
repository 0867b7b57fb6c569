package handlers

import (
	"net/http"

	"graphbench/application/services"
	"graphbench/domain/measures"
	"graphbench/pkg/common"
	pkgerrors "graphbench/pkg/errors"
	"graphbench/pkg/utils"

	"go.uber.org/zap"
)

// MeasureHandler exposes the measure catalog, the requested subset, and the
// computation trigger.
type MeasureHandler struct {
	measures    *services.MeasureService
	constraints *services.ConstraintService
	logger      *zap.Logger
}

// NewMeasureHandler creates a new measure handler
func NewMeasureHandler(
	measureService *services.MeasureService,
	constraints *services.ConstraintService,
	logger *zap.Logger,
) *MeasureHandler {
	return &MeasureHandler{
		measures:    measureService,
		constraints: constraints,
		logger:      logger,
	}
}

// Catalog handles GET /measures
func (h *MeasureHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"measures": measures.Catalog})
}

// setRequestedRequest replaces the requested-measure subset
type setRequestedRequest struct {
	Measures []string `json:"measures" validate:"omitempty,dive,min=1"`
}

// SetRequested handles PUT /measures/requested
func (h *MeasureHandler) SetRequested(w http.ResponseWriter, r *http.Request) {
	var req setRequestedRequest
	if err := common.ParseJSONBody(r, &req, 64*1024); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), err.Error())
		return
	}

	if err := h.measures.SetRequested(req.Measures); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"requested": h.measures.Requested(),
	})
}

// Compute handles POST /measures/compute. The constraint list sent to the
// service is always the current derived line list.
func (h *MeasureHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if err := h.measures.Compute(r.Context(), h.constraints.Lines()); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"results": h.measures.Results(),
	})
}

// Results handles GET /measures/results
func (h *MeasureHandler) Results(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"pending": h.measures.Pending(),
		"results": h.measures.Results(),
	})
}
