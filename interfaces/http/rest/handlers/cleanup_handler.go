package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/common"
)

// CleanupHandler runs the consistency and autocomplete engines over the
// session model.
type CleanupHandler struct {
	models *services.ModelService
	logger *zap.Logger
}

// NewCleanupHandler creates a cleanup handler
func NewCleanupHandler(models *services.ModelService, logger *zap.Logger) *CleanupHandler {
	return &CleanupHandler{
		models: models,
		logger: logger,
	}
}

// Validate handles POST /api/v1/model/validate: a full consistency run.
// The response carries the structured report plus its rendered form.
func (h *CleanupHandler) Validate(w http.ResponseWriter, r *http.Request) {
	report := h.models.RunConsistency()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"report":   report,
		"rendered": report.Render(),
		"total":    report.Total(),
		"clean":    report.Clean(),
	})
}

// Autocomplete handles POST /api/v1/model/autocomplete
func (h *CleanupHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	result := h.models.RunAutocomplete()
	common.RespondJSON(w, http.StatusOK, result)
}
