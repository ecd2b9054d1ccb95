package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/common"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

// maxPayloadBytes bounds staged JSON payloads
const maxPayloadBytes = 16 << 20

// StagingHandler accepts staged JSON batches and merges them into the
// session model.
type StagingHandler struct {
	models     *services.ModelService
	errHandler *apperrors.ErrorHandler
	logger     *zap.Logger
}

// NewStagingHandler creates a staging handler
func NewStagingHandler(models *services.ModelService, logger *zap.Logger) *StagingHandler {
	return &StagingHandler{
		models:     models,
		errHandler: apperrors.NewErrorHandler(logger, false),
		logger:     logger,
	}
}

// Merge handles POST /api/v1/staging. The body is the raw staged JSON
// payload in either supported shape; malformed JSON rejects the whole
// batch, malformed records surface as diagnostics.
func (h *StagingHandler) Merge(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		h.errHandler.Handle(w, r, apperrors.NewParseError("reading payload failed", err))
		return
	}

	result, err := h.models.MergeStaging(body)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
