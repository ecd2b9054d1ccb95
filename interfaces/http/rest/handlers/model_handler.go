package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/common"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/utils"
)

// maxDocumentBytes bounds uploaded model documents
const maxDocumentBytes = 64 << 20

// ModelHandler exposes the model session over HTTP: document
// import/export, undo, context exports, catalog and store round-trips.
type ModelHandler struct {
	models     *services.ModelService
	errHandler *apperrors.ErrorHandler
	logger     *zap.Logger
}

// NewModelHandler creates a model handler
func NewModelHandler(models *services.ModelService, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{
		models:     models,
		errHandler: apperrors.NewErrorHandler(logger, false),
		logger:     logger,
	}
}

// Import handles POST /api/v1/model/import with an .archimate document body
func (h *ModelHandler) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxDocumentBytes)
	defer body.Close()

	if err := h.models.ImportDocument(body); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, h.models.Stats())
}

// Export handles GET /api/v1/model/export
func (h *ModelHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	if err := h.models.ExportDocument(w); err != nil {
		h.logger.Error("model export failed", zap.Error(err))
	}
}

// Undo handles POST /api/v1/model/undo
func (h *ModelHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if err := h.models.Undo(); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, h.models.Stats())
}

// Stats handles GET /api/v1/model/stats
func (h *ModelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.models.Stats())
}

// Inventory handles GET /api/v1/model/inventory; ?delta=1 returns only
// lines added since the last mark.
func (h *ModelHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	delta := r.URL.Query().Get("delta") == "1"
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"generated_at": utils.NowRFC3339(),
		"lines":        h.models.Inventory(delta),
	})
}

// Triples handles GET /api/v1/model/triples; ?delta=1 returns only
// lines added since the last mark.
func (h *ModelHandler) Triples(w http.ResponseWriter, r *http.Request) {
	delta := r.URL.Query().Get("delta") == "1"
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"generated_at": utils.NowRFC3339(),
		"lines":        h.models.Triples(delta),
	})
}

// MarkExported handles POST /api/v1/model/mark-exported, resetting the
// baseline for delta exports.
func (h *ModelHandler) MarkExported(w http.ResponseWriter, r *http.Request) {
	h.models.MarkExported()
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "marked"})
}

// Types handles GET /api/v1/model/types, listing the element types
// clients can stage and the relationship type set.
func (h *ModelHandler) Types(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.models.KnownTypes())
}

// Catalog handles GET /api/v1/model/catalog?type=X
func (h *ModelHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.models.Catalog(r.URL.Query().Get("type")))
}

// Lookup handles GET /api/v1/model/elements/lookup?name=X&type=Y
func (h *ModelHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.errHandler.Handle(w, r, apperrors.NewValidationError("name query parameter is required"))
		return
	}

	entry, err := h.models.LookupElement(name, r.URL.Query().Get("type"))
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, entry)
}

// Neighbors handles GET /api/v1/model/elements/{elementID}/relationships
func (h *ModelHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "elementID")
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"element":   id,
		"neighbors": h.models.Neighbors(id),
	})
}

// Persist handles POST /api/v1/model/persist
func (h *ModelHandler) Persist(w http.ResponseWriter, r *http.Request) {
	if err := h.models.Persist(r.Context()); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "persisted"})
}

// Restore handles POST /api/v1/model/restore
func (h *ModelHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.models.Restore(r.Context()); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, h.models.Stats())
}
