package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"icd11-hierarchy/application/services"
	"icd11-hierarchy/domain/core/valueobjects"
	pkgerrors "icd11-hierarchy/pkg/errors"
	"icd11-hierarchy/pkg/observability"
)

// titleQuery is the validated shape of a title-addressed query.
type titleQuery struct {
	Title string `validate:"required"`
}

// HierarchyHandler handles hierarchy query HTTP requests
type HierarchyHandler struct {
	service  *services.HierarchyQueryService
	validate *validator.Validate
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewHierarchyHandler creates a new hierarchy handler
func NewHierarchyHandler(
	service *services.HierarchyQueryService,
	metrics *observability.Collector,
	logger *zap.Logger,
) *HierarchyHandler {
	return &HierarchyHandler{
		service:  service,
		validate: validator.New(),
		metrics:  metrics,
		logger:   logger,
	}
}

// GetChildren handles GET /api/v1/hierarchy/children?title=...
func (h *HierarchyHandler) GetChildren(w http.ResponseWriter, r *http.Request) {
	query := titleQuery{Title: r.URL.Query().Get("title")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	result, found, err := h.service.ChildrenByTitle(query.Title)
	if err != nil {
		h.recordQuery("children", "error")
		h.respondServiceError(w, "children query failed", query.Title, err)
		return
	}
	if !found {
		h.recordQuery("children", "no_match")
		h.respondError(w, http.StatusNotFound, "no node with that title")
		return
	}

	h.recordQuery("children", "ok")
	h.respondJSON(w, http.StatusOK, result)
}

// GetDescendants handles GET /api/v1/hierarchy/descendants?title=...
func (h *HierarchyHandler) GetDescendants(w http.ResponseWriter, r *http.Request) {
	query := titleQuery{Title: r.URL.Query().Get("title")}
	if err := h.validate.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	result, found, err := h.service.DescendantsByTitle(query.Title)
	if err != nil {
		h.recordQuery("descendants", "error")
		h.respondServiceError(w, "descendants query failed", query.Title, err)
		return
	}
	if !found {
		h.recordQuery("descendants", "no_match")
		h.respondError(w, http.StatusNotFound, "no node with that title")
		return
	}

	h.recordQuery("descendants", "ok")
	h.respondJSON(w, http.StatusOK, result)
}

// GetNode handles GET /api/v1/hierarchy/nodes/{nodeID}
func (h *HierarchyHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	if nodeID == "" {
		h.respondError(w, http.StatusBadRequest, "node ID is required")
		return
	}

	result, found, err := h.service.Node(valueobjects.ShortID(nodeID))
	if err != nil {
		h.recordQuery("node", "error")
		h.respondServiceError(w, "node lookup failed", nodeID, err)
		return
	}
	if !found {
		h.recordQuery("node", "no_match")
		h.respondError(w, http.StatusNotFound, "node not found")
		return
	}

	h.recordQuery("node", "ok")
	h.respondJSON(w, http.StatusOK, result)
}

func (h *HierarchyHandler) recordQuery(query, outcome string) {
	if h.metrics != nil {
		h.metrics.RecordQuery(query, outcome)
	}
}

func (h *HierarchyHandler) respondServiceError(w http.ResponseWriter, msg, subject string, err error) {
	h.logger.Error(msg, zap.String("subject", subject), zap.Error(err))
	if pkgerrors.IsUnavailable(err) {
		h.respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	h.respondError(w, http.StatusInternalServerError, "internal error")
}

func (h *HierarchyHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *HierarchyHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
