package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"icd11-hierarchy/application/queries"
	"icd11-hierarchy/application/services"
	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/domain/core/valueobjects"
	"icd11-hierarchy/pkg/observability"
)

func testRouter(t *testing.T, built bool) http.Handler {
	t.Helper()

	service := services.NewHierarchyQueryService(zap.NewNop())
	if built {
		service.Build(map[valueobjects.ShortID]entities.HierarchyNode{
			"A": {Title: "Root", Children: []valueobjects.ShortID{"B"}},
			"B": {Title: "Leaf", Parents: []valueobjects.ShortID{"A"}},
		})
	}

	handler := NewHierarchyHandler(service, observability.NewCollector("test"), zap.NewNop())

	r := chi.NewRouter()
	r.Get("/children", handler.GetChildren)
	r.Get("/descendants", handler.GetDescendants)
	r.Get("/nodes/{nodeID}", handler.GetNode)
	return r
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetChildren(t *testing.T) {
	rec := doGet(t, testRouter(t, true), "/children?title=Root")
	require.Equal(t, http.StatusOK, rec.Code)

	var result queries.ChildrenResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "A", result.ParentID)
	assert.Equal(t, "Root", result.ParentTitle)
	require.Len(t, result.Children, 1)
	assert.Equal(t, "B", result.Children[0].ID)
	assert.Equal(t, "Leaf", result.Children[0].Title)
}

func TestGetDescendants(t *testing.T) {
	rec := doGet(t, testRouter(t, true), "/descendants?title=Root")
	require.Equal(t, http.StatusOK, rec.Code)

	var result queries.DescendantsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "A", result.NodeID)
	assert.Equal(t, []string{"B"}, result.DirectChildren)
	assert.Equal(t, 1, result.TotalDescendantsCount)
}

func TestGetNode(t *testing.T) {
	rec := doGet(t, testRouter(t, true), "/nodes/A")
	require.Equal(t, http.StatusOK, rec.Code)

	var result queries.NodeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "A", result.ID)
	assert.Equal(t, []string{"B"}, result.Children)
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		built  bool
		target string
		want   int
	}{
		{"missing title", true, "/children?title=", http.StatusBadRequest},
		{"no matching title", true, "/children?title=Nope", http.StatusNotFound},
		{"no matching node", true, "/nodes/NOPE", http.StatusNotFound},
		{"descendants no match", true, "/descendants?title=Nope", http.StatusNotFound},
		{"unbuilt graph children", false, "/children?title=Root", http.StatusServiceUnavailable},
		{"unbuilt graph descendants", false, "/descendants?title=Root", http.StatusServiceUnavailable},
		{"unbuilt graph node", false, "/nodes/A", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, testRouter(t, tt.built), tt.target)
			assert.Equal(t, tt.want, rec.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}
