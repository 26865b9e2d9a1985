package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

// fakePaperStore is a map-backed PaperStore for controller tests.
type fakePaperStore struct {
	papers map[string]*entities.Paper
	order  []string
}

func newFakePaperStore(papers ...entities.Paper) *fakePaperStore {
	store := &fakePaperStore{papers: make(map[string]*entities.Paper)}
	for i := range papers {
		store.papers[papers[i].ID] = &papers[i]
		store.order = append(store.order, papers[i].ID)
	}
	return store
}

func (s *fakePaperStore) GetAllPapers() ([]entities.Paper, error) {
	var list []entities.Paper
	for _, id := range s.order {
		list = append(list, *s.papers[id])
	}
	return list, nil
}

func (s *fakePaperStore) GetPaperByID(id string) (*entities.Paper, error) {
	paper, ok := s.papers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return paper, nil
}

func (s *fakePaperStore) UpdatePaperNotes(id string, notes string) error {
	paper, ok := s.papers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	paper.Notes = notes
	return nil
}

func (s *fakePaperStore) SetPaperImportance(id string, important bool) error {
	paper, ok := s.papers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	paper.Important = important
	return nil
}

func (s *fakePaperStore) DeletePaper(id string) error {
	if _, ok := s.papers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.papers, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func setupPapersRouter(store PaperStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewPapersController(store)
	router.GET("/api/papers", controller.GetAllPapers)
	router.GET("/api/papers/:id", controller.GetPaper)
	router.PATCH("/api/papers/:id", controller.UpdatePaper)
	router.DELETE("/api/papers/:id", controller.DeletePaper)
	return router
}

func TestGetAllPapers(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore(
		entities.Paper{ID: "a", Title: "A"},
		entities.Paper{ID: "b", Title: "B"},
	))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var list []entities.Paper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
}

func TestGetAllPapers_EmptyIsArrayNotNull(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/papers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetPaper(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore(entities.Paper{ID: "a", Title: "A"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/papers/a", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var paper entities.Paper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paper))
	assert.Equal(t, "A", paper.Title)
}

func TestGetPaper_NotFound(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/papers/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "paper not found"}`, w.Body.String())
}

func TestUpdatePaper_Notes(t *testing.T) {
	store := newFakePaperStore(entities.Paper{ID: "a", Title: "A"})
	router := setupPapersRouter(store)

	body := bytes.NewBufferString(`{"notes": "reread section 3"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/papers/a", body))

	require.Equal(t, http.StatusOK, w.Code)
	var paper entities.Paper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paper))
	assert.Equal(t, "reread section 3", paper.Notes)
	assert.Equal(t, "reread section 3", store.papers["a"].Notes)
}

func TestUpdatePaper_Importance(t *testing.T) {
	store := newFakePaperStore(entities.Paper{ID: "a", Title: "A"})
	router := setupPapersRouter(store)

	body := bytes.NewBufferString(`{"important": true}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/papers/a", body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.papers["a"].Important)
}

func TestUpdatePaper_EmptyBodyRejected(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore(entities.Paper{ID: "a"}))

	body := bytes.NewBufferString(`{}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/papers/a", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePaper_NotFound(t *testing.T) {
	router := setupPapersRouter(newFakePaperStore())

	body := bytes.NewBufferString(`{"important": true}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/papers/missing", body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePaper(t *testing.T) {
	store := newFakePaperStore(entities.Paper{ID: "a"})
	router := setupPapersRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/papers/a", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.papers)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/papers/a", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
