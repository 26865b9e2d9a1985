package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

// PaperStore defines database operations for individual papers.
type PaperStore interface {
	GetAllPapers() ([]entities.Paper, error)
	GetPaperByID(id string) (*entities.Paper, error)
	UpdatePaperNotes(id string, notes string) error
	SetPaperImportance(id string, important bool) error
	DeletePaper(id string) error
}

// PaperUpdateRequest carries the caller-mutable paper fields. Pointers
// distinguish "not sent" from zero values.
type PaperUpdateRequest struct {
	Notes     *string `json:"notes"`
	Important *bool   `json:"important"`
}

type PapersController struct {
	store PaperStore
}

func NewPapersController(store PaperStore) *PapersController {
	return &PapersController{store: store}
}

// GetAllPapers handles GET /api/papers
func (pc *PapersController) GetAllPapers(c *gin.Context) {
	list, err := pc.store.GetAllPapers()
	if err != nil {
		respondInternalError(c, err, "get all papers")
		return
	}
	if list == nil {
		list = []entities.Paper{}
	}
	c.JSON(http.StatusOK, list)
}

// GetPaper handles GET /api/papers/:id
func (pc *PapersController) GetPaper(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	paper, err := pc.store.GetPaperByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "paper")
			return
		}
		respondInternalError(c, err, "get paper")
		return
	}
	c.JSON(http.StatusOK, paper)
}

// UpdatePaper handles PATCH /api/papers/:id
func (pc *PapersController) UpdatePaper(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req PaperUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.Notes == nil && req.Important == nil {
		respondBadRequest(c, "nothing to update")
		return
	}

	if req.Notes != nil {
		if err := pc.store.UpdatePaperNotes(id, *req.Notes); err != nil {
			pc.respondUpdateError(c, err, "update paper notes")
			return
		}
	}
	if req.Important != nil {
		if err := pc.store.SetPaperImportance(id, *req.Important); err != nil {
			pc.respondUpdateError(c, err, "update paper importance")
			return
		}
	}

	paper, err := pc.store.GetPaperByID(id)
	if err != nil {
		respondInternalError(c, err, "reload paper")
		return
	}
	c.JSON(http.StatusOK, paper)
}

// DeletePaper handles DELETE /api/papers/:id
func (pc *PapersController) DeletePaper(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := pc.store.DeletePaper(id); err != nil {
		pc.respondUpdateError(c, err, "delete paper")
		return
	}
	respondSuccess(c, "paper deleted")
}

func (pc *PapersController) respondUpdateError(c *gin.Context, err error, context string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "paper")
		return
	}
	respondInternalError(c, err, context)
}
