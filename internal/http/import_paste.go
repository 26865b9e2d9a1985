package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holasocioit-bit/visual-info/internal/audit"
	"github.com/holasocioit-bit/visual-info/internal/importers"
)

// PasteImportRequest is the request body for a pasted-text import.
// Text carries the raw export blob exactly as the user pasted it.
type PasteImportRequest struct {
	GroupName string `json:"group_name"`
	Text      string `json:"text"`
}

// PasteImportResponse is the response for a pasted-text import.
type PasteImportResponse struct {
	GroupName      string `json:"group_name"`
	GroupsCreated  int    `json:"groups_created"`
	PapersImported int    `json:"papers_imported"`
}

// PasteImportController handles raw text imports.
type PasteImportController struct {
	Pipeline *importers.Pipeline
	Auditor  *audit.Auditor
}

// NewPasteImportController creates a new PasteImportController.
func NewPasteImportController(pipeline *importers.Pipeline, auditor *audit.Auditor) *PasteImportController {
	return &PasteImportController{
		Pipeline: pipeline,
		Auditor:  auditor,
	}
}

// Import handles POST /api/import.
//
// An unparseable paste is not an error: the response reports zero imported
// papers and the operator can inspect the audited payload. Only storage
// failures produce a non-200 status.
func (controller *PasteImportController) Import(c *gin.Context) {
	var req PasteImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if req.Text == "" {
		respondBadRequest(c, "no text provided")
		return
	}

	// Audit the request
	if controller.Auditor != nil {
		if _, err := controller.Auditor.SaveJSON(req); err != nil {
			// Log but don't fail the request
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	converter := importers.NewPasteConverter(req.Text)
	result, err := controller.Pipeline.Import(converter, req.GroupName)
	if err != nil {
		respondInternalError(c, err, "paste import")
		return
	}

	c.IndentedJSON(http.StatusOK, PasteImportResponse{
		GroupName:      result.GroupName,
		GroupsCreated:  result.GroupsCreated,
		PapersImported: result.PapersImported,
	})
}
