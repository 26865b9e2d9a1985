package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holasocioit-bit/visual-info/internal/audit"
	"github.com/holasocioit-bit/visual-info/internal/collection"
	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
)

// CollectionStore defines database operations for the full collection.
type CollectionStore interface {
	GetCollection() (entities.Collection, error)
	ReplaceCollection(c entities.Collection) error
}

// CollectionLoadResponse reports what a full collection load did.
// RepairedIDs counts identifiers that were missing or duplicated in the
// incoming document and had to be replaced.
type CollectionLoadResponse struct {
	GroupsLoaded int `json:"groups_loaded"`
	PapersLoaded int `json:"papers_loaded"`
	RepairedIDs  int `json:"repaired_ids"`
}

// CollectionController serves the collection document: the unit that
// storage and transport collaborators persist and move around.
type CollectionController struct {
	store   CollectionStore
	ids     *identity.Generator
	auditor *audit.Auditor
}

func NewCollectionController(store CollectionStore, ids *identity.Generator, auditor *audit.Auditor) *CollectionController {
	return &CollectionController{store: store, ids: ids, auditor: auditor}
}

// GetCollection handles GET /api/collection
func (cc *CollectionController) GetCollection(c *gin.Context) {
	col, err := cc.store.GetCollection()
	if err != nil {
		respondInternalError(c, err, "get collection")
		return
	}

	data, err := collection.Encode(col)
	if err != nil {
		respondInternalError(c, err, "encode collection")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// LoadCollection handles PUT /api/collection.
//
// The body is a previously persisted collection document, possibly written
// by an older build: relaxed syntax and broken identifiers are tolerated.
// Identifier collisions are repaired silently; the response only reports
// how many replacements were made.
func (cc *CollectionController) LoadCollection(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "unreadable request body")
		return
	}
	if len(body) == 0 {
		respondBadRequest(c, "no collection document provided")
		return
	}

	if cc.auditor != nil {
		if _, err := cc.auditor.SaveJSON(gin.H{"collection_load": string(body)}); err != nil {
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	col, repaired, err := collection.Decode(body, cc.ids)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := cc.store.ReplaceCollection(col); err != nil {
		respondInternalError(c, err, "replace collection")
		return
	}

	papers := 0
	for _, group := range col.Groups {
		papers += len(group.Papers)
	}
	c.IndentedJSON(http.StatusOK, CollectionLoadResponse{
		GroupsLoaded: len(col.Groups),
		PapersLoaded: papers,
		RepairedIDs:  repaired,
	})
}
