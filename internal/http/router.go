package http

import (
	"github.com/gin-gonic/gin"

	"github.com/holasocioit-bit/visual-info/internal/audit"
	"github.com/holasocioit-bit/visual-info/internal/database"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/importers"
)

// RouterConfig carries all router dependencies, improving testability
// and reducing parameter count.
type RouterConfig struct {
	Database        *database.Database
	Pipeline        *importers.Pipeline
	Auditor         *audit.Auditor
	Identity        *identity.Generator
	PaperStore      PaperStore
	GroupStore      GroupStore
	CollectionStore CollectionStore
	Version         string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	pasteImporter := NewPasteImportController(cfg.Pipeline, cfg.Auditor)
	papersController := NewPapersController(cfg.PaperStore)
	groupsController := NewGroupsController(cfg.GroupStore)
	collectionController := NewCollectionController(cfg.CollectionStore, cfg.Identity, cfg.Auditor)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Import endpoint
	router.POST("/api/import", pasteImporter.Import)

	// Papers API endpoints
	router.GET("/api/papers", papersController.GetAllPapers)
	router.GET("/api/papers/:id", papersController.GetPaper)
	router.PATCH("/api/papers/:id", papersController.UpdatePaper)
	router.DELETE("/api/papers/:id", papersController.DeletePaper)

	// Groups API endpoints
	router.GET("/api/groups", groupsController.GetAllGroups)
	router.GET("/api/groups/:id", groupsController.GetGroup)
	router.DELETE("/api/groups/:id", groupsController.DeleteGroup)

	// Collection endpoints (full export / full load)
	router.GET("/api/collection", collectionController.GetCollection)
	router.PUT("/api/collection", collectionController.LoadCollection)

	return router
}
