package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/holasocioit-bit/visual-info/internal/audit"
	"github.com/holasocioit-bit/visual-info/internal/config"
	"github.com/holasocioit-bit/visual-info/internal/database"
	"github.com/holasocioit-bit/visual-info/internal/database/papers"
	http_controllers "github.com/holasocioit-bit/visual-info/internal/http"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/importers"
	"github.com/holasocioit-bit/visual-info/internal/scheduler"
	"github.com/holasocioit-bit/visual-info/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue and schedulers)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Visual Info v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := papers.NewRepository(db.DB)

	// Identifier generator shared by the import pipeline and collection loads
	ids := identity.NewGenerator()

	// Import pipeline persisting into the repository
	pipeline := importers.NewPipeline(repo, ids)

	// Auditor for saving incoming import payloads
	auditor := audit.NewAuditor(cfg.Audit.Dir)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewCleanupAuditFilesQueue(auditor),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		// Kick off one retention sweep at startup
		if _, err := taskClient.Add(tasks.CleanupAuditFilesTask{RetentionDays: cfg.Audit.RetentionDays}).Save(); err != nil {
			log.Printf("WARNING: Failed to enqueue audit cleanup task: %v", err)
		}
	}

	// Start markdown sync scheduler if enabled
	var mdScheduler *scheduler.MarkdownSyncScheduler
	if cfg.Markdown.SyncEnabled {
		mdScheduler = scheduler.NewMarkdownSyncScheduler(repo, cfg.Markdown.ExportDir, cfg.Markdown.Schedule)
		if err := mdScheduler.Start(context.Background()); err != nil {
			log.Printf("WARNING: Failed to start markdown sync scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		Pipeline:        pipeline,
		Auditor:         auditor,
		Identity:        ids,
		PaperStore:      repo,
		GroupStore:      repo,
		CollectionStore: repo,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if mdScheduler != nil {
			mdScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
