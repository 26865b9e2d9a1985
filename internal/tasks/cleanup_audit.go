package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// AuditFileCleaner provides the ability to delete old audit payload files.
type AuditFileCleaner interface {
	DeleteOldFiles(retention time.Duration) (int, error)
}

// CleanupAuditFilesTask removes audit payload files older than the
// configured retention period.
type CleanupAuditFilesTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit cleanup tasks.
func (t CleanupAuditFilesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_audit_files",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupAuditFilesProcessor creates a processor function for CleanupAuditFilesTask.
func CleanupAuditFilesProcessor(cleaner AuditFileCleaner) backlite.QueueProcessor[CleanupAuditFilesTask] {
	return func(ctx context.Context, task CleanupAuditFilesTask) error {
		if cleaner == nil {
			return fmt.Errorf("audit file cleaner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 30
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := cleaner.DeleteOldFiles(retention)
		if err != nil {
			return fmt.Errorf("cleanup audit files: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d audit files older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewCleanupAuditFilesQueue creates a backlite queue for audit cleanup tasks.
func NewCleanupAuditFilesQueue(cleaner AuditFileCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupAuditFilesProcessor(cleaner))
}
