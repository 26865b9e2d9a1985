// Package scheduler runs the periodic markdown export of the collection
// into a notes directory.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/exporters"
)

// GroupReader provides the groups to export.
type GroupReader interface {
	GetAllGroups() ([]entities.Group, error)
}

// MarkdownSyncScheduler manages periodic exports of the collection into a
// markdown notes directory.
type MarkdownSyncScheduler struct {
	reader    GroupReader
	exportDir string
	schedule  string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewMarkdownSyncScheduler creates a new scheduler instance.
func NewMarkdownSyncScheduler(reader GroupReader, exportDir, schedule string) *MarkdownSyncScheduler {
	return &MarkdownSyncScheduler{
		reader:    reader,
		exportDir: exportDir,
		schedule:  schedule,
		cron:      cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MarkdownSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.exportDir == "" {
		log.Printf("Markdown sync scheduler: export directory not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule markdown sync job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Markdown sync scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *MarkdownSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	log.Printf("Markdown sync scheduler: stopped")
}

// RunNow triggers an immediate export.
func (s *MarkdownSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning returns whether the scheduler is active.
func (s *MarkdownSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next export will occur.
func (s *MarkdownSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *MarkdownSyncScheduler) runSync() {
	log.Printf("Markdown sync: starting export to %s", s.exportDir)
	startTime := time.Now()

	groups, err := s.reader.GetAllGroups()
	if err != nil {
		log.Printf("Markdown sync: failed to read groups: %v", err)
		return
	}
	if len(groups) == 0 {
		log.Printf("Markdown sync: no groups to export")
		return
	}

	exporter := exporters.NewMarkdownExporter(s.exportDir)
	result, err := exporter.Export(groups)
	if err != nil {
		log.Printf("Markdown sync: export failed: %v", err)
		return
	}

	log.Printf("Markdown sync: exported %d groups, %d papers in %v",
		result.GroupsProcessed, result.PapersProcessed, time.Since(startTime).Round(time.Millisecond))
}
