package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/utils"
)

// MarkdownExporter writes one front-mattered markdown note per group into
// the export directory, so reading lists show up in a plain notes vault.
type MarkdownExporter struct {
	ExportDir string
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{ExportDir: exportDir}
}

func (e *MarkdownExporter) ensureExportDir() error {
	if _, err := os.Stat(e.ExportDir); os.IsNotExist(err) {
		if err := os.MkdirAll(e.ExportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	return nil
}

// Export writes every group to its own markdown file. A group that fails
// to write is counted and skipped; the remaining groups still export.
func (e *MarkdownExporter) Export(groups []entities.Group) (ExportResult, error) {
	result := ExportResult{}

	if err := e.ensureExportDir(); err != nil {
		return result, err
	}

	for _, group := range groups {
		path := filepath.Join(e.ExportDir, utils.SanitizeFilename(group.Name)+".md")
		if err := os.WriteFile(path, []byte(GenerateMarkdown(group)), 0644); err != nil {
			result.GroupsFailed++
			continue
		}
		result.GroupsProcessed++
		result.PapersProcessed += len(group.Papers)
	}

	return result, nil
}

// GenerateMarkdown renders one group as a markdown reading list.
func GenerateMarkdown(group entities.Group) string {
	var b strings.Builder

	fmt.Fprintf(&b, "---\n")
	fmt.Fprintf(&b, "content_type: reading_list\n")
	fmt.Fprintf(&b, "created_at: %s\n", group.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "group: %s\n", group.Name)
	fmt.Fprintf(&b, "papers: %d\n", len(group.Papers))
	fmt.Fprintf(&b, "---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", group.Name)

	for _, paper := range group.Papers {
		marker := ""
		if paper.Important {
			marker = " ⭐"
		}
		fmt.Fprintf(&b, "## %s (%s)%s\n\n", paper.Title, paper.Year, marker)

		if len(paper.Tags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(paper.Tags, ", "))
		}
		fmt.Fprintf(&b, "%s\n\n", paper.Summary)
		if paper.Contribution != "" {
			fmt.Fprintf(&b, "**Contribution:** %s\n\n", paper.Contribution)
		}
		if paper.Notes != "" {
			fmt.Fprintf(&b, "**Notes:** %s\n\n", paper.Notes)
		}
		for _, link := range paper.Links {
			fmt.Fprintf(&b, "- %s\n", link)
		}
		if len(paper.Links) > 0 {
			fmt.Fprintf(&b, "\n")
		}
	}

	return b.String()
}

// Compile-time interface check
var _ CollectionExporter = (*MarkdownExporter)(nil)
