package exporters

import "github.com/holasocioit-bit/visual-info/internal/entities"

type CollectionExporter interface {
	Export(groups []entities.Group) (ExportResult, error)
}

type ExportResult struct {
	GroupsProcessed int `json:"groups_processed"`
	PapersProcessed int `json:"papers_processed"`
	GroupsFailed    int `json:"groups_failed"`
}
