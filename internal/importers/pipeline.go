package importers

import (
	"time"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/miner"
	"github.com/holasocioit-bit/visual-info/internal/normalizer"
)

// Source provides metadata about where a batch of records came from.
type Source struct {
	Name string
}

// Converter produces candidate records from some import source.
// Each source implements a converter that extracts its native format
// into the common RawRecord representation.
//
// Implementations:
//   - PasteConverter (paste.go) - pasted semi-structured text
//   - FileConverter (file.go) - a text file on disk
type Converter interface {
	Convert() ([]miner.RawRecord, Source)
}

// GroupExporter persists an imported group to storage.
type GroupExporter interface {
	Export(group *entities.Group) error
}

// ImportResult summarizes one import operation.
type ImportResult struct {
	GroupName      string `json:"group_name"`
	GroupsCreated  int    `json:"groups_created"`
	PapersImported int    `json:"papers_imported"`
}

// Pipeline handles the common import workflow:
// extract candidates → normalize → wrap in a group → save.
//
// Normalization is total, so every candidate the converter finds becomes
// a schema-complete paper; an input in which no candidates are found
// yields an empty result, never an error.
type Pipeline struct {
	exporter GroupExporter
	ids      *identity.Generator
}

// NewPipeline creates an import pipeline with the given exporter and
// identifier generator.
func NewPipeline(exporter GroupExporter, ids *identity.Generator) *Pipeline {
	return &Pipeline{exporter: exporter, ids: ids}
}

// Import processes records from a converter into a new group named
// groupName and exports it. This is the main entry point for all import
// operations. When groupName is empty, the source name is used.
func (p *Pipeline) Import(converter Converter, groupName string) (ImportResult, error) {
	records, source := converter.Convert()

	if groupName == "" {
		groupName = source.Name
	}

	if len(records) == 0 {
		return ImportResult{GroupName: groupName}, nil
	}

	group := entities.Group{
		Name:      groupName,
		CreatedAt: time.Now(),
		Papers:    make([]entities.Paper, 0, len(records)),
	}
	for i, record := range records {
		paper := normalizer.Normalize(record, p.ids)
		paper.Position = i
		group.Papers = append(group.Papers, paper)
	}

	if err := p.exporter.Export(&group); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{
		GroupName:      groupName,
		GroupsCreated:  1,
		PapersImported: len(group.Papers),
	}, nil
}
