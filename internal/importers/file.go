package importers

import (
	"fmt"
	"os"

	"github.com/holasocioit-bit/visual-info/internal/miner"
)

// FileConverter extracts candidate records from a text file on disk.
// Used by the CLI import command.
type FileConverter struct {
	Path string
}

// NewFileConverter creates a converter for a file of semi-structured text.
func NewFileConverter(path string) *FileConverter {
	return &FileConverter{Path: path}
}

// Convert implements the Converter interface. Unlike a pasted blob, an
// unreadable file is an operator mistake worth reporting loudly, so the
// read error is printed; parse failures still degrade to zero records.
func (c *FileConverter) Convert() ([]miner.RawRecord, Source) {
	source := Source{Name: "file"}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.Path, err)
		return nil, source
	}

	paste := NewPasteConverter(string(data))
	records, _ := paste.Convert()
	return records, source
}

// Compile-time interface check
var _ Converter = (*FileConverter)(nil)
