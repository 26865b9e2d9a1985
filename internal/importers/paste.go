package importers

import (
	"log"

	"github.com/holasocioit-bit/visual-info/internal/miner"
	"github.com/holasocioit-bit/visual-info/internal/tolerantjson"
)

// PasteConverter extracts candidate records from one pasted text blob.
type PasteConverter struct {
	Text string
}

// NewPasteConverter creates a converter for pasted semi-structured text.
func NewPasteConverter(text string) *PasteConverter {
	return &PasteConverter{Text: text}
}

// Convert implements the Converter interface. A total parse failure of
// the pasted text yields zero records; it is logged for the operator but
// never surfaced to the caller as an error.
func (c *PasteConverter) Convert() ([]miner.RawRecord, Source) {
	source := Source{Name: "paste"}

	tree, err := tolerantjson.Decode(c.Text)
	if err != nil {
		log.Printf("Paste import: input is not parseable, nothing to extract: %v", err)
		return nil, source
	}

	return miner.Mine(tree), source
}

// Compile-time interface check
var _ Converter = (*PasteConverter)(nil)
