package collection

import (
	"fmt"
	"os"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
)

// Store reads and writes a collection document at a fixed file path.
// Used by the CLI repair command; the server persists to SQLite instead.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads and decodes the document, repairing identifiers on the way.
// Returns the collection and the number of repaired identifiers.
func (s *Store) Load(ids *identity.Generator) (entities.Collection, int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return entities.Collection{}, 0, fmt.Errorf("failed to read collection file: %w", err)
	}
	return Decode(data, ids)
}

// Save encodes and writes the collection document.
func (s *Store) Save(c entities.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write collection file: %w", err)
	}
	return nil
}
