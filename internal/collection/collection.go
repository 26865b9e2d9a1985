// Package collection encodes and decodes the persisted collection
// document: every group with its papers, the unit that storage and
// transport collaborators move around.
//
// Encoding is strict JSON. Decoding is tolerant: documents written by
// older builds or exported from the browser store may use relaxed syntax,
// carry missing or non-text identifiers, or duplicate identifiers across
// groups. Decoded papers are reconstructed to the canonical schema and the
// identity repair pass is applied before the collection reaches storage.
package collection

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/normalizer"
	"github.com/holasocioit-bit/visual-info/internal/tolerantjson"
)

// Encode renders a collection as an indented JSON document.
func Encode(c entities.Collection) ([]byte, error) {
	if c.Groups == nil {
		c.Groups = []entities.Group{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// Decode parses a persisted collection document, reconstructs each record
// to the canonical schema, and repairs identifiers. It accepts either
// `{"groups": [...]}` or a bare array of groups at the top level. Returns
// the collection and the number of repaired identifiers.
func Decode(data []byte, ids *identity.Generator) (entities.Collection, int, error) {
	tree, err := tolerantjson.Decode(string(data))
	if err != nil {
		return entities.Collection{}, 0, fmt.Errorf("unparseable collection document: %w", err)
	}

	var rawGroups []any
	switch t := tree.(type) {
	case []any:
		rawGroups = t
	case map[string]any:
		groups, ok := t["groups"].([]any)
		if !ok {
			return entities.Collection{}, 0, fmt.Errorf("collection document has no groups array")
		}
		rawGroups = groups
	default:
		return entities.Collection{}, 0, fmt.Errorf("collection document is not an object or array")
	}

	c := entities.Collection{Groups: make([]entities.Group, 0, len(rawGroups))}
	for _, rawGroup := range rawGroups {
		obj, ok := rawGroup.(map[string]any)
		if !ok {
			continue
		}
		c.Groups = append(c.Groups, decodeGroup(obj))
	}

	repaired := ids.Repair(&c)
	return c, repaired, nil
}

func decodeGroup(obj map[string]any) entities.Group {
	group := entities.Group{
		Name:      "Imported",
		CreatedAt: time.Now(),
		Papers:    []entities.Paper{},
	}

	if name, ok := obj["name"].(string); ok && name != "" {
		group.Name = name
	}
	if stamp, ok := obj["created_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, stamp); err == nil {
			group.CreatedAt = parsed
		}
	}

	rawPapers, ok := obj["papers"].([]any)
	if !ok {
		// Older exports used "records".
		rawPapers, _ = obj["records"].([]any)
	}
	for _, rawPaper := range rawPapers {
		record, ok := rawPaper.(map[string]any)
		if !ok {
			continue
		}
		group.Papers = append(group.Papers, normalizer.FromStored(record))
	}
	return group
}
