// Package miner extracts candidate raw records from a value tree of
// unknown shape.
//
// Upstream export tools wrap records inconsistently: plain arrays, batch
// envelopes with a nested `data` array, and objects whose `output` field
// holds a serialized array as a string. The miner walks the tree depth-first,
// classifies every object node, and collects candidates in input order.
package miner

import (
	"github.com/holasocioit-bit/visual-info/internal/tolerantjson"
)

// RawRecord is one untyped candidate record as found in the pasted input.
// It has no invariants: any field may be missing or carry the wrong type.
type RawRecord map[string]any

// Classification flags for a single object node. The flags are not mutually
// exclusive: an object can wrap a `data` array and still carry its own
// title field, contributing through both rules.
type Classification struct {
	Envelope       bool // has a "data" field holding an array
	EmbeddedOutput bool // has an "output" field holding a string
	Candidate      bool // carries a recognizable title-like or summary-like field
}

// Plain reports that no extraction rule applies to the object.
func (c Classification) Plain() bool {
	return !c.Envelope && !c.EmbeddedOutput && !c.Candidate
}

// CandidateFields are the field names whose presence marks an object as a
// candidate record. They are part of the upstream compatibility contract
// and are matched case-sensitively.
var CandidateFields = []string{
	"Título", "Titulo", "title", "Title",
	"Resumen", "resumen", "summary", "abstract",
}

// Classify inspects one object node and reports which extraction rules
// apply to it.
func Classify(obj map[string]any) Classification {
	var c Classification

	if data, ok := obj["data"]; ok {
		if _, isArray := data.([]any); isArray {
			c.Envelope = true
		}
	}
	if output, ok := obj["output"]; ok {
		if _, isString := output.(string); isString {
			c.EmbeddedOutput = true
		}
	}
	for _, field := range CandidateFields {
		if _, ok := obj[field]; ok {
			c.Candidate = true
			break
		}
	}
	return c
}

// Mine walks a value tree and returns the candidate records it contains,
// in input order. Duplicates are possible when an object satisfies more
// than one rule. A nil tree yields no candidates.
func Mine(tree any) []RawRecord {
	var records []RawRecord
	walk(tree, &records)
	return records
}

func walk(node any, out *[]RawRecord) {
	switch n := node.(type) {
	case []any:
		for _, element := range n {
			walk(element, out)
		}
	case map[string]any:
		c := Classify(n)

		if c.Envelope {
			walk(n["data"], out)
		}
		if c.EmbeddedOutput {
			mineEmbedded(n["output"].(string), out)
		}
		if c.Candidate {
			*out = append(*out, RawRecord(n))
		}
	}
}

// mineEmbedded re-decodes a serialized `output` string and appends its
// array elements. Decode failures are swallowed: the branch is skipped
// and sibling traversal continues, the walk itself never aborts.
func mineEmbedded(serialized string, out *[]RawRecord) {
	decoded, err := tolerantjson.Decode(serialized)
	if err != nil {
		return
	}
	elements, ok := decoded.([]any)
	if !ok {
		return
	}
	for _, element := range elements {
		if record, ok := element.(map[string]any); ok {
			*out = append(*out, RawRecord(record))
		}
	}
}
