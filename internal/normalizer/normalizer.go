// Package normalizer maps one untyped candidate record onto the canonical
// paper schema. Normalization never fails and never produces partial
// output: absent or wrongly-typed fields are replaced with defaults, so
// every paper that leaves this package is schema-complete.
package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
)

// Normalize maps one candidate record to a schema-complete paper with a
// freshly issued identifier. Links are gathered from the explicit link
// fields and from free text in the summary and contribution.
func Normalize(raw map[string]any, ids *identity.Generator) entities.Paper {
	paper := fromRaw(raw)
	paper.ID = ids.New()
	paper.Links = extractLinks(raw, paper.Summary, paper.Contribution)
	return paper
}

// FromStored reconstructs a paper from a record of a previously persisted
// collection. Defaults are applied as on import, but the stored identifier,
// notes, importance flag, and link list are preserved rather than
// regenerated. Identifier uniqueness is the repair pass's job, not ours:
// a non-text identifier is coerced to empty text here and replaced there.
func FromStored(raw map[string]any) entities.Paper {
	paper := fromRaw(raw)
	paper.ID = strings.TrimSpace(asText(lookup(raw, []string{"id", "ID"})))
	paper.Notes = asText(lookup(raw, []string{"notes", "Notes"}))
	if important, ok := lookup(raw, []string{"important", "Important"}).(bool); ok {
		paper.Important = important
	}
	paper.Links = dedupe(asTextList(lookup(raw, []string{"links", "Links"})))
	return paper
}

func fromRaw(raw map[string]any) entities.Paper {
	paper := entities.Paper{
		Title:        asText(lookup(raw, TitleFields)),
		Year:         asText(lookup(raw, YearFields)),
		Tags:         asTextList(lookup(raw, TagFields)),
		Summary:      asText(lookup(raw, SummaryFields)),
		Contribution: asText(lookup(raw, ContributionFields)),
		Notes:        "",
		Important:    false,
		Links:        entities.StringList{},
	}

	if paper.Title == "" {
		paper.Title = DefaultTitle
	}
	if paper.Year == "" {
		paper.Year = DefaultYear
	}
	if paper.Summary == "" {
		paper.Summary = DefaultSummary
	}
	return paper
}

// lookup returns the first present field from the priority list.
func lookup(raw map[string]any, fields []string) any {
	for _, field := range fields {
		if value, ok := raw[field]; ok {
			return value
		}
	}
	return nil
}

// asText coerces a scalar to its text form. Integral numbers render
// without a fractional part ("2021", not "2021.000000"). Anything
// non-scalar coerces to empty text so the field defaults apply.
func asText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// asTextList coerces a sequence field to a list of non-empty strings,
// preserving order. Non-sequence values yield an empty list.
func asTextList(value any) entities.StringList {
	elements, ok := value.([]any)
	if !ok {
		return entities.StringList{}
	}
	list := make(entities.StringList, 0, len(elements))
	for _, element := range elements {
		if text := asText(element); text != "" {
			list = append(list, text)
		}
	}
	return list
}
