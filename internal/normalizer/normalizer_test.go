package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holasocioit-bit/visual-info/internal/entities"
	"github.com/holasocioit-bit/visual-info/internal/identity"
)

func TestNormalize_FullRecord(t *testing.T) {
	ids := identity.NewGenerator()

	paper := Normalize(map[string]any{
		"Título":       "Attention Is All You Need",
		"Año":          float64(2017),
		"Etiquetas":    []any{"transformers", "nlp"},
		"Resumen":      "Introduces the transformer architecture.",
		"Contribución": "Self-attention replaces recurrence.",
	}, ids)

	assert.NotEmpty(t, paper.ID)
	assert.Equal(t, "Attention Is All You Need", paper.Title)
	assert.Equal(t, "2017", paper.Year)
	assert.Equal(t, entities.StringList{"transformers", "nlp"}, paper.Tags)
	assert.Equal(t, "Introduces the transformer architecture.", paper.Summary)
	assert.Equal(t, "Self-attention replaces recurrence.", paper.Contribution)
	assert.Equal(t, "", paper.Notes)
	assert.False(t, paper.Important)
}

func TestNormalize_EmptyRecordGetsDefaults(t *testing.T) {
	ids := identity.NewGenerator()

	paper := Normalize(map[string]any{}, ids)

	assert.NotEmpty(t, paper.ID)
	assert.Equal(t, DefaultTitle, paper.Title)
	assert.Equal(t, DefaultYear, paper.Year)
	assert.Equal(t, entities.StringList{}, paper.Tags)
	assert.Equal(t, DefaultSummary, paper.Summary)
	assert.Equal(t, "", paper.Contribution)
	assert.Equal(t, "", paper.Notes)
	assert.False(t, paper.Important)
	assert.Equal(t, entities.StringList{}, paper.Links)
}

func TestNormalize_FieldPriority(t *testing.T) {
	ids := identity.NewGenerator()

	// The Spanish export names take priority over the English ones.
	paper := Normalize(map[string]any{
		"Título": "primero",
		"title":  "second",
	}, ids)

	assert.Equal(t, "primero", paper.Title)
}

func TestNormalize_FieldNamesAreCaseSensitive(t *testing.T) {
	ids := identity.NewGenerator()

	paper := Normalize(map[string]any{"TITLE": "shouting"}, ids)

	assert.Equal(t, DefaultTitle, paper.Title)
}

func TestNormalize_YearCoercion(t *testing.T) {
	tests := []struct {
		name string
		year any
		want string
	}{
		{"integral number", float64(2021), "2021"},
		{"text", "2021", "2021"},
		{"fractional number", 2021.5, "2021.5"},
		{"wrong type", []any{}, DefaultYear},
		{"missing", nil, DefaultYear},
	}

	ids := identity.NewGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{}
			if tt.year != nil {
				raw["year"] = tt.year
			}
			assert.Equal(t, tt.want, Normalize(raw, ids).Year)
		})
	}
}

func TestNormalize_TagsRequireSequence(t *testing.T) {
	ids := identity.NewGenerator()

	paper := Normalize(map[string]any{"tags": "not-a-list"}, ids)
	assert.Equal(t, entities.StringList{}, paper.Tags)

	paper = Normalize(map[string]any{"tags": []any{"a", float64(2), "", "b"}}, ids)
	assert.Equal(t, entities.StringList{"a", "2", "b"}, paper.Tags)
}

func TestFromStored_PreservesUserState(t *testing.T) {
	paper := FromStored(map[string]any{
		"id":        "  7 ",
		"title":     "Kept",
		"notes":     "my notes",
		"important": true,
		"links":     []any{"https://a", "https://a", "https://b"},
	})

	assert.Equal(t, "7", paper.ID)
	assert.Equal(t, "Kept", paper.Title)
	assert.Equal(t, "my notes", paper.Notes)
	assert.True(t, paper.Important)
	assert.Equal(t, entities.StringList{"https://a", "https://b"}, paper.Links)
}

func TestFromStored_NonTextIdentifierCoercedToText(t *testing.T) {
	paper := FromStored(map[string]any{"id": float64(7), "title": "A"})

	assert.Equal(t, "7", paper.ID)
}

func TestFromStored_StructuredIdentifierBecomesEmpty(t *testing.T) {
	// The repair pass replaces empty identifiers with fresh ones.
	paper := FromStored(map[string]any{"id": map[string]any{}, "title": "A"})

	assert.Equal(t, "", paper.ID)
}

func TestFromStored_AppliesSchemaDefaults(t *testing.T) {
	paper := FromStored(map[string]any{"id": "x"})

	assert.Equal(t, DefaultTitle, paper.Title)
	assert.Equal(t, DefaultYear, paper.Year)
	assert.Equal(t, DefaultSummary, paper.Summary)
	require.NotNil(t, paper.Tags)
	require.NotNil(t, paper.Links)
}
