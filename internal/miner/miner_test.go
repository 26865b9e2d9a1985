package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holasocioit-bit/visual-info/internal/tolerantjson"
)

func mustDecode(t *testing.T, input string) any {
	t.Helper()
	tree, err := tolerantjson.Decode(input)
	require.NoError(t, err)
	return tree
}

func TestMine_EnvelopeUnwrap(t *testing.T) {
	tree := mustDecode(t, `{"data": [{"Título": "A"}]}`)

	records := Mine(tree)

	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0]["Título"])
}

func TestMine_EmbeddedOutputUnwrap(t *testing.T) {
	tree := mustDecode(t, `[{"output": "[{\"Título\": \"B\"}]"}]`)

	records := Mine(tree)

	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0]["Título"])
}

func TestMine_EmbeddedOutputRelaxedSyntax(t *testing.T) {
	// The serialized payload itself may use the relaxed grammar.
	tree := mustDecode(t, `{"output": "[{Título: 'C',},]"}`)

	records := Mine(tree)

	require.Len(t, records, 1)
	assert.Equal(t, "C", records[0]["Título"])
}

func TestMine_EnvelopeAndCandidateSimultaneously(t *testing.T) {
	// An object that wraps a data array and itself carries a title field
	// contributes through both rules.
	tree := mustDecode(t, `{"title": "wrapper", "data": [{"Título": "inner"}]}`)

	records := Mine(tree)

	require.Len(t, records, 2)
	assert.Equal(t, "inner", records[0]["Título"])
	assert.Equal(t, "wrapper", records[1]["title"])
}

func TestMine_ArrayOrderPreserved(t *testing.T) {
	tree := mustDecode(t, `[{"title": "first"}, {"title": "second"}, {"title": "third"}]`)

	records := Mine(tree)

	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0]["title"])
	assert.Equal(t, "second", records[1]["title"])
	assert.Equal(t, "third", records[2]["title"])
}

func TestMine_SummaryFieldMarksCandidate(t *testing.T) {
	tree := mustDecode(t, `[{"Resumen": "sin título"}, {"abstract": "also one"}]`)

	records := Mine(tree)

	assert.Len(t, records, 2)
}

func TestMine_EmbeddedOutputFailureSkipsBranchOnly(t *testing.T) {
	// The second element's output does not decode; the walk continues and
	// the sibling still contributes its record.
	tree := mustDecode(t, `[{"output": "not valid {{{"}, {"title": "survivor"}]`)

	records := Mine(tree)

	require.Len(t, records, 1)
	assert.Equal(t, "survivor", records[0]["title"])
}

func TestMine_EmbeddedOutputNonArrayIgnored(t *testing.T) {
	tree := mustDecode(t, `{"output": "{\"title\": \"object, not array\"}"}`)

	assert.Empty(t, Mine(tree))
}

func TestMine_PlainObjectsYieldNothing(t *testing.T) {
	tree := mustDecode(t, `{"data": "not an array", "output": 42, "other": [1, 2]}`)

	assert.Empty(t, Mine(tree))
}

func TestMine_NilTree(t *testing.T) {
	assert.Empty(t, Mine(nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want Classification
	}{
		{
			name: "envelope",
			obj:  map[string]any{"data": []any{}},
			want: Classification{Envelope: true},
		},
		{
			name: "embedded output",
			obj:  map[string]any{"output": "[]"},
			want: Classification{EmbeddedOutput: true},
		},
		{
			name: "candidate",
			obj:  map[string]any{"Título": "A"},
			want: Classification{Candidate: true},
		},
		{
			name: "envelope and candidate",
			obj:  map[string]any{"data": []any{}, "summary": "s"},
			want: Classification{Envelope: true, Candidate: true},
		},
		{
			name: "data field of wrong type",
			obj:  map[string]any{"data": "nope"},
			want: Classification{},
		},
		{
			name: "output field of wrong type",
			obj:  map[string]any{"output": 1.0},
			want: Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.obj)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Classification{}, got.Plain())
		})
	}
}
