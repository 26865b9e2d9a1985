package tolerantjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_StrictJSON(t *testing.T) {
	value, err := Decode(`{"Título": "A", "year": 2021, "tags": ["nlp"], "ok": true, "none": null}`)

	require.NoError(t, err)
	obj, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", obj["Título"])
	assert.Equal(t, float64(2021), obj["year"])
	assert.Equal(t, []any{"nlp"}, obj["tags"])
	assert.Equal(t, true, obj["ok"])
	assert.Nil(t, obj["none"])
}

func TestDecode_UnquotedKeys(t *testing.T) {
	value, err := Decode(`{title: "A", year: 2021}`)

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "A", obj["title"])
	assert.Equal(t, float64(2021), obj["year"])
}

func TestDecode_UnquotedUnicodeKeys(t *testing.T) {
	value, err := Decode(`{Título: "A"}`)

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "A", obj["Título"])
}

func TestDecode_SingleQuotedStrings(t *testing.T) {
	value, err := Decode(`{'title': 'Attention Is All You Need'}`)

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "Attention Is All You Need", obj["title"])
}

func TestDecode_TrailingCommas(t *testing.T) {
	value, err := Decode(`{"tags": ["a", "b",], "title": "A",}`)

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, []any{"a", "b"}, obj["tags"])
	assert.Equal(t, "A", obj["title"])
}

func TestDecode_NestedRelaxed(t *testing.T) {
	value, err := Decode(`[{data: [{Título: 'A',},],},]`)

	require.NoError(t, err)
	arr := value.([]any)
	require.Len(t, arr, 1)
	envelope := arr[0].(map[string]any)
	data := envelope["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "A", data[0].(map[string]any)["Título"])
}

func TestDecode_StringEscapes(t *testing.T) {
	value, err := Decode(`{'text': 'line\none \'quoted\' é'}`)

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "line\none 'quoted' é", obj["text"])
}

func TestDecode_SurrogatePairEscapes(t *testing.T) {
	// Single quotes force the relaxed parser; the pair must combine into
	// one code point, like encoding/json does for strict input.
	value, err := Decode("{'emoji': '\\ud83d\\ude00'}")

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "\U0001F600", obj["emoji"])
}

func TestDecode_UnpairedSurrogateBecomesReplacementRune(t *testing.T) {
	value, err := Decode("{'lone': '\\ud83d after'}")

	require.NoError(t, err)
	obj := value.(map[string]any)
	assert.Equal(t, "\uFFFD after", obj["lone"])
}

func TestDecode_Numbers(t *testing.T) {
	value, err := Decode(`[-1, 2.5, 3e2,]`)

	require.NoError(t, err)
	assert.Equal(t, []any{float64(-1), 2.5, float64(300)}, value)
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode("   \n\t ")

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDecode_Truncated(t *testing.T) {
	for _, input := range []string{
		`{"title": "A"`,
		`[1, 2`,
		`{'title': 'unterminated`,
		`{"title": }`,
	} {
		_, err := Decode(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

// The relaxed grammar constructs literal data only. Anything that looks
// like an expression or a function call must be rejected outright, never
// evaluated.
func TestDecode_RejectsExpressions(t *testing.T) {
	for _, input := range []string{
		`{key: alert("x")}`,
		`{key: 1 + 2}`,
		`(function(){ return [] })()`,
		`{key: process.exit(1)}`,
		"`template`",
		`{key: undefined_variable}`,
	} {
		_, err := Decode(input)
		assert.Error(t, err, "input %q must be rejected", input)
	}
}

func TestDecode_LiteralsAreNotPrefixMatched(t *testing.T) {
	_, err := Decode(`{key: nullify}`)
	assert.Error(t, err)

	_, err = Decode(`{key: trueish}`)
	assert.Error(t, err)
}

func TestDecode_TrailingGarbage(t *testing.T) {
	_, err := Decode(`{"title": "A"} extra`)
	assert.Error(t, err)
}

func TestDecode_TopLevelScalars(t *testing.T) {
	value, err := Decode(`'single quoted'`)
	require.NoError(t, err)
	assert.Equal(t, "single quoted", value)

	value, err = Decode(`null`)
	require.NoError(t, err)
	assert.Nil(t, value)
}
