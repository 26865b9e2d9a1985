package identity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

func TestNew_RapidCallsAreUnique(t *testing.T) {
	ids := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := ids.New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %q after %d calls", id, i)
		seen[id] = struct{}{}
	}
}

func TestNew_ConcurrentCallsAreUnique(t *testing.T) {
	ids := NewGenerator()

	const workers = 8
	const perWorker = 500

	results := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results <- ids.New()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{})
	for id := range results {
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %q", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestRepair_DuplicateKeepsFirstOccurrence(t *testing.T) {
	ids := NewGenerator()
	collection := entities.Collection{Groups: []entities.Group{{
		Name: "g",
		Papers: []entities.Paper{
			{ID: "7", Title: "first"},
			{ID: "7", Title: "second"},
		},
	}}}

	replaced := ids.Repair(&collection)

	papers := collection.Groups[0].Papers
	assert.Equal(t, 1, replaced)
	assert.Len(t, papers, 2)
	assert.Equal(t, "7", papers[0].ID)
	assert.NotEqual(t, "7", papers[1].ID)
	assert.NotEmpty(t, papers[1].ID)
}

func TestRepair_UniquenessIsCollectionWide(t *testing.T) {
	ids := NewGenerator()
	collection := entities.Collection{Groups: []entities.Group{
		{Name: "a", Papers: []entities.Paper{{ID: "x"}}},
		{Name: "b", Papers: []entities.Paper{{ID: "x"}, {ID: "y"}}},
	}}

	replaced := ids.Repair(&collection)

	assert.Equal(t, 1, replaced)
	assert.Equal(t, "x", collection.Groups[0].Papers[0].ID)
	assert.NotEqual(t, "x", collection.Groups[1].Papers[0].ID)
	assert.Equal(t, "y", collection.Groups[1].Papers[1].ID)
}

func TestRepair_MissingAndBlankIdentifiers(t *testing.T) {
	ids := NewGenerator()
	collection := entities.Collection{Groups: []entities.Group{{
		Papers: []entities.Paper{
			{ID: ""},
			{ID: "   "},
			{ID: "keep"},
		},
	}}}

	replaced := ids.Repair(&collection)

	papers := collection.Groups[0].Papers
	assert.Equal(t, 2, replaced)
	assert.NotEmpty(t, papers[0].ID)
	assert.NotEmpty(t, papers[1].ID)
	assert.NotEqual(t, papers[0].ID, papers[1].ID)
	assert.Equal(t, "keep", papers[2].ID)
}

func TestRepair_TrimsSurroundingWhitespace(t *testing.T) {
	ids := NewGenerator()
	collection := entities.Collection{Groups: []entities.Group{{
		Papers: []entities.Paper{{ID: " 7 "}},
	}}}

	replaced := ids.Repair(&collection)

	assert.Zero(t, replaced)
	assert.Equal(t, "7", collection.Groups[0].Papers[0].ID)
}

func TestRepair_CleanCollectionUntouched(t *testing.T) {
	ids := NewGenerator()
	collection := entities.Collection{Groups: []entities.Group{{
		Papers: []entities.Paper{{ID: "a"}, {ID: "b"}, {ID: "c"}},
	}}}

	replaced := ids.Repair(&collection)

	assert.Zero(t, replaced)
	assert.Equal(t, "a", collection.Groups[0].Papers[0].ID)
	assert.Equal(t, "b", collection.Groups[0].Papers[1].ID)
	assert.Equal(t, "c", collection.Groups[0].Papers[2].ID)
}
