// Package identity issues globally unique paper identifiers and repairs
// identifier collisions in previously persisted collections.
//
// Randomness alone is not enough for identifiers: several papers are
// created within the same millisecond during a bulk import. ULIDs with
// monotonic entropy combine a timestamp, randomness, and a per-instant
// counter, so near-simultaneous calls still yield distinct, sortable ids.
package identity

import (
	"crypto/rand"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

// Generator issues fresh identifiers. The monotonic entropy source is not
// safe for concurrent use, so calls are serialized with a mutex.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// New returns a freshly generated identifier, distinct from every
// identifier issued by this generator so far, including ones requested
// within the same instant.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}

// Repair walks every paper of every group, in stored order, and makes
// identifiers unique across the whole collection. A missing identifier,
// or one already seen earlier in the walk, is replaced with a fresh one;
// the first occurrence always keeps its identifier. Exactly one seen-set
// spans the entire collection because the uniqueness invariant is
// collection-wide, not per-group. Returns the number of replacements.
//
// Without this pass, two papers sharing an identifier would make an
// update or delete addressed to one of them silently affect the other.
func (g *Generator) Repair(collection *entities.Collection) int {
	seen := make(map[string]struct{})
	replaced := 0

	for gi := range collection.Groups {
		papers := collection.Groups[gi].Papers
		for pi := range papers {
			id := strings.TrimSpace(papers[pi].ID)
			if _, dup := seen[id]; id == "" || dup {
				id = g.New()
				replaced++
			}
			papers[pi].ID = id
			seen[id] = struct{}{}
		}
	}
	return replaced
}
