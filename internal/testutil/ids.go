package testutil

import "sync"

// FixedIDs returns predetermined run identifiers in order.
//
// Thread-safety: FixedIDs is safe for concurrent use.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns ids in order.
//
//	gen := NewFixedIDs("run-1", "run-2")
//	gen.Generate() // "run-1"
//	gen.Generate() // "run-2"
//	gen.Generate() // panic: all ids exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// Generate returns the next identifier. It panics once every identifier has
// been used, which points at a test that plays more often than it expects.
func (g *FixedIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("FixedIDs: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// ConstantID returns the same run identifier every time. Golden transcripts
// and reports use it so repeated runs produce identical output.
//
// Thread-safety: ConstantID is stateless and safe for concurrent use.
type ConstantID string

// DefaultRunID is the identifier ConstantID("") generates.
const DefaultRunID = "test-run-default"

// Generate returns the constant identifier.
func (c ConstantID) Generate() string {
	if c == "" {
		return DefaultRunID
	}
	return string(c)
}
