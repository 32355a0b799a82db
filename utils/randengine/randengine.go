// Package randengine wraps golang.org/x/exp/rand behind a small,
// seed-constructed engine. The core runs single-threaded and
// cooperative (callers must not mutate shared state while a step is in
// progress), so unlike the source this engine carries no mutex or
// thread-safe variants — Step is the sole caller and always runs to
// completion before returning.
package randengine

import "golang.org/x/exp/rand"

// Engine is a seeded random source used for reproducible test runs.
type Engine struct {
	*rand.Rand
}

// New creates an engine seeded deterministically from seed. The same
// seed always produces the same sequence of choices.
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// Choice returns a uniformly random index in [0, n). Duplicated entries
// in the caller's slice bias the outcome naturally, since each index is
// equally likely. Panics if n <= 0.
func (e *Engine) Choice(n int) int {
	return e.Intn(n)
}
