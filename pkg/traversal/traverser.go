package traversal

import "github.com/pkg/errors"

// Traverser is the token flowing through a traversal. It carries the current
// value, a bulk count for repeated identical values, and a side-effect bag.
//
// A traverser is immutable once emitted by a step, except for its side-effect
// bag, which is additive. Writing an existing key again is allowed and the
// last write wins.
type Traverser struct {
	value any
	bulk  int64
	sack  map[string]any
}

// NewTraverser returns a traverser carrying value with a bulk of 1.
func NewTraverser(value any) *Traverser {
	return &Traverser{value: value, bulk: 1, sack: make(map[string]any)}
}

// NewTraverserWithBulk returns a traverser carrying value with the given
// multiplicity. The bulk must be at least 1.
func NewTraverserWithBulk(value any, bulk int64) (*Traverser, error) {
	if bulk < 1 {
		return nil, errors.Errorf("bulk must be at least 1, got %d", bulk)
	}

	return &Traverser{value: value, bulk: bulk, sack: make(map[string]any)}, nil
}

// Value returns the current value.
func (t *Traverser) Value() any {
	return t.value
}

// Bulk returns the multiplicity of the traverser.
func (t *Traverser) Bulk() int64 {
	return t.bulk
}

// WithValue returns a new traverser carrying value. The side-effect bag is
// shared by reference with the receiver.
func (t *Traverser) WithValue(value any) *Traverser {
	return &Traverser{value: value, bulk: t.bulk, sack: t.sack}
}

// Split returns a new traverser carrying value with its own copy of the
// side-effect bag. Use it when a step forks a traverser into several
// independent branches.
func (t *Traverser) Split(value any) *Traverser {
	sack := make(map[string]any, len(t.sack))
	for k, v := range t.sack {
		sack[k] = v
	}

	return &Traverser{value: value, bulk: t.bulk, sack: sack}
}

// SetSideEffect records a named value in the side-effect bag.
func (t *Traverser) SetSideEffect(name string, value any) {
	t.sack[name] = value
}

// SideEffect returns the named value from the side-effect bag.
func (t *Traverser) SideEffect(name string) (any, bool) {
	v, ok := t.sack[name]

	return v, ok
}
