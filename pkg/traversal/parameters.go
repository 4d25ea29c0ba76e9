package traversal

// Parameters is a small key/value store attached to configurable steps.
// It is not safe for concurrent use; configuration never overlaps pulling.
type Parameters struct {
	entries map[string]any
	frozen  bool
}

// Empty is the shared frozen instance returned by steps that hold no
// configuration. Writing through it fails with ErrImmutableParameters.
var Empty = &Parameters{frozen: true}

// NewParameters returns an empty mutable parameter store.
func NewParameters() *Parameters {
	return &Parameters{entries: make(map[string]any)}
}

// Get returns the value stored under key.
func (p *Parameters) Get(key string) (any, bool) {
	v, ok := p.entries[key]

	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (p *Parameters) Set(key string, value any) error {
	if p.frozen {
		return ErrImmutableParameters
	}
	p.entries[key] = value

	return nil
}

// Len returns the number of stored entries.
func (p *Parameters) Len() int {
	return len(p.entries)
}

// Freeze makes the parameters immutable. It cannot be undone.
func (p *Parameters) Freeze() {
	p.frozen = true
}
