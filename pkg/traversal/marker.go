package traversal

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

// MarkerStep tags a position in a traversal with an identifier and an
// optional key/value pair set through Configure.
//
// Its transform never emits: every incoming traverser is dropped, so a
// traversal ending in a marker step always reports exhaustion without error.
// This is the documented behaviour of the step, not a missing feature.
type MarkerStep struct {
	stepCore
	key      string
	value    any
	hasKey   bool
	hasValue bool
}

// NewMarkerStep returns a marker step tagged with identifier.
func NewMarkerStep(identifier string) *MarkerStep {
	return &MarkerStep{stepCore: newStepCore(model.MarkerStepVariant, identifier)}
}

// Identifier returns the tag the step was created with.
func (s *MarkerStep) Identifier() string {
	return s.name
}

// Map drops the incoming traverser.
func (s *MarkerStep) Map(_ *Traverser) (*Traverser, error) {
	return nil, nil
}

// Configure stores the first element as the key and the second as the value.
// Elements past the second are ignored. Calling Configure again overwrites
// whatever the earlier calls stored.
func (s *MarkerStep) Configure(keyValues ...any) error {
	if len(keyValues) == 0 {
		return nil
	}

	key, ok := keyValues[0].(string)
	if !ok {
		return errors.Wrapf(ErrConfig, "key must be a string, got %T", keyValues[0])
	}
	s.key = key
	s.hasKey = true

	if len(keyValues) > 1 {
		s.value = keyValues[1]
		s.hasValue = true
	}

	return nil
}

// Parameters returns the shared frozen Empty instance: the marker step keeps
// its pair in dedicated fields.
func (s *MarkerStep) Parameters() *Parameters {
	return Empty
}

// Key returns the configured key.
func (s *MarkerStep) Key() (string, bool) {
	return s.key, s.hasKey
}

// Value returns the configured value.
func (s *MarkerStep) Value() (any, bool) {
	return s.value, s.hasValue
}
