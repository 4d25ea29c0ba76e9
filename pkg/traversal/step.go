package traversal

import (
	"fmt"
	"hash/fnv"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

// Step is one stage of a traversal. Implementations additionally provide one
// of the transform capabilities (Mapper, FlatMapper or Filter); the traversal
// selects the pull behaviour from the capability when the step is wired.
//
// A step belongs to exactly one traversal at a time.
type Step interface {
	// Describe returns a human readable string combining the step's variant
	// and its identifier. It has no effect on execution.
	Describe() string
	// Variant returns the capability tag of the step.
	Variant() model.StepVariant
	// Name returns the step identifier.
	Name() string
	// Equal reports whether other is the same variant with the same identifier.
	Equal(other Step) bool
	// Hash combines the variant hash with the identifier hash.
	Hash() uint64
}

// Mapper transforms one incoming traverser into zero or one outgoing
// traverser. Returning a nil traverser drops the input.
type Mapper interface {
	Step
	Map(t *Traverser) (*Traverser, error)
}

// FlatMapper transforms one incoming traverser into any number of outgoing
// traversers.
type FlatMapper interface {
	Step
	FlatMap(t *Traverser) ([]*Traverser, error)
}

// Filter keeps or drops incoming traversers.
type Filter interface {
	Step
	Test(t *Traverser) (bool, error)
}

// Configuring is implemented by steps that accept runtime configuration.
// Configuration may happen several times before the first pull, never while
// pulling; the traversal freezes the parameters when it starts.
type Configuring interface {
	// Configure accepts a flat list of key/value pairs. An empty list stores
	// nothing; the first element must be a string key; the second element,
	// when present, is the value; extra elements are ignored.
	Configure(keyValues ...any) error
	// Parameters returns the configuration store of the step.
	Parameters() *Parameters
}

// stepCore carries the identity shared by every step variant.
type stepCore struct {
	variant model.StepVariant
	name    string
}

func newStepCore(variant model.StepVariant, name string) stepCore {
	return stepCore{variant: variant, name: name}
}

func (c stepCore) Describe() string {
	return fmt.Sprintf("%s(%s)", c.variant, c.name)
}

func (c stepCore) Variant() model.StepVariant {
	return c.variant
}

func (c stepCore) Name() string {
	return c.name
}

func (c stepCore) Equal(other Step) bool {
	if other == nil {
		return false
	}

	return c.variant == other.Variant() && c.name == other.Name()
}

func (c stepCore) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.variant))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(c.name))

	return h.Sum64()
}

// MapFunc is the transform wrapped by a MapStep.
type MapFunc func(t *Traverser) (*Traverser, error)

// FlatMapFunc is the transform wrapped by a FlatMapStep.
type FlatMapFunc func(t *Traverser) ([]*Traverser, error)

// FilterFunc is the predicate wrapped by a FilterStep.
type FilterFunc func(t *Traverser) (bool, error)

// MapStep wraps a plain function into a one-to-zero-or-one step.
type MapStep struct {
	stepCore
	fn MapFunc
}

func NewMapStep(name string, fn MapFunc) *MapStep {
	return &MapStep{stepCore: newStepCore(model.MapStepVariant, name), fn: fn}
}

func (s *MapStep) Map(t *Traverser) (*Traverser, error) {
	return s.fn(t)
}

// FlatMapStep wraps a plain function into a one-to-many step.
type FlatMapStep struct {
	stepCore
	fn FlatMapFunc
}

func NewFlatMapStep(name string, fn FlatMapFunc) *FlatMapStep {
	return &FlatMapStep{stepCore: newStepCore(model.FlatMapStepVariant, name), fn: fn}
}

func (s *FlatMapStep) FlatMap(t *Traverser) ([]*Traverser, error) {
	return s.fn(t)
}

// FilterStep wraps a plain predicate into a filtering step.
type FilterStep struct {
	stepCore
	fn FilterFunc
}

func NewFilterStep(name string, fn FilterFunc) *FilterStep {
	return &FilterStep{stepCore: newStepCore(model.FilterStepVariant, name), fn: fn}
}

func (s *FilterStep) Test(t *Traverser) (bool, error) {
	return s.fn(t)
}
