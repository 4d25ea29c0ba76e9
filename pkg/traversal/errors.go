package traversal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTraversalMustBeSet  = errors.New("traversal must be set")
	ErrSourceMustBeSet     = errors.New("source must be set")
	ErrStepMustBeSet       = errors.New("step must be set")
	ErrConfig              = errors.New("invalid step configuration")
	ErrWiring              = errors.New("traversal already started, steps cannot be added")
	ErrImmutableParameters = errors.New("parameters are frozen")
	ErrClosedTraversal     = errors.New("traversal is closed")
)

// TransformError wraps a failure raised inside a step's transform.
// It is terminal: the traversal that surfaced it is force-closed and every
// later call fails with ErrClosedTraversal.
type TransformError struct {
	Step string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func newTransformError(step string, err error) *TransformError {
	return &TransformError{Step: step, Err: err}
}
