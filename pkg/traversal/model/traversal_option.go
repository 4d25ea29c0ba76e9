package model

import "time"

// TraversalOption defines the interface for traversal options.
// Options observe the wiring and the execution of a traversal without taking
// part in it; the drawer and measure packages provide implementations.
type TraversalOption interface {
	// New initialises the traversal option.
	New() error

	// PrepareSource runs when the source step is wired.
	PrepareSource(source *StepInfo) error

	// PrepareStep runs when a step is appended to the traversal.
	PrepareStep(parentStep, step *StepInfo) error

	// OnStepOutput runs every time a step emits a traverser.
	// iterationDuration covers the upstream pull, computationDuration the
	// step's own transform.
	OnStepOutput(parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration) error

	// AfterTraversal runs once the traversal is exhausted or closed.
	AfterTraversal(last *StepInfo, totalDuration time.Duration) error

	// Finish runs after the traversal is closed.
	Finish() error
}
