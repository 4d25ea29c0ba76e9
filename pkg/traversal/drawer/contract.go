package drawer

import (
	"time"

	"github.com/askiada/go-traversal/pkg/traversal/measure"
)

// Drawer is an interface that defines the methods for drawing a traversal.
type Drawer interface {
	// AddStep adds a step to the traversal drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string) error
	// Draw creates a file with the traversal graph.
	Draw() error
	// SetTotalTime sets the total time for the step.
	SetTotalTime(stepName string, startTime time.Time) error
	// AddMeasure adds a measure to the traversal drawer.
	AddMeasure(measure measure.Measure) error
}
