package measure

import (
	"time"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

type traversalMeasure struct {
	Measure
}

func (tm *traversalMeasure) New() error {
	tm.AddMetric(model.StartInfo.Name)
	tm.AddMetric(model.EndInfo.Name)

	return nil
}

func (tm *traversalMeasure) PrepareSource(source *model.StepInfo) error {
	tm.AddMetric(source.Name)

	return nil
}

func (tm *traversalMeasure) PrepareStep(_, step *model.StepInfo) error {
	tm.AddMetric(step.Name)

	return nil
}

func (tm *traversalMeasure) OnStepOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	tm.GetMetric(step.Name).AddDuration(computationDuration)
	tm.GetMetric(step.Name).AddPullDuration(parentStep.Name, iterationDuration)

	return nil
}

func (tm *traversalMeasure) AfterTraversal(last *model.StepInfo, totalDuration time.Duration) error {
	tm.GetMetric(last.Name).SetTotalDuration(totalDuration)

	return nil
}

func (tm *traversalMeasure) Finish() error {
	return nil
}

// TraversalMeasure wires a Measure into a traversal as an option.
func TraversalMeasure(measure Measure) model.TraversalOption {
	return &traversalMeasure{measure}
}
