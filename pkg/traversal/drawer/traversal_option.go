package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/pkg/traversal/measure"
	"github.com/askiada/go-traversal/pkg/traversal/model"
)

type traversalDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
}

func (td *traversalDrawer) New() error {
	err := td.AddStep(model.StartInfo.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = td.AddStep(model.EndInfo.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (td *traversalDrawer) PrepareSource(source *model.StepInfo) error {
	err := td.AddStep(source.Name)
	if err != nil {
		return err
	}
	err = td.AddLink(model.StartInfo.Name, source.Name)
	if err != nil {
		return err
	}

	return nil
}

func (td *traversalDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := td.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = td.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}

	return nil
}

func (td *traversalDrawer) OnStepOutput(_, _ *model.StepInfo, _, _ time.Duration) error {
	return nil
}

func (td *traversalDrawer) AfterTraversal(last *model.StepInfo, _ time.Duration) error {
	err := td.AddLink(last.Name, model.EndInfo.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link last step to end")
	}

	return nil
}

func (td *traversalDrawer) Finish() error {
	if td.m != nil {
		err := td.SetTotalTime(model.EndInfo.Name, td.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = td.AddMeasure(td.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := td.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw traversal")
	}

	return nil
}

// TraversalDrawer wires a Drawer into a traversal as an option. The measure
// may be nil; when set, its metrics annotate the drawing.
func TraversalDrawer(drawer Drawer, measure measure.Measure) model.TraversalOption {
	return &traversalDrawer{drawer, measure, time.Now()}
}
