package traversal

import (
	"sort"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/pkg/traversal/measure"
	"github.com/askiada/go-traversal/pkg/traversal/model"
)

// StepCost reports the measured cost of one step.
type StepCost struct {
	Name        string
	AvgStep     time.Duration
	TotalPulled int64
}

// Bottlenecks walks the step topology from start to end and returns the steps
// ordered by decreasing average transform duration, using the metrics
// collected by a measure.TraversalMeasure option.
func (t *Traversal) Bottlenecks(msr measure.Measure) ([]StepCost, error) {
	if msr == nil {
		return nil, errors.New("measure must be set")
	}

	path, err := graph.ShortestPath(t.topo, model.StartInfo.Name, model.EndInfo.Name)
	if err != nil {
		return nil, errors.Wrap(err, "unable to walk topology")
	}

	metrics := msr.AllMetrics()
	costs := make([]StepCost, 0, len(path))
	for _, name := range path {
		mt, ok := metrics[name]
		if !ok || mt.Emitted() == 0 {
			continue
		}
		costs = append(costs, StepCost{
			Name:        name,
			AvgStep:     mt.AVGDuration(),
			TotalPulled: mt.Emitted(),
		})
	}

	sort.Slice(costs, func(i, j int) bool {
		return costs[i].AvgStep > costs[j].AvgStep
	})

	return costs, nil
}
