package traversal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-traversal/pkg/traversal/drawer"
	"github.com/askiada/go-traversal/pkg/traversal/measure"
)

func TestTraversalMeasureOption(t *testing.T) {
	msr := measure.NewDefaultMeasure()

	tr, err := New(NewSliceSource(1, 2, 3), measure.TraversalMeasure(msr))
	require.NoError(t, err)
	require.NoError(t, tr.AddStep(NewMapStep("double", func(trv *Traverser) (*Traverser, error) {
		return trv.WithValue(trv.Value().(int) * 2), nil
	})))

	assert.Equal(t, []any{2, 4, 6}, drainValues(t, tr))
	require.NoError(t, tr.Close())

	mt := msr.GetMetric("1:map(double)")
	require.NotNil(t, mt)
	assert.Equal(t, int64(3), mt.Emitted())
	assert.NotZero(t, mt.GetTotalDuration())
}

func TestBottlenecks(t *testing.T) {
	msr := measure.NewDefaultMeasure()

	tr, err := New(NewSliceSource(1, 2, 3), measure.TraversalMeasure(msr))
	require.NoError(t, err)
	require.NoError(t, tr.AddStep(NewIdentityStep()))
	require.NoError(t, tr.AddStep(NewFilterStep("odd", func(trv *Traverser) (bool, error) {
		return trv.Value().(int)%2 == 1, nil
	})))

	drainValues(t, tr)

	costs, err := tr.Bottlenecks(msr)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	for i := 1; i < len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i-1].AvgStep, costs[i].AvgStep)
	}
}

func TestBottlenecksNilMeasure(t *testing.T) {
	tr, err := New(NewSliceSource(1))
	require.NoError(t, err)

	_, err = tr.Bottlenecks(nil)
	assert.Error(t, err)
}

func TestTraversalDrawerOption(t *testing.T) {
	svgFile := filepath.Join(t.TempDir(), "traversal.svg")
	msr := measure.NewDefaultMeasure()

	tr, err := New(NewSliceSource(1, 2),
		drawer.TraversalDrawer(drawer.NewSVGDrawer(svgFile), msr),
		measure.TraversalMeasure(msr),
	)
	require.NoError(t, err)
	require.NoError(t, tr.AddStep(NewIdentityStep()))

	drainValues(t, tr)
	require.NoError(t, tr.Close())

	assert.FileExists(t, svgFile)
}
