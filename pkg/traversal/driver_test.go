package traversal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverNilTraversal(t *testing.T) {
	drv, err := NewDriver(nil)
	assert.ErrorIs(t, err, ErrTraversalMustBeSet)
	assert.Nil(t, drv)
}

func TestDriverValues(t *testing.T) {
	tr, err := New(NewSliceSource(1, 2, 3))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	got, err := drv.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	// the driver closed the traversal on completion
	_, _, err = tr.Next()
	assert.ErrorIs(t, err, ErrClosedTraversal)
}

func TestDriverToSlice(t *testing.T) {
	tr, err := New(NewSliceSource("a", "b"))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	got, err := drv.ToSlice(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Value())
	assert.Equal(t, "b", got[1].Value())
}

func TestDriverCount(t *testing.T) {
	tr, err := New(NewSliceSource(1, 2, 3))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	got, err := drv.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestDriverForEachNilFn(t *testing.T) {
	tr, err := New(NewSliceSource(1, 2))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	require.NoError(t, drv.ForEach(context.Background(), nil))
}

func TestDriverForEachCancelled(t *testing.T) {
	tr, err := New(NewSliceSource(1, 2, 3))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = drv.ForEach(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = tr.Next()
	assert.ErrorIs(t, err, ErrClosedTraversal)
}

func TestDriverForEachSinkError(t *testing.T) {
	tr, err := New(NewSliceSource(1, 2, 3))
	require.NoError(t, err)
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	err = drv.ForEach(context.Background(), func(trv *Traverser) error {
		if trv.Value().(int) == 2 {
			return assert.AnError
		}

		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDriverForEachTransformError(t *testing.T) {
	tr, err := New(NewSliceSource(1))
	require.NoError(t, err)
	require.NoError(t, tr.AddStep(NewMapStep("boom", func(*Traverser) (*Traverser, error) {
		return nil, assert.AnError
	})))
	drv, err := NewDriver(tr)
	require.NoError(t, err)

	err = drv.ForEach(context.Background(), nil)
	var terr *TransformError
	assert.ErrorAs(t, err, &terr)
}

func TestRunAll(t *testing.T) {
	tcs := map[string]struct {
		total int
	}{
		"one":  {total: 1},
		"few":  {total: 3},
		"many": {total: 10},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			traversals := make([]*Traversal, tc.total)
			for i := range traversals {
				tr, err := New(NewSliceSource(1, 2, 3))
				require.NoError(t, err)
				traversals[i] = tr
			}

			require.NoError(t, RunAll(context.Background(), nil, traversals...))

			for _, tr := range traversals {
				_, _, err := tr.Next()
				assert.ErrorIs(t, err, ErrClosedTraversal)
			}
		})
	}
}

func TestRunAllPropagatesError(t *testing.T) {
	healthy, err := New(NewSliceSource(1, 2, 3))
	require.NoError(t, err)

	failing, err := New(NewSliceSource(1))
	require.NoError(t, err)
	require.NoError(t, failing.AddStep(NewMapStep("boom", func(*Traverser) (*Traverser, error) {
		return nil, assert.AnError
	})))

	err = RunAll(context.Background(), nil, healthy, failing)
	assert.ErrorIs(t, err, assert.AnError)
}
