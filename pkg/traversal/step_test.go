package traversal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

func TestStepDescribe(t *testing.T) {
	tcs := map[string]struct {
		step     Step
		expected string
	}{
		"map":     {step: NewMapStep("double", nil), expected: "map(double)"},
		"flatMap": {step: NewFlatMapStep("expand", nil), expected: "flatMap(expand)"},
		"filter":  {step: NewFilterStep("even", nil), expected: "filter(even)"},
		"marker":  {step: NewMarkerStep("mark"), expected: "marker(mark)"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.step.Describe())
		})
	}
}

func TestStepEqual(t *testing.T) {
	tcs := map[string]struct {
		a, b     Step
		expected bool
	}{
		"same variant same identifier":      {a: NewMarkerStep("mark"), b: NewMarkerStep("mark"), expected: true},
		"same variant different identifier": {a: NewMarkerStep("mark"), b: NewMarkerStep("other"), expected: false},
		"different variant same identifier": {a: NewMapStep("mark", nil), b: NewMarkerStep("mark"), expected: false},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
			assert.Equal(t, tc.expected, tc.b.Equal(tc.a))
		})
	}
}

func TestStepEqualNil(t *testing.T) {
	assert.False(t, NewMarkerStep("mark").Equal(nil))
}

func TestStepHash(t *testing.T) {
	a := NewMarkerStep("mark")
	b := NewMarkerStep("mark")
	assert.Equal(t, a.Hash(), b.Hash())

	// variant and identifier both feed the hash
	assert.NotEqual(t, a.Hash(), NewMarkerStep("other").Hash())
	assert.NotEqual(t, a.Hash(), NewMapStep("mark", nil).Hash())
}

func TestMapStep(t *testing.T) {
	step := NewMapStep("upper", func(trv *Traverser) (*Traverser, error) {
		return trv.WithValue(strings.ToUpper(trv.Value().(string))), nil
	})
	assert.Equal(t, model.MapStepVariant, step.Variant())

	out, err := step.Map(NewTraverser("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", out.Value())
}

func TestFlatMapStep(t *testing.T) {
	step := NewFlatMapStep("twice", func(trv *Traverser) ([]*Traverser, error) {
		return []*Traverser{trv.Split(trv.Value()), trv.Split(trv.Value())}, nil
	})

	outs, err := step.FlatMap(NewTraverser(7))
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, 7, outs[0].Value())
	assert.Equal(t, 7, outs[1].Value())
}

func TestFilterStep(t *testing.T) {
	step := NewFilterStep("even", func(trv *Traverser) (bool, error) {
		return trv.Value().(int)%2 == 0, nil
	})

	keep, err := step.Test(NewTraverser(2))
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = step.Test(NewTraverser(3))
	require.NoError(t, err)
	assert.False(t, keep)
}
