package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerStepConfigure(t *testing.T) {
	tcs := map[string]struct {
		keyValues []any
		wantKey   string
		hasKey    bool
		wantValue any
		hasValue  bool
	}{
		"empty":          {keyValues: nil},
		"key only":       {keyValues: []any{"name"}, wantKey: "name", hasKey: true},
		"key and value":  {keyValues: []any{"name", "Alice"}, wantKey: "name", hasKey: true, wantValue: "Alice", hasValue: true},
		"extras ignored": {keyValues: []any{"name", "Alice", "ignored", 42}, wantKey: "name", hasKey: true, wantValue: "Alice", hasValue: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			step := NewMarkerStep("mark")
			require.NoError(t, step.Configure(tc.keyValues...))

			key, ok := step.Key()
			assert.Equal(t, tc.hasKey, ok)
			assert.Equal(t, tc.wantKey, key)

			value, ok := step.Value()
			assert.Equal(t, tc.hasValue, ok)
			assert.Equal(t, tc.wantValue, value)
		})
	}
}

func TestMarkerStepConfigureBadKey(t *testing.T) {
	step := NewMarkerStep("mark")
	err := step.Configure(42, "value")
	assert.ErrorIs(t, err, ErrConfig)

	_, ok := step.Key()
	assert.False(t, ok)
}

func TestMarkerStepConfigureOverwrites(t *testing.T) {
	step := NewMarkerStep("mark")
	require.NoError(t, step.Configure("name", "Alice"))
	require.NoError(t, step.Configure("age", 30))

	key, ok := step.Key()
	require.True(t, ok)
	assert.Equal(t, "age", key)
	value, ok := step.Value()
	require.True(t, ok)
	assert.Equal(t, 30, value)

	// a key-only call keeps the previous value
	require.NoError(t, step.Configure("city"))
	key, _ = step.Key()
	assert.Equal(t, "city", key)
	value, ok = step.Value()
	require.True(t, ok)
	assert.Equal(t, 30, value)
}

func TestMarkerStepMapAlwaysEmpty(t *testing.T) {
	step := NewMarkerStep("mark")
	for _, v := range []any{"a", 1, nil, []string{"x"}} {
		out, err := step.Map(NewTraverser(v))
		require.NoError(t, err)
		assert.Nil(t, out)
	}
}

func TestMarkerStepParametersShared(t *testing.T) {
	step := NewMarkerStep("mark")
	assert.Same(t, Empty, step.Parameters())

	err := step.Parameters().Set("name", "Alice")
	assert.ErrorIs(t, err, ErrImmutableParameters)
}

func TestMarkerStepIdentifier(t *testing.T) {
	step := NewMarkerStep("mark")
	assert.Equal(t, "mark", step.Identifier())
}
