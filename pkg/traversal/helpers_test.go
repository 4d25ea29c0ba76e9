package traversal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

func seedGraph(t *testing.T) Graph {
	t.Helper()
	g := NewMemoryGraph()

	vertices := []*model.Vertex{
		{ID: "v1", Label: "person", Properties: map[string]any{"name": "Alice", "age": 30}},
		{ID: "v2", Label: "person", Properties: map[string]any{"name": "Bob"}},
		{ID: "v3", Label: "software", Properties: map[string]any{"name": "gremlin"}},
		{ID: "v4", Label: "software", Properties: map[string]any{"name": "pipes"}},
	}
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}

	require.NoError(t, g.AddEdge("v1", "v2", "knows"))
	require.NoError(t, g.AddEdge("v1", "v3", "created"))
	require.NoError(t, g.AddEdge("v2", "v4", "created"))

	return g
}

func drainValues(t *testing.T, tr *Traversal) []any {
	t.Helper()
	var res []any
	for {
		trv, ok, err := tr.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		res = append(res, trv.Value())
	}

	return res
}

func vertexIDs(values []any) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		if vert, ok := v.(*model.Vertex); ok {
			res = append(res, vert.ID)
		}
	}

	return res
}
