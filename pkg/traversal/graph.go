package traversal

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/internal/store"
	"github.com/askiada/go-traversal/pkg/traversal/model"
)

// Graph is the data provider the graph steps traverse. Implementations must
// be safe for concurrent reads so a single graph can back several traversals.
type Graph interface {
	AddVertex(v *model.Vertex) error
	AddEdge(source, target, label string) error
	Vertex(id string) (*model.Vertex, error)
	VertexIDs() ([]string, error)
	Out(id string, labels ...string) ([]*model.Vertex, error)
	In(id string, labels ...string) ([]*model.Vertex, error)
	Edges() ([]model.Edge, error)
	Close() error
}

// NewMemoryGraph returns an in-memory Graph implementation.
func NewMemoryGraph() Graph {
	return store.NewMemoryGraph()
}

// VertexSource yields every vertex of a graph in id order. The id list is
// snapshotted when the source is created; vertices removed afterwards are
// skipped.
type VertexSource struct {
	g   Graph
	ids []string
	idx int
}

// NewVertexSource returns a source over all vertices of g.
func NewVertexSource(g Graph) (*VertexSource, error) {
	if g == nil {
		return nil, ErrSourceMustBeSet
	}
	ids, err := g.VertexIDs()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list vertices")
	}

	return &VertexSource{g: g, ids: ids}, nil
}

func (s *VertexSource) Next() (any, bool) {
	for s.idx < len(s.ids) {
		id := s.ids[s.idx]
		s.idx++
		v, err := s.g.Vertex(id)
		if err != nil {
			continue
		}

		return v, true
	}

	return nil, false
}

// Close exhausts the source. The graph itself is owned by the caller and is
// left open.
func (s *VertexSource) Close() error {
	s.idx = len(s.ids)

	return nil
}
