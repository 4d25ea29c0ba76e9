package store

import (
	"sort"
	"sync"

	"github.com/dominikbraun/graph"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

const labelAttribute = "label"

// MemoryGraph is an in-memory property-graph store. It holds one edge per
// ordered vertex pair.
type MemoryGraph struct {
	lock     sync.RWMutex
	vertices map[string]*model.Vertex

	// outEdges and inEdges store all outgoing and ingoing edges for all
	// vertices. For O(1) access, these edges themselves are stored in maps
	// whose keys are the ids of the target vertices.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		vertices: make(map[string]*model.Vertex),
		outEdges: make(map[string]map[string]graph.Edge[string]),
		inEdges:  make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *MemoryGraph) AddVertex(v *model.Vertex) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[v.ID]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.vertices[v.ID] = v

	return nil
}

func (s *MemoryGraph) AddEdge(source, target, label string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[source]; !ok {
		return graph.ErrVertexNotFound
	}
	if _, ok := s.vertices[target]; !ok {
		return graph.ErrVertexNotFound
	}
	if _, ok := s.outEdges[source][target]; ok {
		return graph.ErrEdgeAlreadyExists
	}

	edge := graph.Edge[string]{
		Source: source,
		Target: target,
		Properties: graph.EdgeProperties{
			Attributes: map[string]string{labelAttribute: label},
		},
	}

	if _, ok := s.outEdges[source]; !ok {
		s.outEdges[source] = make(map[string]graph.Edge[string])
	}
	s.outEdges[source][target] = edge

	if _, ok := s.inEdges[target]; !ok {
		s.inEdges[target] = make(map[string]graph.Edge[string])
	}
	s.inEdges[target][source] = edge

	return nil
}

func (s *MemoryGraph) Vertex(id string) (*model.Vertex, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.vertices[id]
	if !ok {
		return nil, graph.ErrVertexNotFound
	}

	return v, nil
}

// VertexIDs returns every vertex id in lexical order.
func (s *MemoryGraph) VertexIDs() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := make([]string, 0, len(s.vertices))
	for id := range s.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// Out returns the vertices reached by outgoing edges of id, restricted to the
// given edge labels when any are supplied. Results are ordered by vertex id.
func (s *MemoryGraph) Out(id string, labels ...string) ([]*model.Vertex, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if _, ok := s.vertices[id]; !ok {
		return nil, graph.ErrVertexNotFound
	}

	return s.adjacent(s.outEdges[id], labels), nil
}

// In returns the vertices with edges pointing at id, restricted to the given
// edge labels when any are supplied. Results are ordered by vertex id.
func (s *MemoryGraph) In(id string, labels ...string) ([]*model.Vertex, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if _, ok := s.vertices[id]; !ok {
		return nil, graph.ErrVertexNotFound
	}

	return s.adjacent(s.inEdges[id], labels), nil
}

func (s *MemoryGraph) adjacent(edges map[string]graph.Edge[string], labels []string) []*model.Vertex {
	res := make([]*model.Vertex, 0, len(edges))
	for neighbour, edge := range edges {
		if len(labels) > 0 && !matchLabel(edge.Properties.Attributes[labelAttribute], labels) {
			continue
		}
		res = append(res, s.vertices[neighbour])
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res
}

func matchLabel(label string, labels []string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}

	return false
}

// Edges returns every edge of the graph ordered by source then target id.
func (s *MemoryGraph) Edges() ([]model.Edge, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]model.Edge, 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, model.Edge{
				Source: edge.Source,
				Target: edge.Target,
				Label:  edge.Properties.Attributes[labelAttribute],
			})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Source != res[j].Source {
			return res[i].Source < res[j].Source
		}

		return res[i].Target < res[j].Target
	})

	return res, nil
}

func (s *MemoryGraph) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.vertices = make(map[string]*model.Vertex)
	s.outEdges = make(map[string]map[string]graph.Edge[string])
	s.inEdges = make(map[string]map[string]graph.Edge[string])

	return nil
}
