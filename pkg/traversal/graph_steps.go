package traversal

import (
	"strings"

	"github.com/caffix/stringset"
	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

func vertexValue(t *Traverser) (*model.Vertex, error) {
	v, ok := t.Value().(*model.Vertex)
	if !ok {
		return nil, errors.Errorf("expected a vertex, got %T", t.Value())
	}

	return v, nil
}

func adjacencyName(direction string, labels []string) string {
	return direction + "(" + strings.Join(labels, ",") + ")"
}

// adjacencyStep walks the incident edges of the current vertex.
type adjacencyStep struct {
	stepCore
	g      Graph
	labels []string
	params *Parameters
	out    bool
	in     bool
}

func newAdjacencyStep(g Graph, direction string, out, in bool, labels []string) *adjacencyStep {
	params := NewParameters()
	_ = params.Set("labels", labels)

	return &adjacencyStep{
		stepCore: newStepCore(model.FlatMapStepVariant, adjacencyName(direction, labels)),
		g:        g,
		labels:   labels,
		params:   params,
		out:      out,
		in:       in,
	}
}

// NewOutStep returns a step emitting the vertices reached by outgoing edges,
// restricted to the given edge labels when any are supplied.
func NewOutStep(g Graph, labels ...string) Step {
	return newAdjacencyStep(g, "out", true, false, labels)
}

// NewInStep returns a step emitting the vertices reaching the current vertex.
func NewInStep(g Graph, labels ...string) Step {
	return newAdjacencyStep(g, "in", false, true, labels)
}

// NewBothStep returns a step emitting the vertices adjacent in either
// direction.
func NewBothStep(g Graph, labels ...string) Step {
	return newAdjacencyStep(g, "both", true, true, labels)
}

func (s *adjacencyStep) FlatMap(t *Traverser) ([]*Traverser, error) {
	v, err := vertexValue(t)
	if err != nil {
		return nil, err
	}

	var neighbours []*model.Vertex
	if s.out {
		outs, err := s.g.Out(v.ID, s.labels...)
		if err != nil {
			return nil, errors.Wrapf(err, "out edges of %s", v.ID)
		}
		neighbours = append(neighbours, outs...)
	}
	if s.in {
		ins, err := s.g.In(v.ID, s.labels...)
		if err != nil {
			return nil, errors.Wrapf(err, "in edges of %s", v.ID)
		}
		neighbours = append(neighbours, ins...)
	}

	res := make([]*Traverser, 0, len(neighbours))
	for _, n := range neighbours {
		res = append(res, t.Split(n))
	}

	return res, nil
}

func (s *adjacencyStep) Parameters() *Parameters {
	return s.params
}

func (s *adjacencyStep) Configure(keyValues ...any) error {
	return configureParameters(s.params, keyValues)
}

// configureParameters applies the flat key/value list contract to a
// parameter store.
func configureParameters(p *Parameters, keyValues []any) error {
	if len(keyValues) == 0 {
		return nil
	}
	key, ok := keyValues[0].(string)
	if !ok {
		return errors.Wrapf(ErrConfig, "key must be a string, got %T", keyValues[0])
	}
	var value any
	if len(keyValues) > 1 {
		value = keyValues[1]
	}

	return p.Set(key, value)
}

// HasLabelStep keeps the traversers whose vertex carries one of the given
// labels.
type HasLabelStep struct {
	stepCore
	labels *stringset.Set
	params *Parameters
}

func NewHasLabelStep(labels ...string) *HasLabelStep {
	params := NewParameters()
	_ = params.Set("labels", labels)

	return &HasLabelStep{
		stepCore: newStepCore(model.FilterStepVariant, adjacencyName("hasLabel", labels)),
		labels:   stringset.New(labels...),
		params:   params,
	}
}

func (s *HasLabelStep) Test(t *Traverser) (bool, error) {
	v, err := vertexValue(t)
	if err != nil {
		return false, err
	}

	return s.labels.Has(v.Label), nil
}

func (s *HasLabelStep) Parameters() *Parameters {
	return s.params
}

func (s *HasLabelStep) Configure(keyValues ...any) error {
	return configureParameters(s.params, keyValues)
}

func (s *HasLabelStep) Close() error {
	s.labels.Close()

	return nil
}

// ValuesStep maps a vertex to one of its property values. Traversers whose
// vertex lacks the property are dropped.
type ValuesStep struct {
	stepCore
	key    string
	params *Parameters
}

func NewValuesStep(key string) *ValuesStep {
	params := NewParameters()
	_ = params.Set("key", key)

	return &ValuesStep{
		stepCore: newStepCore(model.MapStepVariant, "values("+key+")"),
		key:      key,
		params:   params,
	}
}

func (s *ValuesStep) Map(t *Traverser) (*Traverser, error) {
	v, err := vertexValue(t)
	if err != nil {
		return nil, err
	}
	val, ok := v.Property(s.key)
	if !ok {
		return nil, nil
	}

	return t.WithValue(val), nil
}

func (s *ValuesStep) Parameters() *Parameters {
	return s.params
}

func (s *ValuesStep) Configure(keyValues ...any) error {
	return configureParameters(s.params, keyValues)
}

// LimitStep passes the first n traversers through and drops the rest.
type LimitStep struct {
	stepCore
	remaining int64
}

func NewLimitStep(n int64) *LimitStep {
	return &LimitStep{
		stepCore:  newStepCore(model.FilterStepVariant, "limit"),
		remaining: n,
	}
}

func (s *LimitStep) Test(_ *Traverser) (bool, error) {
	if s.remaining <= 0 {
		return false, nil
	}
	s.remaining--

	return true, nil
}

// IdentityStep passes every traverser through untouched.
type IdentityStep struct {
	stepCore
}

func NewIdentityStep() *IdentityStep {
	return &IdentityStep{stepCore: newStepCore(model.MapStepVariant, "identity")}
}

func (s *IdentityStep) Map(t *Traverser) (*Traverser, error) {
	return t, nil
}
