package traversal

import (
	"fmt"
	"io"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

type traversalState int

const (
	stateBuilding traversalState = iota
	stateRunning
	stateClosed
)

// Traversal is an ordered chain of steps pulled lazily from a source. It owns
// its steps exclusively for its whole lifetime.
//
// A traversal is single threaded: one caller advances it one traverser at a
// time. Calling Next reentrantly from inside a step's transform is disallowed.
type Traversal struct {
	source    Source
	steps     []Step
	infos     []*model.StepInfo
	chain     puller
	opts      []model.TraversalOption
	topo      graph.Graph[string, string]
	state     traversalState
	finished  bool
	startTime time.Time
}

// New creates a traversal over source. Options observe wiring and execution;
// see the drawer and measure packages.
func New(source Source, opts ...model.TraversalOption) (*Traversal, error) {
	if source == nil {
		return nil, ErrSourceMustBeSet
	}

	t := &Traversal{
		source:    source,
		opts:      opts,
		topo:      graph.New(graph.StringHash, graph.Directed()),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		if err := opt.New(); err != nil {
			return nil, errors.Wrap(err, "unable to apply traversal option")
		}
	}

	srcInfo := &model.StepInfo{Variant: model.SourceStepVariant, Name: "source"}
	t.infos = []*model.StepInfo{srcInfo}

	if err := t.topo.AddVertex(model.StartInfo.Name); err != nil {
		return nil, errors.Wrap(err, "unable to add start to topology")
	}
	if err := t.topo.AddVertex(model.EndInfo.Name); err != nil {
		return nil, errors.Wrap(err, "unable to add end to topology")
	}
	if err := t.topo.AddVertex(srcInfo.Name); err != nil {
		return nil, errors.Wrap(err, "unable to add source to topology")
	}
	if err := t.topo.AddEdge(model.StartInfo.Name, srcInfo.Name); err != nil {
		return nil, errors.Wrap(err, "unable to link start to source")
	}

	for _, opt := range opts {
		if err := opt.PrepareSource(srcInfo); err != nil {
			return nil, errors.Wrap(err, "unable to prepare source")
		}
	}

	return t, nil
}

// AddStep appends a step to the traversal. The step must implement one of the
// transform capabilities. Appending fails with ErrWiring once the traversal
// has started producing results.
func (t *Traversal) AddStep(s Step) error {
	if s == nil {
		return ErrStepMustBeSet
	}
	switch t.state {
	case stateClosed:
		return ErrClosedTraversal
	case stateRunning:
		return errors.Wrapf(ErrWiring, "cannot append %s", s.Describe())
	case stateBuilding:
	}

	switch s.(type) {
	case Mapper, FlatMapper, Filter:
	default:
		return errors.Wrapf(ErrWiring, "step %s implements no transform capability", s.Describe())
	}

	parent := t.infos[len(t.infos)-1]
	// The position prefix keeps repeated steps distinct in the topology.
	info := &model.StepInfo{
		Variant: s.Variant(),
		Name:    fmt.Sprintf("%d:%s", len(t.steps)+1, s.Describe()),
	}

	if err := t.topo.AddVertex(info.Name); err != nil {
		return errors.Wrapf(err, "unable to add %s to topology", info.Name)
	}
	if err := t.topo.AddEdge(parent.Name, info.Name); err != nil {
		return errors.Wrapf(err, "unable to link %s to %s", parent.Name, info.Name)
	}

	for _, opt := range t.opts {
		if err := opt.PrepareStep(parent, info); err != nil {
			return errors.Wrap(err, "unable to prepare step")
		}
	}

	t.steps = append(t.steps, s)
	t.infos = append(t.infos, info)

	return nil
}

// start wires the pull chain and freezes the configuration of every
// configurable step. Triggered by the first Next call.
func (t *Traversal) start() error {
	chain := puller(&sourcePuller{src: t.source})
	for i, s := range t.steps {
		parent := t.infos[i]
		info := t.infos[i+1]
		switch st := s.(type) {
		case Mapper:
			chain = &mapPuller{t: t, prev: chain, step: st, parent: parent, info: info}
		case FlatMapper:
			chain = &flatMapPuller{t: t, prev: chain, step: st, parent: parent, info: info}
		case Filter:
			chain = &filterPuller{t: t, prev: chain, step: st, parent: parent, info: info}
		}

		if c, ok := s.(Configuring); ok {
			c.Parameters().Freeze()
		}
	}

	last := t.infos[len(t.infos)-1]
	if err := t.topo.AddEdge(last.Name, model.EndInfo.Name); err != nil {
		return errors.Wrap(err, "unable to link last step to end")
	}

	t.chain = chain
	t.state = stateRunning
	t.startTime = time.Now()

	return nil
}

// Next pulls the next traverser from the last step of the chain. ok is false
// once the traversal is exhausted; exhaustion is not an error. Any error is
// terminal: the traversal is closed and later calls fail with
// ErrClosedTraversal.
func (t *Traversal) Next() (*Traverser, bool, error) {
	switch t.state {
	case stateClosed:
		return nil, false, ErrClosedTraversal
	case stateBuilding:
		if err := t.start(); err != nil {
			return nil, false, err
		}
	case stateRunning:
	}

	tr, ok, err := t.chain.pull()
	if err != nil {
		_ = t.Close()

		return nil, false, err
	}
	if !ok && !t.finished {
		t.finished = true
		last := t.infos[len(t.infos)-1]
		for _, opt := range t.opts {
			if optErr := opt.AfterTraversal(last, time.Since(t.startTime)); optErr != nil {
				_ = t.Close()

				return nil, false, errors.Wrap(optErr, "unable to finish traversal option")
			}
		}
	}

	return tr, ok, nil
}

// Close releases the source and every step holding resources, then runs the
// option finishers. It is idempotent: the second call returns nil and changes
// nothing.
func (t *Traversal) Close() error {
	if t.state == stateClosed {
		return nil
	}
	t.state = stateClosed

	var result *multierror.Error
	if err := t.source.Close(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "unable to close source"))
	}
	for i, s := range t.steps {
		closer, ok := s.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "unable to close %s", t.infos[i+1].Name))
		}
	}
	for _, opt := range t.opts {
		if err := opt.Finish(); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "unable to finish traversal option"))
		}
	}

	return result.ErrorOrNil()
}

// Steps returns the wired steps in order.
func (t *Traversal) Steps() []Step {
	res := make([]Step, len(t.steps))
	copy(res, t.steps)

	return res
}

func (t *Traversal) onStepOutput(parent, info *model.StepInfo, iteration, computation time.Duration) error {
	for _, opt := range t.opts {
		if err := opt.OnStepOutput(parent, info, iteration, computation); err != nil {
			return errors.Wrap(err, "unable to run step output option")
		}
	}

	return nil
}
