package traversal

import (
	"time"

	"github.com/askiada/go-traversal/pkg/traversal/model"
)

// puller is one stage of the wired chain. Each pull either produces the next
// traverser, reports exhaustion, or fails; a failing pull is never retried.
type puller interface {
	pull() (*Traverser, bool, error)
}

type sourcePuller struct {
	src Source
}

func (p *sourcePuller) pull() (*Traverser, bool, error) {
	item, ok := p.src.Next()
	if !ok {
		return nil, false, nil
	}

	return NewTraverser(item), true, nil
}

type mapPuller struct {
	t            *Traversal
	prev         puller
	step         Mapper
	parent, info *model.StepInfo
}

func (p *mapPuller) pull() (*Traverser, bool, error) {
	for {
		start := time.Now()
		in, ok, err := p.prev.pull()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		iteration := time.Since(start)

		startFn := time.Now()
		out, err := p.step.Map(in)
		if err != nil {
			return nil, false, newTransformError(p.info.Name, err)
		}
		if out == nil {
			// dropped, keep pulling
			continue
		}
		if err := p.t.onStepOutput(p.parent, p.info, iteration, time.Since(startFn)); err != nil {
			return nil, false, err
		}

		return out, true, nil
	}
}

type flatMapPuller struct {
	t            *Traversal
	prev         puller
	step         FlatMapper
	parent, info *model.StepInfo
	buf          []*Traverser
}

func (p *flatMapPuller) pull() (*Traverser, bool, error) {
	for {
		if len(p.buf) > 0 {
			out := p.buf[0]
			p.buf = p.buf[1:]

			return out, true, nil
		}

		start := time.Now()
		in, ok, err := p.prev.pull()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		iteration := time.Since(start)

		startFn := time.Now()
		outs, err := p.step.FlatMap(in)
		if err != nil {
			return nil, false, newTransformError(p.info.Name, err)
		}
		if len(outs) == 0 {
			continue
		}
		if err := p.t.onStepOutput(p.parent, p.info, iteration, time.Since(startFn)); err != nil {
			return nil, false, err
		}
		p.buf = outs
	}
}

type filterPuller struct {
	t            *Traversal
	prev         puller
	step         Filter
	parent, info *model.StepInfo
}

func (p *filterPuller) pull() (*Traverser, bool, error) {
	for {
		start := time.Now()
		in, ok, err := p.prev.pull()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		iteration := time.Since(start)

		startFn := time.Now()
		keep, err := p.step.Test(in)
		if err != nil {
			return nil, false, newTransformError(p.info.Name, err)
		}
		if !keep {
			continue
		}
		if err := p.t.onStepOutput(p.parent, p.info, iteration, time.Since(startFn)); err != nil {
			return nil, false, err
		}

		return in, true, nil
	}
}
