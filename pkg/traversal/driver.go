package traversal

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Driver pulls results from a traversal terminus and manages its lifecycle.
// Each drain helper closes the traversal when it returns, successfully or not.
type Driver struct {
	t *Traversal
}

func NewDriver(t *Traversal) (*Driver, error) {
	if t == nil {
		return nil, ErrTraversalMustBeSet
	}

	return &Driver{t: t}, nil
}

// ForEach pulls every traverser and hands it to fn. The context is checked
// between pulls; cancellation closes the traversal and returns the context
// error.
func (d *Driver) ForEach(ctx context.Context, fn func(*Traverser) error) error {
	for {
		if err := ctx.Err(); err != nil {
			_ = d.t.Close()

			return errors.Wrap(err, "traversal cancelled")
		}

		tr, ok, err := d.t.Next()
		if err != nil {
			// Next already closed the traversal on failure.
			return err
		}
		if !ok {
			break
		}
		if fn == nil {
			continue
		}
		if err := fn(tr); err != nil {
			_ = d.t.Close()

			return errors.Wrap(err, "unable to consume traverser")
		}
	}

	return d.t.Close()
}

// ToSlice drains the traversal into a slice of traversers.
func (d *Driver) ToSlice(ctx context.Context) ([]*Traverser, error) {
	var res []*Traverser
	err := d.ForEach(ctx, func(t *Traverser) error {
		res = append(res, t)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Values drains the traversal into a slice of the carried values.
func (d *Driver) Values(ctx context.Context) ([]any, error) {
	var res []any
	err := d.ForEach(ctx, func(t *Traverser) error {
		res = append(res, t.Value())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Count drains the traversal and returns the sum of the traverser bulks.
func (d *Driver) Count(ctx context.Context) (int64, error) {
	var total int64
	err := d.ForEach(ctx, func(t *Traverser) error {
		total += t.Bulk()

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// RunAll drains independent traversals concurrently, one goroutine per
// traversal. Each traversal is still pulled by exactly one goroutine; fn, when
// set, must be safe for concurrent use. The first error cancels the rest.
func RunAll(ctx context.Context, fn func(*Traverser) error, traversals ...*Traversal) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	for _, t := range traversals {
		localT := t
		errGrp.Go(func() error {
			drv, err := NewDriver(localT)
			if err != nil {
				return err
			}

			return drv.ForEach(dCtx, fn)
		})
	}

	return errGrp.Wait()
}
