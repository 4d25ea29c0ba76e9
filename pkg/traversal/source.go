package traversal

import (
	"github.com/caffix/queue"
	"github.com/hashicorp/go-multierror"
)

// Source produces the items a traversal starts from. It exposes a synchronous
// produce-next-or-none contract; any blocking fetch belongs behind it, never
// inside the traversal.
type Source interface {
	// Next returns the next item. ok is false once the source is exhausted.
	Next() (item any, ok bool)
	// Close releases anything held by the source. It must be idempotent.
	Close() error
}

// SliceSource yields a fixed list of items in order.
type SliceSource struct {
	items []any
	idx   int
}

func NewSliceSource(items ...any) *SliceSource {
	return &SliceSource{items: items}
}

func (s *SliceSource) Next() (any, bool) {
	if s.idx >= len(s.items) {
		return nil, false
	}
	item := s.items[s.idx]
	s.idx++

	return item, true
}

func (s *SliceSource) Close() error {
	s.idx = len(s.items)

	return nil
}

// QueueSource yields items from a queue filled by a producer ahead of the
// pull. An empty queue reads as exhausted, so producers must finish appending
// before the traversal starts.
type QueueSource struct {
	q queue.Queue
}

func NewQueueSource() *QueueSource {
	return &QueueSource{q: queue.NewQueue()}
}

// Append enqueues an item for the traversal to consume.
func (s *QueueSource) Append(item any) {
	s.q.Append(item)
}

func (s *QueueSource) Next() (any, bool) {
	return s.q.Next()
}

func (s *QueueSource) Close() error {
	s.q.Process(func(any) {})

	return nil
}

// UnionSource concatenates several sources, draining each in turn. It is the
// pull-model counterpart of a fan-in merger.
type UnionSource struct {
	sources []Source
	idx     int
}

func NewUnionSource(sources ...Source) *UnionSource {
	return &UnionSource{sources: sources}
}

func (s *UnionSource) Next() (any, bool) {
	for s.idx < len(s.sources) {
		item, ok := s.sources[s.idx].Next()
		if ok {
			return item, true
		}
		s.idx++
	}

	return nil, false
}

func (s *UnionSource) Close() error {
	var result *multierror.Error
	for _, src := range s.sources {
		if err := src.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
