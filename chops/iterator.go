// Package chops provides coroutine-style iteration over
// the iterators of this module, so that a traversal can
// be consumed with a for-range loop over a channel.
package chops

import (
	"context"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  context.CancelFunc
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iteration ends for any reason.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It may be called any number of times,
// from any goroutine.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	var x SomeDataStructure[T]
//	// x.Iterator() returns something that implements Iterator[T]
//	co := CoIterate[T](ctx, x.Iterator())
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when
// Stop() is called, ctx is done, or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
// Items that were produced but not received when the iteration
// is stopped are dropped. A receiver racing with Stop may still
// get one more item before Items is closed.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	ctx, cancel := context.WithCancel(ctx)
	co := CoIterator[T]{
		items: out,
		stop:  cancel,
	}

	if iterator == nil {
		cancel()
		close(out)
		return co
	}

	go func(ctx context.Context, out chan<- T, i Iterator[T]) {
		defer close(out)
		defer cancel()
		for i.Next() {
			select {
			case out <- i.Item():
			case <-ctx.Done():
				return
			}
		}
	}(ctx, out, iterator)

	return co
}
