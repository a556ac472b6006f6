// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"github.com/brickingsoft/errors"
)

// Bridge between cross-goroutine resolution and the blocking future model.
// A ChannelFuture pairs a single-use receiving handle with a single-use
// sending handle; the transport is a capacity-1 channel, which guarantees
// at-most-one observed value delivery without any shared mutable state
// beyond the channel itself.

// ChannelFuture is a [Future] whose value arrives on a channel, typically
// sent from another goroutine through the paired [Resolver].
type ChannelFuture[T any] struct {
	affine
	ch        <-chan T
	discarded chan struct{}
}

// Resolver is the sending half of a [ChannelFuture] pair. It may be moved
// to any goroutine independently of the future. A resolver is single-use:
// exactly one of Send or Close consumes it.
type Resolver[T any] struct {
	affine
	ch        chan<- T
	discarded <-chan struct{}
}

// NewChannel allocates a fresh one-shot channel and returns both ends.
// The first value sent on the resolver is the value the future resolves
// to. If the resolver is closed without sending, the future's Resolve
// fails with [Closed].
func NewChannel[T any]() (*ChannelFuture[T], *Resolver[T]) {
	ch := make(chan T, 1)
	discarded := make(chan struct{})
	future := &ChannelFuture[T]{ch: ch, discarded: discarded}
	resolver := &Resolver[T]{ch: ch, discarded: discarded}
	return future, resolver
}

// FromReceiver adopts an existing receive channel as a future. The first
// value received is the value the future resolves to; closing the channel
// without a value surfaces [Closed]. The producer keeps whatever sending
// discipline it already has — extra sends are simply never observed.
func FromReceiver[T any](ch <-chan T) *ChannelFuture[T] {
	return &ChannelFuture[T]{ch: ch}
}

// Resolve implements [Future]. It blocks the calling goroutine until a
// value is available on the channel, then returns it. If the channel is
// closed with no value ever sent, Resolve fails with [Closed].
func (f *ChannelFuture[T]) Resolve() (T, error) {
	f.consume()
	v, ok := <-f.ch
	if !ok {
		var zero T
		return zero, errors.From(Closed)
	}
	return v, nil
}

// Discard consumes the future without resolving it. A send on the paired
// resolver after Discard fails with [Discarded]. Discard after Resolve,
// or a second Discard, is a no-op.
func (f *ChannelFuture[T]) Discard() {
	if !f.tryConsume() {
		return
	}
	if f.discarded != nil {
		close(f.discarded)
	}
}

// Send delivers a value to the paired future, consuming the resolver.
// Only the first send is observed by the future. A second send fails with
// [AlreadyResolved]; a send after the paired future was discarded fails
// with [Discarded]. Send never blocks.
func (r *Resolver[T]) Send(v T) error {
	select {
	case <-r.discarded:
		return errors.From(Discarded)
	default:
	}
	if !r.tryConsume() {
		return errors.From(AlreadyResolved)
	}
	r.ch <- v
	close(r.ch)
	return nil
}

// Close releases the resolver without sending a value, consuming it. The
// paired future's Resolve then fails with [Closed] instead of blocking
// forever. Close after a successful Send is a no-op.
func (r *Resolver[T]) Close() {
	if !r.tryConsume() {
		return
	}
	close(r.ch)
}
