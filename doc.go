// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fut provides single-shot blocking futures with monadic
// composition in Go.
//
// The core type [Future] represents a value that becomes available later.
// Implementations provide a single method — Resolve — which blocks the
// calling goroutine until the value arrives and consumes the future.
// Everything else is built on top of that one operation.
//
// # Design Philosophy
//
// fut provides:
//   - A minimal capability interface: produce an output, on demand, once
//   - Deferred composition: pipelines are assembled before any value exists
//   - No event loop, executor, polling, or cancellation — resolution is
//     entirely synchronous-on-demand, driven by the caller
//
// Goroutines and any other execution contexts are the caller's
// responsibility; the library never spawns one. The only operation that may
// block is Resolve, and blocking is always confined to the calling
// goroutine.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Lift]: Wrap an already-known value into a [Future]
//   - [Bind]: Sequence a future with a future-producing continuation,
//     flattening one level of nesting
//
// Derived operations:
//
//   - [Map]: Apply a function to the resolved value
//   - [Then]: Alias of [Map]
//   - [Join]: Flatten a Future of a Future — equivalent to Bind with the
//     identity continuation
//   - [Both]: Combine two futures into a [Future] of a [Pair]
//
// Execution:
//
//   - Future.Resolve: Block until the value is available, consuming the
//     future
//   - [MustResolve]: Resolve and panic on failure
//
// Composition performs no work: building a Map or Bind chain only records
// the inner future and the function. The final Resolve call drives
// evaluation, unwinding the chain depth-first so the innermost value is
// fully produced before any transform or continuation runs.
//
// # Affine Semantics
//
// Every future is single-use. Resolve consumes the future; resolving a
// future twice panics. Go has no move semantics, so the consuming-self
// contract is enforced at runtime by an atomic use counter on every
// variant. A double resolve is a usage contract violation, not a
// recoverable condition, and it fails loudly rather than returning stale
// data.
//
// # Channel Bridge
//
// [NewChannel] pairs a [ChannelFuture] with a [Resolver]. The two halves
// may be moved to different goroutines; the transport is a capacity-1
// channel, so at most one value is ever observed by the future.
//
//   - Resolver.Send: Deliver the value; only the first send is observed
//   - Resolver.Close: Give up without sending — the paired future's
//     Resolve fails with [Closed] instead of blocking forever
//   - ChannelFuture.Discard: Drop the future without resolving; a later
//     Send fails with [Discarded]
//   - [FromReceiver]: Adopt an existing receive channel as a future
//
// # Example
//
//	future := fut.Lift(5)
//	doubled := fut.Map(future, func(v int) int { return 2 * v })
//	incremented := fut.Map(doubled, func(v int) int { return v + 1 })
//	v, _ := incremented.Resolve()
//	// v == 11
//
// A computation can depend on a value produced by another goroutine:
//
//	future, resolver := fut.NewChannel[int]()
//	doubled := fut.Map(future, func(v int) int { return 2 * v })
//	go func() { _ = resolver.Send(2) }()
//	v, _ := doubled.Resolve()
//	// v == 4
package fut
