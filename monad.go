// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Monad operations for futures.
//
// Minimal definition: Lift (unit) and Bind are necessary and sufficient.
// Map and Then are kept as first-class combinators to avoid the
// intermediate immediate future that Bind(m, compose(Lift, f)) would
// allocate.
//
// Construction is pure bookkeeping: each combinator stores the inner
// future and the function, and performs no evaluation until its own
// Resolve is called. Inner resolution strictly precedes function
// invocation.

// mapFuture applies a pure function to the result of an inner future.
type mapFuture[A, B any] struct {
	affine
	inner Future[A]
	f     func(A) B
}

// Resolve implements Future. The inner future resolves first — possibly
// blocking — then f is applied exactly once to its value. A failure from
// the inner future propagates untouched and f is never called.
func (m *mapFuture[A, B]) Resolve() (B, error) {
	m.consume()
	a, err := m.inner.Resolve()
	if err != nil {
		var zero B
		return zero, err
	}
	return m.f(a), nil
}

// Map returns a future whose value is f applied to the resolved value of
// m. Calling Map performs no work and never blocks.
func Map[A, B any](m Future[A], f func(A) B) Future[B] {
	return &mapFuture[A, B]{inner: m, f: f}
}

// Then is an alias of [Map].
func Then[A, B any](m Future[A], f func(A) B) Future[B] {
	return Map(m, f)
}

// bindFuture sequences an inner future with a future-producing
// continuation, flattening one level of nesting.
type bindFuture[A, B any] struct {
	affine
	inner Future[A]
	f     func(A) Future[B]
}

// Resolve implements Future. The inner future resolves first, f is then
// invoked exactly once with its value to construct the next future, and
// that future is resolved in turn. f itself only constructs — the result
// type is the next future's output, never a nested future.
func (m *bindFuture[A, B]) Resolve() (B, error) {
	m.consume()
	a, err := m.inner.Resolve()
	if err != nil {
		var zero B
		return zero, err
	}
	return m.f(a).Resolve()
}

// Bind sequences a future with a continuation (monadic bind). The
// returned future resolves m, passes the value to f, and resolves the
// future f produces. Neither f nor the produced future exists until the
// outer Resolve runs.
func Bind[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	return &bindFuture[A, B]{inner: m, f: f}
}
