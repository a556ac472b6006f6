// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Derived composition built on Bind and Map.
// These add no new evaluation machinery; they package recurring
// composition shapes so callers do not hand-roll them.

// Join flattens a future of a future.
// Equivalent to Bind with the identity continuation: the outer future
// resolves to an inner future, which is resolved in turn.
func Join[A any](m Future[Future[A]]) Future[A] {
	return Bind(m, func(inner Future[A]) Future[A] {
		return inner
	})
}

// Pair holds the two values produced by [Both].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Both combines two futures into a future of a [Pair].
// Resolution order is fixed: ma resolves fully before mb. The underlying
// values may become available in any order; only the resolve sequence is
// ordered.
func Both[A, B any](ma Future[A], mb Future[B]) Future[Pair[A, B]] {
	return Bind(ma, func(a A) Future[Pair[A, B]] {
		return Map(mb, func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		})
	})
}
