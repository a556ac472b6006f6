// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Future represents a value of type A that will become available later.
//
// Resolve returns the value behind the future, blocking the calling
// goroutine until it is available, and consumes the future: a future may
// be resolved at most once, and resolving it again panics. The error
// return surfaces transport failures such as [Closed]; implementations
// that cannot fail return a nil error.
//
// Implementations must take care that the value can still eventually
// arrive while Resolve blocks. A future that can never resolve must fail
// rather than block forever.
type Future[A any] interface {
	Resolve() (A, error)
}

// immediate is the Future variant behind Lift. It owns exactly one value
// and returns it from Resolve with no blocking.
type immediate[A any] struct {
	affine
	value A
}

// Resolve implements Future. It never blocks and never fails.
func (m *immediate[A]) Resolve() (A, error) {
	m.consume()
	return m.value, nil
}

// Lift wraps an already-known value into a [Future]. Lifting has no side
// effects; the returned future's Resolve returns the value directly.
func Lift[A any](a A) Future[A] {
	return &immediate[A]{value: a}
}
