// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"sync/atomic"
)

// affine enforces one-shot consumption for future variants.
// Go has no move semantics, so the consuming-Resolve contract is checked
// at runtime: the first consume succeeds, every later consume panics.
//
// Embedded by every Future variant in this package. The zero value is an
// unconsumed guard.
type affine struct {
	used atomic.Uintptr
}

// consume marks the guard as used.
// Panics if the guard has already been used.
func (a *affine) consume() {
	if a.used.Add(1) != 1 {
		panic("fut: future resolved twice")
	}
}

// tryConsume attempts to mark the guard as used.
// Returns false if it was already used.
func (a *affine) tryConsume() bool {
	return a.used.Add(1) == 1
}

// discard marks the guard as used without resolving.
func (a *affine) discard() {
	a.used.Store(1)
}
