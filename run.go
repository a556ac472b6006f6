// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// MustResolve resolves m and returns its value, panicking on failure.
// Intended for futures that cannot fail — Lift and combinator chains over
// it — and for call sites where a transport failure is a programming
// error.
func MustResolve[A any](m Future[A]) A {
	v, err := m.Resolve()
	if err != nil {
		panic(err)
	}
	return v
}
