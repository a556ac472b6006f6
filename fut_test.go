// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"testing"

	"code.hybscloud.com/fut"
)

func TestLiftResolve(t *testing.T) {
	got, err := fut.Lift(5).Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestLiftResolveString(t *testing.T) {
	got, err := fut.Lift("hello").Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestLiftResolveSlice(t *testing.T) {
	got, err := fut.Lift([]int{1, 2, 3}).Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestMustResolve(t *testing.T) {
	got := fut.MustResolve(fut.Lift(42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMustResolvePanicsOnFailure(t *testing.T) {
	future, resolver := fut.NewChannel[int]()
	resolver.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on failed resolve")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value is %T, want error", r)
		}
		if !fut.IsClosed(err) {
			t.Fatalf("unexpected panic error: %v", err)
		}
	}()

	_ = fut.MustResolve[int](future)
}
