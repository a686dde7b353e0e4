// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/delegate"
)

func TestSetFnNilClears(t *testing.T) {
	d := delegate.Free(double)
	d.SetFn(nil)
	if !d.Null() {
		t.Fatal("SetFn(nil) should clear")
	}
}

func TestSetFreeNilClears(t *testing.T) {
	d := delegate.Fn(double)
	d.SetFree(nil)
	if !d.Null() {
		t.Fatal("SetFree(nil) should clear")
	}
}

func TestSetRawNilClears(t *testing.T) {
	d := delegate.Free(double)
	d.SetRaw(nil, nil)
	if !d.Null() {
		t.Fatal("SetRaw(nil, ...) should clear")
	}
}

func TestSetMethodNilMethodPanics(t *testing.T) {
	c := Counter{}
	var d delegate.Delegate[int, int]

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on nil method")
		}
		if s, ok := r.(string); !ok || s != "delegate: nil method" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	delegate.SetMethod(&d, nil, &c)
}

func TestSetMethodNilReceiverPanics(t *testing.T) {
	var d delegate.Delegate[int, int]

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on nil receiver")
		}
		if s, ok := r.(string); !ok || s != "delegate: nil receiver" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	delegate.SetMethod(&d, (*Counter).Add, nil)
}

func TestSetConstMethodNilReceiverPanics(t *testing.T) {
	var d delegate.Delegate[int, int]

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil receiver")
		}
	}()

	delegate.SetConstMethod(&d, Counter.Sum, nil)
}

func TestSetFunctorNilPanics(t *testing.T) {
	var d delegate.Delegate[int, int]

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on nil functor")
		}
		if s, ok := r.(string); !ok || s != "delegate: nil functor" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	delegate.SetFunctor[*Accum](&d, nil)
}

func TestSetContextNilObjectPanics(t *testing.T) {
	var d delegate.Delegate[int, int]

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil object")
		}
	}()

	delegate.SetContext(&d, addTo, nil)
}

func TestRawCall(t *testing.T) {
	c := Counter{n: 10}
	raw := delegate.Adapter[int, int](func(ctx unsafe.Pointer, x int) int {
		return (*Counter)(ctx).n + x
	})
	d := delegate.Raw(raw, unsafe.Pointer(&c))
	if got := d.Call(5); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}

func TestRawNilContext(t *testing.T) {
	hits := 0
	raw := delegate.Adapter[int, int](func(ctx unsafe.Pointer, x int) int {
		if ctx != nil {
			t.Fatal("context should be nil")
		}
		hits++
		return x
	})
	d := delegate.Raw(raw, nil)
	if got := d.Call(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if hits != 1 {
		t.Fatalf("adapter hits = %d, want 1", hits)
	}
}

func TestFunctorStateIsShared(t *testing.T) {
	// Two delegates over the same functor observe each other's mutations;
	// only a pointer is stored.
	var a Accum
	d1 := delegate.Functor[int, int](&a)
	d2 := delegate.Functor[int, int](&a)
	d1.Call(2)
	if got := d2.Call(3); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestMethodTwoReceivers(t *testing.T) {
	x, y := Counter{n: 1}, Counter{n: 100}
	dx := delegate.Method((*Counter).Add, &x)
	dy := delegate.Method((*Counter).Add, &y)
	if got := dx.Call(1); got != 2 {
		t.Fatalf("x: got %d, want 2", got)
	}
	if got := dy.Call(1); got != 101 {
		t.Fatalf("y: got %d, want 101", got)
	}
}

func TestSetFunctorInPlace(t *testing.T) {
	var a Accum
	var d delegate.Delegate[int, int]
	delegate.SetFunctor(&d, &a)
	if got := d.Call(4); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestSetConstFunctorInPlace(t *testing.T) {
	s := Scaler{k: 2}
	var d delegate.Delegate[int, int]
	delegate.SetConstFunctor(&d, &s)
	if got := d.Call(4); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}
