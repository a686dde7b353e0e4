// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Factory counterparts of the in-place binding operations. Each returns a
// freshly bound Delegate value; the binding rules (interning, payload,
// nil handling) are identical to the Set forms in bind.go and delegate.go.

// Free creates a delegate bound to a fixed free function with an empty data
// word. A nil f yields the null delegate.
func Free[A, R any](f func(A) R) Delegate[A, R] {
	var d Delegate[A, R]
	return *d.SetFree(f)
}

// Fn creates a delegate bound to a function value resolved at call time;
// the function value occupies the data word. A nil fn yields the null
// delegate.
func Fn[A, R any](fn func(A) R) Delegate[A, R] {
	var d Delegate[A, R]
	return *d.SetFn(fn)
}

// Method creates a delegate bound to a pointer-receiver method of obj:
//
//	d := delegate.Method((*Counter).Add, &c)
func Method[T, A, R any](m func(*T, A) R, obj *T) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetMethod(&d, m, obj)
}

// ConstMethod creates a delegate bound to a value-receiver method of obj;
// calls operate on a copy of the referent and cannot mutate it.
func ConstMethod[T, A, R any](m func(T, A) R, obj *T) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetConstMethod(&d, m, obj)
}

// Functor creates a delegate bound to a function object with a
// pointer-receiver Invoke. The argument and result types cannot be deduced
// from a method set, so they are given explicitly:
//
//	d := delegate.Functor[int, int](&accumulator)
func Functor[A, R any, PF interface {
	*F
	Callable[A, R]
}, F any](fo PF) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetFunctor[PF, F, A, R](&d, fo)
}

// ConstFunctor creates a delegate bound to a function object with a
// value-receiver Invoke; each call operates on a copy of the functor.
// As with [Functor], the signature is given explicitly:
//
//	d := delegate.ConstFunctor[int, int](&scaler)
func ConstFunctor[A, R any, F Callable[A, R]](fo *F) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetConstFunctor(&d, fo)
}

// Context creates a delegate bound to a free function that receives obj by
// pointer as an implicit first argument, followed by the call argument.
func Context[T, A, R any](f func(*T, A) R, obj *T) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetContext(&d, f, obj)
}

// ConstContext creates a delegate bound to a free function that receives
// obj by value as an implicit first argument.
func ConstContext[T, A, R any](f func(T, A) R, obj *T) Delegate[A, R] {
	var d Delegate[A, R]
	return *SetConstContext(&d, f, obj)
}

// Raw creates a delegate from an adapter-shaped function and an arbitrary
// context pointer, for integrating code that cannot express the
// higher-level binding forms.
func Raw[A, R any](fn Adapter[A, R], ctx unsafe.Pointer) Delegate[A, R] {
	var d Delegate[A, R]
	return *d.SetRaw(fn, ctx)
}
