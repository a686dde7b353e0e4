// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// In-place binding operations. Each replaces both delegate words together;
// the previous binding is gone entirely, and copies taken earlier keep
// theirs. Forms that introduce a receiver or functor type are package
// functions over *Delegate because Go methods cannot add type parameters;
// the self-contained forms (Clear, SetFn, SetFree, SetRaw) live on the type
// itself. Every binding form has a factory counterpart in make.go.

// Callable is the functor constraint: any type whose Invoke method matches
// the delegate signature can be bound as a function object.
type Callable[A, R any] interface {
	Invoke(A) R
}

// SetMethod rebinds d to a pointer-receiver method of obj. m is typically a
// method expression such as (*T).Update; the adapter is interned per method
// identity and the data word holds obj, so two objects bound to the same
// method share the adapter and differ by data only.
func SetMethod[T, A, R any](d *Delegate[A, R], m func(*T, A) R, obj *T) *Delegate[A, R] {
	if m == nil {
		nilArg("method")
	}
	if obj == nil {
		nilArg("receiver")
	}
	d.cb = refAdapter[T, A, R](&methodAdapters, kindMethod, m)
	d.data = objWord(obj)
	return d
}

// SetConstMethod rebinds d to a value-receiver method of obj, typically a
// method expression such as T.Sum. The trampoline passes a copy of *obj, so
// the call reads the referent's state at call time but cannot mutate it.
func SetConstMethod[T, A, R any](d *Delegate[A, R], m func(T, A) R, obj *T) *Delegate[A, R] {
	if m == nil {
		nilArg("method")
	}
	if obj == nil {
		nilArg("receiver")
	}
	d.cb = valAdapter[T, A, R](&constMethodAdapters, kindConstMethod, m)
	d.data = objWord(obj)
	return d
}

// SetFunctor rebinds d to a function object whose Invoke method has a
// pointer receiver (it may mutate the functor's state). Only the pointer is
// stored; the caller keeps the functor value.
func SetFunctor[PF interface {
	*F
	Callable[A, R]
}, F, A, R any](d *Delegate[A, R], fo PF) *Delegate[A, R] {
	if fo == nil {
		nilArg("functor")
	}
	d.cb = functorAdapter[PF, F, A, R](fo)
	d.data = objWord((*F)(fo))
	return d
}

// SetConstFunctor rebinds d to a function object whose Invoke method has a
// value receiver; each call invokes Invoke on a copy of the functor.
func SetConstFunctor[F Callable[A, R], A, R any](d *Delegate[A, R], fo *F) *Delegate[A, R] {
	if fo == nil {
		nilArg("functor")
	}
	d.cb = constFunctorAdapter[F, A, R](fo)
	d.data = objWord(fo)
	return d
}

// SetContext rebinds d to a free function that takes the bound object as an
// implicit first argument, by pointer. The delegate's signature omits the
// object; f receives obj followed by the call argument. Context bindings
// intern separately from method bindings, so binding the same function both
// ways yields unequal delegates.
func SetContext[T, A, R any](d *Delegate[A, R], f func(*T, A) R, obj *T) *Delegate[A, R] {
	if f == nil {
		nilArg("function")
	}
	if obj == nil {
		nilArg("object")
	}
	d.cb = refAdapter[T, A, R](&contextAdapters, kindContext, f)
	d.data = objWord(obj)
	return d
}

// SetConstContext rebinds d to a free function taking the bound object by
// value as its implicit first argument; the call cannot mutate the referent.
func SetConstContext[T, A, R any](d *Delegate[A, R], f func(T, A) R, obj *T) *Delegate[A, R] {
	if f == nil {
		nilArg("function")
	}
	if obj == nil {
		nilArg("object")
	}
	d.cb = valAdapter[T, A, R](&constContextAdapters, kindConstContext, f)
	d.data = objWord(obj)
	return d
}
