// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"reflect"
	"sync"
	"unsafe"
)

// Adapter is the uniform dispatch shape shared by every binding kind:
// reinterpret the opaque context word, invoke the real target, return its
// result. Exposed for [Raw]/[Delegate.SetRaw], the low-level binding form.
type Adapter[A, R any] func(ctx unsafe.Pointer, a A) R

// adapter is one dispatch record. Exactly one record exists per distinct
// target identity (function value, functor type, or signature for the Fn
// singleton), interned at first bind. Delegate equality is adapter-pointer
// identity plus the data word, so interning is what makes two bindings of
// the same target compare equal.
type adapter[A, R any] struct {
	kind   kind
	invoke func(data unsafe.Pointer, a A) R
}

// kind classifies an adapter record by binding form. It is fixed at
// interning time and never consulted on the call path; comparison does not
// branch on it either, since both payload interpretations occupy the same
// comparable word.
type kind uint8

const (
	kindFree         kind = iota + 1 // fixed free function, data empty
	kindFn                           // runtime function value, data holds the function
	kindMethod                       // pointer-receiver method, data holds the receiver
	kindConstMethod                  // value-receiver method, data holds the receiver
	kindFunctor                      // function object, data holds the object
	kindConstFunctor                 // function object invoked on a copy
	kindContext                      // free function taking the object first, by pointer
	kindConstContext                 // free function taking the object first, by value
	kindRaw                          // caller-supplied Adapter, data is its context
)

// Per-kind intern tables, keyed by target identity: the function value's
// pointer word for function-fixed kinds, the reflect.Type for type-fixed
// kinds. Both key shapes box into an interface without allocating, so a
// repeat bind is lookup-only. Tables only grow, one entry per distinct
// target used anywhere in the program.
var (
	fnAdapters           sync.Map // reflect.Type of func(A) R -> *adapter[A, R]
	freeAdapters         sync.Map // function word -> *adapter[A, R]
	methodAdapters       sync.Map // method expression word -> *adapter[A, R]
	constMethodAdapters  sync.Map // method expression word -> *adapter[A, R]
	contextAdapters      sync.Map // function word -> *adapter[A, R]
	constContextAdapters sync.Map // function word -> *adapter[A, R]
	rawAdapters          sync.Map // adapter function word -> *adapter[A, R]
	functorAdapters      sync.Map // reflect.Type of *F -> *adapter[A, R]
	constFunctorAdapters sync.Map // reflect.Type of *F -> *adapter[A, R]
)

// intern returns the adapter for key in table, creating it with mk on first
// use. A given key always maps to one (A, R) instantiation because the
// target's type determines both, so the assertion cannot fail.
func intern[A, R any](table *sync.Map, key any, mk func() *adapter[A, R]) *adapter[A, R] {
	if v, ok := table.Load(key); ok {
		return v.(*adapter[A, R])
	}
	ad := mk()
	if v, loaded := table.LoadOrStore(key, ad); loaded {
		return v.(*adapter[A, R])
	}
	return ad
}

// fnInvoke is the trampoline for the Fn kind: the data word is the function
// value itself. Named generic function produces a static function value per
// type instantiation, avoiding the heap allocation that anonymous closures
// incur.
func fnInvoke[A, R any](data unsafe.Pointer, a A) R {
	return wordFn[A, R](data)(a)
}

// fnAdapter returns the singleton Fn adapter for the func(A) R signature.
func fnAdapter[A, R any]() *adapter[A, R] {
	key := reflect.TypeOf((func(A) R)(nil))
	return intern(&fnAdapters, key, func() *adapter[A, R] {
		return &adapter[A, R]{kind: kindFn, invoke: fnInvoke[A, R]}
	})
}

// freeAdapter returns the adapter fixed to the free function f.
func freeAdapter[A, R any](f func(A) R) *adapter[A, R] {
	return intern(&freeAdapters, fnWord(f), func() *adapter[A, R] {
		return &adapter[A, R]{kind: kindFree, invoke: func(_ unsafe.Pointer, a A) R {
			return f(a)
		}}
	})
}

// refAdapter returns the adapter fixed to m for a binding kind whose target
// takes the referent by pointer (methods on pointer receivers, context
// functions). The data word is the receiver.
func refAdapter[T, A, R any](table *sync.Map, k kind, m func(*T, A) R) *adapter[A, R] {
	// Take the identity word from a copy: taking &m directly would make the
	// closure capture m by reference and heap-copy it on every rebind.
	mc := m
	key := *(*unsafe.Pointer)(unsafe.Pointer(&mc))
	return intern(table, key, func() *adapter[A, R] {
		return &adapter[A, R]{kind: k, invoke: func(data unsafe.Pointer, a A) R {
			return m((*T)(data), a)
		}}
	})
}

// valAdapter returns the adapter fixed to m for a binding kind whose target
// takes the referent by value: the trampoline dereferences a copy, so the
// call cannot mutate the referent.
func valAdapter[T, A, R any](table *sync.Map, k kind, m func(T, A) R) *adapter[A, R] {
	// See refAdapter: key the copy so m is not address-taken.
	mc := m
	key := *(*unsafe.Pointer)(unsafe.Pointer(&mc))
	return intern(table, key, func() *adapter[A, R] {
		return &adapter[A, R]{kind: k, invoke: func(data unsafe.Pointer, a A) R {
			return m(*(*T)(data), a)
		}}
	})
}

// functorAdapter returns the adapter fixed to the functor type *F.
// One record per functor type; distinct instances differ by data word only.
func functorAdapter[PF interface {
	*F
	Callable[A, R]
}, F, A, R any](fo PF) *adapter[A, R] {
	return intern(&functorAdapters, reflect.TypeOf(fo), func() *adapter[A, R] {
		return &adapter[A, R]{kind: kindFunctor, invoke: func(data unsafe.Pointer, a A) R {
			return PF((*F)(data)).Invoke(a)
		}}
	})
}

// constFunctorAdapter returns the adapter fixed to the functor type F with a
// value-receiver Invoke; the call operates on a copy of the functor.
func constFunctorAdapter[F Callable[A, R], A, R any](fo *F) *adapter[A, R] {
	return intern(&constFunctorAdapters, reflect.TypeOf(fo), func() *adapter[A, R] {
		return &adapter[A, R]{kind: kindConstFunctor, invoke: func(data unsafe.Pointer, a A) R {
			v := *(*F)(data)
			return v.Invoke(a)
		}}
	})
}

// rawAdapter returns the adapter record for a caller-supplied Adapter
// function, interned by the function's identity so raw bindings compare
// like any other kind.
func rawAdapter[A, R any](fn Adapter[A, R]) *adapter[A, R] {
	key := *(*unsafe.Pointer)(unsafe.Pointer(&fn))
	return intern(&rawAdapters, key, func() *adapter[A, R] {
		return &adapter[A, R]{kind: kindRaw, invoke: fn}
	})
}

// nilArg panics for a nil argument where a binding requires a referent.
// Extracted as a noinline function so that binding functions remain
// inlineable.
//
//go:noinline
func nilArg(what string) {
	panic("delegate: nil " + what)
}
