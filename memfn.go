// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Member-function handles: a method captured as a value, with its
// mutability recorded in the type, not yet bound to a receiver. A handle is
// created once per method identity, stored freely, and combined with a
// receiver later to produce a full Delegate. Combining a handle with a
// receiver is dispatch-equivalent to binding the method directly: both
// paths intern the same adapter record, so the resulting delegates compare
// equal.
//
// Two variants carry the mutability flag in the type, so a mismatch is a
// compile error: [MemFn] holds a pointer-receiver method (may mutate the
// receiver), [ConstMemFn] a value-receiver method (operates on a copy).
// The zero value of either is the null handle.

// MemFn is a captured pointer-receiver method of T, unbound.
type MemFn[T, A, R any] struct {
	cb *adapter[A, R]
}

// ConstMemFn is a captured value-receiver method of T, unbound.
// Its calls cannot mutate the receiver, which subsumes binding to both
// read-only and mutable referents.
type ConstMemFn[T, A, R any] struct {
	cb *adapter[A, R]
}

// MethodOf captures a pointer-receiver method as an unbound handle:
//
//	h := delegate.MethodOf((*Counter).Add)
//
// A nil m yields the null handle.
func MethodOf[T, A, R any](m func(*T, A) R) MemFn[T, A, R] {
	if m == nil {
		return MemFn[T, A, R]{}
	}
	return MemFn[T, A, R]{cb: refAdapter[T, A, R](&methodAdapters, kindMethod, m)}
}

// ConstMethodOf captures a value-receiver method as an unbound handle.
// A nil m yields the null handle.
func ConstMethodOf[T, A, R any](m func(T, A) R) ConstMemFn[T, A, R] {
	if m == nil {
		return ConstMemFn[T, A, R]{}
	}
	return ConstMemFn[T, A, R]{cb: valAdapter[T, A, R](&constMethodAdapters, kindConstMethod, m)}
}

// Null reports whether no method is captured.
func (h MemFn[T, A, R]) Null() bool { return h.cb == nil }

// Bound reports whether a method is captured.
func (h MemFn[T, A, R]) Bound() bool { return h.cb != nil }

// Bind combines the handle with a receiver, producing a delegate
// equivalent to [Method] of the captured method and obj. Binding the null
// handle yields the null delegate.
func (h MemFn[T, A, R]) Bind(obj *T) Delegate[A, R] {
	if h.cb == nil {
		return Delegate[A, R]{}
	}
	if obj == nil {
		nilArg("receiver")
	}
	return Delegate[A, R]{cb: h.cb, data: objWord(obj)}
}

// Equal reports whether both handles capture the same method. Handles have
// no data payload, so adapter identity alone decides.
func (h MemFn[T, A, R]) Equal(o MemFn[T, A, R]) bool {
	return h.cb == o.cb
}

// Less is a total but arbitrary, non-portable order over handles, for use
// as a sort key only: the null handle first, then adapter address.
func (h MemFn[T, A, R]) Less(o MemFn[T, A, R]) bool {
	if h.cb == nil || o.cb == nil {
		return h.cb == nil && o.cb != nil
	}
	return uintptr(unsafe.Pointer(h.cb)) < uintptr(unsafe.Pointer(o.cb))
}

// Compare is the three-way form of [MemFn.Less], following the cmp
// convention for use with the slices package.
func (h MemFn[T, A, R]) Compare(o MemFn[T, A, R]) int {
	switch {
	case h.cb == o.cb:
		return 0
	case h.Less(o):
		return -1
	default:
		return 1
	}
}

// Null reports whether no method is captured.
func (h ConstMemFn[T, A, R]) Null() bool { return h.cb == nil }

// Bound reports whether a method is captured.
func (h ConstMemFn[T, A, R]) Bound() bool { return h.cb != nil }

// Bind combines the handle with a receiver, producing a delegate
// equivalent to [ConstMethod] of the captured method and obj. Binding the
// null handle yields the null delegate.
func (h ConstMemFn[T, A, R]) Bind(obj *T) Delegate[A, R] {
	if h.cb == nil {
		return Delegate[A, R]{}
	}
	if obj == nil {
		nilArg("receiver")
	}
	return Delegate[A, R]{cb: h.cb, data: objWord(obj)}
}

// Equal reports whether both handles capture the same method.
func (h ConstMemFn[T, A, R]) Equal(o ConstMemFn[T, A, R]) bool {
	return h.cb == o.cb
}

// Less is a total but arbitrary, non-portable order over handles, for use
// as a sort key only: the null handle first, then adapter address.
func (h ConstMemFn[T, A, R]) Less(o ConstMemFn[T, A, R]) bool {
	if h.cb == nil || o.cb == nil {
		return h.cb == nil && o.cb != nil
	}
	return uintptr(unsafe.Pointer(h.cb)) < uintptr(unsafe.Pointer(o.cb))
}

// Compare is the three-way form of [ConstMemFn.Less].
func (h ConstMemFn[T, A, R]) Compare(o ConstMemFn[T, A, R]) int {
	switch {
	case h.cb == o.cb:
		return 0
	case h.Less(o):
		return -1
	default:
		return 1
	}
}

// SetMemFn rebinds d to the combination of a handle and a receiver, the
// mutator counterpart of [MemFn.Bind].
func SetMemFn[T, A, R any](d *Delegate[A, R], h MemFn[T, A, R], obj *T) *Delegate[A, R] {
	*d = h.Bind(obj)
	return d
}

// SetConstMemFn rebinds d to the combination of a handle and a receiver,
// the mutator counterpart of [ConstMemFn.Bind].
func SetConstMemFn[T, A, R any](d *Delegate[A, R], h ConstMemFn[T, A, R], obj *T) *Delegate[A, R] {
	*d = h.Bind(obj)
	return d
}
