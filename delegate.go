// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Delegate stores a callable target in two machine words: an adapter pointer
// selecting how to invoke, and one opaque data word whose interpretation is
// fixed by the selected adapter.
//
// Delegate[A, R] calls targets of shape func(A) R. Multi-argument targets
// use [Pair] (or a caller-defined struct) for A; use struct{} for an empty
// argument or result position.
//
// A Delegate never owns its referent. It stores a pointer to the bound
// object or function value; the referent is shared, never copied, and has no
// lifecycle tied to the delegate.
//
// The zero value is the null delegate: Null reports true, Bound reports
// false, and Call returns the zero value of R without invoking anything.
// The null state is represented by a nil adapter pointer, so a zero-value,
// Cleared, and nil-function-bound delegate are all the same value.
//
// Delegates are plain values: copy freely, compare with == (which coincides
// with [Equal]), rebind one copy without affecting another. Go defines no
// relational operators on struct types, so ordering is available only
// through the explicit [Less] and [Compare] helpers.
type Delegate[A, R any] struct {
	cb   *adapter[A, R]
	data unsafe.Pointer
}

// Call invokes the bound target with a and returns its result.
// A null delegate returns the zero value of R and performs no action.
// The bound path is one indirect call through the adapter; no kind
// branching and no allocation happen at call time.
func (d Delegate[A, R]) Call(a A) R {
	if d.cb == nil {
		var zero R
		return zero
	}
	return d.cb.invoke(d.data, a)
}

// Null reports whether no target is bound.
func (d Delegate[A, R]) Null() bool {
	return d.cb == nil
}

// Bound reports whether a target is bound. It is the negation of Null,
// provided as the boolean test counterpart.
func (d Delegate[A, R]) Bound() bool {
	return d.cb != nil
}

// Clear resets d to the null delegate. Both words are replaced together;
// a previously taken copy keeps its binding.
func (d *Delegate[A, R]) Clear() {
	d.cb = nil
	d.data = nil
}

// SetFn rebinds d to a function value resolved at call time.
// The function value itself occupies the data word; the adapter is a
// singleton shared by every SetFn/Fn binding of the same signature, so two
// delegates bound to the same function value compare equal, and never equal
// a [SetFree] binding of the same function (distinct adapters).
// A nil fn clears the delegate.
func (d *Delegate[A, R]) SetFn(fn func(A) R) *Delegate[A, R] {
	if fn == nil {
		d.Clear()
		return d
	}
	d.cb = fnAdapter[A, R]()
	d.data = fnWord(fn)
	return d
}

// SetFree rebinds d to a fixed free function. The adapter is interned per
// distinct function value, mirroring one-trampoline-per-target dispatch;
// the data word stays empty. A nil f clears the delegate.
func (d *Delegate[A, R]) SetFree(f func(A) R) *Delegate[A, R] {
	if f == nil {
		d.Clear()
		return d
	}
	d.cb = freeAdapter(f)
	d.data = nil
	return d
}

// SetRaw rebinds d to a raw adapter and context pointer. This is the
// low-level escape hatch for integrating code that cannot express the
// higher-level binding forms; fn receives ctx followed by the call
// argument. The adapter record is interned per distinct fn, so two raw
// bindings with the same fn and ctx compare equal. A nil fn clears the
// delegate.
func (d *Delegate[A, R]) SetRaw(fn Adapter[A, R], ctx unsafe.Pointer) *Delegate[A, R] {
	if fn == nil {
		d.Clear()
		return d
	}
	d.cb = rawAdapter(fn)
	d.data = ctx
	return d
}

// objWord stores a referent pointer in the data word.
func objWord[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

// fnWord extracts the one-word representation of a function value.
// A func value is a single pointer to its underlying closure object, so it
// fits the delegate's data word; for a declared function or method
// expression that object is static, giving a stable identity.
func fnWord[A, R any](f func(A) R) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

// wordFn is the inverse of fnWord.
func wordFn[A, R any](p unsafe.Pointer) func(A) R {
	return *(*func(A) R)(unsafe.Pointer(&p))
}
