// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delegate provides a fixed-size, non-owning callable reference.
//
// The core type [Delegate] stores "a function to call later" in exactly two
// machine words — an adapter pointer and one opaque data word — regardless
// of whether the target is a free function, a method, a function object, or
// a function value resolved at call time. Dispatch is one nil check plus
// one indirect call.
//
// # Design Philosophy
//
// delegate does part of what storing a func value or closure does, but with
// a fixed two-word footprint, referential equality and ordering, and no
// heap allocation on the call path:
//
//   - Non-owning: only a pointer to the bound object or function value is
//     stored; the referent is shared, never copied
//   - Uniform dispatch: every binding kind invokes through one adapter
//     shape, so a single adapter pointer covers all kinds
//   - Interned adapters: one dispatch record exists per distinct target
//     identity, interned at first bind, making equality by adapter pointer
//     match equality by target
//   - Plain values: delegates copy freely and rebind independently; the
//     zero value is the callable null delegate
//
// # Binding Kinds
//
// Each kind has a factory and an in-place Set counterpart; every binding
// replaces both words together:
//
//   - [Free] / [Delegate.SetFree]: fixed free function, empty data word
//   - [Fn] / [Delegate.SetFn]: function value resolved at call time; the
//     value occupies the data word
//   - [Method] / [SetMethod]: pointer-receiver method plus receiver
//   - [ConstMethod] / [SetConstMethod]: value-receiver method plus
//     receiver; calls operate on a copy and cannot mutate
//   - [Functor] / [SetFunctor]: function object with pointer-receiver
//     [Callable] Invoke
//   - [ConstFunctor] / [SetConstFunctor]: function object with
//     value-receiver Invoke
//   - [Context] / [SetContext]: free function taking the bound object as an
//     implicit first argument, by pointer
//   - [ConstContext] / [SetConstContext]: same, object passed by value
//   - [Raw] / [Delegate.SetRaw]: caller-supplied [Adapter] and context
//     pointer, the low-level escape hatch
//   - [Delegate.Clear]: reset to the null delegate
//
// Calling the null delegate is defined: it returns the zero value of the
// result type and performs no action.
//
// # Member-Function Handles
//
// [MemFn] and [ConstMemFn] capture a method independently of any receiver,
// with mutability recorded in the handle's type; combining a handle with a
// receiver later produces a delegate equal to binding the method directly:
//
//   - [MethodOf], [ConstMethodOf]: capture a method expression
//   - [MemFn.Bind], [ConstMemFn.Bind]: combine with a receiver
//   - [SetMemFn], [SetConstMemFn]: in-place counterparts
//   - Null/Bound/Equal/Less/Compare on both handle types
//
// # Comparison
//
// [Equal] is adapter identity plus payload word; == on the struct coincides
// with it. [Less] is a total but arbitrary, non-portable order (null first,
// then adapter address, then payload) intended purely as a sort key;
// [Compare] is its three-way form for the slices package and ordered
// containers. Go defines no relational operators on structs, so no other
// ordering can be applied to a delegate.
//
// # Multicast
//
// [List] keeps delegates deduplicated in [Compare] order and dispatches to
// all of them:
//
//   - [List.Add], [List.Remove], [List.Contains], [List.Len], [List.Clear]
//   - [List.Broadcast]: call all, discard results
//   - [List.Gather]: call all, collect results
//
// # Arity
//
// A delegate takes exactly one argument type. Use [Pair] (or a caller
// struct) for two-parameter targets and struct{} for empty argument or
// result positions.
//
// # Lifetime & Concurrency
//
// A delegate never extends its referent's logical lifetime: there is no
// ownership, no cleanup, and the referent is reached by pointer on every
// call. Every object-bound form takes the referent by pointer, so only
// addressable values bind. Delegates are safe to copy and call from
// multiple goroutines; the referent's own synchronization rules apply
// unchanged to calls made through a delegate. Nothing blocks, nothing
// allocates at call time, and there are no runtime error paths — misuse
// that Go cannot reject at compile time (nil method, functor, or receiver)
// panics at bind time with a "delegate:" prefixed message.
//
// # Example
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Add(d int) int    { c.n += d; return c.n }
//	func (c Counter) Peek(_ struct{}) int { return c.n }
//
//	var c Counter
//	add := delegate.Method((*Counter).Add, &c)
//	add.Call(2) // c.n == 2
//
//	h := delegate.MethodOf((*Counter).Add)
//	same := h.Bind(&c)
//	_ = delegate.Equal(add, same) // true
package delegate
