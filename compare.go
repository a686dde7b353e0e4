// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Comparison helpers for delegates.
//
// Equality is adapter identity plus payload. In the C++ lineage of this
// design the payload union forces equality to branch on the runtime-function
// adapter, since comparing the inactive union member is undefined; here both
// payload interpretations (object pointer, function value word) are the same
// comparable word, so the branch collapses and comparing raw words is
// defined for every kind. The observable half of the rule is preserved:
// bindings of different kinds never share an adapter record, so a Fn binding
// and a Free binding of the same function compare unequal.
//
// Ordering is total but arbitrary and non-portable: adapter records and
// referents are interned and allocated at addresses that vary run to run.
// Use it only as a sort key (deduplication, ordered containers), never as a
// meaningful comparison. Go defines no relational operators on struct
// types, so no generic ordering can be applied to a Delegate by accident.

// Equal reports whether x and y are bound to the same target: the same
// adapter record and the same payload word.
func Equal[A, R any](x, y Delegate[A, R]) bool {
	return x.cb == y.cb && x.data == y.data
}

// Equal reports whether d and o are bound to the same target.
func (d Delegate[A, R]) Equal(o Delegate[A, R]) bool {
	return Equal(d, o)
}

// Less is a strict total order over delegates for a fixed program run:
// the null delegate orders before every bound one, then adapter address,
// then payload word.
func Less[A, R any](x, y Delegate[A, R]) bool {
	if x.cb == nil || y.cb == nil {
		return x.cb == nil && y.cb != nil
	}
	xa, ya := uintptr(unsafe.Pointer(x.cb)), uintptr(unsafe.Pointer(y.cb))
	if xa != ya {
		return xa < ya
	}
	return uintptr(x.data) < uintptr(y.data)
}

// Less reports whether d orders before o; see [Less].
func (d Delegate[A, R]) Less(o Delegate[A, R]) bool {
	return Less(d, o)
}

// Compare is the three-way form of [Less], following the cmp convention:
// -1 if x orders before y, 0 if equal, +1 otherwise. It is the comparator
// to hand to slices.SortFunc, slices.BinarySearchFunc, and ordered
// containers.
func Compare[A, R any](x, y Delegate[A, R]) int {
	switch {
	case Equal(x, y):
		return 0
	case Less(x, y):
		return -1
	default:
		return 1
	}
}

// Compare is the three-way form of [Delegate.Less]; see [Compare].
func (d Delegate[A, R]) Compare(o Delegate[A, R]) int {
	return Compare(d, o)
}
