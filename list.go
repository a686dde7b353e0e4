// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "slices"

// List is an ordered multicast invocation list: a deduplicated set of
// delegates kept in [Compare] order, callable as a group. It is the
// associative-container use the comparators exist for, covering the
// callback-list pattern (observers, interrupt and event hooks) directly.
//
// The zero value is an empty list. A List is single-writer like any slice;
// delegates inside it are still safe to copy out and call concurrently.
// Callbacks must not mutate the list they are being dispatched from.
type List[A, R any] struct {
	ds []Delegate[A, R]
}

// Add inserts d keeping the list ordered. Null delegates and duplicates
// (by [Equal]) are ignored. Reports whether the list changed.
func (l *List[A, R]) Add(d Delegate[A, R]) bool {
	if d.Null() {
		return false
	}
	i, found := slices.BinarySearchFunc(l.ds, d, Compare[A, R])
	if found {
		return false
	}
	l.ds = slices.Insert(l.ds, i, d)
	return true
}

// Remove deletes the delegate equal to d. Reports whether it was present.
// Removal works through copies: any delegate bound to the same target
// matches, regardless of which copy was added.
func (l *List[A, R]) Remove(d Delegate[A, R]) bool {
	i, found := slices.BinarySearchFunc(l.ds, d, Compare[A, R])
	if !found {
		return false
	}
	l.ds = slices.Delete(l.ds, i, i+1)
	return true
}

// Contains reports whether a delegate equal to d is in the list.
func (l *List[A, R]) Contains(d Delegate[A, R]) bool {
	_, found := slices.BinarySearchFunc(l.ds, d, Compare[A, R])
	return found
}

// Len returns the number of delegates in the list.
func (l *List[A, R]) Len() int {
	return len(l.ds)
}

// Clear removes every delegate from the list.
func (l *List[A, R]) Clear() {
	l.ds = nil
}

// Broadcast calls every delegate in list order with a, discarding results.
func (l *List[A, R]) Broadcast(a A) {
	for _, d := range l.ds {
		d.Call(a)
	}
}

// Gather calls every delegate in list order with a and returns the results
// in the same order. An empty list returns nil.
func (l *List[A, R]) Gather(a A) []R {
	if len(l.ds) == 0 {
		return nil
	}
	rs := make([]R, len(l.ds))
	for i, d := range l.ds {
		rs[i] = d.Call(a)
	}
	return rs
}
