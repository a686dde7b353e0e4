// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Pair holds two values. Delegates take exactly one argument type; targets
// with two parameters bind as Delegate[Pair[X, Y], R] and unpack the pair.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MkPair constructs a Pair from its components.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}
