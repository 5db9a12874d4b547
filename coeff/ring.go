// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package coeff defines the capability set a type must satisfy to be used
// as the coefficient ring of a polynomial, plus a handful of built-in
// instances: arbitrary-precision integers (Z), arbitrary-precision
// rationals (Q), a numeric family (Float64, Complex128) and prime-field
// elements (GF). A polynomial ring itself satisfies Ring, so a polynomial
// ring can be used as the coefficient ring of another (a tower).
package coeff

import "fmt"

// Ring is the capability set of a commutative ring with unity, generalised
// over the self-referential type parameter T the way this corpus's field
// element types are (see ring.Element[Operand] in the retrieval pack):
// every operation takes and returns the concrete type, never the
// interface, so arithmetic never boxes.
type Ring[T any] interface {
	fmt.Stringer
	// One returns the multiplicative identity of this ring.
	One() T
	// IsZero reports whether this value is the additive identity.
	IsZero() bool
	// IsOne reports whether this value is the multiplicative identity.
	IsOne() bool
	// Add computes x+y.
	Add(y T) T
	// Sub computes x-y.
	Sub(y T) T
	// Mul computes x*y.
	Mul(y T) T
	// Neg computes -x.
	Neg() T
	// Equal reports whether x and y are the same ring element.
	Equal(y T) bool
	// TryDivide computes x/y, succeeding only when the ring admits exact
	// division of x by y: for integers this is exact division, for fields
	// it always succeeds when y is nonzero, for anything else it fails.
	TryDivide(y T) (T, bool)
}

// Zero returns the additive identity of T. It relies on the Go zero value
// of every built-in Ring instance in this package coinciding with the
// ring's zero — true of big.Int{}, big.Rat{}, a Montgomery-form field
// element and the numeric types.
func Zero[T Ring[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Ring[T]]() T {
	var z T
	return z.One()
}
