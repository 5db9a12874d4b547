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
package ring

import "fmt"

// Monomial represents the formal product x1^e1 * x2^e2 * ... over a fixed
// exponent type E. Two concrete variants exist: Dense (fixed arity,
// variables identified by position) and Sparse (unbounded, variables
// identified by a positive integer index with unstored indices reading as
// zero). Both satisfy this single interface, and the free functions below
// (Multiply, Lcm, Gcd, TryDivide, LcmMultipliers) are written once against
// it; concrete types may additionally provide specialised fast paths used
// internally (e.g. dense-dense multiply avoids the general construct loop).
type Monomial[E Exponent] interface {
	fmt.Stringer
	// Index returns the exponent at variable index i (1-based). For a
	// sparse monomial, an index beyond what is stored returns zero rather
	// than failing.
	Index(i uint) E
	// NumVariables returns the arity for a dense monomial, or the maximum
	// stored variable index for a sparse monomial.
	NumVariables() uint
	// TotalDegree returns the sum of all exponents.
	TotalDegree() E
	// IsOne reports whether this is the identity monomial (all exponents
	// zero).
	IsOne() bool
	// Equal performs exponent-wise equality.
	Equal(other Monomial[E]) bool
}

// construct builds a monomial whose exponent at position i is f(i), for i
// in 1..n, materialised as a Dense monomial of arity n.
func construct[E Exponent](f func(uint) E, n uint) Dense[E] {
	exps := make([]E, n)
	var deg E
	for i := uint(1); i <= n; i++ {
		e := f(i)
		exps[i-1] = e
		deg = addExp(deg, e)
	}
	return Dense[E]{exps: exps, degree: deg}
}

// Multiply computes a*b, exponent-wise addition. Two Sparse operands give
// a Sparse result; otherwise the result is Dense with arity
// max(NumVariables(a), NumVariables(b)), and a Sparse operand is projected
// losslessly since Index() never fails for it.
func Multiply[E Exponent](a, b Monomial[E]) Monomial[E] {
	if da, ok := a.(Dense[E]); ok {
		if db, ok := b.(Dense[E]); ok {
			return da.multiply(db)
		}
	}
	if sa, ok := a.(Sparse[E]); ok {
		if sb, ok := b.(Sparse[E]); ok {
			return sa.multiply(sb)
		}
	}
	n := maxUint(a.NumVariables(), b.NumVariables())
	return construct(func(i uint) E { return addExp(a.Index(i), b.Index(i)) }, n)
}

// Lcm computes the exponent-wise maximum of a and b.
func Lcm[E Exponent](a, b Monomial[E]) Monomial[E] {
	n := maxUint(a.NumVariables(), b.NumVariables())
	return construct(func(i uint) E { return maxExp(a.Index(i), b.Index(i)) }, n)
}

// Gcd computes the exponent-wise minimum of a and b.
func Gcd[E Exponent](a, b Monomial[E]) Monomial[E] {
	n := maxUint(a.NumVariables(), b.NumVariables())
	return construct(func(i uint) E { return minExp(a.Index(i), b.Index(i)) }, n)
}

// Divides reports whether a | b, i.e. a[i] <= b[i] for every variable
// index.
func Divides[E Exponent](a, b Monomial[E]) bool {
	n := maxUint(a.NumVariables(), b.NumVariables())
	for i := uint(1); i <= n; i++ {
		if a.Index(i) > b.Index(i) {
			return false
		}
	}
	return true
}

// TryDivide computes a/b when b divides a (exponent-wise subtraction),
// signalling non-divisibility via the second return rather than an error;
// the division engine calls this on the dominant non-divisible path and
// must not pay for error-handling there.
func TryDivide[E Exponent](a, b Monomial[E]) (Monomial[E], bool) {
	n := maxUint(a.NumVariables(), b.NumVariables())
	exps := make([]E, n)
	var deg E
	for i := uint(1); i <= n; i++ {
		e, ok := subExp(a.Index(i), b.Index(i))
		if !ok {
			return nil, false
		}
		exps[i-1] = e
		deg = addExp(deg, e)
	}
	return Dense[E]{exps: exps, degree: deg}, true
}

// LcmMultipliers returns (lcm/a, lcm/b).
func LcmMultipliers[E Exponent](a, b Monomial[E]) (Monomial[E], Monomial[E]) {
	l := Lcm(a, b)
	la, _ := TryDivide(l, a)
	lb, _ := TryDivide(l, b)
	return la, lb
}

// ToDense losslessly projects m onto a Dense monomial of arity n. It fails
// if any stored exponent of m lies at an index beyond n.
func ToDense[E Exponent](m Monomial[E], n uint) (Dense[E], error) {
	if m.NumVariables() > n {
		for i := n + 1; i <= m.NumVariables(); i++ {
			if m.Index(i) != 0 {
				return Dense[E]{}, newError(ErrIncompatibleVariables,
					"variable %d has nonzero exponent but target arity is %d", i, n)
			}
		}
	}
	return construct(func(i uint) E { return m.Index(i) }, n), nil
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
