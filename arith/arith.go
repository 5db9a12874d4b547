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

// Package arith exposes the polynomial arithmetic kernel as free
// functions. The operations themselves live as methods on ring.Polynomial
// (Add, Sub, Mul, Neg, Pow, Diff), because Polynomial must implement
// coeff.Ring to support coefficient towers and coeff cannot import arith
// without creating a cycle back through ring. This package is the
// intended call surface for client code that would rather write
// arith.Mul(p, q) than p.Mul(q), matching the free-function style spec
// itself uses for the arithmetic kernel's operations.
package arith

import (
	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

// Add returns p+q.
func Add[E ring.Exponent, C coeff.Ring[C]](p, q ring.Polynomial[E, C]) ring.Polynomial[E, C] {
	return p.Add(q)
}

// Sub returns p-q.
func Sub[E ring.Exponent, C coeff.Ring[C]](p, q ring.Polynomial[E, C]) ring.Polynomial[E, C] {
	return p.Sub(q)
}

// Mul returns p*q, computed by the heap-based Cartesian walk documented on
// ring.Polynomial.Mul.
func Mul[E ring.Exponent, C coeff.Ring[C]](p, q ring.Polynomial[E, C]) ring.Polynomial[E, C] {
	return p.Mul(q)
}

// Neg returns -p.
func Neg[E ring.Exponent, C coeff.Ring[C]](p ring.Polynomial[E, C]) ring.Polynomial[E, C] {
	return p.Neg()
}

// Pow returns p^n via multinomial expansion.
func Pow[E ring.Exponent, C coeff.Ring[C]](p ring.Polynomial[E, C], n uint) ring.Polynomial[E, C] {
	return p.Pow(n)
}

// Diff returns the formal partial derivative of p with respect to
// variable i (1-based).
func Diff[E ring.Exponent, C coeff.Ring[C]](p ring.Polynomial[E, C], i uint) ring.Polynomial[E, C] {
	return p.Diff(i)
}

// TryAddAssign attempts an in-place-flavoured accumulation: it returns
// dst+term as a new polynomial, and reports via the second value whether
// term's monomial already appeared in dst (so callers that maintain their
// own term index can update it in place rather than re-scanning).
func TryAddAssign[E ring.Exponent, C coeff.Ring[C]](dst ring.Polynomial[E, C], term ring.Term[E, C]) (ring.Polynomial[E, C], bool) {
	existed := false
	for _, t := range dst.Terms() {
		if t.SameMonomial(term) {
			existed = true
			break
		}
	}
	return dst.Add(ring.NewPolynomial(dst.Order(), term)), existed
}
