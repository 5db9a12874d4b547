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
package arith

import (
	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

// Content returns the non-negative gcd of p's coefficients over Z, or zero
// for the zero polynomial. Folding Gcd over the term list starting from
// zero handles both cases at once, since Z.Gcd(0, x) is |x|.
func Content[E ring.Exponent](p ring.Polynomial[E, coeff.Z]) coeff.Z {
	g := coeff.NewZ(0)
	for _, t := range p.Terms() {
		g = g.Gcd(t.Coefficient)
	}
	return g
}

// IntegralFraction clears the denominators of p's rational coefficients by
// their lcm, returning (pOverZ, denominator) such that denominator * p
// equals pOverZ promoted into Q. The zero polynomial's denominator is one.
func IntegralFraction[E ring.Exponent](p ring.Polynomial[E, coeff.Q]) (ring.Polynomial[E, coeff.Z], coeff.Z) {
	if p.IsZero() {
		return ring.NewPolynomial[E, coeff.Z](p.Order()), coeff.NewZ(1)
	}
	terms := p.Terms()
	denom := coeff.NewZ(1)
	for _, t := range terms {
		denom = lcmZ(denom, t.Coefficient.Denom())
	}
	denomQ := coeff.QFromInt(denom)
	out := make([]ring.Term[E, coeff.Z], len(terms))
	for i, t := range terms {
		out[i] = ring.NewTerm[E, coeff.Z](t.Monomial, t.Coefficient.Mul(denomQ).Num())
	}
	return ring.NewPolynomial(p.Order(), out...), denom
}

// lcmZ computes the least common multiple of two positive integers via
// a*b/gcd(a,b).
func lcmZ(a, b coeff.Z) coeff.Z {
	g := a.Gcd(b)
	q, _ := a.Mul(b).TryDivide(g)
	return q
}

// MapCoefficients applies f termwise to p's coefficients, dropping any
// term whose image is zero and so re-establishing the nonzero-coefficient
// invariant under the destination coefficient ring D. f need not be
// injective or a ring homomorphism; it is applied exactly once per term.
func MapCoefficients[E ring.Exponent, C coeff.Ring[C], D coeff.Ring[D]](p ring.Polynomial[E, C], f func(C) D) ring.Polynomial[E, D] {
	var out []ring.Term[E, D]
	for _, t := range p.Terms() {
		d := f(t.Coefficient)
		if d.IsZero() {
			continue
		}
		out = append(out, ring.NewTerm[E, D](t.Monomial, d))
	}
	return ring.NewPolynomial(p.Order(), out...)
}
