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

import (
	"fmt"

	"github.com/go-polyring/polyring/coeff"
)

// Term is a single monomial paired with a nonzero coefficient. A well
// formed Polynomial never stores a Term whose Coefficient IsZero.
type Term[E Exponent, C coeff.Ring[C]] struct {
	Monomial    Monomial[E]
	Coefficient C
}

// NewTerm constructs a term. Callers building a Polynomial from terms are
// responsible for dropping any with a zero coefficient; NewTerm itself
// does not enforce this so that intermediate, possibly-zero terms can be
// constructed during arithmetic before the zero-filtering pass.
func NewTerm[E Exponent, C coeff.Ring[C]](m Monomial[E], c C) Term[E, C] {
	return Term[E, C]{Monomial: m, Coefficient: c}
}

// Multiply returns the term m1*m2 = (monomial product, coefficient product).
func (t Term[E, C]) Multiply(o Term[E, C]) Term[E, C] {
	return Term[E, C]{
		Monomial:    Multiply(t.Monomial, o.Monomial),
		Coefficient: t.Coefficient.Mul(o.Coefficient),
	}
}

// Negate returns the term with its coefficient negated.
func (t Term[E, C]) Negate() Term[E, C] {
	return Term[E, C]{Monomial: t.Monomial, Coefficient: t.Coefficient.Neg()}
}

// SameMonomial reports whether t and o carry the same monomial, ignoring
// their coefficients.
func (t Term[E, C]) SameMonomial(o Term[E, C]) bool {
	return t.Monomial.Equal(o.Monomial)
}

// String renders a term as "coefficient*monomial", or just the monomial
// when the coefficient IsOne, or just the coefficient when the monomial
// IsOne.
func (t Term[E, C]) String() string {
	if t.Monomial.IsOne() {
		return t.Coefficient.String()
	} else if t.Coefficient.IsOne() {
		return t.Monomial.String()
	}
	return fmt.Sprintf("%s*%s", t.Coefficient.String(), t.Monomial.String())
}
