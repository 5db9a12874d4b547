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

// Order is a strict total order on monomials, admissible in the sense
// required by spec: 1 < m for every non-identity m, and a < b implies
// a*c < b*c for any c. The order value is the sole authority on
// comparisons; every leading-term query is parameterised by an Order and
// defaults to the polynomial's own ring order.
type Order[E Exponent] interface {
	// Name identifies the ordering rule, e.g. "lex", "deglex", "degrevlex".
	Name() string
	// Less reports whether a strictly precedes b under this order.
	Less(a, b Monomial[E]) bool
}

// Lex compares exponents by variable index in ascending order; the first
// differing position decides, with the higher exponent there being
// greater.
type Lex[E Exponent] struct{}

// Name implements Order.
func (Lex[E]) Name() string { return "lex" }

// Less implements Order.
func (Lex[E]) Less(a, b Monomial[E]) bool {
	return lexLess(a, b)
}

func lexLess[E Exponent](a, b Monomial[E]) bool {
	n := maxUint(a.NumVariables(), b.NumVariables())
	for i := uint(1); i <= n; i++ {
		ea, eb := a.Index(i), b.Index(i)
		if ea != eb {
			return ea < eb
		}
	}
	return false
}

// DegLex compares total degree first, breaking ties with Lex.
type DegLex[E Exponent] struct{}

// Name implements Order.
func (DegLex[E]) Name() string { return "deglex" }

// Less implements Order.
func (DegLex[E]) Less(a, b Monomial[E]) bool {
	if da, db := a.TotalDegree(), b.TotalDegree(); da != db {
		return da < db
	}
	return lexLess(a, b)
}

// DegRevLex compares total degree first; ties are broken by reverse lex:
// exponents are compared from the highest variable index down, and the
// monomial with the *smaller* exponent at the first difference is
// *greater*.
type DegRevLex[E Exponent] struct{}

// Name implements Order.
func (DegRevLex[E]) Name() string { return "degrevlex" }

// Less implements Order.
func (DegRevLex[E]) Less(a, b Monomial[E]) bool {
	da, db := a.TotalDegree(), b.TotalDegree()
	if da != db {
		return da < db
	}
	n := maxUint(a.NumVariables(), b.NumVariables())
	for i := n; i >= 1; i-- {
		ea, eb := a.Index(i), b.Index(i)
		if ea != eb {
			// Smaller exponent at the first (highest-index) difference is
			// the greater monomial, so a < b here iff ea > eb.
			return ea > eb
		}
		if i == 1 {
			break
		}
	}
	return false
}
