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
	"github.com/go-polyring/polyring/internal/rlog"
)

// Repr selects the monomial representation a Ring uses internally: Dense
// is a fixed, small arity known up front; Sparse tolerates an unbounded
// or very large variable count where most exponents are zero.
type Repr uint8

const (
	// DenseRepr backs monomials with a fixed-length exponent slice.
	DenseRepr Repr = iota
	// SparseRepr backs monomials with a bitset-tracked exponent map.
	SparseRepr
)

// VarKind distinguishes a ring whose variables were given explicit names
// from one whose variables are the positional x1..xn convenience naming,
// so that promotion rule 3 (named ring as coefficient, numbered ring
// outer) can tell the two apart.
type VarKind uint8

const (
	// NamedVars marks a ring constructed with NewPolynomialRing.
	NamedVars VarKind = iota
	// NumberedVars marks a ring constructed with NewNumberedPolynomialRing.
	NumberedVars
)

// Ring binds together everything needed to name, order and construct
// polynomials over a fixed variable set: the monomial representation, the
// admissible order used for leading-term queries, and the human-readable
// variable names. It does not itself carry state per polynomial; it is a
// factory and introspection surface.
type Ring[E Exponent, C coeff.Ring[C]] struct {
	repr    Repr
	order   Order[E]
	names   []string
	nameIdx map[string]uint
	kind    VarKind
}

// NewPolynomialRing constructs a ring over the named variables, in the
// order given (variable i, 1-based, is named names[i-1]). Constructing a
// ring with a duplicate name returns an ErrDuplicateVariable Error.
func NewPolynomialRing[E Exponent, C coeff.Ring[C]](repr Repr, order Order[E], names ...string) (*Ring[E, C], error) {
	idx := make(map[string]uint, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return nil, newError(ErrDuplicateVariable, "variable %q declared more than once", n)
		}
		idx[n] = uint(i + 1)
	}
	rlog.Debugf("ring: constructed %s-ordered %d-variable ring (%v)", order.Name(), len(names), names)
	return &Ring[E, C]{repr: repr, order: order, names: names, nameIdx: idx, kind: NamedVars}, nil
}

// NewNumberedPolynomialRing constructs a ring of the given arity whose
// variables are named x1, x2, ..., xn, per spec's numbered-variable
// convenience convention.
func NewNumberedPolynomialRing[E Exponent, C coeff.Ring[C]](repr Repr, order Order[E], n uint) *Ring[E, C] {
	names := make([]string, n)
	idx := make(map[string]uint, n)
	for i := uint(1); i <= n; i++ {
		name := fmt.Sprintf("x%d", i)
		names[i-1] = name
		idx[name] = i
	}
	return &Ring[E, C]{repr: repr, order: order, names: names, nameIdx: idx, kind: NumberedVars}
}

// Kind reports whether this ring's variables were explicitly named or are
// the positional x1..xn convenience naming.
func (r *Ring[E, C]) Kind() VarKind {
	return r.kind
}

// Repr returns the monomial representation this ring constructs.
func (r *Ring[E, C]) Repr() Repr {
	return r.repr
}

// NumVariables returns the number of named variables. A Sparse-backed
// ring may still accept exponents at higher indices; this reports only
// how many have names.
func (r *Ring[E, C]) NumVariables() uint {
	return uint(len(r.names))
}

// Order returns the ring's monomial order.
func (r *Ring[E, C]) Order() Order[E] {
	return r.order
}

// VarName returns the name of variable i (1-based), or false if i is out
// of range.
func (r *Ring[E, C]) VarName(i uint) (string, bool) {
	if i < 1 || i > uint(len(r.names)) {
		return "", false
	}
	return r.names[i-1], true
}

// VarIndex returns the 1-based index of a named variable, or false if no
// such variable was declared.
func (r *Ring[E, C]) VarIndex(name string) (uint, bool) {
	i, ok := r.nameIdx[name]
	return i, ok
}

// varNameFunc adapts VarName to the func(uint) string shape Lisp/String
// helpers expect, falling back to "x<i>" for an index beyond the named
// set (e.g. a Sparse monomial that has grown past construction time).
func (r *Ring[E, C]) varNameFunc() func(uint) string {
	return func(i uint) string {
		if n, ok := r.VarName(i); ok {
			return n
		}
		return fmt.Sprintf("x%d", i)
	}
}

// Generator returns the monomial equal to variable i alone (exponent 1 at
// i, zero elsewhere), respecting the ring's chosen representation.
func (r *Ring[E, C]) Generator(i uint) Monomial[E] {
	if r.repr == SparseRepr {
		return GeneratorSparse[E](i)
	}
	gens := GeneratorsDense[E](r.NumVariables())
	return gens[i-1]
}

// monomialOne returns the identity monomial for this ring's representation
// and arity.
func (r *Ring[E, C]) monomialOne() Monomial[E] {
	if r.repr == SparseRepr {
		return OneSparse[E]()
	}
	return OneDense[E](r.NumVariables())
}

// Zero returns the additive identity polynomial.
func (r *Ring[E, C]) Zero() Polynomial[E, C] {
	return zeroPolynomial[E, C](r.order)
}

// One returns the multiplicative identity polynomial.
func (r *Ring[E, C]) One() Polynomial[E, C] {
	return onePolynomial[E, C](r.order, r.monomialOne())
}

// Scalar lifts a bare coefficient into a constant polynomial.
func (r *Ring[E, C]) Scalar(c C) Polynomial[E, C] {
	if c.IsZero() {
		return r.Zero()
	}
	return newFromTerms[E, C](r.order, []Term[E, C]{NewTerm(r.monomialOne(), c)})
}

// Variable returns the degree-1 polynomial equal to a single named
// variable, with coefficient one.
func (r *Ring[E, C]) Variable(name string, one C) (Polynomial[E, C], error) {
	i, ok := r.VarIndex(name)
	if !ok {
		return Polynomial[E, C]{}, newError(ErrIncompatibleVariables, "no such variable %q in this ring", name)
	}
	return newFromTerms[E, C](r.order, []Term[E, C]{NewTerm(r.Generator(i), one)}), nil
}

// NewPolynomial constructs a polynomial from terms, using this ring's
// order.
func (r *Ring[E, C]) NewPolynomial(terms ...Term[E, C]) Polynomial[E, C] {
	return newFromTerms(r.order, terms)
}

// String renders p using this ring's variable names.
func (r *Ring[E, C]) String(p Polynomial[E, C]) string {
	return p.Lisp(r.varNameFunc())
}
