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

// Package promote implements ring-promotion: lifting a polynomial defined
// over one variable set and/or coefficient ring into a larger or
// differently-typed ring so that mixed-ring arithmetic (e.g. adding a
// Z[x] polynomial to a Q[x,y] one) can proceed after an explicit,
// type-checked conversion step. It implements all three of spec's
// promotion rules:
//
//  1. Re-indexing into a variable superset the caller already built (Vars).
//  2. Two named rings combine into the sorted union of their variable
//     names, forced under DegRevLex order (UnionRing, ToUnion).
//  3. A named ring and a numbered/indexed ring combine into a tower, the
//     numbered ring outermost and the named ring as its coefficient ring
//     (Tower).
//
// Go's generics are resolved statically, so a single dynamically
// dispatched "promote anything to anything" function is not expressible
// (or desirable: it would hide which conversions are actually exact).
// Instead this package offers Vars/UnionRing/Tower, which are genuinely
// dynamic over any two same-coefficient rings, plus one named, concrete
// function per coefficient-ring pair this module knows how to convert
// exactly. A caller needing a conversion not listed here writes their own
// small function in the same style; this table is not meant to be
// exhaustive, only illustrative of the intended shape.
package promote

import (
	"fmt"
	"sort"

	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

// Vars promotes p, defined over src's variable set, into dst's variable
// set. Every variable p actually uses (nonzero exponent) must be declared
// in dst under the same name; a variable declared in src but never used
// with a nonzero exponent by p is permitted to be absent from dst. Both
// rings must share an exponent type and coefficient ring: Vars changes
// only which variables a polynomial is expressed over, never its
// arithmetic type.
func Vars[E ring.Exponent, C coeff.Ring[C]](p ring.Polynomial[E, C], src, dst *ring.Ring[E, C]) (ring.Polynomial[E, C], error) {
	terms := p.Terms()
	out := make([]ring.Term[E, C], len(terms))
	for ti, t := range terms {
		m := t.Monomial
		pairs := make(map[uint]E)
		for i := uint(1); i <= m.NumVariables(); i++ {
			e := m.Index(i)
			if e == 0 {
				continue
			}
			name, ok := src.VarName(i)
			if !ok {
				return ring.Polynomial[E, C]{}, &ring.Error{
					Kind:    ring.ErrIncompatibleVariables,
					Message: fmt.Sprintf("source ring has no name for variable %d", i),
				}
			}
			j, ok := dst.VarIndex(name)
			if !ok {
				return ring.Polynomial[E, C]{}, &ring.Error{
					Kind:    ring.ErrIncompatibleVariables,
					Message: fmt.Sprintf("target ring has no variable named %q", name),
				}
			}
			pairs[j] = e
		}
		out[ti] = ring.NewTerm[E, C](ring.NewSparse(pairs), t.Coefficient)
	}
	return dst.NewPolynomial(out...), nil
}

// UnionRing implements promotion rule 2: given two named rings sharing a
// coefficient type, it builds the common enclosing ring for mixed
// arithmetic between them, as the sorted union of their variable names,
// always under DegRevLex order regardless of either operand's own order.
// The representation is Sparse if either operand is Sparse, Dense
// otherwise.
//
// Both operands must share an exponent type E: Go's generics resolve type
// parameters statically, so there is no dynamically dispatched way to
// widen two different concrete exponent types into a third. A caller
// combining rings with genuinely different exponent types must first
// widen one side by hand, the same way ZToQ is the named, concrete answer
// for a specific coefficient-ring pair rather than a general promotion
// engine.
func UnionRing[E ring.Exponent, C coeff.Ring[C]](a, b *ring.Ring[E, C]) *ring.Ring[E, C] {
	seen := make(map[string]bool)
	var names []string
	for i := uint(1); i <= a.NumVariables(); i++ {
		n, _ := a.VarName(i)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for i := uint(1); i <= b.NumVariables(); i++ {
		n, _ := b.VarName(i)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)

	repr := ring.DenseRepr
	if a.Repr() == ring.SparseRepr || b.Repr() == ring.SparseRepr {
		repr = ring.SparseRepr
	}
	// Deduplicated names can never collide, so the duplicate-name error
	// this constructor can otherwise return is unreachable here.
	dst, _ := ring.NewPolynomialRing[E, C](repr, ring.DegRevLex[E]{}, names...)
	return dst
}

// ToUnion promotes a pair of polynomials, defined over possibly differing
// named variable sets ra and rb, into rule 2's common enclosing ring,
// returning both promoted polynomials alongside the ring they now share so
// that callers can add, subtract or divide them directly.
func ToUnion[E ring.Exponent, C coeff.Ring[C]](pa ring.Polynomial[E, C], ra *ring.Ring[E, C], pb ring.Polynomial[E, C], rb *ring.Ring[E, C]) (ring.Polynomial[E, C], ring.Polynomial[E, C], *ring.Ring[E, C], error) {
	dst := UnionRing(ra, rb)
	qa, err := Vars(pa, ra, dst)
	if err != nil {
		return ring.Polynomial[E, C]{}, ring.Polynomial[E, C]{}, nil, err
	}
	qb, err := Vars(pb, rb, dst)
	if err != nil {
		return ring.Polynomial[E, C]{}, ring.Polynomial[E, C]{}, nil, err
	}
	return qa, qb, dst, nil
}

// Tower implements promotion rule 3: combining a named ring with a
// numbered/indexed ring builds a coefficient tower with the numbered
// ring's variables outermost and the named ring, unchanged, as the
// coefficient ring of every outer term. Returns an
// ErrIncompatibleVariables Error if either ring is not of the expected
// VarKind.
func Tower[E ring.Exponent, C coeff.Ring[C]](named *ring.Ring[E, C], numbered *ring.Ring[E, C]) (*ring.Ring[E, ring.Polynomial[E, C]], error) {
	if named.Kind() != ring.NamedVars {
		return nil, &ring.Error{
			Kind:    ring.ErrIncompatibleVariables,
			Message: "Tower requires a named ring for the coefficient side",
		}
	}
	if numbered.Kind() != ring.NumberedVars {
		return nil, &ring.Error{
			Kind:    ring.ErrIncompatibleVariables,
			Message: "Tower requires a numbered ring for the outer side",
		}
	}
	return ring.NewNumberedPolynomialRing[E, ring.Polynomial[E, C]](numbered.Repr(), numbered.Order(), numbered.NumVariables()), nil
}

// ZToQ promotes a polynomial over the integers into the same shape over
// the rationals, an always-exact embedding since Z is a subring of Q.
func ZToQ[E ring.Exponent](p ring.Polynomial[E, coeff.Z], dst *ring.Ring[E, coeff.Q]) ring.Polynomial[E, coeff.Q] {
	terms := p.Terms()
	out := make([]ring.Term[E, coeff.Q], len(terms))
	for i, t := range terms {
		out[i] = ring.NewTerm[E, coeff.Q](t.Monomial, coeff.QFromInt(t.Coefficient))
	}
	return dst.NewPolynomial(out...)
}

// FromScalar lifts a bare coefficient into the constant polynomial of dst,
// the degenerate case of promotion where only the ring, not the value,
// changes shape.
func FromScalar[E ring.Exponent, C coeff.Ring[C]](dst *ring.Ring[E, C], c C) ring.Polynomial[E, C] {
	return dst.Scalar(c)
}
