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

	"github.com/bits-and-blooms/bitset"
)

// Sparse is an unbounded exponent container keyed by a positive integer
// variable index; indices beyond the stored maximum return exponent zero.
// present tracks which indices are actually stored, letting NumVariables
// and iteration avoid touching every entry of a possibly-huge but mostly
// nil exps map: for a numbered ring where only a handful of the unbounded
// variable family ever appear in a given polynomial, present.NextSet lets
// callers walk stored variables in O(popcount) rather than scanning the
// theoretical index range.
type Sparse[E Exponent] struct {
	exps    map[uint]E
	present *bitset.BitSet
	maxVar  uint
	degree  E
}

// NewSparse constructs a sparse monomial from a set of (index, exponent)
// pairs. Zero exponents are dropped (they carry no information, matching
// the "unstored reads as zero" contract).
func NewSparse[E Exponent](pairs map[uint]E) Sparse[E] {
	present := bitset.New(0)
	exps := make(map[uint]E, len(pairs))
	var maxVar uint
	var deg E
	for i, e := range pairs {
		if e == 0 {
			continue
		}
		exps[i] = e
		present.Set(i)
		deg = addExp(deg, e)
		if i > maxVar {
			maxVar = i
		}
	}
	return Sparse[E]{exps: exps, present: present, maxVar: maxVar, degree: deg}
}

// OneSparse returns the sparse identity monomial.
func OneSparse[E Exponent]() Sparse[E] {
	return Sparse[E]{exps: map[uint]E{}, present: bitset.New(0)}
}

// GeneratorSparse returns the single-variable monomial x_i, for the lazy,
// unbounded sequence of generators i = 1, 2, 3, ... of a numbered ring.
func GeneratorSparse[E Exponent](i uint) Sparse[E] {
	return NewSparse[E](map[uint]E{i: 1})
}

// Index implements Monomial: unstored indices read as zero rather than
// failing.
func (m Sparse[E]) Index(i uint) E {
	return m.exps[i]
}

// NumVariables implements Monomial: the maximum stored index, or zero for
// the identity monomial.
func (m Sparse[E]) NumVariables() uint {
	return m.maxVar
}

// TotalDegree implements Monomial: the sum of stored exponents.
func (m Sparse[E]) TotalDegree() E {
	return m.degree
}

// IsOne implements Monomial.
func (m Sparse[E]) IsOne() bool {
	return len(m.exps) == 0
}

// Equal implements Monomial.
func (m Sparse[E]) Equal(other Monomial[E]) bool {
	if os, ok := other.(Sparse[E]); ok {
		if len(m.exps) != len(os.exps) {
			return false
		}
		for i, e := range m.exps {
			if os.exps[i] != e {
				return false
			}
		}
		return true
	}
	n := maxUint(m.NumVariables(), other.NumVariables())
	for i := uint(1); i <= n; i++ {
		if m.Index(i) != other.Index(i) {
			return false
		}
	}
	return true
}

// multiply is the sparse-sparse specialised fast path: walk only the union
// of stored indices, using the presence bitsets to avoid visiting every
// index up to max(maxVar).
func (m Sparse[E]) multiply(other Sparse[E]) Sparse[E] {
	union := m.present.Clone()
	union.InPlaceUnion(other.present)
	pairs := make(map[uint]E, union.Count())
	for i, ok := union.NextSet(0); ok; i, ok = union.NextSet(i + 1) {
		pairs[i] = addExp(m.exps[i], other.exps[i])
	}
	return NewSparse[E](pairs)
}

// Vars returns the stored variable indices in ascending order.
func (m Sparse[E]) Vars() []uint {
	vars := make([]uint, 0, len(m.exps))
	for i, ok := m.present.NextSet(0); ok; i, ok = m.present.NextSet(i + 1) {
		vars = append(vars, i)
	}
	return vars
}

// String renders the monomial using generic variable names v1, v2, ....
func (m Sparse[E]) String() string {
	return formatMonomial[E](m, func(i uint) string { return fmt.Sprintf("v%d", i) })
}
