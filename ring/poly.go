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
	"container/heap"
	"math/big"
	"sort"
	"strings"

	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/internal/rlog"
)

// Polynomial is a finite sum of terms over a fixed exponent type E and
// coefficient ring C. A well formed Polynomial's terms slice is sorted
// strictly ascending by the polynomial's order (so the leading term is
// the last element), holds at most one term per distinct monomial, and
// never holds a term with a zero coefficient; the zero polynomial is
// represented by a nil/empty terms slice. Every constructor and
// arithmetic operation in this package restores these invariants before
// returning.
//
// Polynomial itself satisfies coeff.Ring[Polynomial[E, C]], so a
// Polynomial ring can be nested as the coefficient ring of another
// Polynomial, giving towers such as (Z[x])[y] for free through ordinary
// generic instantiation.
type Polynomial[E Exponent, C coeff.Ring[C]] struct {
	order Order[E]
	terms []Term[E, C]
}

// zeroPolynomial constructs the additive identity under the given order.
func zeroPolynomial[E Exponent, C coeff.Ring[C]](order Order[E]) Polynomial[E, C] {
	return Polynomial[E, C]{order: order}
}

// onePolynomial constructs the multiplicative identity under the given
// order.
func onePolynomial[E Exponent, C coeff.Ring[C]](order Order[E], m Monomial[E]) Polynomial[E, C] {
	var c C
	return newFromTerms(order, []Term[E, C]{NewTerm(m, c.One())})
}

// NewPolynomial builds a Polynomial from an arbitrary list of terms under
// the given order, combining terms that share a monomial and dropping any
// whose combined coefficient IsZero. Terms need not arrive sorted or
// deduplicated.
func NewPolynomial[E Exponent, C coeff.Ring[C]](order Order[E], terms ...Term[E, C]) Polynomial[E, C] {
	return newFromTerms(order, terms)
}

// newFromTerms is the single choke point that restores the sorted,
// deduplicated, zero-free invariant; every constructor and arithmetic
// operation below funnels its raw term list through here.
func newFromTerms[E Exponent, C coeff.Ring[C]](order Order[E], raw []Term[E, C]) Polynomial[E, C] {
	byMonomial := make(map[string]int, len(raw))
	var merged []Term[E, C]
	for _, t := range raw {
		key := t.Monomial.String()
		if idx, ok := byMonomial[key]; ok {
			merged[idx].Coefficient = merged[idx].Coefficient.Add(t.Coefficient)
		} else {
			byMonomial[key] = len(merged)
			merged = append(merged, t)
		}
	}
	out := merged[:0]
	for _, t := range merged {
		if !t.Coefficient.IsZero() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return order.Less(out[i].Monomial, out[j].Monomial)
	})
	return Polynomial[E, C]{order: order, terms: out}
}

// Order returns the monomial order this polynomial is stored under.
func (p Polynomial[E, C]) Order() Order[E] {
	return p.order
}

// Terms returns the polynomial's terms in ascending order, i.e.
// Terms()[len(Terms())-1] is the leading term when the polynomial is
// nonzero. The returned slice is a defensive copy.
func (p Polynomial[E, C]) Terms() []Term[E, C] {
	out := make([]Term[E, C], len(p.terms))
	copy(out, p.terms)
	return out
}

// TermsUnder returns p's terms re-sorted ascending by a different order,
// without changing p's own stored order.
func (p Polynomial[E, C]) TermsUnder(order Order[E]) []Term[E, C] {
	out := p.Terms()
	sort.Slice(out, func(i, j int) bool {
		return order.Less(out[i].Monomial, out[j].Monomial)
	})
	return out
}

// NTerms returns the number of nonzero terms.
func (p Polynomial[E, C]) NTerms() int {
	return len(p.terms)
}

// IsZero reports whether p has no terms.
func (p Polynomial[E, C]) IsZero() bool {
	return len(p.terms) == 0
}

// IsOne reports whether p is exactly the multiplicative identity.
func (p Polynomial[E, C]) IsOne() bool {
	return len(p.terms) == 1 && p.terms[0].Monomial.IsOne() && p.terms[0].Coefficient.IsOne()
}

// LeadingTerm returns the leading term under p's own order, and false if p
// is zero. Since terms are stored strictly ascending, the leading term is
// the last element.
func (p Polynomial[E, C]) LeadingTerm() (Term[E, C], bool) {
	if p.IsZero() {
		return Term[E, C]{}, false
	}
	return p.terms[len(p.terms)-1], true
}

// LeadingMonomial returns the leading monomial, and false if p is zero.
func (p Polynomial[E, C]) LeadingMonomial() (Monomial[E], bool) {
	t, ok := p.LeadingTerm()
	if !ok {
		return nil, false
	}
	return t.Monomial, true
}

// LeadingCoefficient returns the leading coefficient, and false if p is
// zero.
func (p Polynomial[E, C]) LeadingCoefficient() (C, bool) {
	t, ok := p.LeadingTerm()
	if !ok {
		var zero C
		return zero, false
	}
	return t.Coefficient, true
}

// Tail returns p with its leading term removed, i.e. p minus its leading
// term. Since terms are stored strictly ascending, this drops the last
// element.
func (p Polynomial[E, C]) Tail() Polynomial[E, C] {
	if p.IsZero() {
		return p
	}
	return Polynomial[E, C]{order: p.order, terms: p.terms[:len(p.terms)-1]}
}

// One implements coeff.Ring: the multiplicative identity of a polynomial
// ring is the constant term-1 monomial's coefficient-1 polynomial.
//
// When C is itself a Polynomial (a coefficient tower), the identity's own
// coefficient is derived from a zero-value C rather than from any
// concrete ring, so its order field is left nil; that is safe only
// because the result always carries exactly one term, and newFromTerms
// never consults order when merging a single-term list. Callers building
// a tower's One() from an already-constructed inner Ring should prefer
// outerRing.Scalar(innerRing.One()), which carries a real order
// throughout.
func (p Polynomial[E, C]) One() Polynomial[E, C] {
	n := uint(0)
	for _, t := range p.terms {
		if nv := t.Monomial.NumVariables(); nv > n {
			n = nv
		}
	}
	return onePolynomial[E, C](p.order, construct(func(uint) E { return 0 }, n))
}

// Equal reports whether p and q have identical term sets. p and q need
// not share an order: comparison canonicalises both to p's order first.
func (p Polynomial[E, C]) Equal(q Polynomial[E, C]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	qt := q.TermsUnder(p.order)
	for i, t := range p.terms {
		if !t.Monomial.Equal(qt[i].Monomial) || !t.Coefficient.Equal(qt[i].Coefficient) {
			return false
		}
	}
	return true
}

// Add returns p+q via a single-pass merge of the two already-sorted term
// lists: at each step the smaller of the two leading candidates is
// emitted and its list advanced, and monomials that tie are combined
// into one term (dropped entirely if the combined coefficient is zero).
// q's terms are read out under p's order first, since the two operands
// need not share an order object even when the orders compare equal.
func (p Polynomial[E, C]) Add(q Polynomial[E, C]) Polynomial[E, C] {
	a, b := p.terms, q.TermsUnder(p.order)
	out := make([]Term[E, C], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case p.order.Less(a[i].Monomial, b[j].Monomial):
			out = append(out, a[i])
			i++
		case p.order.Less(b[j].Monomial, a[i].Monomial):
			out = append(out, b[j])
			j++
		default:
			sum := a[i].Coefficient.Add(b[j].Coefficient)
			if !sum.IsZero() {
				out = append(out, Term[E, C]{Monomial: a[i].Monomial, Coefficient: sum})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return Polynomial[E, C]{order: p.order, terms: out}
}

// Sub returns p-q.
func (p Polynomial[E, C]) Sub(q Polynomial[E, C]) Polynomial[E, C] {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial[E, C]) Neg() Polynomial[E, C] {
	out := make([]Term[E, C], len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Negate()
	}
	return Polynomial[E, C]{order: p.order, terms: out}
}

// productHeapItem is a single cell (i, j) of the a.terms x b.terms
// product grid, keyed by the monomial product of the two contributing
// terms so the heap always yields the next-smallest surviving product.
type productHeapItem[E Exponent, C coeff.Ring[C]] struct {
	i, j int
	term Term[E, C]
}

// productHeap implements container/heap.Interface over the frontier of
// candidate products, following the "minimal corners" walk: cell (0, 0)
// starts it, cell (i, 0) is pushed once (i-1, 0) has been popped, and cell
// (i, j) once (i, j-1) has been popped, so each row holds at most one
// item. Mul makes the rows range over the shorter operand, so the heap
// holds at most min(len(a), len(b)) items at a time.
type productHeap[E Exponent, C coeff.Ring[C]] struct {
	items []productHeapItem[E, C]
	order Order[E]
}

func (h productHeap[E, C]) Len() int { return len(h.items) }
func (h productHeap[E, C]) Less(x, y int) bool {
	return h.order.Less(h.items[x].term.Monomial, h.items[y].term.Monomial)
}
func (h productHeap[E, C]) Swap(x, y int) { h.items[x], h.items[y] = h.items[y], h.items[x] }
func (h *productHeap[E, C]) Push(v any)   { h.items = append(h.items, v.(productHeapItem[E, C])) }
func (h *productHeap[E, C]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// Mul returns p*q, computed with a heap-based Cartesian walk over the two
// term lists rather than a naive |p|*|q| expansion: since both operand
// term slices are sorted ascending, the pairwise product a[i]*b[j] is
// smallest for small i, j, so a min-cell-count frontier of "next possible
// smallest products" suffices to enumerate the full product in sorted
// order while merging equal-monomial results as they are produced. The
// output buffer is preallocated at capacity |p|*|q|, the worst case where
// no two products share a monomial, and trimmed back to its actual
// length once the walk finishes.
func (p Polynomial[E, C]) Mul(q Polynomial[E, C]) Polynomial[E, C] {
	if p.IsZero() || q.IsZero() {
		return zeroPolynomial[E, C](p.order)
	}
	a, b := p.terms, q.terms
	swapped := len(a) > len(b)
	if swapped {
		a, b = b, a
	}
	h := &productHeap[E, C]{order: p.order}
	push := func(i, j int) {
		if i < len(a) && j < len(b) {
			t := a[i].Multiply(b[j])
			if swapped {
				t = b[j].Multiply(a[i])
			}
			heap.Push(h, productHeapItem[E, C]{i: i, j: j, term: t})
		}
	}
	push(0, 0)
	result := make([]Term[E, C], 0, len(a)*len(b))
	for h.Len() > 0 {
		top := heap.Pop(h).(productHeapItem[E, C])
		if n := len(result); n > 0 && result[n-1].SameMonomial(top.term) {
			result[n-1].Coefficient = result[n-1].Coefficient.Add(top.term.Coefficient)
		} else {
			result = append(result, top.term)
		}
		if top.j == 0 {
			push(top.i+1, 0)
		}
		push(top.i, top.j+1)
	}
	result = result[:len(result):len(result)]
	rlog.Debugf("poly: multiplied %d x %d terms into %d raw terms via heap walk", len(a), len(b), len(result))
	return newFromTerms(p.order, result)
}

// TryDivide implements coeff.Ring for towers: this is scalar (whole
// polynomial) division, succeeding only when q is a nonzero constant
// dividing every coefficient of p exactly, or more generally when the
// reduce package's single-divisor engine leaves no remainder. For a
// general division-with-remainder use the reduce package directly; this
// method exists solely so Polynomial satisfies coeff.Ring.
func (p Polynomial[E, C]) TryDivide(q Polynomial[E, C]) (Polynomial[E, C], bool) {
	if q.IsZero() {
		return Polynomial[E, C]{}, false
	}
	quot, rem := p.DivRem(FullMode, q)
	if !rem.IsZero() {
		return Polynomial[E, C]{}, false
	}
	return quot, true
}

// Pow raises p to a non-negative integer power n via multinomial
// expansion: (t1+...+tk)^n = sum over compositions c of n into k parts of
// C(n; c) * t1^c1 * ... * tk^ck, where C(n; c) is the multinomial
// coefficient n!/(c1!...ck!). This mirrors the combinatorial identity
// spec documents rather than repeated squaring, since repeated squaring
// would not expose the individual multinomial coefficients that some
// callers rely on for symbolic inspection. The output buffer is
// preallocated to exactly the number of compositions of n into k parts,
// since each composition contributes exactly one term before the final
// merge, so there is no worst case to trim away afterward.
func (p Polynomial[E, C]) Pow(n uint) Polynomial[E, C] {
	if n == 0 {
		return p.One()
	}
	if n == 1 {
		return p
	}
	if p.IsZero() {
		return zeroPolynomial[E, C](p.order)
	}
	k := len(p.terms)
	if k == 1 {
		return newFromTerms(p.order, []Term[E, C]{powSingleTerm(p.terms[0], n)})
	}
	one := p.terms[0].Coefficient.One()
	result := make([]Term[E, C], 0, compositionCount(n, k))
	forEachComposition(n, k, func(composition []uint) {
		coef := liftMultinomialCoeff(multinomialCoefficient(n, composition), one)
		acc := onePolynomial[E, C](p.order, construct(func(uint) E { return 0 }, 0))
		for idx, c := range composition {
			if c == 0 {
				continue
			}
			acc = acc.Mul(newFromTerms(p.order, []Term[E, C]{powSingleTerm(p.terms[idx], c)}))
		}
		for _, t := range acc.terms {
			result = append(result, Term[E, C]{Monomial: t.Monomial, Coefficient: t.Coefficient.Mul(coef)})
		}
	})
	result = result[:len(result):len(result)]
	return newFromTerms(p.order, result)
}

// powSingleTerm raises a single term to the power n, exponent-wise
// multiplication on the monomial and repeated-squaring on the
// coefficient.
func powSingleTerm[E Exponent, C coeff.Ring[C]](t Term[E, C], n uint) Term[E, C] {
	m := construct(func(i uint) E { return mulExpByUint(t.Monomial.Index(i), n) }, t.Monomial.NumVariables())
	c := coeffPow(t.Coefficient, n)
	return Term[E, C]{Monomial: m, Coefficient: c}
}

func coeffPow[C coeff.Ring[C]](c C, n uint) C {
	result := c.One()
	base := c
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

func mulExpByUint[E Exponent](e E, n uint) E {
	var r E
	for i := uint(0); i < n; i++ {
		r = addExp(r, e)
	}
	return r
}

// liftMultinomialCoeff embeds an arbitrary-precision non-negative integer
// v into the coefficient ring as v*one, via binary-expansion doubling
// (O(log v) ring additions) rather than v repeated additions, using only
// Add on the ring, since C need not support construction from an integer
// literal directly.
func liftMultinomialCoeff[C coeff.Ring[C]](v *big.Int, one C) C {
	result := one.Sub(one)
	if v.Sign() == 0 {
		return result
	}
	addend := one
	n := new(big.Int).Set(v)
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Add(addend)
		n.Rsh(n, 1)
	}
	return result
}

// multinomialCoefficient computes n!/(c1!*c2!*...*ck!) exactly.
func multinomialCoefficient(n uint, composition []uint) *big.Int {
	num := factorial(n)
	for _, c := range composition {
		num.Div(num, factorial(c))
	}
	return num
}

func factorial(n uint) *big.Int {
	r := big.NewInt(1)
	for i := uint(2); i <= n; i++ {
		r.Mul(r, big.NewInt(int64(i)))
	}
	return r
}

// compositionCount returns the number of ways to write n as an ordered
// sum of k non-negative integers, C(n+k-1, k-1) by the stars-and-bars
// identity, which is exactly how many times forEachComposition invokes
// its callback.
func compositionCount(n uint, k int) int {
	if k <= 0 {
		return 0
	}
	c := factorial(n + uint(k-1))
	c.Div(c, factorial(n))
	c.Div(c, factorial(uint(k-1)))
	return int(c.Int64())
}

// forEachComposition invokes f once for every way of writing n as an
// ordered sum of k non-negative integers, via straightforward recursive
// descent over how much of the remaining budget goes to each position.
func forEachComposition(n uint, k int, f func(composition []uint)) {
	composition := make([]uint, k)
	var recurse func(pos int, remaining uint)
	recurse = func(pos int, remaining uint) {
		if pos == k-1 {
			composition[pos] = remaining
			f(composition)
			return
		}
		for c := uint(0); c <= remaining; c++ {
			composition[pos] = c
			recurse(pos+1, remaining-c)
		}
	}
	recurse(0, n)
}

// Diff returns the formal partial derivative of p with respect to
// variable index i (1-based): term-by-term, d/dxi (c*m) = c*ei*m/xi when
// m's exponent at i is nonzero, else the term vanishes.
func (p Polynomial[E, C]) Diff(i uint) Polynomial[E, C] {
	var out []Term[E, C]
	for _, t := range p.terms {
		e := t.Monomial.Index(i)
		if e == 0 {
			continue
		}
		newExp, _ := subExp(e, 1)
		m := construct(func(j uint) E {
			if j == i {
				return newExp
			}
			return t.Monomial.Index(j)
		}, maxUint(t.Monomial.NumVariables(), i))
		coefMultiplier := liftMultinomialCoeff(big.NewInt(int64(e)), t.Coefficient.One())
		out = append(out, Term[E, C]{Monomial: m, Coefficient: t.Coefficient.Mul(coefMultiplier)})
	}
	return newFromTerms(p.order, out)
}

// String renders p as a sum of terms separated by " + ", using its
// stored ascending order; the zero polynomial renders as "0".
func (p Polynomial[E, C]) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Lisp renders p as an s-expression sum, e.g. "(+ (* 2 x) (* 3 y))",
// matching the minimal textual convention this corpus's own reference
// polynomial type documents.
func (p Polynomial[E, C]) Lisp(varName func(uint) string) string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = termLisp(t, varName)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(+ " + strings.Join(parts, " ") + ")"
}

func termLisp[E Exponent, C coeff.Ring[C]](t Term[E, C], varName func(uint) string) string {
	mono := formatMonomial[E](t.Monomial, varName)
	if t.Monomial.IsOne() {
		return t.Coefficient.String()
	}
	if t.Coefficient.IsOne() {
		return mono
	}
	return "(* " + t.Coefficient.String() + " " + mono + ")"
}
