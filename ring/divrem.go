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

import "github.com/go-polyring/polyring/internal/rlog"

// DivMode selects how aggressively divrem attempts to cancel a term of
// the dividend against a divisor's leading term.
type DivMode uint8

const (
	// LeadMode only ever attempts to divide the current dividend's
	// leading term by a divisor's leading term; as soon as that fails
	// against every divisor the whole remaining dividend becomes
	// remainder.
	LeadMode DivMode = iota
	// FullMode attempts to divide every term of the current dividend
	// (not just its leading term) by a divisor's leading term before
	// giving up and moving that term to the remainder, matching the
	// classical multivariate division algorithm.
	FullMode
)

// DivRem divides p by the single divisor d and returns (quotient,
// remainder), equivalent to calling DivRemVector with a one-element
// divisor family and taking the sole quotient. Unlike DivRemVector, a
// zero divisor here is always an error: there is no family of other
// divisors to fall back on.
func (p Polynomial[E, C]) DivRem(mode DivMode, d Polynomial[E, C]) (Polynomial[E, C], Polynomial[E, C]) {
	if d.IsZero() {
		panic(newError(ErrDivisionByZero, "divisor is the zero polynomial"))
	}
	quots, rem := p.DivRemVector(mode, []Polynomial[E, C]{d})
	return quots[0], rem
}

// DivRemVector divides p by an ordered family of divisors, returning one
// quotient per divisor plus a remainder, such that
// p = sum_i quotients[i]*divisors[i] + remainder.
// In FullMode no term of remainder can be cancelled against any divisor's
// leading term; in LeadMode this holds only for the remainder's leading
// term. A term counts as cancellable only when both its monomial and its
// coefficient divide exactly. Whenever a term is successfully cancelled against divisor i,
// the search restarts from divisor 0 on the new current dividend, per
// the standard multivariate division algorithm's termination argument
// (each restart strictly decreases the current dividend under the
// divisors' shared order). A zero polynomial anywhere in the family is
// not an error: it is simply never a candidate divisor, so the search
// advances past it exactly as it would past a divisor whose leading
// monomial fails to divide the current term.
//
// The two modes disagree on what happens once a round finds no match:
// LeadMode only ever offers the current leading term as a candidate, so
// once it fails against every divisor there is nothing left to try
// against lower terms — the whole remaining dividend becomes remainder
// at once, unreduced. FullMode already scanned every term of the current
// dividend against every divisor this round, so a miss there means only
// the leading term is settled; it moves to the remainder alone and the
// (unchanged) lower terms get another round.
func (p Polynomial[E, C]) DivRemVector(mode DivMode, divisors []Polynomial[E, C]) ([]Polynomial[E, C], Polynomial[E, C]) {
	if len(divisors) == 0 {
		return nil, p
	}
	quotients := make([]Polynomial[E, C], len(divisors))
	for i := range quotients {
		quotients[i] = zeroPolynomial[E, C](p.order)
	}
	leads := make([]Term[E, C], len(divisors))
	isZero := make([]bool, len(divisors))
	for i, d := range divisors {
		lt, ok := d.LeadingTerm()
		if !ok {
			isZero[i] = true
			rlog.Debugf("divrem: divisor %d is the zero polynomial, skipping it", i)
			continue
		}
		leads[i] = lt
	}

	remainderTerms := []Term[E, C]{}
	current := p
	for !current.IsZero() {
		divided := false
		i := 0
		for i < len(divisors) {
			if isZero[i] {
				i++
				continue
			}
			cand := current.termsToTest(mode)
			matched := -1
			var quotientTerm Term[E, C]
			for idx, ct := range cand {
				if q, ok := TryDivide(ct.Monomial, leads[i].Monomial); ok {
					qc, ok := ct.Coefficient.TryDivide(leads[i].Coefficient)
					if !ok {
						continue
					}
					matched = idx
					quotientTerm = Term[E, C]{Monomial: q, Coefficient: qc}
					break
				}
			}
			if matched < 0 {
				i++
				continue
			}
			quotientPoly := newFromTerms(p.order, []Term[E, C]{quotientTerm})
			quotients[i] = quotients[i].Add(quotientPoly)
			current = current.Sub(quotientPoly.Mul(divisors[i]))
			divided = true
			rlog.Debugf("divrem: cancelled a term against divisor %d, restarting from divisor 0", i)
			i = 0
			break
		}
		if !divided {
			if mode == LeadMode {
				remainderTerms = append(remainderTerms, current.terms...)
				current = zeroPolynomial[E, C](p.order)
				continue
			}
			lt, _ := current.LeadingTerm()
			remainderTerms = append(remainderTerms, lt)
			current = current.Tail()
		}
	}
	remainder := newFromTerms(p.order, remainderTerms)
	return quotients, remainder
}

// termsToTest returns the term(s) of the current dividend eligible for
// cancellation this round, per mode: LeadMode offers only the leading
// term; FullMode offers every term, ordered leading term first, since
// spec requires scanning from the leading term downward and returning at
// the first divisible match. Terms themselves are stored ascending, so
// this reverses the stored order rather than returning it directly.
func (p Polynomial[E, C]) termsToTest(mode DivMode) []Term[E, C] {
	if mode == LeadMode {
		lt, ok := p.LeadingTerm()
		if !ok {
			return nil
		}
		return []Term[E, C]{lt}
	}
	out := make([]Term[E, C], len(p.terms))
	for i, t := range p.terms {
		out[len(p.terms)-1-i] = t
	}
	return out
}
