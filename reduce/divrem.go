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

// Package reduce exposes multivariate polynomial division-with-remainder
// as free functions, mirroring the arith package's relationship to
// ring.Polynomial's own division methods (kept on Polynomial so it can
// satisfy coeff.Ring.TryDivide for coefficient towers).
package reduce

import (
	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

// Mode re-exports ring.DivMode under this package's own name, so callers
// of reduce need not import ring solely to name a mode.
type Mode = ring.DivMode

const (
	// Lead only ever cancels the dividend's leading term.
	Lead = ring.LeadMode
	// Full attempts to cancel every term of the current dividend before
	// moving a term to the remainder.
	Full = ring.FullMode
)

// DivRem divides p by the single divisor d, returning (quotient,
// remainder) such that p = quotient*d + remainder. In Full mode no term of
// remainder can be cancelled against d's leading term; in Lead mode this
// holds only for the remainder's leading term.
func DivRem[E ring.Exponent, C coeff.Ring[C]](mode Mode, p, d ring.Polynomial[E, C]) (ring.Polynomial[E, C], ring.Polynomial[E, C]) {
	return p.DivRem(mode, d)
}

// LeadDivRem divides p by d in Lead mode, the mode named directly in
// spec's leaddivrem operation.
func LeadDivRem[E ring.Exponent, C coeff.Ring[C]](p, d ring.Polynomial[E, C]) (ring.Polynomial[E, C], ring.Polynomial[E, C]) {
	return p.DivRem(ring.LeadMode, d)
}
