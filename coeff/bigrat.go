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
package coeff

import "math/big"

// Q is the field of arbitrary-precision rationals. Ring constructors take
// the coefficient type as an explicit type parameter; none falls back to
// Q when it is left out.
type Q struct {
	v big.Rat
}

// NewQ constructs a rational coefficient num/den.
func NewQ(num, den int64) Q {
	var q Q
	q.v.SetFrac64(num, den)
	return q
}

// QFromInt lifts an integer coefficient into Q.
func QFromInt(x Z) Q {
	var q Q
	q.v.SetInt(&x.v)
	return q
}

// QFromBigRat constructs a rational coefficient from a big.Rat, copying it.
func QFromBigRat(x *big.Rat) Q {
	var q Q
	q.v.Set(x)
	return q
}

// Num returns the numerator of x in lowest terms.
func (x Q) Num() Z {
	return ZFromBigInt(x.v.Num())
}

// Denom returns the (always positive) denominator of x in lowest terms.
func (x Q) Denom() Z {
	return ZFromBigInt(x.v.Denom())
}

// One implements coeff.Ring.
func (x Q) One() Q {
	return NewQ(1, 1)
}

// IsZero implements coeff.Ring.
func (x Q) IsZero() bool {
	return x.v.Sign() == 0
}

// IsOne implements coeff.Ring.
func (x Q) IsOne() bool {
	return x.v.Cmp(big.NewRat(1, 1)) == 0
}

// Add implements coeff.Ring.
func (x Q) Add(y Q) Q {
	var q Q
	q.v.Add(&x.v, &y.v)
	return q
}

// Sub implements coeff.Ring.
func (x Q) Sub(y Q) Q {
	var q Q
	q.v.Sub(&x.v, &y.v)
	return q
}

// Mul implements coeff.Ring.
func (x Q) Mul(y Q) Q {
	var q Q
	q.v.Mul(&x.v, &y.v)
	return q
}

// Neg implements coeff.Ring.
func (x Q) Neg() Q {
	var q Q
	q.v.Neg(&x.v)
	return q
}

// Equal implements coeff.Ring.
func (x Q) Equal(y Q) bool {
	return x.v.Cmp(&y.v) == 0
}

// TryDivide implements coeff.Ring: a field, so this always succeeds unless
// y is zero.
func (x Q) TryDivide(y Q) (Q, bool) {
	if y.IsZero() {
		return Q{}, false
	}
	var q Q
	q.v.Quo(&x.v, &y.v)
	return q, true
}

// String implements coeff.Ring.
func (x Q) String() string {
	return x.v.RatString()
}
