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

// Z is the ring of arbitrary-precision integers.
type Z struct {
	v big.Int
}

// NewZ constructs an integer coefficient from an int64.
func NewZ(x int64) Z {
	var z Z
	z.v.SetInt64(x)
	return z
}

// ZFromBigInt constructs an integer coefficient from a big.Int, copying it.
func ZFromBigInt(x *big.Int) Z {
	var z Z
	z.v.Set(x)
	return z
}

// BigInt returns a copy of the underlying big.Int.
func (x Z) BigInt() *big.Int {
	return new(big.Int).Set(&x.v)
}

// Sign returns -1, 0 or 1 as x is negative, zero or positive.
func (x Z) Sign() int {
	return x.v.Sign()
}

// Cmp returns -1, 0 or 1 as x is less than, equal to, or greater than y.
func (x Z) Cmp(y Z) int {
	return x.v.Cmp(&y.v)
}

// Gcd returns the (non-negative) greatest common divisor of x and y, used
// by the content operation.
func (x Z) Gcd(y Z) Z {
	var z Z
	z.v.GCD(nil, nil, absBigInt(&x.v), absBigInt(&y.v))
	return z
}

// One implements coeff.Ring.
func (x Z) One() Z {
	return NewZ(1)
}

// IsZero implements coeff.Ring.
func (x Z) IsZero() bool {
	return x.v.Sign() == 0
}

// IsOne implements coeff.Ring.
func (x Z) IsOne() bool {
	return x.v.Cmp(big.NewInt(1)) == 0
}

// Add implements coeff.Ring.
func (x Z) Add(y Z) Z {
	var z Z
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub implements coeff.Ring.
func (x Z) Sub(y Z) Z {
	var z Z
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul implements coeff.Ring.
func (x Z) Mul(y Z) Z {
	var z Z
	z.v.Mul(&x.v, &y.v)
	return z
}

// Neg implements coeff.Ring.
func (x Z) Neg() Z {
	var z Z
	z.v.Neg(&x.v)
	return z
}

// Equal implements coeff.Ring.
func (x Z) Equal(y Z) bool {
	return x.v.Cmp(&y.v) == 0
}

// TryDivide implements coeff.Ring: integer division must be exact.
func (x Z) TryDivide(y Z) (Z, bool) {
	if y.IsZero() {
		return Z{}, false
	}
	var q, r big.Int
	q.QuoRem(&x.v, &y.v, &r)
	if r.Sign() != 0 {
		return Z{}, false
	}
	return Z{q}, true
}

// String implements coeff.Ring.
func (x Z) String() string {
	return x.v.String()
}

func absBigInt(x *big.Int) *big.Int {
	if x.Sign() < 0 {
		return new(big.Int).Neg(x)
	}
	return x
}
