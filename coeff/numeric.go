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

import (
	"fmt"
	"strconv"
)

// Float64 is a numeric (non-exact) coefficient ring, provided for the same
// reason this corpus's own field-agnostic pipeline supports a numeric
// family alongside exact rings: some clients want IEEE-754 arithmetic and
// accept the loss of exactness that comes with it.
type Float64 float64

// One implements coeff.Ring.
func (x Float64) One() Float64 { return 1 }

// IsZero implements coeff.Ring.
func (x Float64) IsZero() bool { return x == 0 }

// IsOne implements coeff.Ring.
func (x Float64) IsOne() bool { return x == 1 }

// Add implements coeff.Ring.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub implements coeff.Ring.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Mul implements coeff.Ring.
func (x Float64) Mul(y Float64) Float64 { return x * y }

// Neg implements coeff.Ring.
func (x Float64) Neg() Float64 { return -x }

// Equal implements coeff.Ring.
func (x Float64) Equal(y Float64) bool { return x == y }

// TryDivide implements coeff.Ring: floats form a field, so this always
// succeeds unless y is zero; the result is inexact, as documented on
// Float64 itself.
func (x Float64) TryDivide(y Float64) (Float64, bool) {
	if y == 0 {
		return 0, false
	}
	return x / y, true
}

// String implements coeff.Ring.
func (x Float64) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Complex128 is a numeric coefficient ring over the complex numbers,
// letting a client work in C[x] as spec scenario 3 assumes.
type Complex128 complex128

// One implements coeff.Ring.
func (x Complex128) One() Complex128 { return 1 }

// IsZero implements coeff.Ring.
func (x Complex128) IsZero() bool { return x == 0 }

// IsOne implements coeff.Ring.
func (x Complex128) IsOne() bool { return x == 1 }

// Add implements coeff.Ring.
func (x Complex128) Add(y Complex128) Complex128 { return x + y }

// Sub implements coeff.Ring.
func (x Complex128) Sub(y Complex128) Complex128 { return x - y }

// Mul implements coeff.Ring.
func (x Complex128) Mul(y Complex128) Complex128 { return x * y }

// Neg implements coeff.Ring.
func (x Complex128) Neg() Complex128 { return -x }

// Equal implements coeff.Ring.
func (x Complex128) Equal(y Complex128) bool { return x == y }

// TryDivide implements coeff.Ring: the complex numbers form a field.
func (x Complex128) TryDivide(y Complex128) (Complex128, bool) {
	if y == 0 {
		return 0, false
	}
	return x / y, true
}

// String implements coeff.Ring.
func (x Complex128) String() string { return fmt.Sprintf("%g", complex128(x)) }
