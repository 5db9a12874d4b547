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

// Exponent is the constraint satisfied by the concrete integer type used to
// store monomial exponents. All stored exponents are non-negative; the
// signed types are used (rather than unsigned) so that intermediate
// subtractions performed by try_divide can be checked for going negative
// before being cast back into an Exponent.
type Exponent interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Exp16 is the default exponent type: a small signed integer, per the
// documented default width of 16 bits.
type Exp16 = int16

// addExp adds two exponents, panicking with an invariant-violation Error if
// the result overflows E. A narrow exponent type combined with
// high-degree arithmetic is a configuration error the caller must fix by
// widening the ring's exponent type; it is not a condition the monomial
// algebra can recover from mid-computation.
func addExp[E Exponent](a, b E) E {
	r := a + b
	if r < a || r < b {
		panic(newError(ErrInvariantViolation,
			"exponent overflow (%d+%d): widen the ring's exponent type", a, b))
	}
	return r
}

// subExp subtracts b from a, returning false if the result would be
// negative (used by try_divide to detect non-divisibility).
func subExp[E Exponent](a, b E) (E, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

// maxExp/minExp implement the exponent-wise max/min underlying lcm/gcd.
func maxExp[E Exponent](a, b E) E {
	if a > b {
		return a
	}
	return b
}

func minExp[E Exponent](a, b E) E {
	if a < b {
		return a
	}
	return b
}
