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

import "fmt"

// Field is the capability set required of a concrete prime-field element
// type in order to instantiate GF. This mirrors the field.Element[Operand]
// interface this repo's teacher defines over gnark-crypto element types,
// trimmed to what a coefficient ring needs (no Cmp/Modulus/Text, since
// field elements have no ring-independent total order).
type Field[F any] interface {
	fmt.Stringer
	SetUint64(v uint64) F
	IsZero() bool
	IsOne() bool
	Add(y F) F
	Sub(y F) F
	Mul(y F) F
	Neg() F
	Inverse() F
	Equal(y F) bool
}

// GF wraps any Field element type as a coeff.Ring instance: division is
// always exact (aside from division by zero) since a prime field is a
// field.
type GF[F Field[F]] struct {
	v F
}

// NewGF wraps a field element as a coefficient.
func NewGF[F Field[F]](v F) GF[F] {
	return GF[F]{v}
}

// Element returns the wrapped field element.
func (x GF[F]) Element() F {
	return x.v
}

// One implements coeff.Ring.
func (x GF[F]) One() GF[F] {
	var f F
	return GF[F]{f.SetUint64(1)}
}

// IsZero implements coeff.Ring.
func (x GF[F]) IsZero() bool {
	return x.v.IsZero()
}

// IsOne implements coeff.Ring.
func (x GF[F]) IsOne() bool {
	return x.v.IsOne()
}

// Add implements coeff.Ring.
func (x GF[F]) Add(y GF[F]) GF[F] {
	return GF[F]{x.v.Add(y.v)}
}

// Sub implements coeff.Ring.
func (x GF[F]) Sub(y GF[F]) GF[F] {
	return GF[F]{x.v.Sub(y.v)}
}

// Mul implements coeff.Ring.
func (x GF[F]) Mul(y GF[F]) GF[F] {
	return GF[F]{x.v.Mul(y.v)}
}

// Neg implements coeff.Ring.
func (x GF[F]) Neg() GF[F] {
	return GF[F]{x.v.Neg()}
}

// Equal implements coeff.Ring.
func (x GF[F]) Equal(y GF[F]) bool {
	return x.v.Equal(y.v)
}

// TryDivide implements coeff.Ring: a field, so this always succeeds unless
// y is zero.
func (x GF[F]) TryDivide(y GF[F]) (GF[F], bool) {
	if y.IsZero() {
		return GF[F]{}, false
	}
	return GF[F]{x.v.Mul(y.v.Inverse())}, true
}

// String implements coeff.Ring.
func (x GF[F]) String() string {
	return x.v.String()
}
