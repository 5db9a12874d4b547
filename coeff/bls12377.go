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

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// BLS12377 wraps a gnark-crypto bls12-377 scalar field element to satisfy
// the Field capability set. bls12-377 is this corpus's defacto default
// field.
type BLS12377 struct {
	fr.Element
}

// SetUint64 implements Field.
func (x BLS12377) SetUint64(v uint64) BLS12377 {
	var e fr.Element
	e.SetUint64(v)
	return BLS12377{e}
}

// Add implements Field.
func (x BLS12377) Add(y BLS12377) BLS12377 {
	var e fr.Element
	e.Add(&x.Element, &y.Element)
	return BLS12377{e}
}

// Sub implements Field.
func (x BLS12377) Sub(y BLS12377) BLS12377 {
	var e fr.Element
	e.Sub(&x.Element, &y.Element)
	return BLS12377{e}
}

// Mul implements Field.
func (x BLS12377) Mul(y BLS12377) BLS12377 {
	var e fr.Element
	e.Mul(&x.Element, &y.Element)
	return BLS12377{e}
}

// Neg implements Field.
func (x BLS12377) Neg() BLS12377 {
	var e fr.Element
	e.Neg(&x.Element)
	return BLS12377{e}
}

// Inverse implements Field: x⁻¹, or 0 if x = 0.
func (x BLS12377) Inverse() BLS12377 {
	var e fr.Element
	e.Inverse(&x.Element)
	return BLS12377{e}
}

// Equal implements Field.
func (x BLS12377) Equal(y BLS12377) bool {
	return x.Element.Equal(&y.Element)
}

// IsOne implements Field.
func (x BLS12377) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implements Field.
func (x BLS12377) IsZero() bool {
	return x.Element.IsZero()
}

// String implements Field.
func (x BLS12377) String() string {
	return x.Element.String()
}

// GFBLS12377 is the coefficient ring of bls12-377 scalar field elements.
type GFBLS12377 = GF[BLS12377]

// NewGFBLS12377 constructs a bls12-377 field coefficient from a uint64.
func NewGFBLS12377(v uint64) GFBLS12377 {
	var e BLS12377
	return NewGF[BLS12377](e.SetUint64(v))
}
