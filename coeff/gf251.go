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

import "strconv"

// gf251Modulus mirrors this corpus's GF_251: a teeny tiny prime field used
// exclusively for testing, where reduction by hand and by eye is feasible.
const gf251Modulus = 251

// GF251Elem is a Field instance over the 8-bit prime 251, small enough
// that reduction can be checked by inspection in tests.
type GF251Elem struct {
	v uint16
}

// SetUint64 implements Field.
func (x GF251Elem) SetUint64(v uint64) GF251Elem {
	return GF251Elem{uint16(v % gf251Modulus)}
}

// IsZero implements Field.
func (x GF251Elem) IsZero() bool { return x.v == 0 }

// IsOne implements Field.
func (x GF251Elem) IsOne() bool { return x.v == 1 }

// Add implements Field.
func (x GF251Elem) Add(y GF251Elem) GF251Elem {
	return GF251Elem{uint16((uint32(x.v) + uint32(y.v)) % gf251Modulus)}
}

// Sub implements Field.
func (x GF251Elem) Sub(y GF251Elem) GF251Elem {
	return GF251Elem{uint16((uint32(x.v) + gf251Modulus - uint32(y.v)) % gf251Modulus)}
}

// Mul implements Field.
func (x GF251Elem) Mul(y GF251Elem) GF251Elem {
	return GF251Elem{uint16((uint32(x.v) * uint32(y.v)) % gf251Modulus)}
}

// Neg implements Field.
func (x GF251Elem) Neg() GF251Elem {
	return GF251Elem{uint16((gf251Modulus - uint32(x.v)) % gf251Modulus)}
}

// Inverse implements Field via Fermat's little theorem: x^(p-2) = x^-1.
func (x GF251Elem) Inverse() GF251Elem {
	if x.v == 0 {
		return GF251Elem{0}
	}
	res := GF251Elem{1}
	base := x
	exp := uint32(gf251Modulus - 2)
	for exp > 0 {
		if exp&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return res
}

// Equal implements Field.
func (x GF251Elem) Equal(y GF251Elem) bool { return x.v == y.v }

// String implements Field.
func (x GF251Elem) String() string { return strconv.FormatUint(uint64(x.v), 10) }

// GF251 is the coefficient ring over the field of integers modulo 251.
type GF251 = GF[GF251Elem]

// NewGF251 constructs a GF251 coefficient from a uint64.
func NewGF251(v uint64) GF251 {
	var e GF251Elem
	return NewGF[GF251Elem](e.SetUint64(v))
}
