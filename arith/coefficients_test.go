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
package arith

import (
	"testing"

	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

func Test_Content_GcdOfCoefficients(t *testing.T) {
	r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := r.Variable("x", coeff.NewZ(1))
	y, _ := r.Variable("y", coeff.NewZ(1))
	p := x.Mul(r.Scalar(coeff.NewZ(6))).Add(y.Mul(r.Scalar(coeff.NewZ(-18)))).Add(r.Scalar(coeff.NewZ(24)))

	got := Content(p)
	if !got.Equal(coeff.NewZ(6)) {
		t.Fatalf("content(6x - 18y + 24) = %s, want 6", got)
	}
}

func Test_Content_ZeroPolynomialIsZero(t *testing.T) {
	r, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	if got := Content(r.Zero()); !got.IsZero() {
		t.Fatalf("content(0) = %s, want 0", got)
	}
}

func Test_IntegralFraction_ClearsDenominators(t *testing.T) {
	r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := r.Variable("x", coeff.NewQ(1, 1))
	p := x.Mul(r.Scalar(coeff.NewQ(1, 2))).Add(r.Scalar(coeff.NewQ(2, 3)))

	pz, denom := IntegralFraction(p)
	if !denom.Equal(coeff.NewZ(6)) {
		t.Fatalf("denominator = %s, want 6", denom)
	}
	zr, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	xz, _ := zr.Variable("x", coeff.NewZ(1))
	want := xz.Mul(zr.Scalar(coeff.NewZ(3))).Add(zr.Scalar(coeff.NewZ(4)))
	if !pz.Equal(want) {
		t.Fatalf("integral part = %s, want %s", pz, want)
	}
}

func Test_IntegralFraction_ZeroPolynomialHasDenominatorOne(t *testing.T) {
	r, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	pz, denom := IntegralFraction(r.Zero())
	if !denom.Equal(coeff.NewZ(1)) {
		t.Fatalf("denominator of 0 = %s, want 1", denom)
	}
	if !pz.IsZero() {
		t.Fatalf("integral part of 0 = %s, want 0", pz)
	}
}

func Test_MapCoefficients_DropsZeroImages(t *testing.T) {
	r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := r.Variable("x", coeff.NewZ(1))
	y, _ := r.Variable("y", coeff.NewZ(1))
	p := x.Mul(r.Scalar(coeff.NewZ(4))).Add(y.Mul(r.Scalar(coeff.NewZ(9))))

	halved := MapCoefficients(p, func(c coeff.Z) coeff.Z {
		q, _ := c.TryDivide(coeff.NewZ(2))
		return q
	})
	if halved.NTerms() != 1 {
		t.Fatalf("expected the odd-coefficient term to vanish, got %d terms: %s", halved.NTerms(), halved)
	}
	want := x.Mul(r.Scalar(coeff.NewZ(2)))
	if !halved.Equal(want) {
		t.Fatalf("MapCoefficients mismatch: got %s, want %s", halved, want)
	}
}

func Test_MapCoefficients_ChangesRing(t *testing.T) {
	r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := r.Variable("x", coeff.NewZ(1))
	p := x.Mul(r.Scalar(coeff.NewZ(3)))

	asQ := MapCoefficients(p, coeff.QFromInt)
	qr, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	xq, _ := qr.Variable("x", coeff.NewQ(1, 1))
	want := xq.Mul(qr.Scalar(coeff.NewQ(3, 1)))
	if !asQ.Equal(want) {
		t.Fatalf("MapCoefficients to Q mismatch: got %s, want %s", asQ, want)
	}
}
