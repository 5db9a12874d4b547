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

func newXYRing(t *testing.T) *ring.Ring[ring.Exp16, coeff.Q] {
	t.Helper()
	r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func Test_Add_Mul_Neg_MatchPolynomialMethods(t *testing.T) {
	r := newXYRing(t)
	x, _ := r.Variable("x", coeff.NewQ(1, 1))
	y, _ := r.Variable("y", coeff.NewQ(1, 1))

	if !Add(x, y).Equal(x.Add(y)) {
		t.Fatalf("Add did not match Polynomial.Add")
	}
	if !Mul(x, y).Equal(x.Mul(y)) {
		t.Fatalf("Mul did not match Polynomial.Mul")
	}
	if !Sub(x, y).Equal(x.Sub(y)) {
		t.Fatalf("Sub did not match Polynomial.Sub")
	}
	if !Neg(x).Equal(x.Neg()) {
		t.Fatalf("Neg did not match Polynomial.Neg")
	}
	if !Pow(x, 3).Equal(x.Pow(3)) {
		t.Fatalf("Pow did not match Polynomial.Pow")
	}
	if !Diff(x.Mul(x), 1).Equal(x.Mul(x).Diff(1)) {
		t.Fatalf("Diff did not match Polynomial.Diff")
	}
}

func Test_TryAddAssign_ReportsExistingMonomial(t *testing.T) {
	r := newXYRing(t)
	x, _ := r.Variable("x", coeff.NewQ(1, 1))
	xTerm := x.Terms()[0]
	yTerm := ring.NewTerm[ring.Exp16, coeff.Q](x.Terms()[0].Monomial, coeff.NewQ(0, 1))
	_ = yTerm

	sum, existed := TryAddAssign(x, xTerm)
	if !existed {
		t.Fatalf("expected the x monomial to already be present")
	}
	if !sum.Equal(r.Scalar(coeff.NewQ(2, 1)).Mul(x)) {
		t.Fatalf("2x mismatch: got %s", sum)
	}

	y, _ := r.Variable("y", coeff.NewQ(1, 1))
	sum2, existed2 := TryAddAssign(x, y.Terms()[0])
	if existed2 {
		t.Fatalf("did not expect y's monomial to already be present in x")
	}
	if !sum2.Equal(x.Add(y)) {
		t.Fatalf("x+y mismatch: got %s", sum2)
	}
}
