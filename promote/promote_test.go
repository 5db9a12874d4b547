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
package promote

import (
	"testing"

	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

func Test_Vars_ReindexesByName(t *testing.T) {
	src, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.DegRevLex[ring.Exp16]{}, "y", "z", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := src.Variable("x", coeff.NewQ(1, 1))
	y, _ := src.Variable("y", coeff.NewQ(1, 1))
	p := x.Mul(x).Add(y)

	got, err := Vars(p, src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xInDst, _ := dst.Variable("x", coeff.NewQ(1, 1))
	yInDst, _ := dst.Variable("y", coeff.NewQ(1, 1))
	want := xInDst.Mul(xInDst).Add(yInDst)
	if !got.Equal(want) {
		t.Fatalf("Vars promotion mismatch: got %s, want %s", got, want)
	}
}

func Test_Vars_RejectsUnknownVariable(t *testing.T) {
	src, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x", "y")
	dst, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	x, _ := src.Variable("x", coeff.NewQ(1, 1))
	y, _ := src.Variable("y", coeff.NewQ(1, 1))
	p := x.Add(y)

	if _, err := Vars(p, src, dst); err == nil {
		t.Fatalf("expected an error promoting a polynomial that uses y into a y-less ring")
	}
}

func Test_ZToQ_IsExact(t *testing.T) {
	zr, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Z](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	qr, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	x, _ := zr.Variable("x", coeff.NewZ(1))
	p := x.Mul(x).Add(zr.Scalar(coeff.NewZ(3)))

	got := ZToQ(p, qr)
	xq, _ := qr.Variable("x", coeff.NewQ(1, 1))
	want := xq.Mul(xq).Add(qr.Scalar(coeff.NewQ(3, 1)))
	if !got.Equal(want) {
		t.Fatalf("ZToQ mismatch: got %s, want %s", got, want)
	}
}

func Test_FromScalar(t *testing.T) {
	r, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	got := FromScalar(r, coeff.NewQ(5, 1))
	if !got.Equal(r.Scalar(coeff.NewQ(5, 1))) {
		t.Fatalf("FromScalar mismatch: got %s", got)
	}
}

func Test_UnionRing_SortsNamesAndForcesDegRevLex(t *testing.T) {
	ra, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "y", "x")
	rb, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.DegLex[ring.Exp16]{}, "z", "x")

	dst := UnionRing(ra, rb)
	if dst.NumVariables() != 3 {
		t.Fatalf("expected 3 variables in the union, got %d", dst.NumVariables())
	}
	wantNames := []string{"x", "y", "z"}
	for i, want := range wantNames {
		name, ok := dst.VarName(uint(i + 1))
		if !ok || name != want {
			t.Fatalf("VarName(%d) = %q, %v; want %q, true", i+1, name, ok, want)
		}
	}
	if dst.Order().Name() != "degrevlex" {
		t.Fatalf("expected union ring order to be degrevlex regardless of operand orders, got %q", dst.Order().Name())
	}
}

func Test_UnionRing_PrefersSparseWhenEitherOperandIs(t *testing.T) {
	ra, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.SparseRepr, ring.Lex[ring.Exp16]{}, "x")
	rb, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "y")

	dst := UnionRing(ra, rb)
	if dst.Repr() != ring.SparseRepr {
		t.Fatalf("expected the union to be Sparse since one operand was Sparse")
	}
}

func Test_ToUnion_PromotesBothOperandsIntoTheSharedRing(t *testing.T) {
	ra, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	rb, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "y")
	x, _ := ra.Variable("x", coeff.NewQ(1, 1))
	y, _ := rb.Variable("y", coeff.NewQ(1, 1))

	qa, qb, dst, err := ToUnion(x, ra, y, rb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Order().Name() != "degrevlex" {
		t.Fatalf("expected the shared ring to use degrevlex, got %q", dst.Order().Name())
	}
	sum := qa.Add(qb)
	xInDst, _ := dst.Variable("x", coeff.NewQ(1, 1))
	yInDst, _ := dst.Variable("y", coeff.NewQ(1, 1))
	if !sum.Equal(xInDst.Add(yInDst)) {
		t.Fatalf("x+y across promoted rings mismatch: got %s", sum)
	}
}

func Test_Tower_BuildsNumberedOuterWithNamedCoefficient(t *testing.T) {
	named, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	numbered := ring.NewNumberedPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.DegRevLex[ring.Exp16]{}, 2)

	outer, err := Tower(named, numbered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outer.NumVariables() != 2 {
		t.Fatalf("expected the tower's outer ring to keep the numbered ring's arity, got %d", outer.NumVariables())
	}

	xInner, _ := named.Variable("x", coeff.NewQ(1, 1))
	coefficient := xInner.Add(named.Scalar(coeff.NewQ(1, 1)))
	outerVar, _ := outer.Variable("x1", coefficient.One())
	term := outer.NewPolynomial(ring.NewTerm[ring.Exp16, ring.Polynomial[ring.Exp16, coeff.Q]](outerVar.Terms()[0].Monomial, coefficient))
	if term.NTerms() != 1 {
		t.Fatalf("expected a single-term tower polynomial")
	}
}

func Test_Tower_RejectsWrongKinds(t *testing.T) {
	named, _ := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
	numbered := ring.NewNumberedPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, 2)

	if _, err := Tower(numbered, named); err == nil {
		t.Fatalf("expected an error when the argument order is swapped")
	}
	if _, err := Tower(named, named); err == nil {
		t.Fatalf("expected an error when the outer ring is not a numbered ring")
	}
}
