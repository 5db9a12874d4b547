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

import (
	"testing"

	"github.com/go-polyring/polyring/coeff"
)

func Test_DivRem_SingleVariable_ExactQuotient(t *testing.T) {
	r := mustRing(t, "x")
	x, _ := r.Variable("x", q(1))
	x2 := x.Mul(x)
	quot, rem := x2.DivRem(FullMode, x)
	if !quot.Equal(x) {
		t.Fatalf("quotient = %s, want %s", quot, x)
	}
	if !rem.IsZero() {
		t.Fatalf("remainder = %s, want 0", rem)
	}
}

func Test_DivRem_ConstantByVariable_NoQuotient(t *testing.T) {
	r := mustRing(t, "x")
	x, _ := r.Variable("x", q(1))
	one := r.Scalar(q(1))
	quot, rem := one.DivRem(FullMode, x)
	if !quot.IsZero() {
		t.Fatalf("quotient = %s, want 0", quot)
	}
	if !rem.Equal(one) {
		t.Fatalf("remainder = %s, want 1", rem)
	}
}

func Test_DivRem_TwoVariables_FullyReduces(t *testing.T) {
	r := mustRing(t, "x", "y")
	x, _ := r.Variable("x", q(1))
	y, _ := r.Variable("y", q(1))
	one := r.Scalar(q(1))
	dividend := x.Mul(x).Add(y.Mul(y)).Add(one)
	quots, rem := dividend.DivRemVector(FullMode, []Polynomial[Exp16, coeff.Q]{x, y})
	reconstructed := quots[0].Mul(x).Add(quots[1].Mul(y)).Add(rem)
	if !reconstructed.Equal(dividend) {
		t.Fatalf("quotient/remainder do not reconstruct the dividend: got %s, want %s", reconstructed, dividend)
	}
}

func Test_DivRemVector_RestartsFromFirstDivisor(t *testing.T) {
	// f = x^2*y + x*y^2 + y^2, divisors [x*y - 1, y^2 - 1] (lex, x>y):
	// classical example where restart-to-i=1 matters for the remainder.
	r := mustRing(t, "x", "y")
	x, _ := r.Variable("x", q(1))
	y, _ := r.Variable("y", q(1))
	one := r.Scalar(q(1))
	f := x.Mul(x).Mul(y).Add(x.Mul(y).Mul(y)).Add(y.Mul(y))
	g1 := x.Mul(y).Sub(one)
	g2 := y.Mul(y).Sub(one)
	quots, rem := f.DivRemVector(FullMode, []Polynomial[Exp16, coeff.Q]{g1, g2})
	reconstructed := quots[0].Mul(g1).Add(quots[1].Mul(g2)).Add(rem)
	if !reconstructed.Equal(f) {
		t.Fatalf("reconstruction failed: got %s, want %s", reconstructed, f)
	}
}

func Test_DivRem_LeadModeStopsAtFirstMiss(t *testing.T) {
	r := mustRing(t, "x", "y")
	x, _ := r.Variable("x", q(1))
	y, _ := r.Variable("y", q(1))
	dividend := x.Add(y)
	// y does not divide the leading term x under lex, and LeadMode never
	// looks past the leading term, so the entire dividend becomes
	// remainder even though y itself divides the trailing term.
	quot, rem := dividend.DivRem(LeadMode, y)
	if !quot.IsZero() {
		t.Fatalf("expected zero quotient under LeadMode, got %s", quot)
	}
	if !rem.Equal(dividend) {
		t.Fatalf("expected the whole dividend as remainder, got %s", rem)
	}
}

func Test_DivRem_FullModeFindsTrailingDivisibleTerm(t *testing.T) {
	r := mustRing(t, "x", "y")
	x, _ := r.Variable("x", q(1))
	y, _ := r.Variable("y", q(1))
	dividend := x.Add(y)
	quot, rem := dividend.DivRem(FullMode, y)
	if !quot.Equal(r.Scalar(q(1))) {
		t.Fatalf("expected quotient 1 under FullMode, got %s", quot)
	}
	if !rem.Equal(x) {
		t.Fatalf("expected remainder x, got %s", rem)
	}
}

func Test_DivRem_ZeroDivisor_Panics(t *testing.T) {
	r := mustRing(t, "x")
	x, _ := r.Variable("x", q(1))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected DivRem to panic on a zero divisor")
		}
	}()
	x.DivRem(FullMode, r.Zero())
}

func Test_DivRemVector_SkipsZeroDivisorsInsteadOfPanicking(t *testing.T) {
	r := mustRing(t, "x", "y")
	x, _ := r.Variable("x", q(1))
	y, _ := r.Variable("y", q(1))
	dividend := x.Mul(x).Add(y)
	divisors := []Polynomial[Exp16, coeff.Q]{r.Zero(), x, r.Zero()}

	quots, rem := dividend.DivRemVector(FullMode, divisors)
	if !quots[0].IsZero() || !quots[2].IsZero() {
		t.Fatalf("expected the zero divisors' quotients to stay zero, got %s and %s", quots[0], quots[2])
	}
	reconstructed := quots[0].Mul(divisors[0]).Add(quots[1].Mul(divisors[1])).Add(quots[2].Mul(divisors[2])).Add(rem)
	if !reconstructed.Equal(dividend) {
		t.Fatalf("reconstruction failed: got %s, want %s", reconstructed, dividend)
	}
}
