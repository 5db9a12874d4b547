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
package reduce

import (
	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/ring"
)

// DivRemVector divides p by an ordered family of divisors, per the
// division algorithm's restart-to-the-first-divisor rule: whenever a term
// is cancelled against divisors[i], the search for the next term to
// cancel restarts at divisors[0].
func DivRemVector[E ring.Exponent, C coeff.Ring[C]](mode Mode, p ring.Polynomial[E, C], divisors []ring.Polynomial[E, C]) ([]ring.Polynomial[E, C], ring.Polynomial[E, C]) {
	return p.DivRemVector(mode, divisors)
}
