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

import "fmt"

// Kind identifies the category of an Error, so callers can distinguish
// failure modes with errors.As without parsing message strings.
type Kind uint8

const (
	// ErrDivisionByZero indicates an attempt to divide by the zero
	// polynomial.
	ErrDivisionByZero Kind = iota
	// ErrNotDivisible indicates a monomial or coefficient division was
	// required to be exact but was not.
	ErrNotDivisible
	// ErrCoefficientOverflow indicates an exact coefficient could not be
	// represented in the declared coefficient type. Arises in
	// exponentiation, where multinomial coefficients are computed exactly.
	ErrCoefficientOverflow
	// ErrIncompatibleVariables indicates a conversion or promotion would
	// have dropped a nonzero exponent on a variable absent from the target
	// ring.
	ErrIncompatibleVariables
	// ErrDuplicateVariable indicates ring construction named the same
	// variable twice, or named a variable already present in the base
	// ring's variable set.
	ErrDuplicateVariable
	// ErrInvariantViolation indicates an internal consistency check
	// failed. This is a defect in this library, not a user error.
	ErrInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case ErrDivisionByZero:
		return "division-by-zero"
	case ErrNotDivisible:
		return "not-divisible"
	case ErrCoefficientOverflow:
		return "coefficient-overflow"
	case ErrIncompatibleVariables:
		return "incompatible-variables"
	case ErrDuplicateVariable:
		return "duplicate-variable"
	case ErrInvariantViolation:
		return "invariant-violation"
	default:
		return "unknown-error"
	}
}

// Error is the single error type produced by this module. Callers
// distinguish failure modes with errors.As and the Kind field, rather than
// matching on message text.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError constructs an *Error for the given kind and message.
func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
