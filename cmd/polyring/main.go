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

// Command polyring is a small demonstration CLI over this module's
// polynomial ring library: exercising a named coefficient field, building
// a couple of polynomials over it, and printing the result of a
// multiplication or a division-with-remainder. It is not the library's
// primary surface (that is the ring/arith/reduce/promote packages
// themselves); it exists to give the CLI-facing dependencies in this
// module's stack a real host.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-polyring/polyring/coeff"
	"github.com/go-polyring/polyring/reduce"
	"github.com/go-polyring/polyring/ring"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divremCmd)
	rootCmd.AddCommand(fieldsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "polyring",
	Short: "Exact arithmetic over multivariate polynomial rings.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// FieldConfig names a coefficient field this CLI knows how to build a
// ring over, following the corpus's own Name/lookup registry convention
// for known field configurations.
type FieldConfig struct {
	Name string
}

// GF_251 and Q are the coefficient rings this demo CLI supports by name.
var (
	GF_251 = FieldConfig{"GF_251"}
	Q      = FieldConfig{"Q"}
)

// FIELD_CONFIGS determines the set of supported named coefficient rings.
var FIELD_CONFIGS = []FieldConfig{GF_251, Q}

// GetFieldConfig returns the config with the given name, or nil.
func GetFieldConfig(name string) *FieldConfig {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	return nil
}

var mulCmd = &cobra.Command{
	Use:   "mul",
	Short: "Multiply (x+1) by (x-1) over Q[x] and print the result.",
	Run: func(cmd *cobra.Command, args []string) {
		r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		x, err := r.Variable("x", coeff.NewQ(1, 1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		one := r.Scalar(coeff.NewQ(1, 1))
		xPlus1 := x.Add(one)
		xMinus1 := x.Sub(one)
		fmt.Println(r.String(xPlus1.Mul(xMinus1)))
	},
}

var divremCmd = &cobra.Command{
	Use:   "divrem",
	Short: "Divide x^2 by x over Q[x] and print quotient and remainder.",
	Run: func(cmd *cobra.Command, args []string) {
		r, err := ring.NewPolynomialRing[ring.Exp16, coeff.Q](ring.DenseRepr, ring.Lex[ring.Exp16]{}, "x")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		x, err := r.Variable("x", coeff.NewQ(1, 1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xSquared := x.Mul(x)
		quot, rem := reduce.DivRem(reduce.Full, xSquared, x)
		fmt.Printf("quotient=%s remainder=%s\n", r.String(quot), r.String(rem))
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the coefficient fields this demo CLI knows by name.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range FIELD_CONFIGS {
			fmt.Println(c.Name)
		}
	},
}
