/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Lazyartist1/Non-Flow-processes-calculator/thermo"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a single process calculation and print the result",
	Long: `
Computes the final state, energy terms and diagram curves for one closed
system process without starting the HTTP server.

nonflow calc -p isothermal -s idealGas --P1 100 --V1 1 --T1 300 --V2 2`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		process, _ := cmd.Flags().GetString("process")
		substance, _ := cmd.Flags().GetString("substance")
		mass, _ := cmd.Flags().GetFloat64("mass")
		gasFile, _ := cmd.Flags().GetString("gasFile")

		// Only flags the user actually set become inputs, so the engine's
		// own fallbacks apply for the rest.
		var in thermo.StateInput
		setIf := func(name string, dst **float64) {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetFloat64(name)
				*dst = &v
			}
		}
		setIf("P1", &in.P1)
		setIf("V1", &in.V1)
		setIf("T1", &in.T1)
		setIf("P2", &in.P2)
		setIf("V2", &in.V2)
		setIf("T2", &in.T2)
		setIf("n", &in.N)

		kind, err := thermo.ParseKind(process)
		if err != nil {
			log.Fatal(err)
		}
		tbl := thermo.NewTable()
		if gasFile != "" {
			if err := tbl.MergeFile(gasFile); err != nil {
				log.Fatal(err)
			}
		}
		res, err := tbl.Calculate(kind, substance, in, mass)
		if err != nil {
			log.Fatal(err)
		}
		printResult(kind, res)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringP("process", "p", string(thermo.ConstantVolume), "process kind: constantVolume, constantPressure, isothermal, adiabatic, polytropic")
	calcCmd.Flags().StringP("substance", "s", "idealGas", "substance key from the gas property table")
	calcCmd.Flags().Float64("P1", 0, "initial pressure (kPa)")
	calcCmd.Flags().Float64("V1", 0, "initial volume (m^3)")
	calcCmd.Flags().Float64("T1", 0, "initial temperature (K)")
	calcCmd.Flags().Float64("P2", 0, "target pressure (kPa), optional")
	calcCmd.Flags().Float64("V2", 0, "target volume (m^3), optional, default 2*V1")
	calcCmd.Flags().Float64("T2", 0, "target temperature (K), optional, default 1.5*T1")
	calcCmd.Flags().Float64("n", thermo.DefaultPolytropicIndex, "polytropic index")
	calcCmd.Flags().Float64("mass", 1.0, "gas mass (kg)")
	calcCmd.Flags().String("gasFile", "", "YAML substance override file")
	calcCmd.Flags().Bool("profile", false, "write a CPU profile for the calculation")
}

func printResult(kind thermo.Kind, res *thermo.Result) {
	fmt.Printf("\"%s\"\t= Process\n", kind.DisplayName())
	fmt.Printf("[%s]\t= Equation\n", kind.Equation())
	fmt.Printf("%8.5f\t\t= P2 (kPa)\n", res.P2)
	fmt.Printf("%8.5f\t\t= V2 (m^3)\n", res.V2)
	fmt.Printf("%8.5f\t\t= T2 (K)\n", res.T2)
	fmt.Printf("%8.5f\t\t= W (kJ)\n", res.W)
	fmt.Printf("%8.5f\t\t= Q (kJ)\n", res.Q)
	fmt.Printf("%8.5f\t\t= deltaU (kJ)\n", res.DeltaU)
	fmt.Printf("%8.5f\t\t= deltaS (kJ/K)\n", res.DeltaS)
	fmt.Printf("[%d]\t\t\t= samples per diagram curve\n", len(res.PVData))
}
