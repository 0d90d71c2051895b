// =============================================================================
// VR/VA Benefit Purchase Automation - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the subcommands ('generate', 'version') are attached
// to. It owns the global flags shared by every subcommand.
//
// COBRA CLI STRUCTURE:
//   rootCmd (vrcalc)
//   ├── generateCmd (vrcalc generate)
//   └── versionCmd (vrcalc version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug-level logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vrcalc",
	Short: "VR/VA purchase automation - compute the monthly voucher ledger",
	Long: `vrcalc automates the monthly meal/transport voucher (VR/VA) purchase.

It consolidates the personnel spreadsheets for a target period, applies the
eligibility exclusions (interns, apprentices, on leave, overseas, directors),
resolves working days and daily values from the union reference tables, and
prorates the entitlement around vacation, termination and admission events.

The result is a single-sheet xlsx ledger in the exact column layout expected
by the benefits vendor:
  Matricula, Admissão, Sindicato do Colaborador, Competência, Dias,
  VALOR DIÁRIO VR, TOTAL, Custo empresa, Desconto profissional, OBS GERAL

Example Usage:
  vrcalc generate                                # default period, generated file name
  vrcalc generate --competencia 2025-05          # explicit target period
  vrcalc generate --saida VR_FINAL.xlsx          # explicit output path`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (built-in defaults apply when absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}
