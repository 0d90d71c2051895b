// =============================================================================
// VR/VA Benefit Purchase Automation - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full purchase
// pipeline for one target period.
//
// COMMAND USAGE:
//   vrcalc generate [flags]
//
// FLAGS:
//   --competencia : Target period as YYYY-MM (default from configuration)
//   --saida       : Output xlsx path (default: generated timestamped name)
//   --dry-run     : Compute and report without writing the output file
//
// PIPELINE:
//   1. Load configuration (yaml + env overrides)
//   2. Load the named source spreadsheets from the search directories
//   3. Normalize identifier/union columns, build exclusions and lookups
//   4. Consolidate life-cycle records and compute each entitlement
//   5. Write the single-sheet ledger and report counts
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hrops/vrcalc/internal/config"
	"github.com/hrops/vrcalc/internal/engine"
	"github.com/hrops/vrcalc/internal/xlsxio"
)

// competencia is the target period flag value (YYYY-MM).
var competencia string

// saida is the output path flag value.
var saida string

// dryRun computes without writing the output artifact.
var dryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compute the VR/VA purchase ledger for a target period",
	Long: `The generate command loads the personnel spreadsheets from the configured
search directories, applies the eligibility exclusions and the proration
rules for the target period, and writes the final purchase ledger.

The run either produces a complete ledger covering every non-excluded
employee, or aborts entirely with a clear reason. A missing auxiliary source
never aborts the run; only a missing or identifier-less active roster does.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&competencia,
		"competencia",
		"",
		"Target period as YYYY-MM (default from configuration)",
	)

	generateCmd.Flags().StringVar(
		&saida,
		"saida",
		"",
		"Output xlsx path (default: VR_FINAL_<timestamp>_<run>.xlsx)",
	)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Compute and report without writing the output file",
	)
}

// runGenerate orchestrates one purchase run.
func runGenerate() error {
	startTime := time.Now()
	runID := uuid.NewString()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !verbose {
		logrus.SetLevel(cfg.ParseLevel())
	}
	logrus.WithField("run_id", runID).Info("vrcalc generate")

	// An unparsable period falls back to the configured default rather than
	// aborting, matching the historical process.
	periodStr := strings.TrimSpace(competencia)
	if periodStr == "" {
		periodStr = cfg.Period
	}
	period, err := engine.ParsePeriod(periodStr)
	if err != nil {
		logrus.WithField("competencia", periodStr).Warn("invalid period, using configured default")
		if period, err = engine.ParsePeriod(cfg.Period); err != nil {
			return fmt.Errorf("configured default period is invalid: %w", err)
		}
	}

	loader := xlsxio.NewLoader(cfg.DataDirs...)

	rows, stats, err := engine.Run(cfg, period, loader)
	if err != nil {
		return err
	}

	outPath := strings.TrimSpace(saida)
	if outPath == "" {
		outPath = fmt.Sprintf("VR_FINAL_%s_%s.xlsx",
			time.Now().Format("20060102_150405"), runID[:8])
	}

	if dryRun {
		logrus.Info("dry run, skipping output file")
	} else if err := xlsxio.WriteLedger(outPath, rows); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	fmt.Println("=== VR/VA Purchase Run ===")
	fmt.Printf("Period:           %s\n", period)
	fmt.Printf("Roster rows:      %d\n", stats.RosterRows)
	fmt.Printf("Excluded:         %d\n", stats.Excluded)
	fmt.Printf("Ledger rows:      %d\n", stats.Records)
	fmt.Printf("Days mappings:    %d\n", stats.DaysEntries)
	fmt.Printf("Value mappings:   %d\n", stats.ValueEntries)
	if !dryRun {
		fmt.Printf("Output file:      %s\n", outPath)
	}
	fmt.Printf("Time elapsed:     %s\n", time.Since(startTime))

	return nil
}
