// =============================================================================
// VR/VA Benefit Purchase Automation - Main Entry Point
// =============================================================================
//
// vrcalc consolidates the monthly personnel spreadsheets (active roster,
// vacations, terminations, admissions, reference tables and exclusion bases),
// computes the meal/transport voucher entitlement per employee and writes the
// final purchase ledger in the exact layout expected by the benefits vendor.
//
// USAGE:
//   vrcalc generate        - Compute the ledger for a target period
//   vrcalc version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : core business logic (not for external import)
//   - pkg/           : shared utilities
//
// =============================================================================

package main

import (
	"github.com/hrops/vrcalc/cmd"
)

func main() {
	cmd.Execute()
}
