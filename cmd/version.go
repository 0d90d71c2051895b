// =============================================================================
// VR/VA Benefit Purchase Automation - Version Command
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and BuildDate are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/hrops/vrcalc/cmd.Version=1.0.0' -X 'github.com/hrops/vrcalc/cmd.BuildDate=2026-08-01'"
var Version = "1.0.0"
var BuildDate = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("VR/VA Purchase Automation")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
