// Command effhist computes efficiency histograms and light-curve
// periodograms from CSV files.
//
// Usage:
//
//	effhist compute [flags] data.csv
//	effhist periodogram [flags] series.csv
//
// Examples:
//
//	effhist compute --bins 20 detections.csv
//	effhist compute --exact --min 18 --max 24 detections.csv
//	effhist periodogram --samples 512 lightcurve.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command; the compute and periodogram subcommands
// attach to it in their init functions.
var rootCmd = &cobra.Command{
	Use:   "effhist",
	Short: "Efficiency histogram and light-curve analysis tools",
}

func init() {
	// Flags can be overridden from the environment, e.g. EFFHIST_BINS.
	viper.SetEnvPrefix("effhist")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
