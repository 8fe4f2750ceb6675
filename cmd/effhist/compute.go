package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-astro/stats/eff"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var computeCmd = &cobra.Command{
	Use:   "compute [flags] <csv>",
	Short: "Compute an efficiency histogram from value,success rows",
	Long: `Compute bins the first CSV column and reports the fraction of rows whose
second column is a true value (1, t, true, ...) in each bin, with errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().Int("bins", 10, "number of equal-width bins")
	computeCmd.Flags().Float64("min", 0, "lower range bound (requires --max)")
	computeCmd.Flags().Float64("max", 0, "upper range bound (requires --min)")
	computeCmd.Flags().Bool("exact", false, "compute exact credible-interval errors")
	computeCmd.Flags().Bool("all", false, "include empty bins in the output")
	computeCmd.Flags().Float64("step", 0, "integration step for --exact (0 = default)")

	viper.BindPFlag("bins", computeCmd.Flags().Lookup("bins"))
	viper.BindPFlag("exact", computeCmd.Flags().Lookup("exact"))
	viper.BindPFlag("step", computeCmd.Flags().Lookup("step"))
}

func runCompute(cmd *cobra.Command, args []string) error {
	x, success, err := readTrials(args[0])
	if err != nil {
		return err
	}

	opts := []eff.Option{
		eff.WithBins(viper.GetInt("bins")),
		eff.WithFullErrors(viper.GetBool("exact")),
		eff.WithStep(viper.GetFloat64("step")),
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		opts = append(opts, eff.WithReturnAll(true))
	}

	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		lo, _ := cmd.Flags().GetFloat64("min")
		hi, _ := cmd.Flags().GetFloat64("max")
		opts = append(opts, eff.WithRange(lo, hi))
	}

	res, err := eff.Compute(x, success, opts...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CENTER\tTOTAL\tSUCCESS\tP\tERRLOW\tERRHIGH")

	for i := range res.Centers {
		fmt.Fprintf(w, "%.6g\t%d\t%d\t%.6g\t%.6g\t%.6g\n",
			res.Centers[i], res.Total[i], res.Successes[i],
			res.P[i], res.ErrLow[i], res.ErrHigh[i])
	}

	return w.Flush()
}

// readTrials parses CSV rows of the form value,success.
func readTrials(path string) ([]float64, []bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	x := make([]float64, 0, len(records))
	success := make([]bool, 0, len(records))

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("%s: row %d: need value,success columns", path, i+1)
		}

		v, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: bad value %q: %w", path, i+1, rec[0], err)
		}

		ok, err := strconv.ParseBool(rec[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: bad success %q: %w", path, i+1, rec[1], err)
		}

		x = append(x, v)
		success = append(success, ok)
	}

	return x, success, nil
}
