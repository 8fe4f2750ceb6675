package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-astro/lightcurve"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var periodogramCmd = &cobra.Command{
	Use:   "periodogram [flags] <csv>",
	Short: "Estimate the power spectrum of a time,flux series",
	Long: `Periodogram resamples an irregularly sampled time,flux series onto a
uniform grid and reports its one-sided power spectrum.`,
	Args: cobra.ExactArgs(1),
	RunE: runPeriodogram,
}

func init() {
	rootCmd.AddCommand(periodogramCmd)

	periodogramCmd.Flags().Int("samples", 256, "number of uniform resampling points")

	viper.BindPFlag("samples", periodogramCmd.Flags().Lookup("samples"))
}

func runPeriodogram(cmd *cobra.Command, args []string) error {
	curve, err := readSeries(args[0])
	if err != nil {
		return err
	}

	times, flux, err := lightcurve.Resample(curve, viper.GetInt("samples"))
	if err != nil {
		return err
	}

	freqs, power, err := lightcurve.Periodogram(flux, times[1]-times[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FREQ\tPOWER")

	for i := range freqs {
		fmt.Fprintf(w, "%.6g\t%.6g\n", freqs[i], power[i])
	}

	return w.Flush()
}

// readSeries parses CSV rows of the form time,flux.
func readSeries(path string) (lightcurve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	curve := make(lightcurve.Curve, 0, len(records))

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: row %d: need time,flux columns", path, i+1)
		}

		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad time %q: %w", path, i+1, rec[0], err)
		}

		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad flux %q: %w", path, i+1, rec[1], err)
		}

		curve = append(curve, lightcurve.Point{Time: t, Flux: v})
	}

	return curve, nil
}
