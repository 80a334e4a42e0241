package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polytab/poly"
	"github.com/tuneinsight/polytab/tabulate"
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Measure rounding drift of float64 tabulation against direct evaluation.",
	Long: `Tabulation accumulates rounding error additively across steps while direct
evaluation recomputes each point from scratch. This command reports the
absolute error statistics of a run, which is the measurement to consult when
picking a --refresh interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coeffs, _ := cmd.Flags().GetString("coeffs")
		count, _ := cmd.Flags().GetInt("count")
		refresh, _ := cmd.Flags().GetInt("refresh")

		c, err := parseFloats(coeffs)
		if err != nil {
			return err
		}
		p, err := poly.NewPolynomial[float64](poly.Number[float64]{}, c)
		if err != nil {
			return err
		}

		x0, err := parseFloat(cmd.Flag("x0").Value.String())
		if err != nil {
			return fmt.Errorf("invalid --x0: %w", err)
		}
		step, err := parseFloat(cmd.Flag("step").Value.String())
		if err != nil {
			return fmt.Errorf("invalid --step: %w", err)
		}

		report, err := tabulate.Drift(p,
			poly.Progression[float64]{X0: x0, Step: step, N: count},
			tabulate.Config{RefreshEvery: refresh})
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"degree":  p.Degree(),
			"points":  count,
			"refresh": refresh,
			"max":     report.Max,
			"mean":    report.Mean,
			"median":  report.Median,
		}).Info("drift report")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(driftCmd)

	driftCmd.Flags().String("coeffs", "", "comma-separated coefficients, lowest degree first")
	driftCmd.Flags().String("x0", "0", "first evaluation point")
	driftCmd.Flags().String("step", "1", "progression step")
	driftCmd.Flags().Int("count", 1000, "number of points")
	driftCmd.Flags().Int("refresh", 0, "rebuild the difference table every N points (0 disables)")
	cobra.CheckErr(driftCmd.MarkFlagRequired("coeffs"))
}
