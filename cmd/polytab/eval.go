package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polytab/poly"
	"github.com/tuneinsight/polytab/tabulate"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Print the values of a polynomial over an arithmetic progression.",
	Long: `Print one "x value" pair per line. Coefficients are given lowest degree
first, so --coeffs 0,0,1 is x^2. With --exact, coefficients and points are
parsed as exact rationals (decimals or fractions like 2/3).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coeffs, _ := cmd.Flags().GetString("coeffs")
		x0, _ := cmd.Flags().GetString("x0")
		step, _ := cmd.Flags().GetString("step")
		count, _ := cmd.Flags().GetInt("count")
		mode, _ := cmd.Flags().GetString("mode")
		refresh, _ := cmd.Flags().GetInt("refresh")
		exact, _ := cmd.Flags().GetBool("exact")

		cfg := tabulate.Config{RefreshEvery: refresh}
		switch mode {
		case "auto":
		case "direct":
			cfg.Strategy = tabulate.StrategyDirect
		case "tabulate":
			cfg.Strategy = tabulate.StrategyTabulate
		default:
			return fmt.Errorf("invalid --mode %q: want auto, direct or tabulate", mode)
		}

		if exact {
			return evalExact(cmd.OutOrStdout(), coeffs, x0, step, count, cfg)
		}
		return evalFloat(cmd.OutOrStdout(), coeffs, x0, step, count, cfg)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().String("coeffs", "", "comma-separated coefficients, lowest degree first")
	evalCmd.Flags().String("x0", "0", "first evaluation point")
	evalCmd.Flags().String("step", "1", "progression step")
	evalCmd.Flags().Int("count", 1, "number of points")
	evalCmd.Flags().String("mode", "auto", "evaluation mode: auto, direct or tabulate")
	evalCmd.Flags().Int("refresh", 0, "rebuild the difference table every N points (0 disables)")
	evalCmd.Flags().Bool("exact", false, "use exact rational arithmetic")
	cobra.CheckErr(evalCmd.MarkFlagRequired("coeffs"))
}

func evalFloat(w io.Writer, coeffs, x0, step string, count int, cfg tabulate.Config) error {
	c, err := parseFloats(coeffs)
	if err != nil {
		return err
	}
	p, err := poly.NewPolynomial[float64](poly.Number[float64]{}, c)
	if err != nil {
		return err
	}

	start, err := parseFloat(x0)
	if err != nil {
		return fmt.Errorf("invalid --x0: %w", err)
	}
	h, err := parseFloat(step)
	if err != nil {
		return fmt.Errorf("invalid --step: %w", err)
	}

	log.Debugf("evaluating degree-%d polynomial at %d points", p.Degree(), count)

	// Evaluate honors cfg.Strategy; a Tabulator would always tabulate.
	prog := poly.Progression[float64]{X0: start, Step: h, N: count}
	values, err := tabulate.Evaluate(p, prog, cfg)
	if err != nil {
		return err
	}
	for i, x := range prog.Points(p.Arith(), count) {
		fmt.Fprintf(w, "%v %v\n", x, values[i])
	}
	return nil
}

func evalExact(w io.Writer, coeffs, x0, step string, count int, cfg tabulate.Config) error {
	c, err := parseRats(coeffs)
	if err != nil {
		return err
	}
	p, err := poly.NewPolynomial[*big.Rat](poly.BigRat{}, c)
	if err != nil {
		return err
	}

	start, err := parseRat(x0)
	if err != nil {
		return err
	}
	h, err := parseRat(step)
	if err != nil {
		return err
	}

	log.Debugf("evaluating degree-%d polynomial at %d points (exact)", p.Degree(), count)

	prog := poly.Progression[*big.Rat]{X0: start, Step: h, N: count}
	values, err := tabulate.Evaluate(p, prog, cfg)
	if err != nil {
		return err
	}
	for i, x := range prog.Points(p.Arith(), count) {
		fmt.Fprintf(w, "%s %s\n", x.RatString(), values[i].RatString())
	}
	return nil
}
