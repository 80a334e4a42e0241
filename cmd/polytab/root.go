package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "polytab",
	Short: "Tabulate polynomial values over arithmetic progressions.",
	Long: `polytab evaluates a polynomial at the points x0, x0+step, x0+2*step, ...
using Newton's forward-difference method, falling back to direct Horner
evaluation when the point count does not justify the bootstrap cost.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseFloats parses a comma-separated coefficient list, lowest degree first.
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", p, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}

// parseRats parses a comma-separated coefficient list, lowest degree first.
// Each entry is either a decimal or a fraction like 2/3.
func parseRats(s string) ([]*big.Rat, error) {
	parts := strings.Split(s, ",")
	out := make([]*big.Rat, len(parts))
	for i, p := range parts {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("invalid coefficient %q", p)
		}
		out[i] = r
	}
	return out, nil
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return r, nil
}
