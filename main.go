package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/charlerive/putbench/benchmark"
	"github.com/charlerive/putbench/blackscholes"
)

func main() {
	root := &cobra.Command{
		Use:           "putbench",
		Short:         "European put pricing kernels and their benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(priceCmd(), benchCmd())
	if err := root.Execute(); err != nil {
		log.Fatalf("putbench: %v", err)
	}
}

func paramFlags(cmd *cobra.Command, p *blackscholes.OptionParameters) {
	cmd.Flags().Float64Var(&p.Strike, "strike", 60, "strike price")
	cmd.Flags().Float64Var(&p.RiskFreeRate, "rate", 0.01, "risk-free rate, annualized")
	cmd.Flags().Float64Var(&p.DividendYield, "yield", 0.02, "dividend yield, annualized")
	cmd.Flags().Float64Var(&p.TimeToExpiry, "expiry", 1, "time to expiry in years")
	cmd.Flags().Float64Var(&p.Volatility, "vol", 0.05, "volatility, annualized")
}

func priceCmd() *cobra.Command {
	var (
		params  blackscholes.OptionParameters
		spots   []float64
		variant string
	)
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a European put at one or more spot prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel, ok := blackscholes.Lookup(variant)
			if !ok {
				return fmt.Errorf("unknown kernel variant %q", variant)
			}
			values, err := kernel.Evaluate(spots, params)
			if err != nil {
				return err
			}
			for i, s := range spots {
				fmt.Printf("spot %g\tput %.6f\n", s, values[i])
			}
			return nil
		},
	}
	paramFlags(cmd, &params)
	cmd.Flags().Float64SliceVar(&spots, "spot", []float64{55, 56, 57, 58, 59, 60}, "spot prices")
	cmd.Flags().StringVar(&variant, "variant", "scalar", "kernel variant to use")
	return cmd
}

func benchCmd() *cobra.Command {
	var (
		params       blackscholes.OptionParameters
		size         int
		replications int
		low, high    float64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every kernel variant over one spot grid and rank them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 2 {
				return fmt.Errorf("size %d must be >= 2", size)
			}
			prices := make([]float64, size)
			floats.Span(prices, low, high)
			results, err := benchmark.Run(blackscholes.Variants(), prices, params, replications)
			if err != nil {
				return err
			}
			return benchmark.WriteReport(os.Stdout, results)
		},
	}
	paramFlags(cmd, &params)
	cmd.Flags().IntVar(&size, "size", 100000, "number of spot prices")
	cmd.Flags().IntVar(&replications, "replications", 100, "timed runs per variant")
	cmd.Flags().Float64Var(&low, "low", 30, "lowest spot price")
	cmd.Flags().Float64Var(&high, "high", 90, "highest spot price")
	return cmd
}
