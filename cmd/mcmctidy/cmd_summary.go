// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcmctidy/internal/chainio"
	"github.com/katalvlaran/mcmctidy/summary"
)

func newSummaryCommand(a *app) *cobra.Command {
	var (
		confLevel float64
		perChain  bool
		workers   int
		params    []string
		family    string
	)

	cmd := &cobra.Command{
		Use:   "summary <chain.csv> [chain.csv ...]",
		Short: "Print mean, SD, median and credible interval per parameter",
		Long: `Summarize the chain files. Chains are pooled unless --per-chain is given; the
credible interval bounds are the (1-p)/2 and 1-(1-p)/2 quantiles for --conf-level p.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("conf-level") && a.cfg.ConfLevel != nil {
				confLevel = *a.cfg.ConfLevel
			}
			if !flags.Changed("per-chain") && a.cfg.PerChain != nil {
				perChain = *a.cfg.PerChain
			}
			if !flags.Changed("workers") && a.cfg.Workers != nil {
				workers = *a.cfg.Workers
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", workers)
			}
			names, err := a.parameterFlag(cmd, params)
			if err != nil {
				return err
			}
			// Unselected columns are pruned before the missing-value check.
			opts, err := a.selectionOptions(cmd, names, family)
			if err != nil {
				return err
			}
			c, err := a.readCollection(args, opts...)
			if err != nil {
				return err
			}

			sumOpts := []summary.Option{
				summary.WithConfLevel(confLevel),
				summary.WithWorkers(workers),
				summary.WithLogger(a.logger),
			}
			if perChain {
				sumOpts = append(sumOpts, summary.WithPerChain())
			}
			s, err := summary.SummarizeCollection(c, sumOpts...)
			if err != nil {
				return err
			}

			return a.write(cmd, func(w io.Writer, f chainio.Format) error {
				return chainio.WriteSummary(w, s, f)
			})
		},
	}

	cmd.Flags().Float64Var(&confLevel, "conf-level", summary.DefaultConfLevel, "Credible interval level, 0 < p < 1")
	cmd.Flags().BoolVar(&perChain, "per-chain", false, "Summarize each chain separately")
	cmd.Flags().IntVarP(&workers, "workers", "w", summary.DefaultWorkers, "Goroutines used for the summary")
	cmd.Flags().StringSliceVarP(&params, "param", "p", nil, "Parameters to summarize, in output order")
	cmd.Flags().StringVar(&family, "family", "", "Regular expression selecting parameters")

	return cmd
}
