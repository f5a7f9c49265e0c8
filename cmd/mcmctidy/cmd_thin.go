// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcmctidy/internal/chainio"
	"github.com/katalvlaran/mcmctidy/summary"
	"github.com/katalvlaran/mcmctidy/tidy"
)

func newThinCommand(a *app) *cobra.Command {
	var (
		every  int
		params []string
		family string
	)

	cmd := &cobra.Command{
		Use:   "thin --every k <chain.csv> [chain.csv ...]",
		Short: "Keep every k-th draw of each chain",
		Long: `Reshape the chain files into a long table and keep the 1st, (1+k)th, (1+2k)th, ...
draw of every (parameter, chain) run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("every") && a.cfg.Every != nil {
				every = *a.cfg.Every
			}
			if every == 0 {
				return errors.New("--every is required")
			}
			names, err := a.parameterFlag(cmd, params)
			if err != nil {
				return err
			}
			opts, err := a.selectionOptions(cmd, names, family)
			if err != nil {
				return err
			}
			c, err := a.readCollection(args, opts...)
			if err != nil {
				return err
			}
			t, err := tidy.ToLong(c)
			if err != nil {
				return err
			}
			thinned, err := summary.Thin(t, every)
			if err != nil {
				return err
			}
			a.logger.Debug("thinned", zap.Int("every", every), zap.Int("before", t.Len()), zap.Int("after", thinned.Len()))

			return a.write(cmd, func(w io.Writer, f chainio.Format) error {
				return chainio.WriteLong(w, thinned, f)
			})
		},
	}

	cmd.Flags().IntVarP(&every, "every", "k", 0, "Thinning factor (>= 1)")
	cmd.Flags().StringSliceVarP(&params, "param", "p", nil, "Parameters to keep, in output order")
	cmd.Flags().StringVar(&family, "family", "", "Regular expression selecting parameters")

	return cmd
}
