// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcmctidy/internal/chainio"
	"github.com/katalvlaran/mcmctidy/tidy"
)

func newLongCommand(a *app) *cobra.Command {
	var (
		params []string
		family string
	)

	cmd := &cobra.Command{
		Use:   "long <chain.csv> [chain.csv ...]",
		Short: "Print the draws as a long table",
		Long: `Reshape the chain files into one row per (iteration, chain, parameter, value),
ordered by parameter, then chain, then iteration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			return a.write(cmd, func(w io.Writer, f chainio.Format) error {
				return chainio.WriteLong(w, t, f)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&params, "param", "p", nil, "Parameters to keep, in output order")
	cmd.Flags().StringVar(&family, "family", "", "Regular expression selecting parameters")

	return cmd
}
