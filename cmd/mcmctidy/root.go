// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mcmctidy/internal/chainio"
	"github.com/katalvlaran/mcmctidy/samples"
)

var version = "dev"

// errEmptyName is returned for an empty --param value.
var errEmptyName = errors.New("empty parameter name")

// app holds state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	configPath string
	format     string
	output     string
	firstIter  int
	thinEvery  int

	cfg    fileConfig
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "mcmctidy",
		Short: "Tidy and summarize MCMC chain files",
		Long: `mcmctidy reads one CSV file per MCMC chain (header row of parameter names,
one row per iteration; .gz and .zst files are decompressed) and prints the draws
as a long table, a per-parameter summary, or a thinned long table.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.format, "format", "f", string(chainio.FormatCSV), "Output format: csv or yaml")
	pf.StringVarP(&a.output, "output", "o", "", "Write to file instead of stdout (.gz/.zst compress)")
	pf.IntVar(&a.firstIter, "first-iteration", samples.DefaultFirstIteration, "Sampler iteration number of the first row")
	pf.IntVar(&a.thinEvery, "thin-interval", samples.DefaultThin, "Sampler iterations between recorded rows")

	cmd.AddCommand(newLongCommand(a))
	cmd.AddCommand(newSummaryCommand(a))
	cmd.AddCommand(newThinCommand(a))

	return cmd
}

// init builds the logger and loads the config file. Explicit flags win over the file.
func (a *app) init(cmd *cobra.Command) error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if a.configPath != "" {
		if a.cfg, err = loadConfig(a.configPath); err != nil {
			return err
		}
		a.logger.Debug("config loaded", zap.String("path", a.configPath))
		if a.cfg.Format != "" && !cmd.Flags().Changed("format") {
			a.format = a.cfg.Format
		}
	}

	return nil
}

// readCollection reads the chain files and builds a validated collection.
func (a *app) readCollection(paths []string, opts ...samples.Option) (*samples.Collection, error) {
	if a.firstIter < 1 || a.thinEvery < 1 {
		return nil, errors.New("--first-iteration and --thin-interval must be >= 1")
	}
	opts = append([]samples.Option{
		samples.WithFirstIteration(a.firstIter),
		samples.WithThinInterval(a.thinEvery),
	}, opts...)
	src, err := chainio.ReadChains(paths...)
	if err != nil {
		return nil, err
	}
	c, err := samples.New(src, opts...)
	if err != nil {
		return nil, err
	}
	attrs := c.Attributes()
	a.logger.Debug("chains read",
		zap.Strings("files", paths),
		zap.Int("chains", attrs.Chains),
		zap.Int("iterations", attrs.Iterations),
		zap.Int("parameters", attrs.Parameters))

	return c, nil
}

// write sends the encoded result to --output or the command's stdout.
// A failed write removes the partial --output file.
func (a *app) write(cmd *cobra.Command, encode func(io.Writer, chainio.Format) error) error {
	f, err := chainio.ParseFormat(a.format)
	if err != nil {
		return err
	}
	if a.output == "" {
		return encode(cmd.OutOrStdout(), f)
	}

	w, err := chainio.Create(a.output)
	if err != nil {
		return err
	}
	if err := encode(w, f); err != nil {
		_ = w.Close()
		_ = os.Remove(a.output)

		return err
	}
	if err := w.Close(); err != nil {
		_ = os.Remove(a.output)

		return err
	}
	a.logger.Debug("output written", zap.String("path", a.output))

	return nil
}

// parameterFlag resolves --param against the config file.
func (a *app) parameterFlag(cmd *cobra.Command, flag []string) ([]string, error) {
	names := flag
	if !cmd.Flags().Changed("param") && len(a.cfg.Parameters) > 0 {
		names = a.cfg.Parameters
	}
	for _, n := range names {
		if n == "" {
			return nil, errEmptyName
		}
	}

	return names, nil
}

// familyFlag resolves --family against the config file and compiles it.
func (a *app) familyFlag(cmd *cobra.Command, flag string) (*regexp.Regexp, error) {
	pattern := flag
	if !cmd.Flags().Changed("family") && a.cfg.Family != "" {
		pattern = a.cfg.Family
	}
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("family %q: %w", pattern, err)
	}

	return re, nil
}

// selectionOptions turns resolved parameter names and --family into collection options.
func (a *app) selectionOptions(cmd *cobra.Command, names []string, family string) ([]samples.Option, error) {
	re, err := a.familyFlag(cmd, family)
	if err != nil {
		return nil, err
	}

	var opts []samples.Option
	if len(names) > 0 {
		opts = append(opts, samples.WithParameters(names...))
	}
	if re != nil {
		opts = append(opts, samples.WithFamily(re))
	}

	return opts, nil
}

func execute(args []string) error {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}
