// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcmctidy/internal/chainio"
	"github.com/katalvlaran/mcmctidy/samples"
	"github.com/katalvlaran/mcmctidy/summary"
)

// fixtureChains writes two chain files with parameters mu and sigma.
func fixtureChains(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"chain1.csv":    "mu,sigma\n1,10\n3,30\n5,50\n",
		"chain2.csv.gz": "mu,sigma\n2,20\n4,40\n6,60\n",
	}
	paths := make([]string, 0, len(files))
	for _, name := range []string{"chain1.csv", "chain2.csv.gz"} {
		p := filepath.Join(dir, name)
		w, err := chainio.Create(p)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		paths = append(paths, p)
	}

	return paths
}

// run executes the root command and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestLongCommand(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	out, err := run(t, append([]string{"long", "--param", "sigma"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "iteration,chain,parameter,value\n"+
		"1,1,sigma,10\n2,1,sigma,30\n3,1,sigma,50\n"+
		"1,2,sigma,20\n2,2,sigma,40\n3,2,sigma,60\n", out)
}

func TestLongCommand_IterationNumbering(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	out, err := run(t, append([]string{"long", "--family", "^mu$", "--first-iteration", "1001", "--thin-interval", "5"}, paths[:1]...)...)
	require.NoError(t, err)
	assert.Equal(t, "iteration,chain,parameter,value\n1001,1,mu,1\n1006,1,mu,3\n1011,1,mu,5\n", out)
}

func TestSummaryCommand(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	out, err := run(t, append([]string{"summary", "--conf-level", "0.5", "--per-chain", "-p", "mu", "-w", "2"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "Parameter,Chain,Mean,SD,25%,Median,75%\n"+
		"mu,1,3,2,2,3,4\n"+
		"mu,2,4,2,3,4,5\n", out)
}

func TestSummaryCommand_YAMLAndConfig(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	cfgPath := filepath.Join(t.TempDir(), "mcmctidy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\nconf_level: 0.5\nparameters: [sigma]\n"), 0o644))

	out, err := run(t, append([]string{"summary", "--config", cfgPath}, paths...)...)
	require.NoError(t, err)

	var doc struct {
		ConfLevel float64          `yaml:"conf_level"`
		Rows      []map[string]any `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 0.5, doc.ConfLevel)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "sigma", doc.Rows[0]["parameter"])
	assert.EqualValues(t, 35, doc.Rows[0]["median"])

	// Explicit flags override the file.
	out, err = run(t, append([]string{"summary", "--config", cfgPath, "--format", "csv", "--conf-level", "0.9"}, paths...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Parameter,Mean,SD,5%,Median,95%\nsigma,35,")
}

func TestSummaryCommand_Errors(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)

	_, err := run(t, append([]string{"summary", "--conf-level", "1.5"}, paths...)...)
	assert.ErrorIs(t, err, summary.ErrInvalidConfidenceLevel)

	_, err = run(t, append([]string{"summary", "-p", "tau"}, paths...)...)
	assert.ErrorIs(t, err, samples.ErrUnknownParameter)

	_, err = run(t, append([]string{"summary", "--workers", "0"}, paths...)...)
	assert.Error(t, err)

	_, err = run(t, append([]string{"summary", "--format", "json"}, paths...)...)
	assert.ErrorIs(t, err, chainio.ErrUnsupportedFormat)

	_, err = run(t, "summary")
	assert.Error(t, err, "chain files are required")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("conf_levle: 0.9\n"), 0o644))
	_, err = run(t, append([]string{"summary", "--config", bad}, paths...)...)
	assert.Error(t, err, "unknown config keys are rejected")
}

func TestThinCommand(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	out, err := run(t, append([]string{"thin", "--every", "2", "-p", "mu"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "iteration,chain,parameter,value\n"+
		"1,1,mu,1\n3,1,mu,5\n"+
		"1,2,mu,2\n3,2,mu,6\n", out)

	_, err = run(t, append([]string{"thin"}, paths...)...)
	assert.Error(t, err)

	_, err = run(t, append([]string{"thin", "--every=-1"}, paths...)...)
	assert.ErrorIs(t, err, summary.ErrInvalidThinningFactor)
}

func TestOutputFile(t *testing.T) {
	t.Parallel()

	paths := fixtureChains(t)
	dst := filepath.Join(t.TempDir(), "long.csv.zst")
	out, err := run(t, append([]string{"long", "-o", dst, "-p", "mu"}, paths...)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	rc, err := chainio.Open(dst)
	require.NoError(t, err)
	defer rc.Close() //nolint:errcheck
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "iteration,chain,parameter,value\n1,1,mu,1\n2,1,mu,3\n3,1,mu,5\n"+
		"1,2,mu,2\n2,2,mu,4\n3,2,mu,6\n", string(raw))
}

func TestWrite_RemovesPartialOutput(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "summary.csv.gz")
	a := &app{format: "csv", output: dst, logger: zap.NewNop()}
	errEncode := errors.New("encode failed")

	err := a.write(&cobra.Command{}, func(w io.Writer, _ chainio.Format) error {
		_, _ = io.WriteString(w, "Parameter,Mean\n")

		return errEncode
	})
	require.ErrorIs(t, err, errEncode)
	_, statErr := os.Stat(dst)
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	require.NoError(t, a.write(&cobra.Command{}, func(w io.Writer, _ chainio.Format) error {
		_, err := io.WriteString(w, "ok\n")

		return err
	}))
	_, statErr = os.Stat(dst)
	assert.NoError(t, statErr)
}

func TestSummaryCommand_MissingValueInUnselectedParameter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c1 := filepath.Join(dir, "c1.csv")
	c2 := filepath.Join(dir, "c2.csv")
	require.NoError(t, os.WriteFile(c1, []byte("mu,sigma\n1,NA\n3,30\n"), 0o644))
	require.NoError(t, os.WriteFile(c2, []byte("mu,sigma\n2,20\n4,40\n"), 0o644))

	out, err := run(t, "summary", "--param", "mu", "--conf-level", "0.5", c1, c2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Parameter,Mean,SD,25%,Median,75%\nmu,2.5,"), out)
	assert.True(t, strings.HasSuffix(out, ",1.75,2.5,3.25\n"), out)
	assert.NotContains(t, out, "sigma")

	long, err := run(t, "long", "--param", "mu", c1, c2)
	require.NoError(t, err)
	assert.Equal(t, "iteration,chain,parameter,value\n1,1,mu,1\n2,1,mu,3\n1,2,mu,2\n2,2,mu,4\n", long)

	_, err = run(t, "summary", "--param", "sigma", c1, c2)
	assert.ErrorIs(t, err, samples.ErrMissingValue)
}
