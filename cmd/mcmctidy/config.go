// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from a zero value.
type fileConfig struct {
	Format     string   `yaml:"format"`
	ConfLevel  *float64 `yaml:"conf_level"`
	PerChain   *bool    `yaml:"per_chain"`
	Parameters []string `yaml:"parameters"`
	Family     string   `yaml:"family"`
	Workers    *int     `yaml:"workers"`
	Every      *int     `yaml:"every"`
}

// loadConfig reads path; unknown keys are rejected so typos surface early.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close() //nolint:errcheck

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
