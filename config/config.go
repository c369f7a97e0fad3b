// SPDX-License-Identifier: MIT

// Package config resolves the runtime knobs of the proposal layer: which
// diagnostic channels are on and which memo policy new proposals use.
//
// Priority: environment > file > defaults.
//
//	# lvinline.yaml
//	trace:
//	  inlining_proposals: true
//	  verbose_inlining: false
//	memo_policy: tracked
//
// Environment overrides:
//
//	LVINLINE_TRACE_OPTIONS  comma list, e.g. "trace-inlining-proposals,verbose-inlining"
//	LVINLINE_MEMO_POLICY    "zero-sentinel" or "tracked"
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvinline/proposal"
	"github.com/katalvlaran/lvinline/trace"
)

// Environment variable names.
const (
	EnvTraceOptions = "LVINLINE_TRACE_OPTIONS"
	EnvMemoPolicy   = "LVINLINE_MEMO_POLICY"
)

// Config is the resolved configuration.
type Config struct {
	Trace      trace.Options `yaml:"trace"`
	MemoPolicy string        `yaml:"memo_policy"`
}

// Default returns the configuration used when nothing is set: no
// diagnostics, zero-sentinel memo.
func Default() Config {
	return Config{MemoPolicy: proposal.DefaultMemoPolicy.String()}
}

// Load reads path (optional; a missing file means defaults), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if cfg, err = Parse(data); err != nil {
				return cfg, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse yaml: %w", err)
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvTraceOptions); ok {
		o, err := trace.ParseOptions(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTraceOptions, err)
		}
		cfg.Trace = o
	}
	if v, ok := os.LookupEnv(EnvMemoPolicy); ok {
		cfg.MemoPolicy = v
	}

	return nil
}

// Validate checks that every field holds a recognized value.
func (c Config) Validate() error {
	if _, err := proposal.ParseMemoPolicy(c.MemoPolicy); err != nil {
		return fmt.Errorf("config: memo_policy: %w", err)
	}

	return nil
}

// ProposalOptions converts the configuration into options for proposal.New.
func (c Config) ProposalOptions() []proposal.Option {
	m, err := proposal.ParseMemoPolicy(c.MemoPolicy)
	if err != nil {
		m = proposal.DefaultMemoPolicy
	}

	return []proposal.Option{proposal.WithMemoPolicy(m)}
}
