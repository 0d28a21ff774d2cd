// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     engineconfig
// Description: Scan engine configuration (C11): the fixed key table
//              spec.md §4.11 names, loaded through the shared
//              TOML/YAML Config loader.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package engineconfig

import (
	"time"

	mdwconfig "github.com/raxe-ce/raxe-go/foundation/core/config"
	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// Mode selects the scan execution profile.
type Mode string

const (
	ModeFast     Mode = "fast"
	ModeBalanced Mode = "balanced"
	ModeThorough Mode = "thorough"
)

func (m Mode) valid() bool {
	switch m {
	case ModeFast, ModeBalanced, ModeThorough:
		return true
	default:
		return false
	}
}

// EngineConfig is the resolved, validated set of scan engine knobs.
type EngineConfig struct {
	Mode                Mode
	L1Enabled           bool
	L2Enabled           bool
	ConfidenceThreshold float64

	MaxTextLength int
	L1TimeoutMS   int
	L2TimeoutMS   int

	EmbeddingMaxSize int
	EmbeddingTTLS    int

	VotingPreset string
	MaxPolicies  int
}

// Default returns the conservative defaults spec.md §4.11 describes.
func Default() EngineConfig {
	return EngineConfig{
		Mode:                ModeBalanced,
		L1Enabled:           true,
		L2Enabled:           true,
		ConfidenceThreshold: 0.5,
		MaxTextLength:       100000,
		L1TimeoutMS:         50,
		L2TimeoutMS:         100,
		EmbeddingMaxSize:    1000,
		EmbeddingTTLS:       3600,
		VotingPreset:        "balanced",
		MaxPolicies:         100,
	}
}

// FromConfig reads the key table below out of an already-loaded
// *config.Config, falling back to Default() for any key it doesn't
// declare.
func FromConfig(c *mdwconfig.Config) (EngineConfig, error) {
	cfg := Default()

	cfg.Mode = Mode(c.GetString("detection.mode", string(cfg.Mode)))
	cfg.L1Enabled = c.GetBool("detection.l1_enabled", cfg.L1Enabled)
	cfg.L2Enabled = c.GetBool("detection.l2_enabled", cfg.L2Enabled)
	cfg.ConfidenceThreshold = c.GetFloat("detection.confidence_threshold", cfg.ConfidenceThreshold)

	cfg.MaxTextLength = c.GetInt("performance.max_text_length", cfg.MaxTextLength)
	cfg.L1TimeoutMS = c.GetInt("performance.l1_timeout_ms", cfg.L1TimeoutMS)
	cfg.L2TimeoutMS = c.GetInt("performance.l2_timeout_ms", cfg.L2TimeoutMS)

	cfg.EmbeddingMaxSize = c.GetInt("cache.embedding_max_size", cfg.EmbeddingMaxSize)
	cfg.EmbeddingTTLS = c.GetInt("cache.embedding_ttl_s", cfg.EmbeddingTTLS)

	cfg.VotingPreset = c.GetString("voting.preset", cfg.VotingPreset)
	cfg.MaxPolicies = c.GetInt("policies.max_policies", cfg.MaxPolicies)

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration for internal consistency.
func (c EngineConfig) Validate() error {
	if !c.Mode.valid() {
		return mdwerror.New("unknown detection.mode").
			WithCode(mdwerror.CodeValidationInvalidMode).
			WithDetail("mode", string(c.Mode))
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return mdwerror.New("detection.confidence_threshold out of range [0,1]").
			WithCode(mdwerror.CodeValidationOutOfRange).
			WithDetail("confidence_threshold", c.ConfidenceThreshold)
	}
	if c.MaxTextLength <= 0 {
		return mdwerror.New("performance.max_text_length must be > 0").
			WithCode(mdwerror.CodeValidationOutOfRange)
	}
	if c.MaxPolicies <= 0 || c.MaxPolicies > 100 {
		return mdwerror.New("policies.max_policies out of range (0,100]").
			WithCode(mdwerror.CodeValidationOutOfRange).
			WithDetail("max_policies", c.MaxPolicies)
	}
	return nil
}

// L1Timeout and L2Timeout convert the millisecond config values into
// time.Duration for context.WithTimeout call sites.
func (c EngineConfig) L1Timeout() time.Duration {
	return time.Duration(c.L1TimeoutMS) * time.Millisecond
}

func (c EngineConfig) L2Timeout() time.Duration {
	return time.Duration(c.L2TimeoutMS) * time.Millisecond
}
