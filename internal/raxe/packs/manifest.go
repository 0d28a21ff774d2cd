// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     packs
// Description: Rule pack loading and validation (C2): manifest schema
//              enforcement, SemVer compatibility, Ed25519 signature
//              verification, and a hot-reloadable immutable registry.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package packs

import (
	"github.com/Masterminds/semver/v3"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// PackType classifies provenance and trust level of a rule pack.
type PackType string

const (
	PackOfficial  PackType = "OFFICIAL"
	PackCommunity PackType = "COMMUNITY"
	PackCustom    PackType = "CUSTOM"
)

// SupportedSchemaVersion is the pack.yaml schema this loader understands.
// A pack declaring a different major version is rejected rather than
// silently misparsed.
const SupportedSchemaVersion = "1.0.0"

// Manifest describes a rule pack's identity, content, and optional
// Ed25519 signature (pack.yaml).
type Manifest struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Version       string         `yaml:"version"`
	PackType      PackType       `yaml:"pack_type"`
	SchemaVersion string         `yaml:"schema_version"`
	Author        string         `yaml:"author"`
	Description   string         `yaml:"description"`
	RuleFiles     []string       `yaml:"rules"`
	Metadata      map[string]any `yaml:"metadata"`

	Signature          string `yaml:"signature"`           // base64 Ed25519 signature, optional
	PublicKey          string `yaml:"public_key"`          // base64 Ed25519 public key, required if Signature set
	SignatureAlgorithm string `yaml:"signature_algorithm"` // "ed25519" when Signature is set
}

// CheckSchemaVersion rejects a pack declaring a schema_version whose
// major component does not match SupportedSchemaVersion.
func (m Manifest) CheckSchemaVersion() error {
	if m.SchemaVersion == "" {
		return nil
	}
	declared, err := semver.NewVersion(m.SchemaVersion)
	if err != nil {
		return mdwerror.Wrap(err, "pack schema_version is not valid SemVer").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("schema_version", m.SchemaVersion)
	}
	supported, _ := semver.NewVersion(SupportedSchemaVersion)
	if declared.Major() != supported.Major() {
		return mdwerror.New("pack schema_version is incompatible with this loader").
			WithCode(mdwerror.CodeConfigVersionMismatch).
			WithDetail("pack", m.Name).
			WithDetail("declared", m.SchemaVersion).
			WithDetail("supported", SupportedSchemaVersion)
	}
	return nil
}

// manifestSchema is the embedded JSON Schema pack.yaml must satisfy.
// It intentionally under-specifies types jsonschema/v5 cannot validate
// across a YAML->map[string]any decode (e.g. semver format) — those
// checks happen explicitly in validateVersion and CheckSchemaVersion.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "version", "rules"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "pack_type": {"type": "string", "enum": ["OFFICIAL", "COMMUNITY", "CUSTOM"]},
    "schema_version": {"type": "string"},
    "author": {"type": "string"},
    "description": {"type": "string"},
    "rules": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 1
    },
    "metadata": {"type": "object"},
    "signature": {"type": "string"},
    "public_key": {"type": "string"},
    "signature_algorithm": {"type": "string"}
  }
}`

// validateVersion checks that Version is valid SemVer.
func (m Manifest) validateVersion() error {
	if _, err := semver.NewVersion(m.Version); err != nil {
		return mdwerror.Wrap(err, "pack version is not valid SemVer").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("pack", m.Name).
			WithDetail("version", m.Version)
	}
	return nil
}

// CompatibleWith reports whether this manifest's version satisfies the
// given SemVer constraint (e.g. "^1.0.0"), per spec.md §4.2's version
// compatibility check.
func (m Manifest) CompatibleWith(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, mdwerror.Wrap(err, "invalid semver constraint").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("constraint", constraint)
	}
	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return false, mdwerror.Wrap(err, "pack version is not valid SemVer").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("version", m.Version)
	}
	return c.Check(v), nil
}
