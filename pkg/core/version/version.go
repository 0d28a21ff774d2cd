// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     version
// Description: Build, rule-schema, and bundle-format version reporting for
//              the scan engine.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Engine is the scan core's own build version, set at release time.
const Engine = "1.0.0"

// PackSchema is the pack.yaml schema version this build understands.
// Kept separate from packs.SupportedSchemaVersion's own declaration so
// a caller can report it without importing the packs package.
const PackSchema = "1.0.0"

// BundleFormat is the L2 model bundle (.raxebundle) format version this
// build's ml package can decode.
const BundleFormat = "1.0.0"

// Info reports the three version axes a deployment needs to reconcile:
// the engine binary, the rule-pack schema it accepts, and the model
// bundle format it accepts.
type Info struct {
	Engine       string `json:"engine"`
	PackSchema   string `json:"pack_schema"`
	BundleFormat string `json:"bundle_format"`
}

// Current returns the version Info for this build.
func Current() Info {
	return Info{Engine: Engine, PackSchema: PackSchema, BundleFormat: BundleFormat}
}
