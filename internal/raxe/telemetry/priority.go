// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     telemetry
// Description: Pure classification of event priority for the Sink's queue
//              tiers. No I/O: callers decide what a "critical" or
//              "standard" classification means for their own transport.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package telemetry

import "strings"

// Priority is the queue tier an event should be routed to.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityStandard Priority = "standard"
)

// PriorityConfig holds the classification rules. The zero value is not
// usable; call DefaultPriorityConfig.
type PriorityConfig struct {
	CriticalSeverities  map[string]struct{}
	AlwaysCriticalTypes map[string]struct{}
	AlwaysStandardTypes map[string]struct{}
}

// DefaultPriorityConfig returns the default classification rules.
func DefaultPriorityConfig() PriorityConfig {
	return PriorityConfig{
		CriticalSeverities: toSet("CRITICAL", "HIGH", "MEDIUM"),
		AlwaysCriticalTypes: toSet(
			"installation",
			"activation",
			"session_end",
			"error",
			"key_upgrade",
		),
		AlwaysStandardTypes: toSet(
			"session_start",
			"performance",
			"feature_usage",
			"heartbeat",
		),
	}
}

func toSet(values ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// ClassifyPriority determines the queue tier for an event. It is a pure
// function: given the same event type and payload it always returns the
// same priority.
//
// Rules, in order:
//  1. Always-critical types (installation, activation, session_end, error,
//     key_upgrade) classify critical regardless of payload.
//  2. Always-standard types (session_start, performance, feature_usage,
//     heartbeat) classify standard regardless of payload.
//  3. "scan" events classify critical only if threat_detected is true and
//     highest_severity is CRITICAL, HIGH, or MEDIUM.
//  4. "config_changed" events classify critical only when disabling
//     telemetry (telemetry.enabled -> false), so the last message before
//     telemetry goes dark is not lost to batching.
//  5. Anything else classifies standard.
func ClassifyPriority(eventType string, payload map[string]any, cfg PriorityConfig) Priority {
	normalized := strings.ToLower(strings.TrimSpace(eventType))

	if _, ok := cfg.AlwaysCriticalTypes[normalized]; ok {
		return PriorityCritical
	}
	if _, ok := cfg.AlwaysStandardTypes[normalized]; ok {
		return PriorityStandard
	}

	switch normalized {
	case "scan":
		return classifyScanPriority(payload, cfg)
	case "config_changed":
		return classifyConfigChangePriority(payload)
	default:
		return PriorityStandard
	}
}

func classifyScanPriority(payload map[string]any, cfg PriorityConfig) Priority {
	threatDetected, _ := payload["threat_detected"].(bool)
	if !threatDetected {
		return PriorityStandard
	}

	severity, ok := payload["highest_severity"]
	if !ok || severity == nil {
		return PriorityStandard
	}

	severityStr, ok := severity.(string)
	if !ok {
		return PriorityStandard
	}

	normalized := strings.ToUpper(strings.TrimSpace(severityStr))
	if _, ok := cfg.CriticalSeverities[normalized]; ok {
		return PriorityCritical
	}
	return PriorityStandard
}

func classifyConfigChangePriority(payload map[string]any) Priority {
	changes, _ := payload["changes"].(map[string]any)

	if telemetryChanges, ok := changes["telemetry"].(map[string]any); ok {
		if enabled, ok := telemetryChanges["enabled"].(bool); ok && !enabled {
			return PriorityCritical
		}
	}

	if enabled, ok := changes["telemetry.enabled"].(bool); ok && !enabled {
		return PriorityCritical
	}

	if setting, ok := payload["setting"].(string); ok && setting == "telemetry.enabled" {
		if newValue, ok := payload["new_value"].(bool); ok && !newValue {
			return PriorityCritical
		}
	}

	return PriorityStandard
}

// IsAlwaysCriticalType reports whether an event type is critical regardless
// of payload content.
func IsAlwaysCriticalType(eventType string, cfg PriorityConfig) bool {
	_, ok := cfg.AlwaysCriticalTypes[strings.ToLower(strings.TrimSpace(eventType))]
	return ok
}

// IsAlwaysStandardType reports whether an event type is standard regardless
// of payload content.
func IsAlwaysStandardType(eventType string, cfg PriorityConfig) bool {
	_, ok := cfg.AlwaysStandardTypes[strings.ToLower(strings.TrimSpace(eventType))]
	return ok
}
