// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     rules
// Description: Immutable rule definitions and pattern compilation (C1).
//              Rules are value objects: construction validates invariants,
//              there is no mutation after Compile.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package rules

import (
	"time"

	"github.com/dlclark/regexp2"
)

// Family is the detection category a rule belongs to.
type Family string

const (
	FamilyPromptInjection  Family = "PI"
	FamilyJailbreak        Family = "JB"
	FamilyPII              Family = "PII"
	FamilyCommandInjection Family = "CMD"
	FamilyEncoding         Family = "ENC"
	FamilyRAG              Family = "RAG"
	FamilyHarmfulContent   Family = "HC"
	FamilySecrets          Family = "SEC"
	FamilyQuality          Family = "QUAL"
	FamilyCustom           Family = "CUSTOM"
)

func (f Family) valid() bool {
	switch f {
	case FamilyPromptInjection, FamilyJailbreak, FamilyPII, FamilyCommandInjection,
		FamilyEncoding, FamilyRAG, FamilyHarmfulContent, FamilySecrets, FamilyQuality, FamilyCustom:
		return true
	default:
		return false
	}
}

// Severity ranks a detection's urgency, also reused by Policy/Suppression.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// severityRank orders severities for comparisons (combined_severity = max,
// policy's severity_threshold, etc). Higher is more severe.
var severityRank = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the numeric ordering of a severity, or -1 if unknown.
func (s Severity) Rank() int {
	r, ok := severityRank[s]
	if !ok {
		return -1
	}
	return r
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

func (s Severity) valid() bool {
	_, ok := severityRank[s]
	return ok
}

// MaxSeverity returns the most severe value in severities, or "" if empty.
func MaxSeverity(severities ...Severity) Severity {
	var max Severity
	best := -1
	for _, s := range severities {
		if r := s.Rank(); r > best {
			best = r
			max = s
		}
	}
	return max
}

// Flag is a pattern compilation modifier. The flag set is deliberately
// closed: spec's Open Question on regex dialect is resolved by rejecting
// anything outside this set at compile time.
type Flag string

const (
	FlagIgnoreCase Flag = "IGNORECASE"
	FlagMultiline  Flag = "MULTILINE"
	FlagDotAll     Flag = "DOTALL"
	FlagUnicode    Flag = "UNICODE"
)

func (f Flag) toRegexp2() (regexp2.RegexOptions, bool) {
	switch f {
	case FlagIgnoreCase:
		return regexp2.IgnoreCase, true
	case FlagMultiline:
		return regexp2.Multiline, true
	case FlagDotAll:
		return regexp2.Singleline, true
	case FlagUnicode:
		return regexp2.Unicode, true
	default:
		return 0, false
	}
}

// Pattern is one regex clause within a Rule, evaluated in declared order.
type Pattern struct {
	Pattern   string `yaml:"pattern"`
	Flags     []Flag `yaml:"flags"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Example holds should-match / should-not-match self-test fixtures.
type Example struct {
	ShouldMatch    []string `yaml:"should_match"`
	ShouldNotMatch []string `yaml:"should_not_match"`
}

// Metrics is rule-quality telemetry surfaced for explainability and
// pack-quality reporting; never part of a scan result (C10 only ever
// projects Detection fields, not Rule metadata).
type Metrics struct {
	Precision     float64   `yaml:"precision"`
	Recall        float64   `yaml:"recall"`
	F1Score       float64   `yaml:"f1_score"`
	LastEvaluated time.Time `yaml:"last_evaluated"`
	Counts30d     int       `yaml:"counts_30d"`
}

// Rule is the immutable definition of a single detector. Identity is
// (RuleID, Version).
type Rule struct {
	RuleID      string    `yaml:"rule_id"`
	Version     string    `yaml:"version"` // SemVer MAJOR.MINOR.PATCH
	Family      Family    `yaml:"family"`
	SubFamily   string    `yaml:"sub_family"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Severity    Severity  `yaml:"severity"`
	Confidence  float64   `yaml:"confidence"`
	Patterns    []Pattern `yaml:"patterns"`
	Examples    Example   `yaml:"examples"`
	MitreAttack []string  `yaml:"mitre_attack"`

	Metrics           *Metrics       `yaml:"metrics"`
	RiskExplanation   string         `yaml:"risk_explanation"`
	RemediationAdvice string         `yaml:"remediation_advice"`
	DocsURL           string         `yaml:"docs_url"`
	Metadata          map[string]any `yaml:"metadata"`
}

// VersionedID returns rule_id@version, the identifier used across
// Detection, suppression globs, and the pack registry.
func (r Rule) VersionedID() string {
	return r.RuleID + "@" + r.Version
}
