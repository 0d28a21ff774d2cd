// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     domain
// Description: Shared value objects (spec.md §3) produced and consumed
//              across the executor, ML detector, voter, suppression,
//              policy, and pipeline packages. Kept in one package so
//              those packages depend on data, not on each other.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// HashText returns the full SHA-256 hex digest of text — the only safe
// textual identifier for a scan (spec.md §9), used for ScanResult's
// text_hash/prompt_hash. Distinct from the embedding cache's truncated
// key, which trades hash length for lookup speed, not privacy.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// DetectionLayer identifies which subsystem produced a Detection.
type DetectionLayer string

const (
	LayerL1     DetectionLayer = "L1"
	LayerL2     DetectionLayer = "L2"
	LayerPlugin DetectionLayer = "PLUGIN"
)

// Match is a single successful pattern application.
type Match struct {
	PatternIndex  int
	Start         int
	End           int
	MatchedText   string
	Groups        map[string]string
	ContextBefore string
	ContextAfter  string
}

// Detection aggregates all matches of one rule against the scanned text.
// At most one Detection is produced per rule per scan.
type Detection struct {
	RuleID           string
	RuleVersion      string
	Severity         string
	Confidence       float64
	Matches          []Match
	DetectedAt       time.Time
	DetectionLayer   DetectionLayer
	LayerLatencyMS   float64
	Category         string
	Message          string
	IsFlagged        bool
	SuppressionReason string
}

// VersionedRuleID is rule_id@version.
func (d Detection) VersionedRuleID() string {
	return d.RuleID + "@" + d.RuleVersion
}

// ThreatType enumerates the L2 head output categories.
type ThreatType string

const (
	ThreatSemanticJailbreak    ThreatType = "SEMANTIC_JAILBREAK"
	ThreatEncodedInjection     ThreatType = "ENCODED_INJECTION"
	ThreatContextManipulation  ThreatType = "CONTEXT_MANIPULATION"
	ThreatPrivilegeEscalation  ThreatType = "PRIVILEGE_ESCALATION"
	ThreatDataExfilPattern     ThreatType = "DATA_EXFIL_PATTERN"
	ThreatObfuscatedCommand    ThreatType = "OBFUSCATED_COMMAND"
	ThreatUnknown              ThreatType = "UNKNOWN"
)

// L2Scores holds the three probability channels the voter reads.
type L2Scores struct {
	AttackProbability    float64
	FamilyConfidence     float64
	SubfamilyConfidence  float64
}

// L2Prediction is one classification produced by the L2 detector.
type L2Prediction struct {
	ThreatType     ThreatType
	Confidence     float64
	Explanation    string
	FeaturesUsed   []string

	Family            string
	SubFamily         string
	Scores            L2Scores
	WhyItHit          string
	RecommendedAction string
	Uncertain         bool
	Metadata          map[string]any
}

// L2Result is the full output of one analyze() call.
type L2Result struct {
	Predictions       []L2Prediction
	Confidence        float64
	ProcessingTimeMS  float64
	ModelVersion      string
	FeaturesExtracted []string
	Metadata          map[string]any
}

// SuppressionAction is what a matched Suppression does to a Detection.
type SuppressionAction string

const (
	ActionSuppress SuppressionAction = "SUPPRESS"
	ActionFlag     SuppressionAction = "FLAG"
	ActionLog      SuppressionAction = "LOG"
)

// Suppression is a user-declared rule hiding or marking Detections by
// rule-ID glob.
type Suppression struct {
	Pattern   string
	Reason    string
	Action    SuppressionAction
	ScanID    string
	RuleID    string
	CreatedAt time.Time
	CreatedBy string
	Metadata  map[string]any
}

// PolicyAction is the enforcement outcome of a Policy or PolicyDecision.
type PolicyAction string

const (
	PolicyAllow PolicyAction = "ALLOW"
	PolicyBlock PolicyAction = "BLOCK"
	PolicyFlag  PolicyAction = "FLAG"
	PolicyLog   PolicyAction = "LOG"
)

// PolicyCondition AND-combines its non-null fields; a Policy matches if
// ANY of its conditions matches.
type PolicyCondition struct {
	RuleIDs           []string
	SeverityThreshold string
	ThreatTypes       []ThreatType
	MinConfidence     *float64
	MaxConfidence     *float64
	CustomFilter      func(Detection) bool
}

// Policy maps detections to an enforcement action for one customer.
type Policy struct {
	PolicyID         string
	CustomerID       string
	Conditions       []PolicyCondition
	Action           PolicyAction
	OverrideSeverity string
	Priority         int
	Enabled          bool
}

// PolicySet is capped at 100 policies to bound evaluation cost.
// internal/raxe/policy.Validate reports a set over the cap; the struct
// itself has no constructor and does not enforce it.
type PolicySet struct {
	Policies []Policy
}

const MaxPolicySetSize = 100

// PolicyDecision is the final enforcement outcome for one Detection.
type PolicyDecision struct {
	Action          PolicyAction
	OriginalSeverity string
	FinalSeverity   string
	MatchedPolicies []string // priority-ordered policy IDs
	Metadata        map[string]any
}

func (d PolicyDecision) SeverityChanged() bool {
	return d.OriginalSeverity != d.FinalSeverity
}

func (d PolicyDecision) ShouldBlock() bool { return d.Action == PolicyBlock }
func (d PolicyDecision) ShouldAllow() bool { return d.Action == PolicyAllow }
func (d PolicyDecision) ShouldFlag() bool  { return d.Action == PolicyFlag }

// ScanResultMetadata carries the execution-mode/thresholds context that
// accompanies a ScanResult but is not itself a Detection.
type ScanResultMetadata struct {
	Mode                string
	L1Enabled           bool
	L2Enabled           bool
	ConfidenceThreshold float64
	ExecutionMode       string // "sync" | "parallel"
	L2Cancelled         bool
	L2Timeout           bool
	L1Timeout           bool
	ParallelSpeedup     float64
	InlineSuppressedCount int
	InlineFlaggedCount    int
}

// ScanResult is the internal, fully-detailed result of one scan. C10
// projects this into the privacy-safe wire format.
type ScanResult struct {
	ScanID          string
	HasThreats      bool
	TotalDetections int
	L1Detections    int
	L2Detections    int
	Detections      []Detection
	L1DurationMS    float64
	L2DurationMS    float64
	TotalDurationMS float64
	TextHash        string
	Metadata        ScanResultMetadata
	Decision        *PolicyDecision
	CombinedSeverity string
}
