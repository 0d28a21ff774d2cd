// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     voting
// Description: Ensemble voter (C6) fusing L1 rule detections and L2
//              head predictions into one combined verdict.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package voting

import (
	"math"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
)

// Head is one vote cast by either a rule detection or an L2 prediction.
type Head string

const (
	HeadSafe    Head = "SAFE"
	HeadAbstain Head = "ABSTAIN"
	HeadThreat  Head = "THREAT"
)

// Weights assigns a relative vote weight to L1 and L2 sources. Presets
// below give the named configurations spec.md §4.6 requires.
type Weights struct {
	L1 float64
	L2 float64
}

// Preset names a canned Weights configuration.
type Preset string

const (
	PresetBalanced     Preset = "balanced"
	PresetHighSecurity Preset = "high_security"
	PresetLowFP        Preset = "low_fp"
	PresetHarmFocused  Preset = "harm_focused"
)

// PresetWeights returns the Weights for a named preset, defaulting to
// balanced for unknown names.
func PresetWeights(p Preset) Weights {
	switch p {
	case PresetHighSecurity:
		return Weights{L1: 0.7, L2: 0.3}
	case PresetLowFP:
		return Weights{L1: 0.3, L2: 0.7}
	case PresetHarmFocused:
		return Weights{L1: 0.4, L2: 0.6}
	default:
		return Weights{L1: 0.5, L2: 0.5}
	}
}

// HeadVote is the per-source detail the VotingResult exposes for
// observability.
type HeadVote struct {
	Source     string // "L1" or "L2"
	Head       Head
	Confidence float64
	Weight     float64
}

// Result is the outcome of Decide: the combined severity/confidence,
// the decision rule that fired, and the per-head detail.
type Result struct {
	Verdict        Head
	Severity       string
	Confidence     float64
	WeightedRatio  float64 // threat-weight / safe-weight; serializes to 999.0 if safe-weight is 0
	RuleApplied    string  // "high_confidence_override" | "severity_veto" | "weighted_ratio"
	Votes          []HeadVote
}

// InfinityRatioSentinel is the wire value substituted for an infinite
// weighted_ratio (safe-weight of zero), per spec.md §4.6.
const InfinityRatioSentinel = 999.0

// HighConfidenceThreshold triggers the override rule: any single head
// at or above this confidence decides the verdict outright.
const HighConfidenceThreshold = 0.95

// SeverityVetoSeverity is the L1 severity at or above which a single
// CRITICAL detection vetoes an otherwise-safe ensemble.
const SeverityVetoSeverity = "CRITICAL"

// Decide fuses L1 detections and an L2Result into one Result, applying
// the decision rules in priority order: high-confidence override,
// severity veto, then weighted ratio.
func Decide(l1 []domain.Detection, l2 domain.L2Result, weights Weights) Result {
	votes := buildVotes(l1, l2, weights)

	if v, ok := highConfidenceOverride(votes); ok {
		return v
	}
	if v, ok := severityVeto(l1, votes); ok {
		return v
	}
	return weightedRatioDecision(votes)
}

func buildVotes(l1 []domain.Detection, l2 domain.L2Result, weights Weights) []HeadVote {
	votes := make([]HeadVote, 0, len(l1)+len(l2.Predictions))
	for _, d := range l1 {
		votes = append(votes, HeadVote{
			Source:     "L1",
			Head:       HeadThreat,
			Confidence: d.Confidence,
			Weight:     weights.L1,
		})
	}
	for _, p := range l2.Predictions {
		head := HeadThreat
		if p.Uncertain {
			head = HeadAbstain
		}
		votes = append(votes, HeadVote{
			Source:     "L2",
			Head:       head,
			Confidence: p.Confidence,
			Weight:     weights.L2,
		})
	}
	if len(votes) == 0 {
		votes = append(votes, HeadVote{Source: "L1", Head: HeadSafe, Confidence: 1.0, Weight: weights.L1})
	}
	return votes
}

func highConfidenceOverride(votes []HeadVote) (Result, bool) {
	for _, v := range votes {
		if v.Head == HeadThreat && v.Confidence >= HighConfidenceThreshold {
			return Result{
				Verdict:     HeadThreat,
				Severity:    "CRITICAL",
				Confidence:  v.Confidence,
				RuleApplied: "high_confidence_override",
				Votes:       votes,
			}, true
		}
	}
	return Result{}, false
}

func severityVeto(l1 []domain.Detection, votes []HeadVote) (Result, bool) {
	for _, d := range l1 {
		if d.Severity == SeverityVetoSeverity {
			return Result{
				Verdict:     HeadThreat,
				Severity:    SeverityVetoSeverity,
				Confidence:  d.Confidence,
				RuleApplied: "severity_veto",
				Votes:       votes,
			}, true
		}
	}
	return Result{}, false
}

func weightedRatioDecision(votes []HeadVote) Result {
	var threatWeight, safeWeight float64
	var maxConfidence float64

	for _, v := range votes {
		w := v.Weight * v.Confidence
		switch v.Head {
		case HeadThreat:
			threatWeight += w
		case HeadSafe:
			safeWeight += w
		}
		if v.Confidence > maxConfidence {
			maxConfidence = v.Confidence
		}
	}

	ratio := InfinityRatioSentinel
	if safeWeight > 0 {
		ratio = threatWeight / safeWeight
	} else if threatWeight == 0 {
		ratio = 0
	}

	verdict := HeadSafe
	severity := "LOW"
	if ratio >= 1.0 && threatWeight > 0 {
		verdict = HeadThreat
		severity = severityForRatio(ratio)
	} else if ratio > 0 {
		verdict = HeadAbstain
	}

	return Result{
		Verdict:       verdict,
		Severity:      severity,
		Confidence:    maxConfidence,
		WeightedRatio: math.Min(ratio, InfinityRatioSentinel),
		RuleApplied:   "weighted_ratio",
		Votes:         votes,
	}
}

func severityForRatio(ratio float64) string {
	switch {
	case ratio >= 3:
		return "HIGH"
	case ratio >= 1.5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
