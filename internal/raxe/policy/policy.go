// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     policy
// Description: Policy evaluator (C8): maps a Detection to an
//              enforcement action via priority-ordered condition sets.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package policy

import (
	"fmt"
	"sort"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
	"github.com/raxe-ce/raxe-go/internal/raxe/rules"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// Evaluate applies the highest-priority matching Policy in set to d,
// defaulting to LOG with no severity change if nothing matches.
// Policies are considered in descending Priority order; ties keep the
// PolicySet's declared order.
func Evaluate(d domain.Detection, set domain.PolicySet) domain.PolicyDecision {
	ordered := orderedEnabled(set)

	for _, p := range ordered {
		if matchesAny(d, p.Conditions) {
			finalSeverity := d.Severity
			if p.OverrideSeverity != "" {
				finalSeverity = p.OverrideSeverity
			}
			return domain.PolicyDecision{
				Action:           p.Action,
				OriginalSeverity: d.Severity,
				FinalSeverity:    finalSeverity,
				MatchedPolicies: []string{p.PolicyID},
				Metadata:        map[string]any{},
			}
		}
	}

	return domain.PolicyDecision{
		Action:           domain.PolicyLog,
		OriginalSeverity: d.Severity,
		FinalSeverity:    d.Severity,
		Metadata:         map[string]any{"matched": false},
	}
}

func orderedEnabled(set domain.PolicySet) []domain.Policy {
	out := make([]domain.Policy, 0, len(set.Policies))
	for _, p := range set.Policies {
		if p.Enabled {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// matchesAny returns true if ANY condition matches d; each condition
// AND-combines its own non-nil/non-empty fields.
func matchesAny(d domain.Detection, conditions []domain.PolicyCondition) bool {
	if len(conditions) == 0 {
		return true
	}
	for _, c := range conditions {
		if matchesCondition(d, c) {
			return true
		}
	}
	return false
}

func matchesCondition(d domain.Detection, c domain.PolicyCondition) bool {
	if len(c.RuleIDs) > 0 && !containsString(c.RuleIDs, d.RuleID) {
		return false
	}
	if c.SeverityThreshold != "" && !rules.Severity(d.Severity).AtLeast(rules.Severity(c.SeverityThreshold)) {
		return false
	}
	if c.MinConfidence != nil && d.Confidence < *c.MinConfidence {
		return false
	}
	if c.MaxConfidence != nil && d.Confidence > *c.MaxConfidence {
		return false
	}
	if c.CustomFilter != nil && !c.CustomFilter(d) {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Validate structurally checks a PolicySet: size cap, duplicate IDs,
// and priority range. It never mutates set; callers decide whether to
// reject or strip offending policies.
func Validate(set domain.PolicySet) []error {
	var errs []error

	if len(set.Policies) > domain.MaxPolicySetSize {
		errs = append(errs, mdwerror.New("policy set exceeds maximum size").
			WithCode(mdwerror.CodePolicyCapExceeded).
			WithDetail("count", len(set.Policies)).
			WithDetail("max", domain.MaxPolicySetSize))
	}

	seen := make(map[string]bool, len(set.Policies))
	for _, p := range set.Policies {
		if p.PolicyID == "" {
			errs = append(errs, mdwerror.New("policy_id must not be empty").
				WithCode(mdwerror.CodePolicyMalformed))
			continue
		}
		if seen[p.PolicyID] {
			errs = append(errs, mdwerror.New(fmt.Sprintf("duplicate policy_id %q", p.PolicyID)).
				WithCode(mdwerror.CodePolicyMalformed).
				WithDetail("policy_id", p.PolicyID))
		}
		seen[p.PolicyID] = true

		if p.Priority < 0 || p.Priority > 1000 {
			errs = append(errs, mdwerror.New("priority out of range [0,1000]").
				WithCode(mdwerror.CodePolicyMalformed).
				WithDetail("policy_id", p.PolicyID).
				WithDetail("priority", p.Priority))
		}
	}

	return errs
}
