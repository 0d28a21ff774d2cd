package policy

import (
	"testing"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

func TestEvaluate_NoMatch_DefaultsLog(t *testing.T) {
	decision := Evaluate(domain.Detection{RuleID: "pi-001", Severity: "LOW"}, domain.PolicySet{})
	if decision.Action != domain.PolicyLog {
		t.Errorf("Action = %v, want LOG", decision.Action)
	}
	if decision.SeverityChanged() {
		t.Error("SeverityChanged() should be false with no match")
	}
}

func TestEvaluate_MatchByRuleID(t *testing.T) {
	set := domain.PolicySet{Policies: []domain.Policy{
		{
			PolicyID: "block-pi",
			Conditions: []domain.PolicyCondition{
				{RuleIDs: []string{"pi-001"}},
			},
			Action:   domain.PolicyBlock,
			Priority: 10,
			Enabled:  true,
		},
	}}
	decision := Evaluate(domain.Detection{RuleID: "pi-001", Severity: "HIGH"}, set)
	if !decision.ShouldBlock() {
		t.Errorf("decision = %+v, want BLOCK", decision)
	}
	if len(decision.MatchedPolicies) != 1 || decision.MatchedPolicies[0] != "block-pi" {
		t.Errorf("MatchedPolicies = %v", decision.MatchedPolicies)
	}
}

func TestEvaluate_PriorityOrdering(t *testing.T) {
	set := domain.PolicySet{Policies: []domain.Policy{
		{PolicyID: "low-priority", Action: domain.PolicyAllow, Priority: 1, Enabled: true},
		{PolicyID: "high-priority", Action: domain.PolicyBlock, Priority: 100, Enabled: true},
	}}
	decision := Evaluate(domain.Detection{RuleID: "x", Severity: "HIGH"}, set)
	if decision.MatchedPolicies[0] != "high-priority" {
		t.Errorf("expected high-priority policy to win, got %v", decision.MatchedPolicies)
	}
}

func TestEvaluate_DisabledPolicyIgnored(t *testing.T) {
	set := domain.PolicySet{Policies: []domain.Policy{
		{PolicyID: "disabled", Action: domain.PolicyBlock, Priority: 100, Enabled: false},
	}}
	decision := Evaluate(domain.Detection{RuleID: "x", Severity: "HIGH"}, set)
	if decision.Action != domain.PolicyLog {
		t.Errorf("Action = %v, want LOG (disabled policy skipped)", decision.Action)
	}
}

func TestEvaluate_SeverityOverride(t *testing.T) {
	set := domain.PolicySet{Policies: []domain.Policy{
		{
			PolicyID:         "escalate",
			Conditions:       []domain.PolicyCondition{{RuleIDs: []string{"pi-001"}}},
			Action:           domain.PolicyFlag,
			OverrideSeverity: "CRITICAL",
			Priority:         5,
			Enabled:          true,
		},
	}}
	decision := Evaluate(domain.Detection{RuleID: "pi-001", Severity: "LOW"}, set)
	if decision.FinalSeverity != "CRITICAL" || !decision.SeverityChanged() {
		t.Errorf("decision = %+v, want severity escalated to CRITICAL", decision)
	}
}

func TestValidate_CapExceeded(t *testing.T) {
	policies := make([]domain.Policy, 101)
	for i := range policies {
		policies[i] = domain.Policy{PolicyID: "p", Enabled: true}
	}
	errs := Validate(domain.PolicySet{Policies: policies})
	found := false
	for _, e := range errs {
		if mdwerror.HasCode(e, mdwerror.CodePolicyCapExceeded) {
			found = true
		}
	}
	if !found {
		t.Error("expected CodePolicyCapExceeded among validation errors")
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	set := domain.PolicySet{Policies: []domain.Policy{
		{PolicyID: "dup"},
		{PolicyID: "dup"},
	}}
	errs := Validate(set)
	if len(errs) == 0 {
		t.Fatal("expected duplicate policy_id error")
	}
}
