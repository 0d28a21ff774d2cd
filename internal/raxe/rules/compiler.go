package rules

import (
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/dlclark/regexp2"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// CompiledPattern wraps a compiled regexp2.Regexp with its advisory
// per-pattern timeout. Compilation itself never blocks on input; the
// timeout is enforced by the executor (C3) at match time.
type CompiledPattern struct {
	Source    Pattern
	Regex     *regexp2.Regexp
	Timeout   time.Duration
}

// CompiledRule is the result of Compile: a Rule plus one CompiledPattern
// per declared Pattern, in the same order.
type CompiledRule struct {
	Rule     Rule
	Patterns []CompiledPattern
}

// Compile validates a Rule's fields and compiles each Pattern in
// declared order. Compilation failures are configuration errors, never
// scan errors.
func Compile(r Rule) (*CompiledRule, error) {
	if r.RuleID == "" {
		return nil, mdwerror.New("rule_id is required").
			WithCode(mdwerror.CodeConfigEmptyPattern).
			WithDetail("rule_id", r.RuleID)
	}
	if _, err := semver.NewVersion(r.Version); err != nil {
		return nil, mdwerror.Wrap(err, "rule version is not valid SemVer").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("rule_id", r.RuleID).
			WithDetail("version", r.Version)
	}
	if !r.Family.valid() {
		return nil, mdwerror.New("unknown rule family").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("rule_id", r.RuleID).
			WithDetail("family", string(r.Family))
	}
	if r.SubFamily == "" {
		return nil, mdwerror.New("sub_family must not be empty").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("rule_id", r.RuleID)
	}
	if !r.Severity.valid() {
		return nil, mdwerror.New("unknown severity").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("rule_id", r.RuleID).
			WithDetail("severity", string(r.Severity))
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return nil, mdwerror.New("confidence out of range [0,1]").
			WithCode(mdwerror.CodeValidationOutOfRange).
			WithDetail("rule_id", r.RuleID).
			WithDetail("confidence", r.Confidence)
	}
	if len(r.Patterns) == 0 {
		return nil, mdwerror.New("rule must declare at least one pattern").
			WithCode(mdwerror.CodeConfigEmptyPattern).
			WithDetail("rule_id", r.RuleID)
	}
	for _, id := range r.MitreAttack {
		if len(id) == 0 || id[0] != 'T' {
			return nil, mdwerror.New("mitre_attack IDs must match /^T.+/").
				WithCode(mdwerror.CodeConfigMalformed).
				WithDetail("rule_id", r.RuleID).
				WithDetail("mitre_id", id)
		}
	}

	compiled := make([]CompiledPattern, 0, len(r.Patterns))
	for i, p := range r.Patterns {
		cp, err := compilePattern(p)
		if err != nil {
			return nil, mdwerror.Wrap(err, "pattern compilation failed").
				WithDetail("rule_id", r.RuleID).
				WithDetail("pattern_index", i)
		}
		compiled = append(compiled, cp)
	}

	return &CompiledRule{Rule: r, Patterns: compiled}, nil
}

func compilePattern(p Pattern) (CompiledPattern, error) {
	if p.Pattern == "" {
		return CompiledPattern{}, mdwerror.New("pattern must not be empty").
			WithCode(mdwerror.CodeConfigEmptyPattern)
	}
	if p.TimeoutMS <= 0 {
		return CompiledPattern{}, mdwerror.New("pattern timeout_ms must be > 0").
			WithCode(mdwerror.CodeConfigMalformed).
			WithDetail("timeout_ms", p.TimeoutMS)
	}

	var opts regexp2.RegexOptions
	for _, f := range p.Flags {
		o, ok := f.toRegexp2()
		if !ok {
			return CompiledPattern{}, mdwerror.New("unknown pattern flag").
				WithCode(mdwerror.CodeConfigUnknownFlag).
				WithDetail("flag", string(f))
		}
		opts |= o
	}

	re, err := regexp2.Compile(p.Pattern, opts)
	if err != nil {
		return CompiledPattern{}, mdwerror.Wrap(err, "invalid regex").
			WithCode(mdwerror.CodeConfigInvalidRegex).
			WithDetail("pattern", p.Pattern)
	}

	timeout := time.Duration(p.TimeoutMS) * time.Millisecond
	re.MatchTimeout = timeout

	return CompiledPattern{Source: p, Regex: re, Timeout: timeout}, nil
}
