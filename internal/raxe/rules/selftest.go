package rules

// MatchesExamples is the pure self-test a rule must pass before it can
// publish: every should_match example must produce at least one match
// from at least one pattern, and every should_not_match example must
// produce none.
func MatchesExamples(cr *CompiledRule) (failedShouldMatch, failedShouldNotMatch []string) {
	for _, text := range cr.Rule.Examples.ShouldMatch {
		if !anyPatternMatches(cr, text) {
			failedShouldMatch = append(failedShouldMatch, text)
		}
	}
	for _, text := range cr.Rule.Examples.ShouldNotMatch {
		if anyPatternMatches(cr, text) {
			failedShouldNotMatch = append(failedShouldNotMatch, text)
		}
	}
	return failedShouldMatch, failedShouldNotMatch
}

// SelfTest is the exported operation name used by the pack loader's
// publish gate and the raxe-packtool CLI (§8 property 10).
func SelfTest(cr *CompiledRule) (failedShouldMatch, failedShouldNotMatch []string) {
	return MatchesExamples(cr)
}

func anyPatternMatches(cr *CompiledRule, text string) bool {
	for _, cp := range cr.Patterns {
		m, err := cp.Regex.FindStringMatch(text)
		if err != nil {
			continue // timeout or runtime error: treat as no match for self-test
		}
		if m != nil {
			return true
		}
	}
	return false
}
