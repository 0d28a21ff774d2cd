package health

import "context"

// RuleSource reports whether a rule registry is currently loaded and how
// many rules it holds. internal/raxe/packs.Store satisfies this.
type RuleSource interface {
	Loaded() bool
	RuleCount() int
}

// ModelSource reports whether the active L2 detector is a real model or
// the always-safe stub fallback. internal/raxe/ml.Detector satisfies
// this via IsStub/ModelVersion.
type ModelSource interface {
	IsStub() bool
	ModelVersion() string
}

// RulePacksLoadedChecker reports StatusUnhealthy when no rule pack is
// loaded and StatusDegraded when the pack is loaded but empty — a
// scan pipeline with zero rules lets every prompt through unchecked.
func RulePacksLoadedChecker(src RuleSource) Checker {
	return NewChecker("rule_packs_loaded", func(ctx context.Context) CheckResult {
		if !src.Loaded() {
			return CheckResult{Status: StatusUnhealthy, Message: "no rule pack loaded"}
		}
		n := src.RuleCount()
		if n == 0 {
			return CheckResult{Status: StatusDegraded, Message: "rule pack loaded with zero rules"}
		}
		return CheckResult{
			Status:  StatusHealthy,
			Message: "rule pack loaded",
			Details: map[string]interface{}{"rule_count": n},
		}
	})
}

// ModelLoadedChecker reports StatusDegraded when L2 is running on the
// always-safe stub rather than a trained model — scans still succeed,
// but L2 detections are unavailable.
func ModelLoadedChecker(src ModelSource) Checker {
	return NewChecker("l2_model_loaded", func(ctx context.Context) CheckResult {
		if src.IsStub() {
			return CheckResult{Status: StatusDegraded, Message: "L2 detector is running the stub fallback"}
		}
		return CheckResult{
			Status:  StatusHealthy,
			Message: "L2 model loaded",
			Details: map[string]interface{}{"model_version": src.ModelVersion()},
		}
	})
}
