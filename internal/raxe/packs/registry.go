package packs

import (
	"sync/atomic"

	"github.com/raxe-ce/raxe-go/internal/raxe/rules"
)

// Registry is an immutable snapshot of all rules loaded from one or
// more packs. A new Registry replaces the old one wholesale on
// reload; in-flight scans keep using the snapshot they started with.
type Registry struct {
	Manifest Manifest
	byID     map[string]*rules.CompiledRule
	all      []*rules.CompiledRule
}

// NewRegistry builds an immutable Registry from already-compiled rules.
func NewRegistry(manifest Manifest, compiled []*rules.CompiledRule) *Registry {
	byID := make(map[string]*rules.CompiledRule, len(compiled))
	for _, cr := range compiled {
		byID[cr.Rule.VersionedID()] = cr
		byID[cr.Rule.RuleID] = cr
	}
	return &Registry{Manifest: manifest, byID: byID, all: compiled}
}

// GetAllRules returns every compiled rule in this registry.
func (r *Registry) GetAllRules() []*rules.CompiledRule {
	return r.all
}

// GetRule looks up a rule by its bare rule_id (latest loaded version).
func (r *Registry) GetRule(ruleID string) (*rules.CompiledRule, bool) {
	cr, ok := r.byID[ruleID]
	return cr, ok
}

// GetRuleVersioned looks up a rule by rule_id@version.
func (r *Registry) GetRuleVersioned(ruleID, version string) (*rules.CompiledRule, bool) {
	cr, ok := r.byID[ruleID+"@"+version]
	return cr, ok
}

// GetRulesByFamily returns every rule in the given family.
func (r *Registry) GetRulesByFamily(family rules.Family) []*rules.CompiledRule {
	var out []*rules.CompiledRule
	for _, cr := range r.all {
		if cr.Rule.Family == family {
			out = append(out, cr)
		}
	}
	return out
}

// GetRulesBySeverity returns every rule at or above the given severity.
func (r *Registry) GetRulesBySeverity(min rules.Severity) []*rules.CompiledRule {
	var out []*rules.CompiledRule
	for _, cr := range r.all {
		if cr.Rule.Severity.AtLeast(min) {
			out = append(out, cr)
		}
	}
	return out
}

// Store holds the currently-active Registry behind an atomic pointer
// so readers never observe a partially-updated rule set during a
// hot-reload.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore wraps an initial Registry in a Store.
func NewStore(initial *Registry) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Load returns the currently-active Registry.
func (s *Store) Load() *Registry {
	return s.current.Load()
}

// Swap atomically replaces the active Registry.
func (s *Store) Swap(next *Registry) {
	s.current.Store(next)
}

// Loaded reports whether a Registry has ever been stored. Satisfies
// pkg/core/health.RuleSource.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// RuleCount returns the number of rules in the active Registry, or 0
// if none is loaded. Satisfies pkg/core/health.RuleSource.
func (s *Store) RuleCount() int {
	if r := s.current.Load(); r != nil {
		return len(r.all)
	}
	return 0
}
