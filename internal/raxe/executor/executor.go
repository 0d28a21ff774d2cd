// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     executor
// Description: Runs compiled rules against input text (L1, C3), honoring
//              per-pattern timeouts and memoizing match results.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package executor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
	"github.com/raxe-ce/raxe-go/internal/raxe/embedcache"
	"github.com/raxe-ce/raxe-go/internal/raxe/rules"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// MaxTextLength bounds scan input; callers should source this from
// engineconfig's performance.max_text_length instead of this default
// when a config is available.
const MaxTextLength = 1 << 20 // 1 MiB

// Stats counts executor-level events across the process lifetime.
type Stats struct {
	RuleTimeouts int64
}

// Executor evaluates a fixed set of compiled rules against text,
// caching per-(pattern,text) match outcomes.
type Executor struct {
	rules      []*rules.CompiledRule
	matchCache *embedcache.Cache[[]domain.Match]
	stats      *atomicStats
}

type atomicStats struct {
	ruleTimeouts int64
}

// New builds an Executor over the given compiled rules. matchCacheSize
// of 0 disables the cache.
func New(compiledRules []*rules.CompiledRule, matchCacheSize int) (*Executor, error) {
	cache, err := embedcache.New[[]domain.Match](matchCacheSize, 0)
	if err != nil {
		return nil, err
	}
	return &Executor{rules: compiledRules, matchCache: cache, stats: &atomicStats{}}, nil
}

// Stats returns a snapshot of executor counters.
func (e *Executor) Stats() Stats {
	return Stats{RuleTimeouts: e.stats.ruleTimeouts}
}

// Execute runs every rule against text and returns one Detection per
// rule that produced at least one match, ordered by rule_id ASC then
// first-match-start ASC, per spec.md §5.
func (e *Executor) Execute(ctx context.Context, text string) ([]domain.Detection, error) {
	if text == "" {
		return nil, mdwerror.New("scan text must not be empty").
			WithCode(mdwerror.CodeValidationEmptyInput)
	}
	if len(text) > MaxTextLength {
		return nil, mdwerror.New("scan text exceeds maximum length").
			WithCode(mdwerror.CodeValidationTextTooLong).
			WithDetail("length", len(text)).
			WithDetail("max_length", MaxTextLength)
	}

	detections := make([]domain.Detection, 0, len(e.rules))

loop:
	for _, cr := range e.rules {
		select {
		case <-ctx.Done():
			break loop // L1 deadline: return partial results, never error
		default:
		}

		matches := e.matchRule(cr, text)
		if len(matches) == 0 {
			continue
		}

		detections = append(detections, domain.Detection{
			RuleID:         cr.Rule.RuleID,
			RuleVersion:    cr.Rule.Version,
			Severity:       string(cr.Rule.Severity),
			Confidence:     cr.Rule.Confidence,
			Matches:        matches,
			DetectedAt:     time.Now().UTC(),
			DetectionLayer: domain.LayerL1,
			Category:       string(cr.Rule.Family),
			Message:        cr.Rule.Name,
		})
	}

	sort.SliceStable(detections, func(i, j int) bool {
		if detections[i].RuleID != detections[j].RuleID {
			return detections[i].RuleID < detections[j].RuleID
		}
		return firstMatchStart(detections[i]) < firstMatchStart(detections[j])
	})

	return detections, nil
}

func firstMatchStart(d domain.Detection) int {
	if len(d.Matches) == 0 {
		return 0
	}
	return d.Matches[0].Start
}

func (e *Executor) matchRule(cr *rules.CompiledRule, text string) []domain.Match {
	cacheKey := cr.Rule.VersionedID() + "|" + patternsHash(cr) + "|" + text

	if cached, ok := e.matchCache.Get(cacheKey); ok {
		return cached
	}

	var matches []domain.Match
	for i, cp := range cr.Patterns {
		m, err := cp.Regex.FindStringMatch(text)
		if err != nil {
			// regexp2 surfaces timeouts as errors; abandon only this
			// pattern, never the whole rule or scan.
			e.stats.ruleTimeouts++
			continue
		}
		for m != nil {
			groups := map[string]string{}
			for _, g := range m.Groups() {
				if g.Name != "" && g.Name != "0" {
					groups[g.Name] = g.String()
				}
			}
			matches = append(matches, domain.Match{
				PatternIndex: i,
				Start:        m.Index,
				End:          m.Index + m.Length,
				MatchedText:  m.String(),
				Groups:       groups,
			})
			m, err = cp.Regex.FindNextMatch(m)
			if err != nil {
				e.stats.ruleTimeouts++
				break
			}
		}
	}

	e.matchCache.Set(cacheKey, matches)
	return matches
}

func patternsHash(cr *rules.CompiledRule) string {
	h := sha256.New()
	for _, p := range cr.Patterns {
		h.Write([]byte(p.Source.Pattern))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
