// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     suppression
// Description: Suppression engine (C7): matches Detections against
//              user-declared glob rules and records an audit trail.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package suppression

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// compiledSuppression pairs a Suppression with its compiled glob.
type compiledSuppression struct {
	domain.Suppression
	matcher glob.Glob
	inline  bool
}

// AuditLog records every suppression decision for later review.
type AuditLog interface {
	Record(ctx context.Context, ruleID string, s domain.Suppression, action domain.SuppressionAction)
}

// MemoryAuditLog is an in-memory AuditLog, suited to tests and short-
// lived processes.
type MemoryAuditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
}

// AuditEntry is one recorded suppression decision.
type AuditEntry struct {
	RuleID    string
	Pattern   string
	Reason    string
	Action    domain.SuppressionAction
	Timestamp time.Time
}

func NewMemoryAuditLog() *MemoryAuditLog { return &MemoryAuditLog{} }

func (l *MemoryAuditLog) Record(_ context.Context, ruleID string, s domain.Suppression, action domain.SuppressionAction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, AuditEntry{
		RuleID:    ruleID,
		Pattern:   s.Pattern,
		Reason:    s.Reason,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

// Entries returns a copy of all recorded entries.
func (l *MemoryAuditLog) Entries() []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// FileAuditLog appends one line per decision to a file, for durable
// audit trails outside the process lifetime.
type FileAuditLog struct {
	mu   sync.Mutex
	path string
}

func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{path: path}
}

func (l *FileAuditLog) Record(_ context.Context, ruleID string, s domain.Suppression, action domain.SuppressionAction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return // audit logging failures never block the scan path
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\n", time.Now().UTC().Format(time.RFC3339), action, ruleID, s.Pattern, s.Reason)
	_, _ = f.WriteString(line)
}

// Engine evaluates Detections against a set of scoped and inline
// Suppressions. Inline suppressions (declared alongside the text being
// scanned) take precedence over scoped ones (declared per-project or
// per-customer) when both target the same rule pattern.
type Engine struct {
	scoped []compiledSuppression
	inline []compiledSuppression
	audit  AuditLog
}

// New compiles scoped and inline suppressions. Malformed glob patterns
// are configuration errors; callers should drop the offending entry
// and keep the rest (§7 SuppressionError semantics).
func New(scoped, inline []domain.Suppression, audit AuditLog) (*Engine, error) {
	e := &Engine{audit: audit}

	for _, s := range scoped {
		cs, err := compile(s, false)
		if err != nil {
			return nil, err
		}
		e.scoped = append(e.scoped, cs)
	}
	for _, s := range inline {
		cs, err := compile(s, true)
		if err != nil {
			return nil, err
		}
		e.inline = append(e.inline, cs)
	}

	return e, nil
}

func compile(s domain.Suppression, inline bool) (compiledSuppression, error) {
	if s.Pattern == "" {
		return compiledSuppression{}, mdwerror.New("suppression pattern must not be empty").
			WithCode(mdwerror.CodeSuppressionMalformed)
	}
	g, err := glob.Compile(s.Pattern)
	if err != nil {
		return compiledSuppression{}, mdwerror.Wrap(err, "invalid suppression glob").
			WithCode(mdwerror.CodeSuppressionMalformed).
			WithDetail("pattern", s.Pattern)
	}
	return compiledSuppression{Suppression: s, matcher: g, inline: inline}, nil
}

// Apply evaluates one Detection, returning it with IsFlagged and
// SuppressionReason populated, and whether it should be dropped
// (action == SUPPRESS).
func (e *Engine) Apply(ctx context.Context, d domain.Detection) (domain.Detection, bool) {
	match, ok := e.firstMatch(d)
	if !ok {
		return d, true
	}

	e.audit.Record(ctx, d.RuleID, match.Suppression, match.Action)

	switch match.Action {
	case domain.ActionSuppress:
		return d, false
	case domain.ActionFlag:
		d.IsFlagged = true
		d.SuppressionReason = match.Reason
		return d, true
	default: // ActionLog
		return d, true
	}
}

// firstMatch returns the suppression that applies to d, inline rules
// winning over scoped ones for the same rule pattern.
func (e *Engine) firstMatch(d domain.Detection) (compiledSuppression, bool) {
	for _, s := range e.inline {
		if s.matcher.Match(d.RuleID) {
			return s, true
		}
	}
	for _, s := range e.scoped {
		if s.matcher.Match(d.RuleID) {
			return s, true
		}
	}
	return compiledSuppression{}, false
}
