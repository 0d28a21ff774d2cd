package ml

import (
	"context"
	"time"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
)

// Stub is the zero-dependency Detector used when no model artifact is
// configured. It always reports no threat and flags itself via
// metadata.is_stub so callers and the pipeline can surface that L2
// coverage is currently a no-op.
type Stub struct{}

// NewStub constructs the always-safe fallback Detector.
func NewStub() *Stub { return &Stub{} }

func (s *Stub) Analyze(_ context.Context, text string, _ []domain.Detection) domain.L2Result {
	start := time.Now()
	res := domain.L2Result{
		Predictions:  nil,
		Confidence:   0,
		ModelVersion: s.ModelVersion(),
		Metadata: map[string]any{
			"is_stub":    true,
			"text_bytes": len(text),
		},
	}
	return withTiming(start, res)
}

func (s *Stub) ModelVersion() string { return "stub-v0" }
func (s *Stub) IsStub() bool         { return true }
