// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     pipeline
// Description: Scan pipeline (C9): orchestrates L1/L2 execution,
//              suppression, voting, and policy into one ScanResult.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
	"github.com/raxe-ce/raxe-go/internal/raxe/engineconfig"
	"github.com/raxe-ce/raxe-go/internal/raxe/executor"
	"github.com/raxe-ce/raxe-go/internal/raxe/ml"
	"github.com/raxe-ce/raxe-go/internal/raxe/policy"
	"github.com/raxe-ce/raxe-go/internal/raxe/suppression"
	"github.com/raxe-ce/raxe-go/internal/raxe/voting"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// FastPathSeverity and FastPathConfidence are the L1 thresholds that
// cancel an in-flight L2 analysis in balanced mode (fast mode runs no
// L2), per spec.md §5.
const (
	FastPathSeverity   = "CRITICAL"
	FastPathConfidence = 0.90
)

// Pipeline wires L1 execution, L2 analysis, suppression, and policy
// into one scan() operation.
type Pipeline struct {
	cfg        engineconfig.EngineConfig
	exec       *executor.Executor
	detector   ml.Detector
	suppressor *suppression.Engine
	policies   domain.PolicySet
	weights    voting.Weights
}

// New builds a Pipeline from its component dependencies.
func New(cfg engineconfig.EngineConfig, exec *executor.Executor, detector ml.Detector, suppressor *suppression.Engine, policies domain.PolicySet) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		exec:       exec,
		detector:   detector,
		suppressor: suppressor,
		policies:   policies,
		weights:    voting.PresetWeights(voting.Preset(cfg.VotingPreset)),
	}
}

// Scan runs the full detection pipeline against text.
func (p *Pipeline) Scan(ctx context.Context, text string) (domain.ScanResult, error) {
	start := time.Now()

	if text == "" {
		return domain.ScanResult{}, mdwerror.New("scan text must not be empty").
			WithCode(mdwerror.CodeValidationEmptyInput)
	}
	if len(text) > p.cfg.MaxTextLength {
		return domain.ScanResult{}, mdwerror.New("scan text exceeds maximum length").
			WithCode(mdwerror.CodeValidationTextTooLong).
			WithDetail("max_length", p.cfg.MaxTextLength)
	}

	var l1Detections []domain.Detection
	var l1Duration, l2Duration float64
	var l2Result domain.L2Result
	l1Timeout, l2Timeout, l2Cancelled := false, false, false

	switch p.cfg.Mode {
	case engineconfig.ModeThorough:
		l1Detections, l1Duration, l1Timeout = p.runL1(ctx, text)
		if p.cfg.L2Enabled {
			l2Result, l2Duration, l2Timeout = p.runL2(ctx, text, l1Detections)
		}
	default:
		l1Detections, l1Duration, l2Result, l2Duration, l1Timeout, l2Timeout, l2Cancelled = p.runParallel(ctx, text)
	}

	merged := append([]domain.Detection{}, l1Detections...)
	merged = append(merged, l2DetectionsAbove(l2Result, p.cfg.ConfidenceThreshold)...)

	surviving := p.applySuppression(ctx, merged)

	decision := p.applyPolicy(surviving)
	vote := voting.Decide(l1Detections, l2Result, p.weights)

	res := domain.ScanResult{
		ScanID:          uuid.NewString(),
		HasThreats:      len(surviving) > 0,
		TotalDetections: len(surviving),
		L1Detections:    countLayer(surviving, domain.LayerL1),
		L2Detections:    countLayer(surviving, domain.LayerL2),
		Detections:      surviving,
		L1DurationMS:    l1Duration,
		L2DurationMS:    l2Duration,
		TotalDurationMS: float64(time.Since(start).Microseconds()) / 1000.0,
		TextHash:        domain.HashText(text),
		Metadata: domain.ScanResultMetadata{
			Mode:                string(p.cfg.Mode),
			L1Enabled:           p.cfg.L1Enabled,
			L2Enabled:           p.cfg.L2Enabled,
			ConfidenceThreshold: p.cfg.ConfidenceThreshold,
			ExecutionMode:       executionModeFor(p.cfg.Mode),
			L2Cancelled:         l2Cancelled,
			L2Timeout:           l2Timeout,
			L1Timeout:           l1Timeout,
		},
		Decision:         &decision,
		CombinedSeverity: vote.Severity,
	}

	if l1Duration > 0 && l2Duration > 0 {
		sequential := l1Duration + l2Duration
		if res.TotalDurationMS > 0 {
			res.Metadata.ParallelSpeedup = sequential / res.TotalDurationMS
		}
	}

	return res, nil
}

func executionModeFor(mode engineconfig.Mode) string {
	if mode == engineconfig.ModeThorough {
		return "sync"
	}
	return "parallel"
}

func (p *Pipeline) runL1(ctx context.Context, text string) ([]domain.Detection, float64, bool) {
	if !p.cfg.L1Enabled {
		return nil, 0, false
	}
	l1Ctx, cancel := context.WithTimeout(ctx, p.cfg.L1Timeout())
	defer cancel()

	start := time.Now()
	detections, err := p.exec.Execute(l1Ctx, text)
	duration := float64(time.Since(start).Microseconds()) / 1000.0
	timedOut := l1Ctx.Err() == context.DeadlineExceeded
	if err != nil {
		return nil, duration, timedOut
	}
	return detections, duration, timedOut
}

func (p *Pipeline) runL2(ctx context.Context, text string, l1 []domain.Detection) (domain.L2Result, float64, bool) {
	if !p.cfg.L2Enabled {
		return domain.L2Result{}, 0, false
	}
	l2Ctx, cancel := context.WithTimeout(ctx, p.cfg.L2Timeout())
	defer cancel()

	start := time.Now()
	result := p.detector.Analyze(l2Ctx, text, l1)
	duration := float64(time.Since(start).Microseconds()) / 1000.0
	return result, duration, l2Ctx.Err() == context.DeadlineExceeded
}

// runParallel executes L1 and L2 concurrently, cancelling L2 as soon
// as L1 emits a result crossing the fast-path threshold.
func (p *Pipeline) runParallel(ctx context.Context, text string) (
	l1Detections []domain.Detection, l1Duration float64,
	l2Result domain.L2Result, l2Duration float64,
	l1Timeout, l2Timeout, l2Cancelled bool,
) {
	runL2 := p.cfg.L2Enabled && p.cfg.Mode != engineconfig.ModeFast

	l2Ctx, l2Cancel := context.WithTimeout(ctx, p.cfg.L2Timeout())
	defer l2Cancel()

	var wg sync.WaitGroup
	if runL2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			l2Result = p.detector.Analyze(l2Ctx, text, nil)
			l2Duration = float64(time.Since(start).Microseconds()) / 1000.0
		}()
	}

	l1Detections, l1Duration, l1Timeout = p.runL1(ctx, text)

	if runL2 && hasFastPathMatch(l1Detections) {
		l2Cancel()
		l2Cancelled = true
	}

	if runL2 {
		wg.Wait()
		l2Timeout = l2Ctx.Err() == context.DeadlineExceeded && !l2Cancelled
	}

	return
}

func hasFastPathMatch(detections []domain.Detection) bool {
	for _, d := range detections {
		if d.Severity == FastPathSeverity && d.Confidence >= FastPathConfidence {
			return true
		}
	}
	return false
}

func l2DetectionsAbove(res domain.L2Result, threshold float64) []domain.Detection {
	var out []domain.Detection
	now := time.Now().UTC()
	for _, pr := range res.Predictions {
		if pr.Confidence < threshold {
			continue
		}
		out = append(out, domain.Detection{
			RuleID:         "l2:" + string(pr.ThreatType),
			Severity:       severityForConfidence(pr.Confidence),
			Confidence:     pr.Confidence,
			DetectedAt:     now,
			DetectionLayer: domain.LayerL2,
			Category:       pr.Family,
			Message:        pr.WhyItHit,
		})
	}
	return out
}

func severityForConfidence(confidence float64) string {
	switch {
	case confidence >= 0.95:
		return "CRITICAL"
	case confidence >= 0.85:
		return "HIGH"
	case confidence >= 0.7:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func countLayer(detections []domain.Detection, layer domain.DetectionLayer) int {
	n := 0
	for _, d := range detections {
		if d.DetectionLayer == layer {
			n++
		}
	}
	return n
}

func (p *Pipeline) applySuppression(ctx context.Context, detections []domain.Detection) []domain.Detection {
	if p.suppressor == nil {
		return detections
	}
	out := make([]domain.Detection, 0, len(detections))
	for _, d := range detections {
		updated, keep := p.suppressor.Apply(ctx, d)
		if keep {
			out = append(out, updated)
		}
	}
	return out
}

func (p *Pipeline) applyPolicy(detections []domain.Detection) domain.PolicyDecision {
	if len(detections) == 0 {
		return domain.PolicyDecision{Action: domain.PolicyAllow, Metadata: map[string]any{"matched": false}}
	}

	worst := detections[0]
	worstRank := severityRank(worst.Severity)
	for _, d := range detections[1:] {
		if r := severityRank(d.Severity); r > worstRank {
			worst = d
			worstRank = r
		}
	}
	decision := policy.Evaluate(worst, p.policies)
	return decision
}

func severityRank(s string) int {
	switch s {
	case "CRITICAL":
		return 4
	case "HIGH":
		return 3
	case "MEDIUM":
		return 2
	case "LOW":
		return 1
	default:
		return 0
	}
}
