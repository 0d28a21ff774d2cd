// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     ml
// Description: L2 detector abstraction (C5). A Detector never raises to
//              its caller: failures are captured as metadata.error on an
//              empty L2Result.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package ml

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
)

// Detector classifies text with the L2 model. Implementations must be
// safe for concurrent use.
type Detector interface {
	Analyze(ctx context.Context, text string, l1 []domain.Detection) domain.L2Result
	ModelVersion() string
	IsStub() bool
}

// Discover picks the best available Detector for modelPath: a folder
// of quantized weight files, a single bundle file, or — if neither is
// present — the Stub fallback. Discovery never errors; an unusable
// path just yields a Stub.
func Discover(modelPath string) Detector {
	if modelPath == "" {
		return NewStub()
	}

	info, err := os.Stat(modelPath)
	if err != nil {
		return NewStub()
	}

	if info.IsDir() {
		if d, err := NewOnnxFolder(modelPath); err == nil {
			return d
		}
		return NewStub()
	}

	if filepath.Ext(modelPath) == ".raxebundle" {
		if d, err := NewBundle(modelPath); err == nil {
			return d
		}
	}

	return NewStub()
}

func withTiming(start time.Time, res domain.L2Result) domain.L2Result {
	res.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	return res
}
