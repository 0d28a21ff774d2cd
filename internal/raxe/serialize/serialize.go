// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     serialize
// Description: Privacy-safe wire projection of ScanResult (C10). The
//              forbidden field set must never reach the output, even
//              indirectly through a detection message or metadata value.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package serialize

import (
	"encoding/json"
	"strings"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

// ForbiddenFields is the exact set of field names spec.md §4.10 bans
// from wire output, at any nesting level.
var ForbiddenFields = map[string]struct{}{
	"prompt":          {},
	"prompt_text":     {},
	"response":        {},
	"response_text":   {},
	"system_prompt":   {},
	"context":         {},
	"raw_text":        {},
	"input_text":      {},
	"output_text":     {},
	"user_input":      {},
	"matched_text":    {},
	"trigger_matches": {},
	"why_it_hit":      {},
}

// WireMatch is the projected form of domain.Match: positions only, no
// matched text.
type WireMatch struct {
	PatternIndex int `json:"pattern_index"`
	Start        int `json:"start"`
	End          int `json:"end"`
}

// WireDetection is the projected form of domain.Detection.
type WireDetection struct {
	RuleID         string      `json:"rule_id"`
	RuleVersion    string      `json:"rule_version"`
	Severity       string      `json:"severity"`
	Confidence     float64     `json:"confidence"`
	MatchCount     int         `json:"match_count"`
	Matches        []WireMatch `json:"matches"`
	DetectionLayer string      `json:"detection_layer"`
	Category       string      `json:"category"`
	IsFlagged      bool        `json:"is_flagged"`
}

// WireResult is the full privacy-safe projection of a ScanResult.
type WireResult struct {
	ScanID           string          `json:"scan_id"`
	HasThreats       bool            `json:"has_threats"`
	Severity         string          `json:"severity"`
	Action           string          `json:"action"`
	Detections       []WireDetection `json:"detections"`
	ScanDurationMS   float64         `json:"scan_duration_ms"`
	PromptHash       string          `json:"prompt_hash"`
	L1DurationMS     float64         `json:"l1_duration_ms"`
	L2DurationMS     float64         `json:"l2_duration_ms"`
	Mode             string          `json:"mode"`
	L2Metadata       map[string]any  `json:"l2_metadata,omitempty"`
}

// allowedL2MetadataKeys is the explicit allow-list of L2Result
// metadata keys that may be projected onto the wire.
var allowedL2MetadataKeys = map[string]struct{}{
	"is_stub": {},
}

// Project converts an internal ScanResult into its wire form. It never
// copies a detection's Message field verbatim, and it filters any
// metadata map to the allow-list, so forbidden fields cannot leak
// through a pass-through bug in an upstream component.
func Project(res domain.ScanResult, l2Metadata map[string]any) WireResult {
	out := WireResult{
		ScanID:         res.ScanID,
		HasThreats:     res.HasThreats,
		Severity:       res.CombinedSeverity,
		ScanDurationMS: res.TotalDurationMS,
		PromptHash:     res.TextHash,
		L1DurationMS:   res.L1DurationMS,
		L2DurationMS:   res.L2DurationMS,
		Mode:           res.Metadata.Mode,
	}
	if res.Decision != nil {
		out.Action = string(res.Decision.Action)
	}

	for _, d := range res.Detections {
		out.Detections = append(out.Detections, WireDetection{
			RuleID:         d.RuleID,
			RuleVersion:    d.RuleVersion,
			Severity:       d.Severity,
			Confidence:     d.Confidence,
			MatchCount:     len(d.Matches),
			Matches:        projectMatches(d.Matches),
			DetectionLayer: string(d.DetectionLayer),
			Category:       d.Category,
			IsFlagged:      d.IsFlagged,
		})
	}

	if len(l2Metadata) > 0 {
		out.L2Metadata = make(map[string]any, len(l2Metadata))
		for k, v := range l2Metadata {
			if _, allowed := allowedL2MetadataKeys[k]; allowed {
				out.L2Metadata[k] = v
			}
		}
	}

	return out
}

func projectMatches(matches []domain.Match) []WireMatch {
	out := make([]WireMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, WireMatch{PatternIndex: m.PatternIndex, Start: m.Start, End: m.End})
	}
	return out
}

// Marshal serializes a WireResult to JSON and additionally verifies,
// via a substring scan against originalText, that nothing resembling
// the scanned input leaked into the output (§8 property 2). A
// ValidationError is returned if it did.
func Marshal(w WireResult, originalText string) ([]byte, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to marshal scan result")
	}

	if err := checkNoLeakage(data, originalText); err != nil {
		return nil, err
	}
	return data, nil
}

// checkNoLeakage scans the marshaled JSON for windows of originalText
// minLeakLen runes long, taken every minLeakLen/2 runes, catching
// accidental verbatim inclusion of scanned text in the wire payload. A
// run of 35 or more runes that appears verbatim in the body contains a
// whole window and is always caught; a shorter run is caught only if it
// covers one of the windows.
const minLeakLen = 24

func checkNoLeakage(data []byte, originalText string) error {
	if len(originalText) < minLeakLen {
		return nil
	}
	body := string(data)
	runes := []rune(originalText)
	for i := 0; i+minLeakLen <= len(runes); i += minLeakLen / 2 {
		window := string(runes[i : i+minLeakLen])
		if strings.Contains(body, window) {
			return mdwerror.New("serialized scan result contains scanned input text").
				WithCode(mdwerror.CodeValidationFailed)
		}
	}
	return nil
}
