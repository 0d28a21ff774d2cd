package ml

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
)

// onnxMeta mirrors the metadata sidecar shipped alongside a quantized
// weight folder. There is no ONNX runtime binding here; "Onnx" names
// the artifact layout this folder format was exported from, not the
// execution engine.
type onnxMeta struct {
	Version     string   `json:"version"`
	Threshold   float64  `json:"threshold"`
	NumFeatures int      `json:"num_features"`
	Heads       []string `json:"heads"`
}

// onnxHead is one quantized linear classifier head: y = sigmoid(w.x*scale + bias*scale).
type onnxHead struct {
	Name    string  `json:"name"`
	Weights []int8  `json:"weights"`
	Bias    int8    `json:"bias"`
	Scale   float64 `json:"scale"`
}

type onnxWeights struct {
	Heads []onnxHead `json:"heads"`
}

// OnnxFolder is a pure-Go quantized linear-layer classifier loaded
// from a directory of meta.json + weights.json. It performs a
// hashed-bag-of-words forward pass per head with no external runtime.
type OnnxFolder struct {
	meta    onnxMeta
	weights onnxWeights
}

// NewOnnxFolder loads a quantized model folder.
func NewOnnxFolder(dir string) (*OnnxFolder, error) {
	metaBytes, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		return nil, err
	}
	var meta onnxMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, err
	}

	weightBytes, err := os.ReadFile(filepath.Join(dir, "weights.json"))
	if err != nil {
		return nil, err
	}
	var weights onnxWeights
	if err := json.Unmarshal(weightBytes, &weights); err != nil {
		return nil, err
	}

	return &OnnxFolder{meta: meta, weights: weights}, nil
}

func (o *OnnxFolder) ModelVersion() string { return o.meta.Version }
func (o *OnnxFolder) IsStub() bool         { return false }

func (o *OnnxFolder) Analyze(ctx context.Context, text string, l1 []domain.Detection) domain.L2Result {
	start := time.Now()
	features := hashFeatures(text, o.meta.NumFeatures)

	predictions := make([]domain.L2Prediction, 0, len(o.weights.Heads))
	for _, head := range o.weights.Heads {
		select {
		case <-ctx.Done():
			res := domain.L2Result{
				ModelVersion: o.meta.Version,
				Metadata:     map[string]any{"error": ctx.Err().Error(), "is_stub": false},
			}
			return withTiming(start, res)
		default:
		}

		score := dequantizedDot(head, features)
		if score < o.meta.Threshold {
			continue
		}
		predictions = append(predictions, domain.L2Prediction{
			ThreatType: classifyThreat(head.Name),
			Confidence: score,
			Scores: domain.L2Scores{
				AttackProbability: score,
			},
			Family:    head.Name,
			WhyItHit:  "hashed-feature linear classifier exceeded threshold",
			Uncertain: score < o.meta.Threshold+0.1,
		})
	}

	confidence := 0.0
	for _, p := range predictions {
		if p.Confidence > confidence {
			confidence = p.Confidence
		}
	}

	res := domain.L2Result{
		Predictions:       predictions,
		Confidence:        confidence,
		ModelVersion:      o.meta.Version,
		FeaturesExtracted: []string{"hashed_bow"},
		Metadata:          map[string]any{"is_stub": false, "l1_detections": len(l1)},
	}
	return withTiming(start, res)
}

func classifyThreat(headName string) domain.ThreatType {
	switch strings.ToUpper(headName) {
	case string(domain.ThreatSemanticJailbreak), "JAILBREAK":
		return domain.ThreatSemanticJailbreak
	case string(domain.ThreatEncodedInjection), "ENCODING":
		return domain.ThreatEncodedInjection
	case string(domain.ThreatContextManipulation):
		return domain.ThreatContextManipulation
	case string(domain.ThreatPrivilegeEscalation):
		return domain.ThreatPrivilegeEscalation
	case string(domain.ThreatDataExfilPattern):
		return domain.ThreatDataExfilPattern
	case string(domain.ThreatObfuscatedCommand):
		return domain.ThreatObfuscatedCommand
	default:
		return domain.ThreatUnknown
	}
}

// hashFeatures builds a fixed-width term-frequency vector over
// whitespace tokens, hashed into [0, numFeatures) with FNV-1a.
func hashFeatures(text string, numFeatures int) []float64 {
	if numFeatures <= 0 {
		numFeatures = 4096
	}
	vec := make([]float64, numFeatures)
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return vec
	}
	for _, tok := range tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		idx := int(h.Sum32()) % numFeatures
		if idx < 0 {
			idx += numFeatures
		}
		vec[idx] += 1.0
	}
	inv := 1.0 / float64(len(tokens))
	for i := range vec {
		vec[i] *= inv
	}
	return vec
}

func dequantizedDot(head onnxHead, features []float64) float64 {
	n := len(head.Weights)
	if len(features) < n {
		n = len(features)
	}
	sum := float64(head.Bias) * head.Scale
	for i := 0; i < n; i++ {
		sum += float64(head.Weights[i]) * head.Scale * features[i]
	}
	return sigmoid(sum)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
