package ml

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"
)

// Bundle is the single-file packaging of the same quantized layout
// OnnxFolder reads from a directory, zipped for distribution as a
// .raxebundle artifact.
type Bundle struct {
	inner *OnnxFolder
}

// NewBundle opens a .raxebundle archive and decodes its meta.json and
// weights.json entries.
func NewBundle(path string) (*Bundle, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var meta onnxMeta
	var weights onnxWeights

	for _, f := range zr.File {
		switch f.Name {
		case "meta.json":
			if err := decodeZipJSON(f, &meta); err != nil {
				return nil, err
			}
		case "weights.json":
			if err := decodeZipJSON(f, &weights); err != nil {
				return nil, err
			}
		}
	}

	return &Bundle{inner: &OnnxFolder{meta: meta, weights: weights}}, nil
}

func decodeZipJSON(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (b *Bundle) Analyze(ctx context.Context, text string, l1 []domain.Detection) domain.L2Result {
	return b.inner.Analyze(ctx, text, l1)
}

func (b *Bundle) ModelVersion() string { return b.inner.ModelVersion() }
func (b *Bundle) IsStub() bool         { return false }
