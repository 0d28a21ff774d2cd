package cmd

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raxe-ce/raxe-go/internal/raxe/packs"
)

var (
	privateKeyB64 string
	ruleFiles     []string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a pack's rule files with an Ed25519 private key and rewrite pack.yaml",
	RunE:  runSign,
}

func init() {
	signCmd.Flags().StringVar(&privateKeyB64, "private-key", "", "base64-encoded Ed25519 private key (required)")
	signCmd.Flags().StringSliceVar(&ruleFiles, "rule-file", nil, "rule file relative to --pack (repeatable); defaults to pack.yaml's declared rules")
	_ = signCmd.MarkFlagRequired("private-key")
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	keyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil || len(keyBytes) != ed25519.PrivateKeySize {
		return fmt.Errorf("invalid --private-key: expected base64 Ed25519 private key")
	}
	priv := ed25519.PrivateKey(keyBytes)

	manifestPath := filepath.Join(packDir, "pack.yaml")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read pack.yaml: %w", err)
	}
	var manifest packs.Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return fmt.Errorf("failed to decode pack.yaml: %w", err)
	}

	files := ruleFiles
	if len(files) == 0 {
		files = manifest.RuleFiles
	}

	var payload []byte
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(packDir, f))
		if err != nil {
			return fmt.Errorf("failed to read rule file %s: %w", f, err)
		}
		payload = append(payload, b...)
	}

	sig := ed25519.Sign(priv, payload)
	manifest.Signature = base64.StdEncoding.EncodeToString(sig)
	manifest.PublicKey = base64.StdEncoding.EncodeToString(priv.Public().(ed25519.PublicKey))

	out, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode pack.yaml: %w", err)
	}
	if err := os.WriteFile(manifestPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write pack.yaml: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "signed %q (%d rule file(s))\n", manifest.Name, len(files))
	return nil
}
