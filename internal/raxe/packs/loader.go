package packs

import (
	"crypto/ed25519"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/raxe-ce/raxe-go/internal/raxe/rules"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

var compiledManifestSchema = mustCompileManifestSchema()

func mustCompileManifestSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("pack-manifest.json", strings.NewReader(manifestSchema)); err != nil {
		panic(err) // embedded schema; a compile failure here is a programming error
	}
	schema, err := c.Compile("pack-manifest.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// LoadDir reads pack.yaml from dir, validates it, loads and compiles
// every referenced rule file, runs each rule's self-test, and returns
// an immutable Registry. A rule that fails its self-test is excluded
// with its failure recorded rather than failing the whole pack, unless
// requireSelfTest is true.
func LoadDir(dir string, requireSelfTest bool) (*Registry, []error) {
	manifestPath := filepath.Join(dir, "pack.yaml")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, []error{mdwerror.Wrap(err, "failed to read pack.yaml").
			WithCode(mdwerror.CodeConfigMalformed)}
	}

	var asMap map[string]any
	if err := yaml.Unmarshal(raw, &asMap); err != nil {
		return nil, []error{mdwerror.Wrap(err, "pack.yaml is not valid YAML").
			WithCode(mdwerror.CodeConfigMalformed)}
	}
	if err := compiledManifestSchema.Validate(asMap); err != nil {
		return nil, []error{mdwerror.Wrap(err, "pack.yaml failed schema validation").
			WithCode(mdwerror.CodeConfigSchemaInvalid)}
	}

	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, []error{mdwerror.Wrap(err, "failed to decode pack.yaml").
			WithCode(mdwerror.CodeConfigMalformed)}
	}
	if err := manifest.validateVersion(); err != nil {
		return nil, []error{err}
	}
	if err := manifest.CheckSchemaVersion(); err != nil {
		return nil, []error{err}
	}

	if manifest.Signature != "" {
		if err := verifySignature(dir, manifest); err != nil {
			return nil, []error{err}
		}
	}

	var errs []error
	var compiled []*rules.CompiledRule

	for _, relPath := range manifest.RuleFiles {
		ruleErrs := func() []error {
			rulePath := filepath.Join(dir, relPath)
			ruleBytes, err := os.ReadFile(rulePath)
			if err != nil {
				return []error{mdwerror.Wrap(err, "failed to read rule file").
					WithCode(mdwerror.CodeConfigMalformed).
					WithDetail("file", relPath)}
			}

			var r rules.Rule
			if err := yaml.Unmarshal(ruleBytes, &r); err != nil {
				return []error{mdwerror.Wrap(err, "rule file is not valid YAML").
					WithCode(mdwerror.CodeConfigMalformed).
					WithDetail("file", relPath)}
			}

			cr, err := rules.Compile(r)
			if err != nil {
				return []error{err}
			}

			failedMatch, failedNoMatch := rules.SelfTest(cr)
			if len(failedMatch) > 0 || len(failedNoMatch) > 0 {
				// The rule is excluded from the registry either way; when
				// requireSelfTest is set the caller treats this error as
				// fatal for the whole pack instead of just logging it.
				return []error{mdwerror.New("rule failed self-test against its declared examples").
					WithCode(mdwerror.CodeConfigMalformed).
					WithDetail("rule_id", r.RuleID).
					WithDetail("failed_should_match", failedMatch).
					WithDetail("failed_should_not_match", failedNoMatch)}
			}

			compiled = append(compiled, cr)
			return nil
		}()
		errs = append(errs, ruleErrs...)
	}

	if requireSelfTest && len(errs) > 0 {
		return nil, errs
	}
	return NewRegistry(manifest, compiled), errs
}

// verifySignature checks manifest.Signature (base64 Ed25519) over the
// concatenation of every referenced rule file's raw bytes in declared
// order, using manifest.PublicKey (base64 Ed25519 public key).
func verifySignature(dir string, manifest Manifest) error {
	pubKeyBytes, err := base64.StdEncoding.DecodeString(manifest.PublicKey)
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		return mdwerror.New("pack public_key is not a valid Ed25519 key").
			WithCode(mdwerror.CodeSignatureInvalid)
	}
	sig, err := base64.StdEncoding.DecodeString(manifest.Signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return mdwerror.New("pack signature is not a valid Ed25519 signature").
			WithCode(mdwerror.CodeSignatureInvalid)
	}

	var payload []byte
	for _, relPath := range manifest.RuleFiles {
		b, err := os.ReadFile(filepath.Join(dir, relPath))
		if err != nil {
			return mdwerror.Wrap(err, "failed to read rule file for signature check").
				WithCode(mdwerror.CodeSignatureInvalid).
				WithDetail("file", relPath)
		}
		payload = append(payload, b...)
	}

	if !ed25519.Verify(ed25519.PublicKey(pubKeyBytes), payload, sig) {
		return mdwerror.New("pack signature verification failed").
			WithCode(mdwerror.CodeSignatureInvalid).
			WithDetail("pack", manifest.Name)
	}
	return nil
}
