package services

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gowebpki/jcs"
	"github.com/kaptinlin/jsonschema"

	"modscan/internal/domain"
)

//go:embed manifest_schema.json
var manifestSchemaJSON []byte

var (
	manifestSchemaOnce sync.Once
	manifestSchema     *jsonschema.Schema
	manifestSchemaErr  error
)

type manifestDocument struct {
	Mods []manifestEntry `json:"mods"`
}

type manifestEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ParseManifest decodes mod list bytes into name -> enabled. A name listed
// twice keeps the later value.
func ParseManifest(data []byte) (domain.EnabledMap, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ManifestParseError{Reason: "not a JSON document", Cause: err}
	}
	schema, err := compiledManifestSchema()
	if err != nil {
		return nil, err
	}
	if result := schema.ValidateJSON(data); !result.IsValid() {
		return nil, &ManifestParseError{Reason: fmt.Sprintf("schema validation failed: %v", result.Errors)}
	}

	var document manifestDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, &ManifestParseError{Reason: "decode", Cause: err}
	}
	enabled := make(domain.EnabledMap, len(document.Mods))
	for _, entry := range document.Mods {
		enabled[entry.Name] = entry.Enabled
	}
	return enabled, nil
}

// ManifestDigest is the sha256 of the RFC 8785 canonical form, so
// formatting-only edits keep the same digest.
func ManifestDigest(data []byte) (string, error) {
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", &ManifestParseError{Reason: "canonicalize", Cause: err}
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func compiledManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		manifestSchema, manifestSchemaErr = compiler.Compile(manifestSchemaJSON)
		if manifestSchemaErr != nil {
			manifestSchemaErr = fmt.Errorf("compile mod list schema: %w", manifestSchemaErr)
		}
	})
	return manifestSchema, manifestSchemaErr
}
