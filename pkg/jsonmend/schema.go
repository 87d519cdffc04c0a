package jsonmend

import "github.com/invopop/jsonschema"

// Manifest models the package manifest fields the semantic checker cares
// about. Remediation itself works on untyped values; this shape exists for
// ManifestSchema and for callers that want a typed view of a repaired
// manifest.
type Manifest struct {
	Name            string            `json:"name" jsonschema:"required,minLength=1,description=Package name"`
	Version         string            `json:"version" jsonschema:"required,pattern=^\\d+\\.\\d+\\.\\d+,description=Semantic version"`
	Description     string            `json:"description,omitempty"`
	Main            string            `json:"main,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// ManifestSchema returns a JSON Schema describing the manifest shape the
// semantic checker enforces. Additional properties stay allowed: real
// manifests carry many fields the checker does not reason about.
func ManifestSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	return r.Reflect(&Manifest{})
}
