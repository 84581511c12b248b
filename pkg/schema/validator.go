package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Validator checks YAML documents against the schema reflected from a Go type.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator(name string, v any) (*Validator, error) {
	raw, err := GenerateJSONSchema(v)
	if err != nil {
		return nil, err
	}

	compiled, err := jsonschema.CompileString(name, string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Validator{schema: compiled}, nil
}

// ValidateYAML decodes data generically and validates it. The document is
// round-tripped through JSON so the validator sees JSON value types.
func (v *Validator) ValidateYAML(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode YAML: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	return v.schema.Validate(decoded)
}
