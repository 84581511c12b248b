package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	jsr "github.com/invopop/jsonschema"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// NewReflector returns a reflector that names properties after yaml tags and
// only marks fields required when they carry `jsonschema:"required"`.
func NewReflector() *jsr.Reflector {
	return &jsr.Reflector{
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		Mapper: func(t reflect.Type) *jsr.Schema {
			if t == uuidType {
				return &jsr.Schema{Type: "string", Format: "uuid"}
			}
			return nil
		},
	}
}

// Reflect builds the JSON Schema of v's type.
func Reflect(v any) *jsr.Schema {
	return NewReflector().Reflect(v)
}

// GenerateJSONSchema renders the schema of v's type as indented JSON.
func GenerateJSONSchema(v any) ([]byte, error) {
	data, err := json.MarshalIndent(Reflect(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return data, nil
}
