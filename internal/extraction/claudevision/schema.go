package claudevision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// replySchema constrains the decoded model reply before it is trusted.
// Every field is optional except the top-level shape; a partially filled
// reply still passes and simply scores a lower confidence.
var replySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"character_name":  map[string]any{"type": []any{"string", "null"}},
		"character_level": levelProp(),
		"points":          map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
		"global_power":    map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
		"stats": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"agility":   statProp(),
				"endurance": statProp(),
				"serve":     statProp(),
				"volley":    statProp(),
				"forehand":  statProp(),
				"backhand":  statProp(),
			},
		},
		"equipment": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"slot":  map[string]any{"type": "integer", "minimum": 1, "maximum": 6},
					"name":  map[string]any{"type": []any{"string", "null"}},
					"level": levelProp(),
				},
				"required": []any{"slot"},
			},
		},
	},
}

func statProp() map[string]any {
	return map[string]any{"type": []any{"integer", "null"}, "minimum": 0, "maximum": 999}
}

func levelProp() map[string]any {
	return map[string]any{"type": []any{"integer", "null"}, "minimum": 1, "maximum": 99}
}

var compiledSchema = mustCompile(replySchema)

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal reply schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("reply.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add reply schema: %v", err))
	}
	schema, err := compiler.Compile("reply.json")
	if err != nil {
		panic(fmt.Sprintf("compile reply schema: %v", err))
	}
	return schema
}

// validateReply checks decoded JSON against the reply schema.
func validateReply(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSchemaMismatch, err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSchemaMismatch, err)
	}
	return nil
}
