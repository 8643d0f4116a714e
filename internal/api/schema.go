package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema constrains the scoring response before the client accepts
// it. The recommendation list arrives rank-ordered from the backend and
// is consumed as-is, so shape is the only thing checked here.
const resultSchema = `{
	"type": "object",
	"required": ["personality_type", "personality_description", "recommendations"],
	"properties": {
		"personality_type": {"type": "string", "minLength": 1},
		"personality_description": {"type": "string"},
		"recommendations": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["club_id", "club_name", "match_percentage", "reason"],
				"properties": {
					"club_id": {"type": "string", "minLength": 1},
					"club_name": {"type": "string"},
					"match_percentage": {"type": "integer", "minimum": 0, "maximum": 100},
					"reason": {"type": "string"}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledResult *jsonschema.Schema
	compileErr     error
)

// validateResultPayload checks raw against the quiz result schema.
func validateResultPayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := resultSchemaCompiled()
	if err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("result failed schema validation: %w", err)
	}
	return nil
}

// resultSchemaCompiled compiles the schema once and caches it.
func resultSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(resultSchema), &def); err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-result.json", def); err != nil {
			compileErr = err
			return
		}
		compiledResult, compileErr = c.Compile("schema://quiz-result.json")
	})
	return compiledResult, compileErr
}
