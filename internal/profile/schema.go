package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// snapshotSchema describes the persisted file: a single JSON object
// mapping learner id to a profile record. Anything that fails this
// schema is treated the same as unparsable JSON.
const snapshotSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"required": ["mastery", "difficulty", "attempts", "correct"],
		"properties": {
			"mastery":    {"type": "number", "minimum": 0, "maximum": 1},
			"difficulty": {"enum": ["easy", "medium", "hard"]},
			"attempts":   {"type": "integer", "minimum": 0},
			"correct":    {"type": "integer", "minimum": 0},
			"last_login": {"type": "string"}
		}
	}
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// validateSnapshot checks raw snapshot bytes against the schema.
func validateSnapshot(raw []byte) error {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(snapshotSchema), &def); err != nil {
			compileSchemaError = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://profiles.json", def); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://profiles.json")
	})
	if compileSchemaError != nil {
		return compileSchemaError
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
