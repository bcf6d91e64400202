package intake

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// batchSchemaDef is the JSON Schema for an assessment batch as delivered
// by the capture layer. Structural problems are caught here; range checks
// are repeated by the scoring packages so the engine stays safe when
// called directly.
var batchSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject_id": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Student UUID",
		},
		"responses": map[string]any{
			"type":                 "object",
			"description":          "Raw Likert responses keyed by rater (student, parent)",
			"minProperties":        1,
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "integer", "minimum": 1},
						"domain": map[string]any{
							"type": "string",
							"enum": []any{
								"processing_speed", "working_memory", "attention_focus",
								"learning_style", "self_efficacy", "motivation_engagement",
							},
						},
						"value":   map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
						"reverse": map[string]any{"type": "boolean"},
					},
					"required":             []any{"question", "domain", "value"},
					"additionalProperties": false,
				},
			},
		},
		"academic": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct": map[string]any{"type": "integer", "minimum": 0},
				"total":   map[string]any{"type": "integer", "minimum": 1},
				"question_times": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number", "minimum": 0},
				},
			},
			"required":             []any{"correct", "total"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"subject_id", "responses"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// batchSchema compiles the batch schema once and caches it.
func batchSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(batchSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://assessment-batch.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
