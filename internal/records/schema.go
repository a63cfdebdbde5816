package records

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// schemaPrinter formats schema validation error messages.
var schemaPrinter = message.NewPrinter(language.English)

const metricsSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "test metrics record",
  "type": "object",
  "required": ["timestamp", "number_of_epochs_trained", "evaluation"],
  "properties": {
    "timestamp": {"type": "number"},
    "number_of_epochs_trained": {"type": "integer", "minimum": 0},
    "evaluation": {
      "type": "object",
      "additionalProperties": {"type": "array", "items": {"type": "number"}}
    },
    "accuracy": {"type": "array", "items": {"type": "number"}},
    "superset_accuracy": {"type": "array", "items": {"type": "number"}},
    "statistics": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "mean": {"type": "number"},
          "standard_deviation": {"type": "number"},
          "dispersion": {"type": "number"},
          "minimum": {"type": "number"},
          "maximum": {"type": "number"},
          "sparsity": {"type": "number"}
        }
      }
    }
  }
}`

const predictionSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "test prediction record",
  "type": "object",
  "required": ["prediction_method", "number_of_classes"],
  "properties": {
    "prediction_method": {"type": "string"},
    "number_of_classes": {"type": "integer", "minimum": 0},
    "scores": {
      "type": "object",
      "additionalProperties": {"type": ["number", "null"]}
    }
  }
}`

var (
	metricsSchema    = mustCompileSchema(metricsSchemaJSON, "test-metrics.schema.json")
	predictionSchema = mustCompileSchema(predictionSchemaJSON, "test-prediction.schema.json")
)

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) error {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema: %w", err)
	}

	var messages []string
	collectSchemaErrors(ve, &messages)
	return fmt.Errorf("schema violation: %s", strings.Join(messages, "; "))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, messages *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*messages = append(*messages, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(schemaPrinter)))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, messages)
	}
}
