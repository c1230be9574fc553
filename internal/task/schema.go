package task

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// listSchemaJSON describes the persisted slot format: a flat array of
// {id, text, completed} objects, no version field, no nesting.
const listSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "text": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var listSchema = jsonschema.MustCompileString("tasks.schema.json", listSchemaJSON)
