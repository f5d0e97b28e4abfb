package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// docSchema is the JSON Schema every module database must satisfy before it
// is written to disk. Keys at the top level are class names; sections map
// member names to cleaned documentation strings.
const docSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["class_name", "module_name", "structured_docs"],
    "properties": {
      "class_name": {"type": "string", "minLength": 1},
      "module_name": {"type": "string", "minLength": 1},
      "class_doc": {"type": "string"},
      "structured_docs": {
        "type": "object",
        "required": ["class_doc", "sections"],
        "properties": {
          "class_doc": {"type": "string"},
          "sections": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "additionalProperties": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var compiledDocSchema = jsonschema.MustCompileString("docstore.schema.json", docSchema)

func validateDocs(raw []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return compiledDocSchema.Validate(v)
}
