package store

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the data file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&DataContext{})
	sch.Title = "assessctl data file"
	sch.Description = "Courses, students and their recorded marks."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
