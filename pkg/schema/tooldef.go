package schema

import (
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

// ToolDefinition is a tool the model may call, with a JSON schema for its input
type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

// ToolFor returns a tool definition with the input schema inferred from T
func ToolFor[T any](name, description string) (ToolDefinition, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return ToolDefinition{}, err
	}
	return ToolDefinition{
		Name:        name,
		Description: description,
		InputSchema: s,
	}, nil
}
