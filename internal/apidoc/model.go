// Package apidoc holds declarative descriptions of the API's payloads and
// operations. The same models drive request validation and the published
// Swagger document.
package apidoc

// FieldType is the JSON type of a model field.
type FieldType string

const (
	FieldInteger FieldType = "integer"
	FieldString  FieldType = "string"
)

// Field describes one property of a model.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	ReadOnly    bool
	Description string
}

// Model is a named object representation.
type Model struct {
	Name   string
	Fields []Field
}

// Required returns the names of required fields in declaration order.
func (m Model) Required() []string {
	var required []string
	for _, f := range m.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// Schema returns the object schema for the model. It is valid both as a
// Swagger definition and as a standalone JSON Schema.
func (m Model) Schema() *Schema {
	properties := make(map[string]*Schema, len(m.Fields))
	for _, f := range m.Fields {
		properties[f.Name] = &Schema{
			Type:        string(f.Type),
			Description: f.Description,
			ReadOnly:    f.ReadOnly,
		}
	}
	return &Schema{
		Type:       "object",
		Required:   m.Required(),
		Properties: properties,
	}
}
