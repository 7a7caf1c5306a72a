package validation

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-api/internal/apidoc"
)

const bodyField = "body"

// Payload is a decoded request body that passed validation.
type Payload map[string]interface{}

// String returns the string value of field, or "" when absent.
func (p Payload) String(field string) string {
	s, _ := p[field].(string)
	return s
}

// PayloadValidator checks request bodies against the JSON Schema derived
// from a documentation model.
type PayloadValidator struct {
	model  apidoc.Model
	schema *jsonschema.Schema
}

// NewPayloadValidator compiles the schema for model.
func NewPayloadValidator(model apidoc.Model) (*PayloadValidator, error) {
	data, err := model.SchemaJSON()
	if err != nil {
		return nil, err
	}

	schemaURL := "mem://schemas/" + url.PathEscape(model.Name) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema for %s: %w", model.Name, err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", model.Name, err)
	}

	return &PayloadValidator{model: model, schema: schema}, nil
}

// Validate decodes body and checks it against the schema. An empty body is
// treated as an empty object. Failures are reported as *ValidationError.
func (pv *PayloadValidator) Validate(body []byte) (Payload, error) {
	var value interface{} = map[string]interface{}{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := sonic.ConfigStd.Unmarshal(body, &value); err != nil {
			ve := NewValidationError()
			ve.InvalidFormat(bodyField, nil, "JSON object")
			return nil, ve
		}
	}

	if err := pv.ValidateValue(value); err != nil {
		return nil, err
	}

	return Payload(value.(map[string]interface{})), nil
}

// ValidateValue checks an already decoded value against the schema.
func (pv *PayloadValidator) ValidateValue(value interface{}) error {
	err := pv.schema.Validate(value)
	if err == nil {
		return nil
	}

	schemaErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("failed to validate %s payload: %w", pv.model.Name, err)
	}

	ve := NewValidationError()
	pv.collect(ve, value, schemaErr)
	if !ve.HasErrors() {
		ve.InvalidValue(bodyField, nil, schemaErr.Message)
	}
	return ve
}

func (pv *PayloadValidator) collect(ve *ValidationError, value interface{}, err *jsonschema.ValidationError) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			pv.collect(ve, value, cause)
		}
		return
	}

	if strings.HasSuffix(err.KeywordLocation, "/required") {
		object, _ := value.(map[string]interface{})
		for _, name := range pv.model.Required() {
			if _, present := object[name]; !present && !ve.Has(name) {
				ve.Required(name)
			}
		}
		return
	}

	field := fieldFromPointer(err.InstanceLocation)
	ve.InvalidValue(field, lookup(value, field), err.Message)
}

// fieldFromPointer returns the top-level property a JSON pointer addresses,
// or "body" for the document root.
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return bodyField
	}
	if i := strings.Index(ptr, "/"); i >= 0 {
		ptr = ptr[:i]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(ptr)
}

func lookup(value interface{}, field string) interface{} {
	if object, ok := value.(map[string]interface{}); ok {
		return object[field]
	}
	return value
}
