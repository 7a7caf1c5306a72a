package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/apidoc"
)

var changeModel = apidoc.Model{
	Name: "Task Change",
	Fields: []apidoc.Field{
		{Name: "detail", Type: apidoc.FieldString, Required: true, Description: "The task details"},
	},
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return ve
}

func newTestValidator(t *testing.T) *PayloadValidator {
	t.Helper()
	pv, err := NewPayloadValidator(changeModel)
	require.NoError(t, err)
	return pv
}

func TestNewPayloadValidator_ModelNameWithSpace(t *testing.T) {
	pv := newTestValidator(t)
	assert.Equal(t, "Task Change", pv.model.Name)
}

func TestPayloadValidator_Validate(t *testing.T) {
	pv := newTestValidator(t)

	t.Run("accepts valid payload", func(t *testing.T) {
		payload, err := pv.Validate([]byte(`{"detail":"Buy milk"}`))
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", payload.String("detail"))
	})

	t.Run("accepts empty string", func(t *testing.T) {
		payload, err := pv.Validate([]byte(`{"detail":""}`))
		require.NoError(t, err)
		assert.Equal(t, "", payload.String("detail"))
	})

	t.Run("ignores unknown properties", func(t *testing.T) {
		payload, err := pv.Validate([]byte(`{"detail":"Buy milk","id":99,"extra":true}`))
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", payload.String("detail"))
	})

	t.Run("reports missing required field", func(t *testing.T) {
		_, err := pv.Validate([]byte(`{}`))
		ve := requireValidationError(t, err)
		assert.Equal(t, map[string]string{"detail": "detail is required"}, ve.FieldMessages())
		assert.Equal(t, RuleRequired, ve.Errors[0].Rule)
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		_, err := pv.Validate(nil)
		ve := requireValidationError(t, err)
		assert.Equal(t, map[string]string{"detail": "detail is required"}, ve.FieldMessages())
	})

	t.Run("reports wrong type", func(t *testing.T) {
		_, err := pv.Validate([]byte(`{"detail":5}`))
		ve := requireValidationError(t, err)
		require.Len(t, ve.Errors, 1)
		assert.Equal(t, "detail", ve.Errors[0].Field)
		assert.Equal(t, RuleValue, ve.Errors[0].Rule)
	})

	t.Run("reports null value", func(t *testing.T) {
		_, err := pv.Validate([]byte(`{"detail":null}`))
		ve := requireValidationError(t, err)
		assert.Contains(t, ve.FieldMessages(), "detail")
	})

	t.Run("reports non-object body", func(t *testing.T) {
		_, err := pv.Validate([]byte(`["Buy milk"]`))
		ve := requireValidationError(t, err)
		assert.Contains(t, ve.FieldMessages(), "body")
	})

	t.Run("reports malformed JSON", func(t *testing.T) {
		_, err := pv.Validate([]byte(`{"detail":`))
		ve := requireValidationError(t, err)
		assert.Equal(t, map[string]string{"body": "body has invalid format, expected: JSON object"}, ve.FieldMessages())
	})
}

func TestPayload_String(t *testing.T) {
	p := Payload{"detail": "Buy milk", "count": 3.0}

	assert.Equal(t, "Buy milk", p.String("detail"))
	assert.Equal(t, "", p.String("count"))
	assert.Equal(t, "", p.String("missing"))
}

func TestFieldFromPointer(t *testing.T) {
	tests := []struct {
		ptr      string
		expected string
	}{
		{"", "body"},
		{"#", "body"},
		{"/detail", "detail"},
		{"#/detail", "detail"},
		{"/detail/0", "detail"},
		{"/a~1b", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			assert.Equal(t, tt.expected, fieldFromPointer(tt.ptr))
		})
	}
}
