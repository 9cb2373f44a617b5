package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema is the subset of JSON Schema draft-07 used to describe payloads.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Pattern     *string  `json:"pattern,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Compile turns a schema into a reusable gojsonschema.Schema.
func Compile(schema JSONSchema) (*gojsonschema.Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

// ValidateDocument checks a decoded JSON document against a compiled schema.
// Errors are sorted by field so reports are stable across runs.
func ValidateDocument(schema *gojsonschema.Schema, document interface{}) (*ValidationResult, error) {
	result, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if name, ok := desc.Details()["property"].(string); ok {
				field = name
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })

	return &ValidationResult{Valid: result.Valid(), Errors: errs}, nil
}

// ValidateJSON is ValidateDocument for raw bytes.
func ValidateJSON(schema *gojsonschema.Schema, raw []byte) (*ValidationResult, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return ValidateDocument(schema, doc)
}

// GetErrorMessages returns a simple list of error messages.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field.
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// MembershipApplicationSchema describes the wire body of POST /membership/apply.
// Only shape and types live here; format rules are applied separately so their
// messages can be reported in a fixed order.
func MembershipApplicationSchema() JSONSchema {
	return JSONSchema{
		Type:     "object",
		Required: []string{"fullName", "email", "telephone", "postcode", "membershipType"},
		Properties: map[string]Property{
			"fullName":       {Type: "string", Description: "Applicant full name"},
			"email":          {Type: "string", Description: "Contact email"},
			"telephone":      {Type: "string", Description: "Contact telephone number"},
			"postcode":       {Type: "string", Description: "UK postcode"},
			"membershipType": {Type: "string", Description: "Requested membership option"},
			"laaStatus":      {Type: "boolean", Description: "Legal Aid Agency status"},
		},
		AdditionalProperties: true,
	}
}
