package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateMembership(t *testing.T, raw string) *ValidationResult {
	t.Helper()
	schema, err := Compile(MembershipApplicationSchema())
	require.NoError(t, err)
	res, err := ValidateJSON(schema, []byte(raw))
	require.NoError(t, err)
	return res
}

func TestMembershipSchema_Valid(t *testing.T) {
	res := validateMembership(t, `{"fullName":"Ada Lovelace","email":"ada@example.com","telephone":"02079460000",
		"postcode":"SW1A 1AA","membershipType":"full","laaStatus":true,"extra":1}`)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.GetErrorMessages())
}

func TestMembershipSchema_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "missing email and postcode",
			body:   `{"fullName":"Ada","telephone":"02079460000","membershipType":"full"}`,
			fields: []string{"email", "postcode"},
		},
		{
			name:   "wrong types",
			body:   `{"fullName":7,"email":"a@b.com","telephone":"02079460000","postcode":"SW1A1AA","membershipType":"full","laaStatus":"yes"}`,
			fields: []string{"fullName", "laaStatus"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validateMembership(t, tt.body)
			assert.False(t, res.Valid)
			for _, f := range tt.fields {
				assert.True(t, res.HasErrors(f), "expected error on %s, got %v", f, res.GetErrorMessages())
			}
			assert.Len(t, res.Errors, len(tt.fields))
		})
	}
}

func TestValidateJSON_NotJSON(t *testing.T) {
	schema, err := Compile(MembershipApplicationSchema())
	require.NoError(t, err)

	_, err = ValidateJSON(schema, []byte("<html>"))
	assert.Error(t, err)
}
