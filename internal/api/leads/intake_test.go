package leadsapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsNameAlias(t *testing.T) {
	sub := Submission{Name: "  Ana  ", Email: "Ana@Example.COM ", Phone: " 555 "}
	sub.Normalize()

	assert.Equal(t, "Ana", sub.FirstName)
	assert.Equal(t, "ana@example.com", sub.Email)
	assert.Equal(t, "555", sub.Phone)

	// explicit first_name wins over the alias
	sub = Submission{FirstName: "Ana", Name: "Other", Email: "a@b.co"}
	sub.Normalize()
	assert.Equal(t, "Ana", sub.FirstName)
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		sub   Submission
		field string
	}{
		{"missing name", Submission{Email: "x@example.com"}, "first_name"},
		{"missing email", Submission{FirstName: "Ana"}, "email"},
		{"bad email", Submission{FirstName: "Ana", Email: "not-an-email"}, "email"},
		{"bare domain", Submission{FirstName: "Ana", Email: "x@nodot"}, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.sub.Normalize()
			err := tc.sub.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateAcceptsOptionalPhone(t *testing.T) {
	sub := Submission{FirstName: "Ana", Email: "x@example.com"}
	sub.Normalize()
	assert.NoError(t, sub.Validate())

	sub = Submission{Name: "Ana", Email: "x@example.com", Phone: "+34 600 000 000"}
	sub.Normalize()
	assert.NoError(t, sub.Validate())
}

func TestSubmitRejectsBeforeWriting(t *testing.T) {
	// nil db: a validation failure must return before any persistence call
	lead, created, err := Submit(nil, nil, Submission{Email: "x@example.com"})
	assert.Nil(t, lead)
	assert.False(t, created)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "first_name", verr.Field)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "Email is required"}
	assert.Equal(t, "Email is required", err.Error())
}
