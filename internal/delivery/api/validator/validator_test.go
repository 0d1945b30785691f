package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}

type request struct {
	Email string `json:"email" validate:"required,email"`
	Items []line `json:"items" validate:"required,min=1,dive"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&request{Email: "not-an-email", Items: []line{{Quantity: 0}}})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "gte", fields["items[0].quantity"])
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&request{Email: "ann@example.com", Items: []line{{Quantity: 1}}}))
	assert.Nil(t, FieldErrors(nil))
}
