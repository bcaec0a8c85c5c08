package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsUseJSONFieldNames(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		Name:       "A",
		Phone:      "555",
		VideoType:  "Commercial",
		TotalPrice: 100,
	}

	err := v.Struct(req)
	require.Error(t, err)

	fields := ErrorsToFields(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "videoLength")
	assert.NotContains(t, fields, "Email")
}

func TestValidRequestPasses(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		Name:        "A",
		Email:       "a@b.com",
		Phone:       "555",
		VideoType:   "Commercial",
		VideoLength: "1-3 minutes",
		TotalPrice:  0,
	}

	assert.NoError(t, v.Struct(req))
}
