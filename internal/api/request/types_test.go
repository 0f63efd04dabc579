package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"product_id":"prod_2"}`))

	var req GuessRequest
	require.NoError(t, Decode(r, &req))
	assert.Equal(t, "prod_2", req.ProductID)
}

func TestDecodeRequiredField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))

	var req GuessRequest
	err := Decode(r, &req)
	require.Error(t, err)
	assert.Equal(t, "product_id is required", err.Error())
}

func TestDecodeEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))

	var req CreateGuestRequest
	assert.NoError(t, Decode(r, &req))
}

func TestDecodeMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("{"))

	var req CreateGuestRequest
	assert.EqualError(t, Decode(r, &req), "invalid request body")
}

func TestDecodeURLValidation(t *testing.T) {
	r := httptest.NewRequest("PATCH", "/", strings.NewReader(`{"image":"nope"}`))

	var req AmendProductRequest
	assert.EqualError(t, Decode(r, &req), "image must be a valid URL")
}
