package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	notFound := NewNotFound("menu item", nil)
	wrapped := fmt.Errorf("lookup: %w", notFound)
	de := ToDomainError(wrapped)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "menu item not found", de.Message)

	cause := errors.New("socket closed")
	de = ToDomainError(cause)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, cause)
	assert.NotContains(t, de.Message, "socket")
}

func TestFromStatus(t *testing.T) {
	cases := map[int]string{
		http.StatusNotFound:              "NOT_FOUND",
		http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
		http.StatusUnprocessableEntity:   "VALIDATION_FAILED",
		http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
		http.StatusBadGateway:            "INTERNAL_ERROR",
		http.StatusTeapot:                "REQUEST_FAILED",
	}
	for status, code := range cases {
		de := FromStatus(status, "")
		assert.Equal(t, code, de.Code, "status %d", status)
		assert.Equal(t, http.StatusText(status), de.Message)
	}

	assert.Equal(t, "Cannot GET /x", FromStatus(http.StatusNotFound, "Cannot GET /x").Message)
}

func TestDomainErrorMessage(t *testing.T) {
	err := NewInternalError(errors.New("boom"))
	assert.Equal(t, "internal server error: boom", err.Error())
	assert.Equal(t, "conflict here", NewConflict("conflict here", nil).Error())
}
