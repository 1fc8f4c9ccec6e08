package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{InvalidField("bad"), http.StatusBadRequest},
		{DuplicateEntity("dup"), http.StatusConflict},
		{DuplicateRelation("dup"), http.StatusConflict},
		{MissingReference("missing"), http.StatusNotFound},
		{NotFound("missing"), http.StatusNotFound},
		{&Error{Code: CodeUnauthorized, Message: "no token"}, http.StatusUnauthorized},
		{Internal("boom"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, HTTPStatus(c.err), "error: %v", c.err)
	}
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFound("user not found"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestError_Message(t *testing.T) {
	err := DuplicateEntity("email already registered")
	assert.Equal(t, "email already registered", err.Error())
	assert.Equal(t, CodeDuplicateEntity, err.Code)
}
