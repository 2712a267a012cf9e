package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fennwald/tracker-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "party missing")
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "party missing", err.Message)
	assert.Equal(t, "NOT_FOUND: party missing", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("character not found")
	wrapped := errors.Wrap(inner, "update failed")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, inner, stderrors.Unwrap(wrapped))
}

func TestWrapPlainErrorDefaultsToInternal(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("dial tcp: refused"), "save snapshot")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeUnavailable, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	cause := stderrors.New("401 from upstream")
	err := errors.WrapWithCode(cause, errors.CodeUnauthenticated, "login failed")
	assert.True(t, errors.IsUnauthenticated(err))
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExists("dup")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "plain", errors.GetMessage(stderrors.New("plain")))
	assert.Equal(t, "dup", errors.GetMessage(errors.AlreadyExists("dup")))
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.NotFound("a")
	b := errors.NotFound("b")
	c := errors.Internal("c")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("party missing").WithMeta("party_id", "party_1")
	assert.Equal(t, "party_1", err.Meta["party_id"])
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[errors.Code]int{
		errors.CodeOK:              http.StatusOK,
		errors.CodeInvalidArgument: http.StatusBadRequest,
		errors.CodeNotFound:        http.StatusNotFound,
		errors.CodeAlreadyExists:   http.StatusConflict,
		errors.CodeUnauthenticated: http.StatusUnauthorized,
		errors.CodeUnavailable:     http.StatusServiceUnavailable,
		errors.CodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), "code %s", code)
	}
}

func TestFromHTTPStatus(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.FromHTTPStatus(http.StatusCreated))
	assert.Equal(t, errors.CodeUnauthenticated, errors.FromHTTPStatus(http.StatusUnauthorized))
	assert.Equal(t, errors.CodeUnauthenticated, errors.FromHTTPStatus(http.StatusForbidden))
	assert.Equal(t, errors.CodeNotFound, errors.FromHTTPStatus(http.StatusNotFound))
	assert.Equal(t, errors.CodeUnavailable, errors.FromHTTPStatus(http.StatusBadGateway))
	assert.Equal(t, errors.CodeInternal, errors.FromHTTPStatus(http.StatusTeapot))
}
