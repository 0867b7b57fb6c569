package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypePredicates(t *testing.T) {
	assert.True(t, IsNoInstanceSelected(NewNoInstanceSelectedError()))
	assert.True(t, IsNoConstraintsProvided(NewNoConstraintsProvidedError()))
	assert.True(t, IsSchemaLoad(NewSchemaLoadError("g1", errors.New("boom"))))
	assert.True(t, IsComputationFailed(NewComputationFailedError("x")))
	assert.True(t, IsMalformedDocument(NewMalformedDocumentError("x")))
	assert.False(t, IsComputationFailed(errors.New("plain")))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusConflict, NewNoInstanceSelectedError().HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, NewNoConstraintsProvidedError().HTTPStatus)
	assert.Equal(t, http.StatusBadGateway, NewSchemaLoadError("g1", nil).HTTPStatus)
	assert.Equal(t, http.StatusBadGateway, NewComputationFailedError("").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, NewMalformedDocumentError("").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("doc").HTTPStatus)
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "measure computation failed", NewComputationFailedError("").Message)
	assert.Equal(t, "a specific detail", NewComputationFailedError("a specific detail").Message)
	assert.Equal(t, "malformed constraint document", NewMalformedDocumentError("").Message)
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSchemaLoadError("g1", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestGetAppError_ThroughWrapping(t *testing.T) {
	inner := NewComputationFailedError("detail")
	wrapped := fmt.Errorf("handler: %w", inner)

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeComputationFailed, appErr.Type)
	assert.True(t, IsComputationFailed(wrapped))
}

func TestWrap_PrependsContextToAppError(t *testing.T) {
	err := Wrap(NewNotFoundError("document"), "loading archive")

	appErr := GetAppError(err)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.Equal(t, "loading archive: document not found", appErr.Message)
}

func TestWrap_UntypedErrorBecomesInternal(t *testing.T) {
	err := Wrap(errors.New("boom"), "saving")

	appErr := GetAppError(err)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
}
