package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	notFound := NewNotFound("project")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsBadRequest(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	assert.Equal(t, "project not found", notFound.Error())
}

func TestStatusCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestCatalogErrorCarriesCause(t *testing.T) {
	cause := NewMissingRequiredFieldError("title")
	err := NewCatalogError("projects[1]", cause)

	assert.True(t, IsInvalidCatalog(err))
	assert.True(t, IsMissingRequiredFieldError(err))
	assert.Equal(t, "invalid content catalog: projects[1]: Missing required field: title", err.Error())
	assert.Contains(t, err.GetFullError(), "-> missing required field: Missing required field: title")
}

func TestInvalidIDError(t *testing.T) {
	err := NewInvalidIDError("projectID", "nope", errors.New("invalid UUID length: 4"))

	assert.True(t, IsInvalidIDError(err))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "projectID", err.Field)
	assert.Equal(t, "invalid identifier", err.Title())
}
