package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content & Catalog Errors
var (
	ErrInvalidCatalog = errors.New("invalid content catalog")
	ErrDuplicateTitle = errors.New("duplicate project title")
	ErrContentSource  = errors.New("content source unreadable")
)

// NewCatalogError wraps a validation failure found while loading content.
// location names the offending entry, e.g. "projects[2]".
func NewCatalogError(location string, cause error) *ApiErr {
	details := location
	var apiErr *ApiErr
	if errors.As(cause, &apiErr) && apiErr.Details != "" {
		details = fmt.Sprintf("%s: %s", location, apiErr.Details)
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidCatalog,
		Details:    details,
		Cause:      cause,
	}
}

func NewDuplicateTitleError(title string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateTitle,
		Details:    fmt.Sprintf("Title %q is used by more than one project", title),
		Field:      "title",
	}
}

func NewContentSourceError(source string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrContentSource,
		Details:    fmt.Sprintf("Failed to read %s", source),
		Cause:      cause,
	}
}

func IsInvalidCatalog(err error) bool {
	return errors.Is(err, ErrInvalidCatalog)
}

func IsDuplicateTitle(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}
