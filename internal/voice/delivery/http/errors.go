package http

import (
	"errors"
	"net/http"

	"voice-task-tracker/internal/voice"
	pkgErrors "voice-task-tracker/pkg/errors"
)

// mapError translates domain errors into HTTP errors. It returns nil for
// errors the caller should treat as internal.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, voice.ErrEmptyInput.Error())
	default:
		return nil
	}
}
