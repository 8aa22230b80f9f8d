package httpx

import (
	"errors"
	"net/http"

	"bookreview/internal/logger"
	"bookreview/internal/platform/apperr"
)

var statusByKind = map[apperr.Kind]struct {
	status int
	code   string
}{
	apperr.KindValidation:   {http.StatusBadRequest, "VALIDATION_ERROR"},
	apperr.KindNotFound:     {http.StatusNotFound, "NOT_FOUND"},
	apperr.KindForbidden:    {http.StatusForbidden, "FORBIDDEN"},
	apperr.KindConflict:     {http.StatusConflict, "CONFLICT"},
	apperr.KindUnauthorized: {http.StatusUnauthorized, "UNAUTHORIZED"},
}

// WriteError renders err with the status matching its apperr kind. Anything
// that is not an apperr error is logged and reported as an opaque 500.
func WriteError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	WriteErrorDetails(w, r, log, err, nil)
}

func WriteErrorDetails(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error, details []ErrorDetail) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if m, ok := statusByKind[appErr.Kind]; ok {
			JSONError(w, r, m.status, m.code, appErr.Message, details)
			return
		}
	}

	log.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r),
		"error", err,
	)
	JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
