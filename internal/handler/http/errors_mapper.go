package http

import (
	"errors"
	"net/http"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/service"
	"github.com/Madelineqt/clontagram-servidor/internal/store"
	"github.com/Madelineqt/clontagram-servidor/internal/utils"
	"github.com/Madelineqt/clontagram-servidor/internal/validators"
	"github.com/Madelineqt/clontagram-servidor/models"
)

// errorStatusMap is the single place where application errors are assigned
// HTTP status codes. Handlers never pick statuses themselves; they hand any
// failure to writeError.
//
// Note that service.ErrNotPostOwner maps to 401, not 403: existing API
// consumers distinguish "sign in again" flows on 401 alone, and a delete by
// the wrong account has always been reported that way.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotPostOwner:            http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoUserInContext:            http.StatusUnauthorized,
	ErrInvalidJSONBody:            http.StatusBadRequest,
	ErrUnreadableRequestBody:      http.StatusBadRequest,

	validators.ErrInvalidPostID:        http.StatusBadRequest,
	validators.ErrInvalidUserID:        http.StatusBadRequest,
	validators.ErrInvalidDate:          http.StatusBadRequest,
	validators.ErrEmptyCaption:         http.StatusBadRequest,
	validators.ErrCaptionTooLong:       http.StatusBadRequest,
	validators.ErrInvalidImageURL:      http.StatusBadRequest,
	validators.ErrEmptyImage:           http.StatusBadRequest,
	validators.ErrImageTooLarge:        http.StatusBadRequest,
	validators.ErrUnsupportedImageType: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	// An unknown login is reported the same way as a wrong password so the
	// login endpoint does not reveal which accounts exist.
	store.ErrNoUserWasFound: http.StatusUnauthorized,
	store.ErrPostNotFound:   http.StatusNotFound,
	store.ErrImageNotFound:  http.StatusNotFound,
	store.ErrPostNotSaved:   http.StatusInternalServerError,
	store.ErrImageNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts err into the API's uniform error response: a JSON body
// of the form {"message": "..."} with the status resolved by statusFromError.
// Server-side failures (5xx) are reported with a generic message so that
// internals never leak to clients; everything else carries the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed with server error")
		message = "error interno del servidor"
	} else {
		log.Error().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Error{Message: message}, status)
}
