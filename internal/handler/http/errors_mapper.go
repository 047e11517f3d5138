package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
	"github.com/MKhiriev/go-employee-keeper/internal/store"
	"github.com/MKhiriev/go-employee-keeper/internal/utils"
)

const (
	detailNotAuthenticated = "Not authenticated"
	detailInvalidToken     = "Invalid or expired token"
)

// errorResponse is how one known error is rendered. An empty detail means
// the error's own message is sent.
type errorResponse struct {
	err    error
	status int
	detail string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, detailNotAuthenticated},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, detailNotAuthenticated},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, detailInvalidToken},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, detailInvalidToken},
	{service.ErrInvalidTokenPayload, http.StatusUnauthorized, "Invalid token payload"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},

	{ErrInvalidRequestBody, http.StatusUnprocessableEntity, ""},
	{ErrInvalidPathParameter, http.StatusUnprocessableEntity, ""},
	{ErrInvalidQueryParameter, http.StatusUnprocessableEntity, ""},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity, ""},
	{store.ErrDocumentRejected, http.StatusUnprocessableEntity, "Document failed schema validation"},

	{store.ErrUsernameAlreadyExists, http.StatusBadRequest, "Username already exists"},
	{store.ErrEmployeeAlreadyExists, http.StatusConflict, "Employee with this employee_id already exists"},

	{store.ErrNoUserWasFound, http.StatusNotFound, "User not found"},
	{store.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
	{store.ErrDepartmentNotFound, http.StatusNotFound, "No employees in this department"},
}

func lookupError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			if resp.detail == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.detail
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

// writeError renders err as a {"detail": ...} body. 401 responses carry a
// Bearer challenge; 5xx responses are logged at error level and never leak
// the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := lookupError(err)
	writeErrorResponse(w, r, err, status, detail)
}

// writeErrorWithNotFound behaves like writeError but replaces the detail of
// a missing employee.
func writeErrorWithNotFound(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	status, detail := lookupError(err)
	if errors.Is(err, store.ErrEmployeeNotFound) {
		detail = notFoundDetail
	}
	writeErrorResponse(w, r, err, status, detail)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, err error, status int, detail string) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detail, status)
}
