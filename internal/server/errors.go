package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/punishboard/pkg/errors"
)

const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every failed request.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeEmptySpaceList, errors.ErrCodeInvalidSpaceCount,
		errors.ErrCodeDuplicateSpaceName, errors.ErrCodeEmptySpaceName,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidVizType:
		return http.StatusBadRequest
	case errors.ErrCodeSpaceNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeGameStarted, errors.ErrCodeGameNotStarted:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	body := errorBody{Code: code, Message: errors.UserMessage(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		body = errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON request body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
