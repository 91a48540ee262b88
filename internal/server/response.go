package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/critpath/pkg/errors"
	"github.com/matzehuels/critpath/pkg/observability"
)

// Response is the envelope of every API response.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
}

// APIError is the error body of a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// codePayloadTooLarge is reported when the request body exceeds the limit.
const codePayloadTooLarge = "PAYLOAD_TOO_LARGE"

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// respondOK writes a success response with the standard envelope.
func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

// respondError maps err to a status code and writes the error envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := classify(err)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, apiErr.Code)
	respondJSON(w, status, RequestIDFromContext(r.Context()), nil, apiErr)
}

// classify maps an error to its HTTP status and API error body.
func classify(err error) (int, *APIError) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, &APIError{
			Code:    codePayloadTooLarge,
			Message: "request body exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
		}
	}

	apiErr := &APIError{Code: string(errors.GetCode(err)), Message: errors.UserMessage(err)}
	switch errors.KindOf(err) {
	case errors.KindInput:
		return http.StatusBadRequest, apiErr
	case errors.KindStructural:
		return http.StatusUnprocessableEntity, apiErr
	case errors.KindNotFound:
		return http.StatusNotFound, apiErr
	}
	apiErr.Code = string(errors.ErrCodeInternal)
	apiErr.Message = err.Error()
	return http.StatusInternalServerError, apiErr
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *APIError) {
	resp := Response{
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
