package pitchsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is a non-2xx response decoded from the envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("pitchdeck: %d %s", e.StatusCode, e.Message)
	}

	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Errors[k])
	}
	return fmt.Sprintf("pitchdeck: %d %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsStatus reports whether err is an APIError carrying status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return IsStatus(err, http.StatusForbidden) }
func IsNotFound(err error) bool     { return IsStatus(err, http.StatusNotFound) }
func IsConflict(err error) bool     { return IsStatus(err, http.StatusConflict) }

// FieldErrors returns the validation errors carried by err, if any.
func FieldErrors(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Errors
	}
	return nil
}

// parseErrorResponse builds an APIError from a failed response body. Bodies
// that are not an envelope fall back to the HTTP status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env Response[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
		apiErr.Errors = env.Errors
		return apiErr
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 256 {
		apiErr.Message = msg
	}
	return apiErr
}
