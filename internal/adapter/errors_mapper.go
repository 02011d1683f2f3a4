package adapter

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gmc-client/models"
)

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// mapHTTPError returns nil for 2xx responses and a [*RequestFailedError]
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	return requestFailed(resp.StatusCode(), resp.Body())
}

// mapAuthError is stricter than mapHTTPError: the auth endpoints succeed
// only with 200, and a 403 is reported as [ErrAuthRejected].
func mapAuthError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusForbidden:
	default:
		return requestFailed(resp.StatusCode(), resp.Body())
	}

	result := parseErrorResult(resp.StatusCode(), resp.Body())
	if result == nil {
		result = &models.ErrorResult{Status: http.StatusForbidden, Description: http.StatusText(http.StatusForbidden)}
	}
	return fmt.Errorf("%w: %w", ErrAuthRejected, *result)
}

func requestFailed(code int, body []byte) *RequestFailedError {
	return &RequestFailedError{
		Status:     code,
		StatusText: http.StatusText(code),
		Result:     parseErrorResult(code, body),
	}
}

// parseErrorResult decodes an error body. Anything that is not a JSON
// object with at least a description or a status yields nil.
func parseErrorResult(code int, body []byte) *models.ErrorResult {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}

	var result models.ErrorResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil
	}
	if result.Description == "" && result.Status == 0 {
		return nil
	}
	if result.Status == 0 {
		result.Status = code
	}
	return &result
}

// decodeBody unmarshals a response body into out. An empty body leaves out
// untouched.
func decodeBody(resp *resty.Response, out any, what string) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", what, err)
	}
	return nil
}
