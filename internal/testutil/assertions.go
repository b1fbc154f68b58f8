package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

// NewJSONRequest builds a request with a JSON body and content type.
func NewJSONRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSONResponse decodes the response body into target.
func DecodeJSONResponse(t *testing.T, resp *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// SessionCookie returns the session_id cookie from the response, or nil.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return cookie
		}
	}
	return nil
}

// ErrorBody decodes the {"error": "..."} body every failure carries.
func ErrorBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	DecodeJSONResponse(t, resp, &body)
	return body.Error
}
