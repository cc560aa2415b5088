package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

// staticToken is a TokenProvider returning a fixed token or error
type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token(context.Context) (string, error) {
	return s.token, s.err
}
