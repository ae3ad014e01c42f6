package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Response struct {
	Data []byte
}

// SessionSource is what the transport needs from the session store: the
// current bearer token, and the ability to tear the session down when the
// backend rejects it.
type SessionSource interface {
	Token() (string, bool)
	Teardown()
}

// Transport handles low-level HTTP and authentication
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client

	sessions          SessionSource
	onUnauthenticated func()
}

// NewTransport creates a transport bound to a session source. The
// onUnauthenticated callback fires when a rejected response tears down an
// active session; it is how the route guard learns about the transition
// without any global state.
func NewTransport(baseURL string, sessions SessionSource, onUnauthenticated func()) *Transport {
	return &Transport{
		BaseURL:           baseURL,
		HTTPClient:        &http.Client{},
		sessions:          sessions,
		onUnauthenticated: onUnauthenticated,
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) do(method, path string, data any, query map[string]string) (*Response, error) {
	fullURL := t.buildURL(path, query)

	var reqBody io.Reader
	if data != nil {
		body, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, fullURL, reqBody)
	if err != nil {
		return nil, err
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, hadToken := t.sessions.Token()
	if hadToken {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// A 401 on a call that carried a session token means the session was
	// rejected. A 401 on an unauthenticated call (a failed login) is just
	// a failed request; there is no session to tear down.
	if resp.StatusCode == http.StatusUnauthorized && hadToken {
		t.handleUnauthenticated()
		return nil, ErrUnauthenticated
	}

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, &RequestFailedError{Status: resp.StatusCode, Message: messageFrom(b)}
	}

	resdata, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{Data: resdata}, nil
}

// handleUnauthenticated tears the session down and fires the redirect
// callback once per failure. Stale in-flight requests that come back 401
// after the session is already gone find nothing to tear down and stay
// silent, so repeated rejections cannot cause a redirect loop.
func (t *Transport) handleUnauthenticated() {
	if _, ok := t.sessions.Token(); !ok {
		return
	}
	t.sessions.Teardown()
	if t.onUnauthenticated != nil {
		t.onUnauthenticated()
	}
}

// Get sends a GET request
func (t *Transport) Get(path string, query map[string]string) (*Response, error) {
	return t.do(http.MethodGet, path, nil, query)
}

// Post sends a POST request with JSON body
func (t *Transport) Post(path string, data any, query map[string]string) (*Response, error) {
	return t.do(http.MethodPost, path, data, query)
}

// Delete sends a DELETE request
func (t *Transport) Delete(path string, query map[string]string) (*Response, error) {
	return t.do(http.MethodDelete, path, nil, query)
}
