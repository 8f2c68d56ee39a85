package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	// Packages
	claude "github.com/mutablelogic/go-claude"
	transport "github.com/mutablelogic/go-claude/pkg/transport"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

const testKey = "test-key"

// newTestServer returns a server which mimics the API. It rejects requests
// without the test key, and echoes the request body back in the response.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/echo", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("x-api-key") != testKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"body":    json.RawMessage(body),
			"version": r.Header.Get("anthropic-version"),
			"agent":   r.Header.Get("User-Agent"),
		})
	})
	mux.HandleFunc("/v1/malformed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "msg_01", "content": [`)
	})
	mux.HandleFunc("/v1/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "hello")
	})
	mux.HandleFunc("/v1/conflict", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"code":409,"reason":"conflict"}`)
	})
	mux.HandleFunc("/v1/overloaded", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(529)
		io.WriteString(w, `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`)
	})
	return httptest.NewServer(mux)
}

func newClient(t *testing.T, serverURL, key string) *transport.Client {
	t.Helper()
	c, err := transport.New(key, client.OptEndpoint(serverURL+"/v1"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_transport_001(t *testing.T) {
	// Creating a client with an empty key succeeds
	assert := assert.New(t)
	c, err := transport.New("")
	assert.NoError(err)
	assert.NotNil(c)
}

func Test_transport_002(t *testing.T) {
	// The body is sent as JSON with the version header, and the
	// response is returned verbatim
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	response, err := c.Post(context.Background(), "echo", map[string]any{"model": "claude", "n": 1})
	if !assert.NoError(err) {
		t.FailNow()
	}

	var r struct {
		Body    map[string]any `json:"body"`
		Version string         `json:"version"`
		Agent   string         `json:"agent"`
	}
	assert.NoError(response.Decode(&r))
	assert.Equal(map[string]any{"model": "claude", "n": float64(1)}, r.Body)
	assert.Equal(transport.APIVersion, r.Version)
	assert.True(strings.HasPrefix(r.Agent, "go-claude/"))
}

func Test_transport_003(t *testing.T) {
	// A leading slash on the path is accepted
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	response, err := c.Post(context.Background(), "/echo", json.RawMessage(`{"a":true}`))
	assert.NoError(err)
	assert.Contains(response.String(), `"a":true`)
}

func Test_transport_004(t *testing.T) {
	// An empty key is still sent, and the authentication error surfaces
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, "")

	response, err := c.Post(context.Background(), "echo", map[string]any{})
	assert.Error(err)
	assert.Nil(response)
	assert.Equal(http.StatusUnauthorized, transport.StatusCode(err))
}

func Test_transport_005(t *testing.T) {
	// Any non-2xx status is an error
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	response, err := c.Post(context.Background(), "overloaded", map[string]any{})
	assert.Error(err)
	assert.Nil(response)
	assert.Equal(529, transport.StatusCode(err))

	response, err = c.Post(context.Background(), "missing", map[string]any{})
	assert.Error(err)
	assert.Nil(response)
	assert.Equal(http.StatusNotFound, transport.StatusCode(err))

	// An error body with a matching code field
	response, err = c.Post(context.Background(), "conflict", map[string]any{})
	assert.Error(err)
	assert.Nil(response)
	assert.Equal(http.StatusConflict, transport.StatusCode(err))
}

func Test_transport_006(t *testing.T) {
	// A malformed body is an error, not a panic or empty success
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	for _, path := range []string{"malformed", "empty", "text"} {
		assert.NotPanics(func() {
			response, err := c.Post(context.Background(), path, map[string]any{})
			assert.Error(err, path)
			assert.Nil(response, path)
		})
	}
}

func Test_transport_007(t *testing.T) {
	// An invalid request body is rejected before sending
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	_, err := c.Post(context.Background(), "echo", json.RawMessage(`{not json`))
	assert.Error(err)
}

func Test_transport_008(t *testing.T) {
	// Transport failures are returned
	assert := assert.New(t)
	server := newTestServer(t)
	c := newClient(t, server.URL, testKey)
	server.Close()

	_, err := c.Post(context.Background(), "echo", map[string]any{})
	assert.Error(err)
	assert.Equal(0, transport.StatusCode(err))
}

func Test_transport_009(t *testing.T) {
	// A cancelled context is returned as an error
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Post(ctx, "echo", map[string]any{})
	assert.Error(err)
}

func Test_transport_010(t *testing.T) {
	// Concurrent calls through one client
	assert := assert.New(t)
	server := newTestServer(t)
	defer server.Close()
	c := newClient(t, server.URL, testKey)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			response, err := c.Post(context.Background(), "echo", map[string]any{"i": i})
			if err == nil {
				var r struct {
					Body struct {
						I int `json:"i"`
					} `json:"body"`
				}
				err = response.Decode(&r)
				if err == nil && r.Body.I != i {
					err = errors.New("unexpected response")
				}
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(err)
	}
}

func Test_transport_011(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, transport.StatusCode(nil))
	assert.Equal(0, transport.StatusCode(claude.ErrUnexpectedResponse))
	assert.Equal(http.StatusTeapot, transport.StatusCode(httpresponse.ErrResponse{Code: http.StatusTeapot}))
	assert.Equal(http.StatusTeapot, transport.StatusCode(fmt.Errorf("wrapped: %w", httpresponse.ErrResponse{Code: http.StatusTeapot})))
}
