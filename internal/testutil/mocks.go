package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockResponse represents a mocked vendor response
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockServer is an HTTP server that answers with canned responses per path
// and records every request it receives
type MockServer struct {
	URL string

	mu        sync.Mutex
	responses map[string]*MockResponse
	calls     []string
	headers   []http.Header
}

// NewMockServer starts a MockServer that is closed when the test ends.
// Paths without a response get 404.
func NewMockServer(t *testing.T, responses map[string]*MockResponse) *MockServer {
	t.Helper()

	m := &MockServer{responses: responses}
	server := httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(server.Close)
	m.URL = server.URL
	return m
}

func (m *MockServer) serve(w http.ResponseWriter, r *http.Request) {
	io.Copy(io.Discard, r.Body)

	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
	m.headers = append(m.headers, r.Header.Clone())
	resp, ok := m.responses[r.URL.Path]
	m.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	io.WriteString(w, resp.Body)
}

// Calls returns the requests received so far as "METHOD /path"
func (m *MockServer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// LastHeader returns header key of the most recent request, or ""
func (m *MockServer) LastHeader(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.headers) == 0 {
		return ""
	}
	return m.headers[len(m.headers)-1].Get(key)
}
