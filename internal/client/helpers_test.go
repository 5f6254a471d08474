package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method  string
	Path    string
	Query   string
	Body    string
	Headers http.Header
}

// testServer records every request and answers with a scripted status.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	statuses []int
}

func newTestServer(t *testing.T, statuses ...int) *testServer {
	t.Helper()

	server := &testServer{statuses: statuses}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		server.mu.Lock()
		server.requests = append(server.requests, recordedRequest{
			Method:  r.Method,
			Path:    r.URL.EscapedPath(),
			Query:   r.URL.RawQuery,
			Body:    string(body),
			Headers: r.Header.Clone(),
		})

		status := http.StatusOK
		if len(server.statuses) > 0 {
			status = server.statuses[0]
			server.statuses = server.statuses[1:]
		}
		server.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, `{"status":%d}`, status)
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *testServer) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

func (s *testServer) last(t *testing.T) recordedRequest {
	t.Helper()

	requests := s.recorded()
	require.NotEmpty(t, requests, "server received no request")

	return requests[len(requests)-1]
}

// testConfig points every service at the test server.
func testConfig(baseURL string) *osdu.Config {
	return &osdu.Config{
		StorageURL:      baseURL + "/api/storage/v2",
		SearchURL:       baseURL + "/api/search/v2",
		LegalURL:        baseURL + "/api/legal/v1",
		SchemaURL:       baseURL + "/api/schema-service/v1",
		EntitlementsURL: baseURL + "/api/entitlements/v2",
		DatasetURL:      baseURL + "/api/dataset-registry/v1",
		WorkflowURL:     baseURL + "/api/data-workflow/v1",
		PartitionURL:    baseURL + "/api/partition/v1",
		DataPartitionID: "opendes",
	}
}

// NewTestClient creates a client for the test server without automated
// authentication.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), testConfig(baseURL), nil)
	require.NoError(t, err)

	return client
}

// stubCredentials hands out token-1, token-2, ... on each refresh.
type stubCredentials struct {
	mu        sync.Mutex
	refreshes int
	token     string
	err       error
}

func (s *stubCredentials) RefreshToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshes++
	if s.err != nil {
		return "", s.err
	}

	s.token = fmt.Sprintf("token-%d", s.refreshes)

	return s.token, nil
}

func (s *stubCredentials) CurrentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

func (s *stubCredentials) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshes
}
