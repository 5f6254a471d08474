package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// service binds the executor to one service base URL.
type service struct {
	httpClient *http.Client
	name       string
	baseURL    string
}

func newService(httpClient *http.Client, name, baseURL string) service {
	return service{
		httpClient: httpClient,
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (s service) url(path string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("%w: %s", osdu.ErrURLRequired, s.name)
	}

	return s.baseURL + "/" + path, nil
}

// do runs one call. path is appended verbatim; callers escape ids.
func (s service) do(ctx context.Context, method, path string, query url.Values, body interface{}, opts []osdu.CallOption) (*osdu.Response, error) {
	target, err := s.url(path)
	if err != nil {
		return nil, err
	}

	options := osdu.ApplyCallOptions(opts)

	return s.httpClient.Do(ctx, &osdu.Request{
		Method:  method,
		URL:     target,
		Body:    body,
		Query:   query,
		Headers: options.Headers,
		Token:   options.Token,
	})
}

// escape joins path segments, escaping each one.
func escape(segments ...string) string {
	escaped := make([]string, len(segments))

	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}

	return strings.Join(escaped, "/")
}
