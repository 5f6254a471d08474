// Package http implements the authenticated request executor shared by all
// resource clients.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/internal/logging"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Client executes requests against platform services. It attaches the
// standard headers and, when automated authentication is on, refreshes the
// credentials once and reissues a request that was answered with 401 or 403.
type Client struct {
	httpClient    *retryablehttp.Client
	credentials   osdu.CredentialProvider
	logger        osdu.Logger
	debug         bool
	userAgent     string
	dataPartition string
	autoAuth      bool
	verifyTLS     bool
	timeout       time.Duration
	retryMax      int
	retryWaitMin  time.Duration
	retryWaitMax  time.Duration
}

// NewClient creates a request executor. credentials may be nil, in which
// case requests carry only per-call tokens and are never retried on 401/403.
func NewClient(credentials osdu.CredentialProvider, opts ...Option) *Client {
	client := &Client{
		credentials:  credentials,
		userAgent:    constants.DefaultUserAgent,
		autoAuth:     true,
		timeout:      constants.DefaultHTTPTimeout,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = logging.OrNoop(client.logger)

	transport := cleanhttp.DefaultPooledTransport()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !client.verifyTLS, //nolint:gosec // controlled by VerifyTLS
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   client.timeout,
	}
	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	retryClient.Logger = logging.Retryable{Logger: client.logger}
	retryClient.CheckRetry = checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client.httpClient = retryClient

	return client
}

// Credentials returns the credential provider, possibly nil.
func (c *Client) Credentials() osdu.CredentialProvider {
	return c.credentials
}

// DataPartition returns the configured data-partition-id.
func (c *Client) DataPartition() string {
	return c.dataPartition
}

// Do executes req. Responses with any status are returned without error;
// the error is set only for transport failures, invalid requests and failed
// credential refreshes. When a refresh fails the first response is returned
// along with the error.
func (c *Client) Do(ctx context.Context, req *osdu.Request) (*osdu.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", osdu.ErrUnsupportedMethod)
	}

	method := strings.ToUpper(req.Method)

	switch method {
	case http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s", osdu.ErrUnsupportedMethod, req.Method)
	}

	if req.URL == "" {
		return nil, osdu.ErrURLRequired
	}

	target, err := buildURL(req.URL, req.Query)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(method, req.Body)
	if err != nil {
		return nil, err
	}

	token := req.Token
	if token == "" && c.credentials != nil {
		token = c.credentials.CurrentToken()
	}

	resp, err := c.send(ctx, method, target, body, req.Headers, token)
	if err != nil {
		return nil, err
	}

	for retries := 0; retries < constants.MaxUnauthorizedRetries && c.shouldRefresh(resp.StatusCode); retries++ {
		c.logger.Info("refreshing credentials after authorization failure", map[string]interface{}{
			"method": method,
			"url":    target,
			"status": resp.StatusCode,
		})

		token, err = c.credentials.RefreshToken(ctx)
		if err != nil {
			if !osdu.IsCredentialRefresh(err) {
				err = &osdu.CredentialRefreshError{Provider: fmt.Sprintf("%T", c.credentials), Attempts: 1, Err: err}
			}

			return resp, err
		}

		resp, err = c.send(ctx, method, target, body, req.Headers, token)
		if err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, target string, query url.Values) (*osdu.Response, error) {
	return c.Do(ctx, &osdu.Request{Method: http.MethodGet, URL: target, Query: query})
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, target string, body interface{}) (*osdu.Response, error) {
	return c.Do(ctx, &osdu.Request{Method: http.MethodPost, URL: target, Body: body})
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, target string, body interface{}) (*osdu.Response, error) {
	return c.Do(ctx, &osdu.Request{Method: http.MethodPut, URL: target, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, target string) (*osdu.Response, error) {
	return c.Do(ctx, &osdu.Request{Method: http.MethodDelete, URL: target})
}

func (c *Client) shouldRefresh(status int) bool {
	if !c.autoAuth || c.credentials == nil {
		return false
	}

	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func (c *Client) headers(extra map[string]string, token string) http.Header {
	headers := http.Header{}
	headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if c.dataPartition != "" {
		headers.Set(constants.HeaderDataPartitionID, c.dataPartition)
	}

	if token != "" {
		headers.Set(constants.HeaderAuthorization, bearer(token))
	}

	for key, value := range extra {
		headers.Set(key, value)
	}

	return headers
}

func (c *Client) send(ctx context.Context, method, target string, body []byte, extra map[string]string, token string) (*osdu.Response, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = c.headers(extra, token)

	start := time.Now()

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    target,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &osdu.TransportError{Method: method, URL: target, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &osdu.TransportError{Method: method, URL: target, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   method,
			"url":      target,
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	return &osdu.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// checkRetry retries rate limiting and server errors only. Transport
// failures are reported to the caller instead.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil || resp == nil {
		return false, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	return resp.StatusCode >= http.StatusInternalServerError && resp.StatusCode != http.StatusNotImplemented, nil
}

func bearer(token string) string {
	if strings.HasPrefix(token, constants.BearerPrefix) {
		return token
	}

	return constants.BearerPrefix + token
}

func buildURL(raw string, query url.Values) (string, error) {
	if len(query) == 0 {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", raw, err)
	}

	values := parsed.Query()

	for key, vals := range query {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

// encodeBody returns the bytes to send, or nil for bodiless methods.
func encodeBody(method string, body interface{}) ([]byte, error) {
	if method == http.MethodGet || method == http.MethodDelete || body == nil {
		return nil, nil
	}

	switch value := body.(type) {
	case []byte:
		return value, nil
	case string:
		return []byte(value), nil
	case json.RawMessage:
		return value, nil
	case io.Reader:
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(value); err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}

		return buf.Bytes(), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return encoded, nil
	}
}
