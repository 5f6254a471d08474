package osdu

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// HTTP methods accepted by the request executor.
const (
	MethodGet    = http.MethodGet
	MethodPut    = http.MethodPut
	MethodPost   = http.MethodPost
	MethodDelete = http.MethodDelete
)

// Request describes one logical call to a platform service.
//
// Body is sent verbatim when it is a []byte, string or json.RawMessage and is
// JSON encoded otherwise. It is ignored for GET and DELETE.
type Request struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
	Query   url.Values

	// Token overrides the credential provider's token for this call only.
	Token string
}

// Response is the raw outcome of a call. Non-2xx statuses are not errors:
// callers inspect StatusCode themselves.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess reports whether the status is 2xx.
func (r *Response) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	if r == nil {
		return fmt.Errorf("decoding response: %w", ErrEmptyResponse)
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// String returns the status and body, for diagnostics.
func (r *Response) String() string {
	if r == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d %s", r.StatusCode, string(r.Body))
}

// CallOptions holds per-call settings for resource client methods.
type CallOptions struct {
	Token   string
	Headers map[string]string
}

// CallOption configures a single resource client call.
type CallOption func(*CallOptions)

// WithBearerToken uses token instead of the client's credential provider
// for one call. The "Bearer " prefix is optional.
func WithBearerToken(token string) CallOption {
	return func(o *CallOptions) {
		o.Token = token
	}
}

// WithHeader adds an extra header to one call. Caller headers take
// precedence over the standard ones.
func WithHeader(key, value string) CallOption {
	return func(o *CallOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}

		o.Headers[key] = value
	}
}

// ApplyCallOptions folds opts into a CallOptions value.
func ApplyCallOptions(opts []CallOption) CallOptions {
	var options CallOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return options
}
