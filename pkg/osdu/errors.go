package osdu

import (
	"errors"
	"fmt"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrNoProviderConfigured = errors.New("no cloud provider configured")
	ErrEmptyToken           = errors.New("identity backend returned an empty token")
	ErrExpiredToken         = errors.New("identity backend returned an expired token")
	ErrMissingSetting       = errors.New("missing provider setting")
	ErrInvalidObjectURI     = errors.New("invalid object URI")
	ErrObjectNotFound       = errors.New("object not found")
	ErrInvalidFactory       = errors.New("invalid provider factory")
	ErrUnsupportedMethod    = errors.New("unsupported HTTP method")
	ErrURLRequired          = errors.New("service URL is not configured")
	ErrEmptyResponse        = errors.New("empty response")
)

// UnsupportedProviderError is returned when no implementation is registered
// for a provider id. It is never retried.
type UnsupportedProviderError struct {
	Capability Capability
	ProviderID string
}

// Error implements the error interface.
func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("no %s implementation registered for provider %q", e.Capability, e.ProviderID)
}

// CredentialRefreshError is returned when the identity backend could not
// produce a token within the refresh retry budget. The request executor
// treats it as terminal for the current call.
type CredentialRefreshError struct {
	Provider string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *CredentialRefreshError) Error() string {
	return fmt.Sprintf("refreshing %s credentials failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

// Unwrap returns the underlying transport or parsing failure.
func (e *CredentialRefreshError) Unwrap() error {
	return e.Err
}

// TransportError is returned when an HTTP call could not be completed at all
// (connection refused, timeout, DNS failure). Non-2xx responses are never
// reported as a TransportError; they are returned as a Response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingSettingError names a provider setting that is required but absent.
type MissingSettingError struct {
	Key string
}

// Error implements the error interface.
func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingSetting, e.Key)
}

// Is makes errors.Is(err, ErrMissingSetting) hold.
func (e *MissingSettingError) Is(target error) bool {
	return target == ErrMissingSetting
}

// IsUnsupportedProvider checks if the error is an unsupported provider error.
func IsUnsupportedProvider(err error) bool {
	target := &UnsupportedProviderError{}

	return errors.As(err, &target)
}

// IsCredentialRefresh checks if the error is a credential refresh error.
func IsCredentialRefresh(err error) bool {
	target := &CredentialRefreshError{}

	return errors.As(err, &target)
}

// IsTransport checks if the error is a transport error.
func IsTransport(err error) bool {
	target := &TransportError{}

	return errors.As(err, &target)
}
