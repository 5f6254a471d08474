// Package osdu provides types, interfaces, and helpers for working with the
// OSDU data platform services.
//
// # Overview
//
// The osdu package defines the request and response types, the wire models
// (Record, QueryRequest, LegalTag, Group, ...) and the interfaces of the
// resource clients (RecordsClient, SearchClient, LegalClient, ...). A concrete
// implementation is provided by the osduclient package, which wires
// configuration, transport, the provider registry and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/osdu-client/pkg/osduclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := osduclient.NewFromFile(ctx, "osdu_api.ini")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Records().GetLatestRecord(ctx, "opendes:wellbore:123", nil)
//	  if err != nil { log.Fatal(err) }
//	  if !resp.IsSuccess() { log.Fatalf("storage returned %d", resp.StatusCode) }
//	}
//
// # Errors
//
// Callers must check two channels. The error return carries failures that
// prevented a usable answer: *TransportError when the HTTP call itself could
// not be completed, *CredentialRefreshError when the identity backend could
// not mint a token, and *UnsupportedProviderError when no plugin is
// registered for the configured provider. HTTP error statuses are not
// errors: every response the service sent, including 4xx and 5xx, is
// returned as a *Response and its StatusCode must be inspected.
//
// # Authentication
//
// When automated authentication is enabled, a request answered with 401 or
// 403 causes exactly one token refresh and one reissue of the request. The
// second response is returned whatever its status. A per-call token can be
// supplied with WithBearerToken.
//
// # Providers
//
// Credential and blob storage implementations are plugins keyed by a
// provider id (gcp, azure, aws). See the provider package for the registry
// and its resolution order.
package osdu
