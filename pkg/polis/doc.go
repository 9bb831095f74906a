// Package polis provides types, interfaces, and helpers for working with the
// Foundries.IO polis API.
//
// # Overview
//
// The polis package defines the request options, the wrapped Response, the
// error taxonomy, and the interfaces for resource-oriented clients (e.g.,
// UsersClient, MembersClient). A concrete implementation is provided by the
// polisclient package, which wires configuration, transport, and connection
// pooling. Most consumers should import polisclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/foundriesio/polis-client/pkg/polis"
//	  "github.com/foundriesio/polis-client/pkg/polisclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := polisclient.NewWithToken("https://api.example.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Members().Find(ctx, "acme", polis.Params{
//	    Query: polis.NewQuery().Add("limit", "50"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  var members []map[string]any
//	  if err := resp.Decode(&members); err != nil { log.Fatal(err) }
//	}
//
// # Responses and pagination
//
// A Response reads its body lazily and at most once. JSON, Text, Bytes and
// Decode may be called any number of times, from any goroutine. Collection
// endpoints report their page cursor through the x-polis-* headers, exposed
// by Response.Pagination. A Response whose body is never read must be closed.
//
// # Errors
//
// Every non-2xx status is returned as an *HTTPError carrying the status, a
// symbolic ErrorKind and the decoded error body when it could be decoded.
// Helpers such as IsNotFound, IsUnauthorized, and IsForbidden make it easy to
// branch on common cases. Transport failures surface as *NetworkError,
// *InvalidURLError, *EncodeError or ErrCanceled; nothing is retried.
//
// # Interceptors and metrics
//
// Request/response interceptors (logging, static headers, credentials) and
// Prometheus collectors can be attached through Config.
package polis
