// Package polisclient provides the primary entry point for constructing a
// polis API client that implements the polis.Client interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the polis package. Every client built here
// draws its connections from one process-wide keep-alive pool.
//
// Quick start
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
//
//	  // Minimal: just an API address (no auth).
//	  cli, err := polisclient.New(&polis.Config{Address: "https://api.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a token you already have:
//	  cli, err = polisclient.NewWithToken("https://api.example.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Users().FindByID(ctx, "me", polis.Params{})
//	  if polis.IsNotFound(err) { return }
//	  _ = resp
//	}
//
// Configuration can also be read from a file and POLIS_* environment
// variables with NewWithConfigFile.
package polisclient
