// Package ccapi provides typed data structures and client interfaces for the
// Clever Cloud management API (v2 and v4 resource namespaces).
//
// The package defines the public surface of the SDK: DTOs mirroring the
// remote JSON schemas, one client interface per resource, the Config used to
// build a client, and the error taxonomy surfaced by every operation.
//
// Use github.com/clevercloud-community/clevercloud-go/pkg/clevercloud to
// construct a working client:
//
//	client, err := clevercloud.New(ctx, &ccapi.Config{
//		ConsumerKey:    "...",
//		ConsumerSecret: "...",
//		Token:          "...",
//		Secret:         "...",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	self, err := client.Self().Get(ctx)
//
// Every operation is a stateless request/response round trip: requests are
// signed, sent, decoded, and the resulting value handed back to the caller.
// Cancellation and timeouts are controlled through the context passed to each
// call.
package ccapi
