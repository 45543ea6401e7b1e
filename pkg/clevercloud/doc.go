// Package clevercloud provides the main entry point for creating Clever
// Cloud API clients.
//
// Example:
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
package clevercloud
