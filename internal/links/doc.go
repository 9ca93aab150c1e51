// Package links provides the HTTP client for the saved-links endpoint.
//
// # Overview
//
// The endpoint returns a JSON envelope:
//
//	{ "success": true, "links": [ { "url": "...", "tags": ["go"], ... } ] }
//	{ "success": false, "error": "quota exceeded" }
//
// Client.Load performs exactly one GET and either returns the link slice or
// one of three typed errors:
//
//   - *HTTPStatusError: the response status was outside 2xx
//   - *ParseError: the body did not decode as an envelope
//   - *APIError: the envelope decoded but reported success=false
//
// A successful envelope without a links field yields an empty, non-nil slice.
// Load never touches application state; the caller installs the result.
//
// # Usage Example
//
//	client, err := links.NewClient("https://example.com/links")
//	if err != nil {
//		return err
//	}
//	items, err := client.Load(ctx)
//	if err != nil {
//		fmt.Println(links.Message(err))
//	}
//
// # Field Degradation
//
// Link.Created reports whether CreatedAt parsed rather than failing the
// whole decode, so a single malformed record never blanks the list.
package links
