// Package tiktok provides URL recognition and media resolution against
// the feed API.
//
// The package handles two concerns:
//
//  1. Parsing content URLs into media references (id + kind)
//  2. Resolving a reference into a normalized descriptor via an
//     ordered list of fallback endpoints
//
// # URL Parsing
//
//	ref, ok := tiktok.ParseMediaURL("https://www.tiktok.com/@user/video/123?is_copy_url=1")
//	// ref = {ID: "123", Kind: KindVideo}, ok = true
//
//	canonical, _ := tiktok.CanonicalURL("https://www.tiktok.com/@user/video/123?is_copy_url=1")
//	// canonical = "https://www.tiktok.com/@user/video/123"
//
// # Resolution
//
//	resolver := tiktok.NewResolver(client, nil) // DefaultEndpoints
//	post, err := resolver.Resolve(ctx, ref, canonical)
//	if errors.Is(err, tiktok.ErrNotFound) {
//	    // every endpoint answered, none with a verified record
//	}
//
// Endpoints are treated as unreliable upstreams: each gets a single
// request, responses are identity-verified against the requested id,
// and the first verified record short-circuits the rest of the list.
package tiktok
