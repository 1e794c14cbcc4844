// Package model defines the core data structures used throughout
// the tiktok-downloader application.
//
// # MediaReference
//
// MediaReference identifies one post, parsed from an input URL:
//
//	ref, ok := tiktok.ParseMediaURL("https://www.tiktok.com/@user/video/123")
//	// ref.ID = "123", ref.Kind = model.KindVideo
//
// # Post
//
// Post is the normalized descriptor produced by the resolver. Metadata
// fields are individually optional and default to their zero values:
//
//	post, err := resolver.Resolve(ctx, ref, canonicalURL)
//	fmt.Println(post.AuthorName, post.Description)
//
// # Outcome
//
// Outcome is the tri-state per-URL result of the pipeline: success,
// already downloaded, or failed.
package model
