// Package http provides the HTTP client used for feed API requests and
// media downloads.
//
// The Client in this package handles:
//   - The fixed mobile User-Agent the feed API expects
//   - A bounded request timeout
//   - Streaming downloads that never overwrite and never leave a
//     partial file behind on error
//
// # Basic Usage
//
//	client := http.NewClient(0)
//
//	// Fetch an API payload
//	body, err := client.Get(ctx, endpointURL)
//
//	// Stream a file with a progress callback
//	client.DownloadFile(ctx, videoURL, "/path/clip.mp4", func(written, total int64) {
//	    fmt.Printf("%d bytes\n", written)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for
// progress tracking.
package http
