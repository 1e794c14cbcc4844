package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// defaultUserAgent is the fixed mobile client identity the feed API
// expects. There is no session or authentication beyond it.
const defaultUserAgent = "com.ss.android.ugc.33.3.4/330304 (Linux; U; Android 13; en_US; Pixel 7; Build/TD1A.220804.031; Cronet/58.0.2991.0)"

// defaultTimeout bounds every request; the upstream endpoints are
// best-effort and must not hang the run.
const defaultTimeout = 30 * time.Second

// StatusError reports a non-2xx response status. Callers use it to
// tell a reachable-but-unhappy endpoint apart from a transport failure.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Client wraps HTTP operations with the TikTok client identity.
//
// Client provides:
//   - The fixed mobile User-Agent header on every request
//   - A bounded request timeout
//   - Streaming file download with atomic failure semantics
//
// Example usage:
//
//	client := NewClient(0)
//
//	// Fetch an API payload
//	body, err := client.Get(ctx, endpointURL)
//
//	// Stream a video to disk
//	err = client.DownloadFile(ctx, videoURL, "/path/clip.mp4", nil)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client with the fixed identity header. A zero
// timeout selects the 30 second default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Provide an OnUpdate callback to monitor large downloads; it receives
// the bytes written so far and the total expected bytes (from the
// Content-Length header, -1 when unknown).
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if the request fails, the response status is not
// 200 OK, or reading the body fails.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// DownloadFile streams the response body at url to destPath.
//
// The destination's parent directories are created as needed. The file
// is opened exclusively: the caller must supply a collision-free path
// (see naming.PadUntilFree); DownloadFile never overwrites.
//
// Failure is atomic: a non-2xx status creates no file, and any error
// while streaming removes the partial file before returning. Pass a nil
// onProgress to disable progress tracking.
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(destPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		file.Close()
		os.Remove(destPath)
		return err
	}

	return file.Close()
}
