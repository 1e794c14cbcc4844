// Package ioutils provides file system utilities for tiktok-downloader.
//
// This package contains functions for:
//   - Directory creation
//   - Restoring file modification times from post metadata
//   - Reading newline-delimited URL list files
//
// # Basic Usage
//
//	// Ensure the destination tree exists
//	err := ioutils.EnsureDir("/downloads/tiktok")
//
//	// Restore the post's creation time onto the saved file
//	err = ioutils.RestoreModTime("/downloads/clip.mp4", post.CreatedAt)
//
//	// Read a --list-file input
//	urls, err := ioutils.ReadURLList("urls.txt")
package ioutils
