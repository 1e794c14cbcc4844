// Package archive maintains the flat-file ledger of already-downloaded
// media ids, compatible with yt-dlp style archive files.
//
// Each record is one line of the form "tiktok <media-id>". Lines written
// by other tools (different source tags) are tolerated and simply never
// match. The ledger is the sole persisted dedup state: a read failure is
// fatal to the run, while an append failure only degrades dedup for the
// affected item.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrLedger marks read failures of the archive file. Callers treat it
// as fatal: without the ledger every skip decision would be a guess.
var ErrLedger = errors.New("archive unreadable")

// sourceTag identifies records written by this tool inside a shared
// archive file.
const sourceTag = "tiktok"

// Record returns the ledger line (without newline) for a media id.
func Record(mediaID string) string {
	return sourceTag + " " + mediaID
}

// Ledger is an append-only record of downloaded media ids backed by a
// plain text file. An empty path disables it: Contains always reports
// false and Append is a no-op.
//
// Appends from concurrent goroutines are serialized; concurrent
// *processes* sharing one file are not coordinated, which matches the
// behavior of the other tools using this file format.
type Ledger struct {
	path string

	mu sync.Mutex
}

// NewLedger creates a ledger backed by the file at path. The file is not
// created until the first Append.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Enabled reports whether a ledger file is configured.
func (l *Ledger) Enabled() bool {
	return l.path != ""
}

// Contains reports whether mediaID has been recorded. A missing ledger
// file means nothing was downloaded yet and is not an error; any other
// read failure is returned to the caller, since dedup correctness cannot
// be guaranteed without the ledger.
func (l *Ledger) Contains(mediaID string) (bool, error) {
	if !l.Enabled() {
		return false, nil
	}

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s: %v", ErrLedger, l.path, err)
	}
	defer f.Close()

	want := Record(mediaID)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() == want {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrLedger, l.path, err)
	}
	return false, nil
}

// Append records mediaID. Failures are reported but are expected to be
// treated as non-fatal by the caller: the item is downloaded but not
// recorded, and a future run may fetch it again.
func (l *Ledger) Append(mediaID string) error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening archive file %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(Record(mediaID) + "\n"); err != nil {
		return fmt.Errorf("writing archive file %s: %w", l.path, err)
	}
	return nil
}
