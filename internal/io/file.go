package ioutils

import (
	"bufio"
	"os"
	"strings"
	"time"
)

// EnsureDir creates a directory and all parent directories if they
// don't exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// RestoreModTime sets the file's access and modification times to the
// given epoch-seconds timestamp. A zero timestamp means the creation
// time is unknown and the call is a no-op.
//
// Callers treat a failure here as cosmetic: the download itself
// succeeded, only the timestamp restore did not.
func RestoreModTime(path string, epochSeconds int64) error {
	if epochSeconds == 0 {
		return nil
	}
	ts := time.Unix(epochSeconds, 0)
	return os.Chtimes(path, ts, ts)
}

// ReadURLList reads a newline-delimited list of URLs from a text file.
// Blank lines are skipped and surrounding whitespace is trimmed.
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
