package archive

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLedger_MissingFileIsNotAnError(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "archive.txt"))

	got, err := l.Contains("123")
	if err != nil {
		t.Fatalf("Contains on missing file: %v", err)
	}
	if got {
		t.Error("Contains = true for missing ledger, want false")
	}
}

func TestLedger_AppendThenContains(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "archive.txt"))

	if err := l.Append("123"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := l.Contains("123")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !got {
		t.Error("Contains = false after Append, want true")
	}

	other, err := l.Contains("456")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if other {
		t.Error("Contains = true for unrecorded id")
	}
}

func TestLedger_ForeignLinesTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.txt")
	content := "youtube abc123\ntiktok 777\ninstagram xyz\nnot a record at all\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLedger(path)
	got, err := l.Contains("777")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !got {
		t.Error("Contains = false for recorded id among foreign lines")
	}

	// A foreign tool's id must not match ours.
	got, err = l.Contains("abc123")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if got {
		t.Error("Contains matched a record with a foreign source tag")
	}
}

func TestLedger_ReadFailurePropagates(t *testing.T) {
	// A directory at the ledger path is unreadable as a file.
	dir := t.TempDir()
	l := NewLedger(dir)

	_, err := l.Contains("123")
	if err == nil {
		t.Fatal("Contains on unreadable ledger returned nil error")
	}
	if !errors.Is(err, ErrLedger) {
		t.Errorf("error = %v, want ErrLedger", err)
	}
}

func TestLedger_Disabled(t *testing.T) {
	l := NewLedger("")
	if l.Enabled() {
		t.Error("Enabled() = true for empty path")
	}
	if got, err := l.Contains("123"); err != nil || got {
		t.Errorf("Contains on disabled ledger = (%v, %v)", got, err)
	}
	if err := l.Append("123"); err != nil {
		t.Errorf("Append on disabled ledger: %v", err)
	}
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.txt")
	l := NewLedger(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := l.Append(strings.Repeat("9", n%5+1)); err != nil {
				t.Errorf("Append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "tiktok ") {
			t.Errorf("interleaved or malformed line %q", line)
		}
	}
}
