package misc

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "out.json")

	written, err := WriteFile(fileName, []byte("first"))
	if err != nil || written != 5 {
		t.Fatalf("WriteFile() = %d, %v", written, err)
	}
	if _, err := WriteFile(fileName, []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	contents, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "second" {
		t.Errorf("contents = %q, want %q", contents, "second")
	}
}

func TestWriteFileWithFailureKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "out.png")
	if _, err := WriteFile(fileName, []byte("old")); err != nil {
		t.Fatal(err)
	}

	failure := errors.New("encoder broke")
	err := WriteFileWith(fileName, func(w io.Writer) error {
		w.Write([]byte("partial"))
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("WriteFileWith() error = %v, want %v", err, failure)
	}

	contents, _ := os.ReadFile(fileName)
	if string(contents) != "old" {
		t.Errorf("contents = %q, want %q", contents, "old")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("found %d files, temporary file was left behind", len(entries))
	}
}

func TestWriteFileWithoutName(t *testing.T) {
	if _, err := WriteFile("", nil); err == nil {
		t.Error("WriteFile(\"\") error = nil, want an error")
	}
}

func TestSeverityString(t *testing.T) {
	if got := Warning.String(); got != "Warning" {
		t.Errorf("Warning.String() = %q", got)
	}
	if got := Severity(9).String(); got != "Severity(9)" {
		t.Errorf("Severity(9).String() = %q", got)
	}
}
