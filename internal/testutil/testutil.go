// Package testutil holds helpers shared by package tests.
package testutil

import (
	"archive/zip"
	"os"
	"testing"
)

// ZipEntry describes one entry written by WriteZip.
type ZipEntry struct {
	// Name is the entry name; a trailing slash marks a directory.
	Name string
	// Body is the file content; ignored for directories.
	Body string
	// Mode holds the unix permission bits stored for the entry.
	Mode os.FileMode
}

// WriteZip writes a zip archive at path containing the given entries.
// t is the active test; path is the archive file to create.
func WriteZip(t *testing.T, path string, entries []ZipEntry) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive %s: %v", path, err)
	}
	writer := zip.NewWriter(file)
	for _, entry := range entries {
		header := &zip.FileHeader{Name: entry.Name, Method: zip.Store}
		if entry.Mode != 0 {
			header.SetMode(entry.Mode)
		}
		w, err := writer.CreateHeader(header)
		if err != nil {
			t.Fatalf("create entry %s: %v", entry.Name, err)
		}
		if _, err := w.Write([]byte(entry.Body)); err != nil {
			t.Fatalf("write entry %s: %v", entry.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close archive file: %v", err)
	}
}

// WriteHelloZip writes an archive with a single hello.txt entry and returns
// the entry content. t is the active test; path is the archive file to create.
func WriteHelloZip(t *testing.T, path string) string {
	t.Helper()
	const content = "Hello, World!"
	WriteZip(t, path, []ZipEntry{{Name: "hello.txt", Body: content, Mode: 0o644}})
	return content
}
