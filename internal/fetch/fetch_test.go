package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestFetchDownloadsArtifact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/softwares" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "app" {
			t.Errorf("expected name=app, got %q", got)
		}
		if got := r.URL.Query().Get("version"); got != "0.1.0" {
			t.Errorf("expected version=0.1.0, got %q", got)
		}
		_, _ = w.Write([]byte("I am a software!"))
	}))
	defer server.Close()

	dir := t.TempDir()
	client := NewClient(server.URL, filepath.Join(dir, "softwares"))

	path, err := client.Fetch(context.Background(), "app", "0.1.0", "app-0.1.0.zip")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := filepath.Join(dir, "softwares", "app", "0.1.0", "app-0.1.0.zip")
	if path != want {
		t.Fatalf("expected path %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != "I am a software!" {
		t.Fatalf("unexpected artifact content %q", string(data))
	}
}

func TestFetchIsIdempotent(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	client := NewClient(server.URL, t.TempDir())

	first, err := client.Fetch(context.Background(), "app", "0.1.0", "app-0.1.0.zip")
	if err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	second, err := client.Fetch(context.Background(), "app", "0.1.0", "app-0.1.0.zip")
	if err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical paths, got %s and %s", first, second)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected exactly one download, got %d", got)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such artifact", http.StatusNotFound)
	}))
	defer server.Close()

	dir := t.TempDir()
	client := NewClient(server.URL, dir)

	_, err := client.Fetch(context.Background(), "app", "0.1.0", "app-0.1.0.zip")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", statusErr.Code)
	}
	// No empty or partial file may be left at the target path.
	if _, err := os.Stat(filepath.Join(dir, "app", "0.1.0", "app-0.1.0.zip")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no artifact file after failed download, stat err = %v", err)
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, t.TempDir())

	_, err := client.Fetch(context.Background(), "app", "0.1.0", "app-0.1.0.zip")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure must not be a *StatusError: %v", err)
	}
}
