// Package fetch downloads named, versioned software artifacts into the local
// cache tree. The cache is write-once: a file that already exists at its
// deterministic path is trusted as-is and never re-downloaded or verified.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

// DefaultTimeout bounds a single download attempt.
const DefaultTimeout = 5 * time.Minute

// StatusError reports a download request that reached the distribution
// service but was answered with a non-2xx status. No file is created.
type StatusError struct {
	Name    string
	Version string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.FetchStatusErrFmt, e.Name, e.Version, e.Code)
}

// Client fetches artifacts from a distribution service.
type Client struct {
	// BaseURL is the distribution service endpoint, e.g. https://releases.example.com.
	BaseURL string
	// Dir is the root of the local artifact cache (the softwares/ tree).
	Dir string
	// HTTPClient is used for downloads. Defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
}

// NewClient returns a fetch client for the given service endpoint and cache root.
func NewClient(baseURL, dir string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Dir:        dir,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch returns the local path of the artifact identified by name, version
// and fileName, downloading it first when absent.
//
// The target path is deterministic: <dir>/<name>/<version>/<fileName>. When a
// file already exists there Fetch returns immediately with no network call.
// A single download attempt is made; callers decide whether to retry. On a
// non-2xx response Fetch returns a *StatusError and leaves no file behind.
func (c *Client) Fetch(ctx context.Context, name, version, fileName string) (string, error) {
	savedDir := filepath.Join(c.Dir, name, version)
	savedPath := filepath.Join(savedDir, fileName)

	if _, err := os.Stat(savedPath); err == nil {
		return savedPath, nil
	}

	if err := os.MkdirAll(savedDir, 0o755); err != nil {
		return "", fmt.Errorf(messages.FetchCreateDirErrFmt, savedDir, err)
	}

	downloadURL := fmt.Sprintf("%s/softwares?name=%s&version=%s",
		c.BaseURL, url.QueryEscape(name), url.QueryEscape(version))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf(messages.FetchRequestErrFmt, name, version, err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf(messages.FetchTransportErrFmt, name, version, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{Name: name, Version: version, Code: resp.StatusCode}
	}

	if err := writeBody(savedPath, resp.Body); err != nil {
		return "", err
	}
	return savedPath, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// writeBody streams body into a new file at path, removing the file again if
// the copy fails so a partial download is never mistaken for a cached artifact.
func writeBody(path string, body io.Reader) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(messages.FetchWriteErrFmt, path, err)
	}
	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf(messages.FetchWriteErrFmt, path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf(messages.FetchWriteErrFmt, path, err)
	}
	return nil
}
