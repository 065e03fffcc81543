package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Root is a place assets can be read from.
type Root interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	String() string
}

// dirRoot is an absolute directory on the local filesystem.
type dirRoot string

func newDirRoot(dir string) (dirRoot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return dirRoot(abs), nil
}

func (d dirRoot) ReadFile(_ context.Context, name string) ([]byte, error) {
	// Cleaning against "/" keeps the name inside the root.
	target := filepath.Join(string(d), filepath.FromSlash(path.Clean("/"+name)))
	data, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}

func (d dirRoot) String() string {
	return string(d)
}

// httpRoot fetches assets relative to a base URL.
type httpRoot struct {
	client *http.Client
	base   string
}

func newHTTPRoot(client *http.Client, base string) *httpRoot {
	return &httpRoot{client: client, base: strings.TrimRight(base, "/")}
}

func (h *httpRoot) ReadFile(ctx context.Context, name string) ([]byte, error) {
	url := h.base + "/" + strings.TrimLeft(name, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrBadStatus, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}

func (h *httpRoot) String() string {
	return h.base
}

var _ Root = dirRoot("")
var _ Root = (*httpRoot)(nil)
