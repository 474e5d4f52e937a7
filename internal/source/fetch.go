package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"movieshows/internal/config"
)

// maxPayloadBytes bounds a single fetched body.
const maxPayloadBytes = 32 << 20

// Fetcher reads the raw bytes at a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPDoer describes the HTTP client used by HTTPFetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher performs one uncached GET per call.
type HTTPFetcher struct {
	Client    HTTPDoer
	Timeout   time.Duration
	UserAgent string
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, wrap(ErrUnreachable, location, "build request", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(ErrUnreachable, location, "request", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, wrap(ErrStatus, location, fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, wrap(ErrUnreachable, location, "read body", err)
	}
	return data, nil
}

// FileFetcher reads payloads from a filesystem.
type FileFetcher struct {
	FS afero.Fs
}

// NewFileFetcher returns a fetcher over the host filesystem.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{FS: afero.NewOsFs()}
}

func (f *FileFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap(ErrUnreachable, location, "read file", err)
	}
	fs := f.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	info, err := fs.Stat(location)
	if err != nil {
		return nil, wrap(ErrUnreachable, location, "stat file", err)
	}
	if info.IsDir() {
		return nil, wrap(ErrUnreachable, location, "read file", fmt.Errorf("is a directory"))
	}
	if info.Size() > maxPayloadBytes {
		return nil, wrap(ErrUnreachable, location, "read file", fmt.Errorf("file exceeds %d bytes", maxPayloadBytes))
	}
	data, err := afero.ReadFile(fs, location)
	if err != nil {
		return nil, wrap(ErrUnreachable, location, "read file", err)
	}
	return data, nil
}

// Router resolves locations against Base and dispatches them to the HTTP or
// file fetcher.
type Router struct {
	Base  string
	HTTP  Fetcher
	Files Fetcher
}

// NewRouter builds the production router from configuration.
func NewRouter(cfg *config.Config) *Router {
	return &Router{
		Base: cfg.Source.Base,
		HTTP: &HTTPFetcher{
			Client:    http.DefaultClient,
			Timeout:   cfg.RequestTimeout(),
			UserAgent: cfg.Source.UserAgent,
		},
		Files: NewFileFetcher(),
	}
}

// Locate returns the absolute location a name resolves to. Absolute URLs and
// absolute paths are returned unchanged; relative names are joined onto Base.
func (r *Router) Locate(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || config.IsRemote(name) {
		return name
	}
	if config.IsRemote(r.Base) {
		base, err := url.Parse(r.Base)
		if err != nil {
			return name
		}
		ref, err := url.Parse(filepath.ToSlash(name))
		if err != nil {
			return name
		}
		return base.ResolveReference(ref).String()
	}
	if filepath.IsAbs(name) || r.Base == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(r.Base, name)
}

func (r *Router) Fetch(ctx context.Context, location string) ([]byte, error) {
	resolved := r.Locate(location)
	if config.IsRemote(resolved) {
		if r.HTTP == nil {
			return nil, wrap(ErrUnreachable, resolved, "fetch", fmt.Errorf("no http fetcher configured"))
		}
		return r.HTTP.Fetch(ctx, resolved)
	}
	if r.Files == nil {
		return nil, wrap(ErrUnreachable, resolved, "fetch", fmt.Errorf("no file fetcher configured"))
	}
	return r.Files.Fetch(ctx, resolved)
}
