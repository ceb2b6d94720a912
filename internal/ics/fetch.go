package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxBodyBytes = 10 << 20

// ErrFeedTooLarge is returned when a feed body exceeds the size limit.
var ErrFeedTooLarge = errors.New("calendar feed exceeds size limit")

// FetchRequest carries the validators from the previous successful fetch.
type FetchRequest struct {
	URL          string
	ETag         string
	LastModified string
}

type FetchResult struct {
	Body         []byte
	ETag         string
	LastModified string
	NotModified  bool
}

type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}, maxBytes: maxBodyBytes}
}

// Fetch performs a conditional GET. On 304 the previous validators are
// returned with NotModified set and no body.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) (FetchResult, error) {
	if req.URL == "" {
		return FetchResult{}, errors.New("source URL is empty")
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return FetchResult{}, err
	}
	hreq.Header.Set("Accept", "text/calendar")
	if req.ETag != "" {
		hreq.Header.Set("If-None-Match", req.ETag)
	}
	if req.LastModified != "" {
		hreq.Header.Set("If-Modified-Since", req.LastModified)
	}

	resp, err := f.client.Do(hreq)
	if err != nil {
		return FetchResult{}, fmt.Errorf("fetch %s: %w", RedactURL(req.URL), err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
		if err != nil {
			return FetchResult{}, err
		}
		if int64(len(body)) > f.maxBytes {
			return FetchResult{}, fmt.Errorf("fetch %s: %w (%d bytes)", RedactURL(req.URL), ErrFeedTooLarge, f.maxBytes)
		}
		return FetchResult{
			Body:         body,
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		}, nil
	case http.StatusNotModified:
		return FetchResult{ETag: req.ETag, LastModified: req.LastModified, NotModified: true}, nil
	default:
		return FetchResult{}, fmt.Errorf("fetch %s: unexpected status %s", RedactURL(req.URL), resp.Status)
	}
}

// RedactURL drops userinfo and query, which often carry feed secrets.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
