// Package fetch sequences request -> parse -> derive for suburb reports:
// it resolves the report URL (directly or through the CORS/auth proxy),
// issues a single GET per call, and hands the parsed JSON value to the
// report pipeline. Fetch failures collapse to a structured ErrorValue; the
// pipeline is never invoked on a failed fetch.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"suburbscope/internal/logger"
)

const (
	// PathPrefixSuburb and PathPrefixSandbox are the recognized report
	// path prefixes on the upstream API.
	PathPrefixSuburb  = "suburb"
	PathPrefixSandbox = "sandbox/suburb"

	defaultTimeout = 15 * time.Second
)

// Options configure a Client. No global state: the orchestrator receives
// this at construction time.
type Options struct {
	ProxyBase    string // base URL of the CORS-bypassing proxy
	UpstreamBase string // base URL of the data API, used when UseProxy is false
	PathPrefix   string // "suburb" or "sandbox/suburb"
	UseProxy     bool
	Timeout      time.Duration
}

// ErrorValue is the synthetic value shown in place of the derived
// structures when a fetch fails: transport errors, non-2xx statuses and
// malformed JSON bodies all collapse to it.
type ErrorValue struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Client fetches suburb report JSON. Concurrent fetches for the same
// (slug, endpoint) pair are collapsed into one upstream request.
type Client struct {
	opts   Options
	client *http.Client
	group  singleflight.Group
}

// NewClient builds a Client from opts, filling in the default timeout and
// path prefix when unset.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if strings.TrimSpace(opts.PathPrefix) == "" {
		opts.PathPrefix = PathPrefixSuburb
	}
	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// ReportURL builds the request URL for a suburb slug and report endpoint.
// Pure string templating over the configured bases.
func (c *Client) ReportURL(slug, endpoint string) string {
	base := c.opts.UpstreamBase
	if c.opts.UseProxy {
		base = c.opts.ProxyBase
	}
	return fmt.Sprintf("%s/%s/%s/%s",
		strings.TrimRight(base, "/"),
		strings.Trim(c.opts.PathPrefix, "/"),
		url.PathEscape(strings.TrimSpace(slug)),
		url.PathEscape(strings.TrimSpace(endpoint)),
	)
}

// Fetch issues one GET for the report and returns the parsed JSON value.
// On any failure it returns a non-nil ErrorValue instead; err is reserved
// for context cancellation.
func (c *Client) Fetch(ctx context.Context, slug, endpoint string) (any, *ErrorValue) {
	key := slug + "|" + endpoint
	res, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetchOnce(ctx, slug, endpoint), nil
	})
	if err != nil {
		// singleflight itself never errors here; fetchOnce reports
		// failures through fetchResult.
		return nil, &ErrorValue{Error: true, Message: err.Error(), URL: c.ReportURL(slug, endpoint)}
	}
	out := res.(fetchResult)
	return out.value, out.errValue
}

type fetchResult struct {
	value    any
	errValue *ErrorValue
}

func (c *Client) fetchOnce(ctx context.Context, slug, endpoint string) fetchResult {
	target := c.ReportURL(slug, endpoint)
	reqID := uuid.NewString()
	fail := func(format string, v ...any) fetchResult {
		msg := fmt.Sprintf(format, v...)
		logger.Warnf("fetch %s failed id=%s: %s", target, reqID, msg)
		return fetchResult{errValue: &ErrorValue{Error: true, Message: msg, URL: target}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fail("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fail("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail("read body: %v", err)
	}
	if !gjson.ValidBytes(body) {
		return fail("response is not valid JSON")
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fail("decode body: %v", err)
	}
	logger.Debugf("fetch %s ok id=%s bytes=%d dur=%s", target, reqID, len(body), time.Since(start))
	return fetchResult{value: value}
}
