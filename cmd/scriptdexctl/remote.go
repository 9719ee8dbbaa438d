package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kailas-cloud/scriptdex"
	chiTransport "github.com/kailas-cloud/scriptdex/internal/transport/chi"
)

const defaultRemoteTimeout = 30 * time.Second

// remoteClient queries a scriptdex server.
type remoteClient struct {
	base   *url.URL
	apiKey string
	http   *http.Client
}

func newRemoteClient(server, apiKey string) (*remoteClient, error) {
	base, err := url.Parse(strings.TrimSuffix(server, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", server)
	}
	return &remoteClient{
		base:   base,
		apiKey: apiKey,
		http:   &http.Client{Timeout: defaultRemoteTimeout},
	}, nil
}

// codeSentinels maps error response codes back to the sentinels they were derived from.
var codeSentinels = map[chiTransport.ErrorResponseCode]error{
	chiTransport.ErrorResponseCodeExampleNotFound:   scriptdex.ErrExampleNotFound,
	chiTransport.ErrorResponseCodeScriptNotFound:    scriptdex.ErrScriptNotFound,
	chiTransport.ErrorResponseCodeResourceNotFound:  scriptdex.ErrResourceNotFound,
	chiTransport.ErrorResponseCodeInvalidResource:   scriptdex.ErrInvalidResource,
	chiTransport.ErrorResponseCodeFileVanished:      scriptdex.ErrFileVanished,
	chiTransport.ErrorResponseCodeCorpusUnavailable: scriptdex.ErrCorpusUnavailable,
}

// remoteError is a server error response.
type remoteError struct {
	Status  int
	Code    chiTransport.ErrorResponseCode
	Message string
	Example string
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

func (e *remoteError) Unwrap() error { return codeSentinels[e.Code] }

func (c *remoteClient) Listing(ctx context.Context, tag string) (string, error) {
	q := url.Values{}
	if tag != "" {
		q.Set("tag", tag)
	}
	return c.text(ctx, q, "examples")
}

func (c *remoteClient) Render(ctx context.Context, example string) (string, error) {
	return c.text(ctx, nil, "examples", url.PathEscape(example))
}

func (c *remoteClient) Search(ctx context.Context, query string) (string, error) {
	return c.text(ctx, url.Values{"q": {query}}, "search")
}

func (c *remoteClient) Analyze(ctx context.Context, example string) (string, error) {
	return c.text(ctx, nil, "examples", url.PathEscape(example), "analysis")
}

func (c *remoteClient) Compare(ctx context.Context, left, right string) (string, error) {
	return c.text(ctx, url.Values{"left": {left}, "right": {right}}, "compare")
}

func (c *remoteClient) EnumerateResources(ctx context.Context) ([]scriptdex.Resource, error) {
	body, err := c.get(ctx, nil, "resources")
	if err != nil {
		return nil, err
	}
	var resp chiTransport.ResourceListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	out := make([]scriptdex.Resource, len(resp.Items))
	for i, r := range resp.Items {
		out[i] = scriptdex.Resource{
			URI:         r.URI,
			Name:        r.Name,
			Description: r.Description,
			MIMEType:    r.MimeType,
			Example:     r.Example,
			Kind:        scriptdex.ResourceKind(r.Kind),
		}
	}
	return out, nil
}

func (c *remoteClient) ReadResource(ctx context.Context, example string, kind scriptdex.ResourceKind) (string, error) {
	return c.text(ctx, nil, "resources", url.PathEscape(example), url.PathEscape(string(kind)))
}

func (c *remoteClient) text(ctx context.Context, query url.Values, segments ...string) (string, error) {
	body, err := c.get(ctx, query, segments...)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get fetches base/segments. Segments must already be path-escaped.
func (c *remoteClient) get(ctx context.Context, query url.Values, segments ...string) ([]byte, error) {
	u := c.base.JoinPath(segments...)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", u.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var e chiTransport.ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Code == "" {
		return nil, &remoteError{
			Status:  resp.StatusCode,
			Code:    chiTransport.ErrorResponseCodeInternalError,
			Message: strings.TrimSpace(string(body)),
		}
	}
	rerr := &remoteError{Status: resp.StatusCode, Code: e.Code, Message: e.Message}
	if e.Example != nil {
		rerr.Example = *e.Example
	}
	return nil, rerr
}
