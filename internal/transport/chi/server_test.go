package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/analysis"
	"github.com/kailas-cloud/scriptdex/internal/domain/diff"
	"github.com/kailas-cloud/scriptdex/internal/domain/resource"
	"github.com/kailas-cloud/scriptdex/internal/domain/search/match"
	"github.com/kailas-cloud/scriptdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/scriptdex/internal/usecase/health"
)

// --- Mocks ---

type mockCatalog struct {
	entries   []catalog.Entry
	lastTag   string
	bundle    catalog.Bundle
	resources []resource.Resource
	lastKind  resource.Kind
	err       error
}

func (m *mockCatalog) Listing(_ context.Context, tag string) ([]catalog.Entry, error) {
	m.lastTag = tag
	return m.entries, m.err
}

func (m *mockCatalog) Bundle(_ context.Context, name string) (catalog.Bundle, error) {
	if m.err != nil {
		return catalog.Bundle{}, m.err
	}
	b := m.bundle
	b.Name = name
	return b, nil
}

func (m *mockCatalog) Resources(_ context.Context) ([]resource.Resource, error) {
	return m.resources, m.err
}

func (m *mockCatalog) OpenResource(_ context.Context, name string, kind resource.Kind) (resource.Resource, string, error) {
	m.lastKind = kind
	if m.err != nil {
		return resource.Resource{}, "", m.err
	}
	return resource.New("groovy", name, kind, "groovy"), "# " + name, nil
}

type mockSearcher struct {
	matches   []match.Match
	lastQuery string
}

func (m *mockSearcher) Search(_ context.Context, q string) ([]match.Match, error) {
	m.lastQuery = q
	return m.matches, nil
}

type mockAnalyzer struct{ err error }

func (m *mockAnalyzer) Analyze(_ context.Context, name string) (analysis.Report, error) {
	if m.err != nil {
		return analysis.Report{}, m.err
	}
	return analysis.Analyze(name, "script.groovy", "import a.B\n"), nil
}

type mockComparator struct{}

func (m *mockComparator) Compare(_ context.Context, l, r string) (diff.Report, error) {
	return diff.Report{Left: l, Right: r, Files: diff.Compute([]string{"a"}, []string{"a", "b"})}, nil
}

type mockHealth struct{ status healthuc.Status }

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	check := healthuc.CheckOK
	if m.status != healthuc.Healthy {
		check = healthuc.CheckError
	}
	return healthuc.Report{Status: m.status, Checks: map[string]healthuc.CheckResult{"corpus": check}}
}

type fixture struct {
	catalog  *mockCatalog
	search   *mockSearcher
	analysis *mockAnalyzer
	health   *mockHealth
	handler  http.Handler
}

func newFixture() *fixture {
	f := &fixture{
		catalog:  &mockCatalog{},
		search:   &mockSearcher{},
		analysis: &mockAnalyzer{},
		health:   &mockHealth{status: healthuc.Healthy},
	}
	srv := NewServer(f.catalog, f.search, f.analysis, &mockComparator{}, f.health, "Test Examples", zap.NewNop())
	f.handler = HandlerWithOptions(srv, ServerOptions{})
	return f
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v (body %q)", err, rr.Body.String())
	}
	return resp
}

// --- Tests ---

func TestListExamples(t *testing.T) {
	f := newFixture()
	f.catalog.entries = []catalog.Entry{{Name: "basic", Author: "Jane", Tags: []string{"xml"}}}

	rr := f.get(t, "/examples?tag=xml")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != markdownContentType {
		t.Errorf("content type = %q", ct)
	}
	if f.catalog.lastTag != "xml" {
		t.Errorf("tag = %q, want xml", f.catalog.lastTag)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "# Test Examples\n\nFiltered by tag: **xml**") || !strings.Contains(body, "## basic") {
		t.Errorf("body = %q", body)
	}
}

func TestGetExample(t *testing.T) {
	f := newFixture()
	f.catalog.bundle = catalog.Bundle{Language: "groovy", Scripts: []catalog.ScriptSection{{Content: "x"}}}

	rr := f.get(t, "/examples/basic")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.HasPrefix(rr.Body.String(), "# basic\n\n") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    ErrorResponseCode
		example string
	}{
		{"not found", domain.NewExampleError("ghost", domain.ErrExampleNotFound),
			http.StatusNotFound, ErrorResponseCodeExampleNotFound, "ghost"},
		{"vanished", fmt.Errorf("read: %w", domain.NewFileError("basic", "script.groovy", domain.ErrFileVanished)),
			http.StatusConflict, ErrorResponseCodeFileVanished, "basic"},
		{"corpus", fmt.Errorf("%w: /secret/path: no such file", domain.ErrCorpusUnavailable),
			http.StatusServiceUnavailable, ErrorResponseCodeCorpusUnavailable, ""},
		{"internal", errors.New("disk on fire"),
			http.StatusInternalServerError, ErrorResponseCodeInternalError, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.catalog.err = tc.err

			rr := f.get(t, "/examples/basic")
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			resp := decodeError(t, rr)
			if resp.Code != tc.code {
				t.Errorf("code = %s, want %s", resp.Code, tc.code)
			}
			got := ""
			if resp.Example != nil {
				got = *resp.Example
			}
			if got != tc.example {
				t.Errorf("example = %q, want %q", got, tc.example)
			}
			if strings.Contains(resp.Message, "/secret/path") || strings.Contains(resp.Message, "fire") {
				t.Errorf("message leaks internals: %q", resp.Message)
			}
		})
	}
}

func TestAnalyzeExample(t *testing.T) {
	f := newFixture()
	rr := f.get(t, "/examples/basic/analysis")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "# Script Analysis: basic") {
		t.Fatalf("status = %d body = %q", rr.Code, rr.Body.String())
	}

	f.analysis.err = domain.NewExampleError("docs", domain.ErrScriptNotFound)
	rr = f.get(t, "/examples/docs/analysis")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != ErrorResponseCodeScriptNotFound || resp.Message != "script not found: docs" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearchExamples(t *testing.T) {
	f := newFixture()

	rr := f.get(t, "/search?q=Message%20Log")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if f.search.lastQuery != "Message Log" {
		t.Errorf("query = %q", f.search.lastQuery)
	}
	if rr.Body.String() != "No examples found matching 'Message Log'" {
		t.Errorf("body = %q", rr.Body.String())
	}

	rr = f.get(t, "/search?q=")
	if rr.Code != http.StatusOK || f.search.lastQuery != "" {
		t.Errorf("empty query: status = %d, query = %q", rr.Code, f.search.lastQuery)
	}
}

func TestBindingErrors(t *testing.T) {
	f := newFixture()

	for _, target := range []string{"/search", "/compare?left=a", "/compare?right=b"} {
		rr := f.get(t, target)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rr.Code)
			continue
		}
		if resp := decodeError(t, rr); resp.Code != ErrorResponseCodeBadRequest {
			t.Errorf("%s: code = %s", target, resp.Code)
		}
	}
}

func TestCompareExamples(t *testing.T) {
	f := newFixture()

	rr := f.get(t, "/compare?left=a&right=b")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.HasPrefix(rr.Body.String(), "# Comparing Examples: a vs b") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestListResources(t *testing.T) {
	f := newFixture()
	f.catalog.resources = []resource.Resource{resource.New("groovy", "basic", resource.Script, "groovy")}

	rr := f.get(t, "/resources")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp ResourceListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].URI != "groovy://examples/basic/script" || resp.Items[0].MimeType != "text/x-groovy" {
		t.Errorf("items = %+v", resp.Items)
	}
}

func TestReadResource(t *testing.T) {
	f := newFixture()

	rr := f.get(t, "/resources/basic/readme")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if f.catalog.lastKind != resource.Documentation {
		t.Errorf("kind = %q, want documentation", f.catalog.lastKind)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if rr.Body.String() != "# basic" {
		t.Errorf("body = %q", rr.Body.String())
	}

	rr = f.get(t, "/resources/basic/binary")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != ErrorResponseCodeInvalidResource || resp.Example == nil || *resp.Example != "basic" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthCheck(t *testing.T) {
	f := newFixture()

	rr := f.get(t, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["corpus"] != "ok" {
		t.Errorf("resp = %+v", resp)
	}

	f.health.status = healthuc.Degraded
	if rr := f.get(t, "/health"); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d, want 503", rr.Code)
	}
}
