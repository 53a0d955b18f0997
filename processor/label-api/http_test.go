package labelapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontolabel/graph"
	"github.com/c360studio/ontolabel/label"
	"github.com/c360studio/ontolabel/vocabulary"
)

func newTestComponent(t *testing.T) *Component {
	t.Helper()

	catalog := NewCatalog()
	catalog.Replace(graph.EntitiesFromTriples([]graph.Triple{
		{Subject: "https://example.org/ns#Customer", Predicate: vocabulary.RdfsLabel, Object: "Customer", Language: "en"},
		{Subject: "https://example.org/ns#Customer", Predicate: vocabulary.RdfsLabel, Object: "Kunde", Language: "de"},
		{Subject: "https://example.org/ns#Account", Predicate: vocabulary.SkosPrefLabel, Object: "Compte", Language: "fr"},
	}))

	c, err := NewComponent(Config{DefaultLanguage: "en"}, catalog, nil, prometheus.NewRegistry(), nil)
	require.NoError(t, err)
	return c
}

func newTestMux(t *testing.T) (*Component, *http.ServeMux) {
	t.Helper()
	c := newTestComponent(t)
	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("api/labels", mux)
	return c, mux
}

func TestHandleResolveGet(t *testing.T) {
	_, mux := newTestMux(t)

	tests := []struct {
		name      string
		url       string
		wantLabel string
		wantTier  string
	}{
		{
			name:      "preferred language",
			url:       "/api/labels/resolve?iri=https://example.org/ns%23Customer&lang=de",
			wantLabel: "Kunde",
			wantTier:  "preferred",
		},
		{
			name:      "english fallback",
			url:       "/api/labels/resolve?iri=https://example.org/ns%23Customer&lang=ja",
			wantLabel: "Customer",
			wantTier:  "english",
		},
		{
			name:      "default language when lang omitted",
			url:       "/api/labels/resolve?iri=https://example.org/ns%23Customer",
			wantLabel: "Customer",
			wantTier:  "preferred",
		},
		{
			name:      "unknown IRI falls back to local name",
			url:       "/api/labels/resolve?iri=https://example.org/ns%23Unknown",
			wantLabel: "Unknown",
			wantTier:  "local_name",
		},
		{
			name:      "any-language fallback",
			url:       "/api/labels/resolve?iri=https://example.org/ns%23Account&lang=de",
			wantLabel: "Compte",
			wantTier:  "any",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var got ResolvedLabel
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Equal(t, tc.wantTier, got.Tier)
		})
	}
}

func TestHandleResolveGetMissingIRI(t *testing.T) {
	_, mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/resolve", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolvePost(t *testing.T) {
	_, mux := newTestMux(t)

	body := `{
		"language": "de",
		"entities": [
			{"id": "https://example.org/ns#A", "labels": {"de": "Ding", "en": "Thing"}},
			{"id": "https://example.org/ns#B", "label": "Legacy Thing"},
			{"id": "https://example.org/ns#C"}
		]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/labels/resolve", strings.NewReader(body))
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Results []ResolvedLabel `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Results, 3)

	assert.Equal(t, "Ding", got.Results[0].Label)
	assert.Equal(t, "preferred", got.Results[0].Tier)
	assert.Equal(t, "Legacy Thing", got.Results[1].Label)
	assert.Equal(t, "legacy", got.Results[1].Tier)
	assert.Equal(t, "C", got.Results[2].Label)
	assert.Equal(t, "local_name", got.Results[2].Tier)
}

func TestHandleResolvePostInvalidBody(t *testing.T) {
	_, mux := newTestMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/labels/resolve", strings.NewReader("{not json"))
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolveMethodNotAllowed(t *testing.T) {
	_, mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/labels/resolve", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleLanguages(t *testing.T) {
	_, mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/languages", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Languages []LanguageOption `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Len(t, got.Languages, 3)
	assert.Equal(t, LanguageOption{Code: "en", Name: "English"}, got.Languages[0], "en comes first")
	assert.Equal(t, LanguageOption{Code: "de", Name: "Deutsch"}, got.Languages[1])
	assert.Equal(t, LanguageOption{Code: "fr", Name: "Français"}, got.Languages[2])
}

func TestHandleClassify(t *testing.T) {
	_, mux := newTestMux(t)

	tests := []struct {
		name          string
		url           string
		wantCategory  string
		wantTypeLabel string
	}{
		{"hint wins", "/api/labels/classify?hint=persona&type=data-product", "persona", "Data Product"},
		{"type fallback", "/api/labels/classify?type=glossary-term", "term", "Glossary Term"},
		{"unknown everything", "/api/labels/classify?hint=x&type=widget-farm", "generic", "Widget Farm"},
		{"empty query", "/api/labels/classify", "generic", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var got ClassifiedResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.wantCategory, got.Category)
			assert.Equal(t, tc.wantTypeLabel, got.TypeLabel)
		})
	}
}

func TestHandleExport(t *testing.T) {
	catalog := NewCatalog()
	catalog.ReplaceTriples([]graph.Triple{
		{Subject: "https://example.org/ns#Customer", Predicate: vocabulary.RdfsLabel, Object: "Customer", Language: "en"},
		{Subject: "https://example.org/ns#Customer", Predicate: "https://example.org/ns#partOf", Object: "https://example.org/ns#Sales", ObjectIsIRI: true},
	})
	c, err := NewComponent(Config{}, catalog, nil, prometheus.NewRegistry(), nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("api/labels", mux)

	t.Run("ntriples by default, labels only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/export", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/n-triples", rec.Header().Get("Content-Type"))

		body := rec.Body.String()
		assert.Contains(t, body, `"Customer"@en`)
		assert.NotContains(t, body, "partOf", "non-label triples are not exported")
	})

	t.Run("turtle", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/export?format=turtle", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/turtle", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "@prefix rdfs:")
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/export?format=xml", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	_, mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/labels/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "stopped", got.Status, "component not started yet")
	assert.Equal(t, 2, got.Entities)
}

func TestHandlersRecordRequestDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewComponent(Config{}, NewCatalog(), nil, reg, nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("api/labels", mux)

	paths := []string{
		"/api/labels/resolve?iri=https://example.org/ns%23X",
		"/api/labels/languages",
		"/api/labels/classify",
		"/api/labels/export",
		"/api/labels/health",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	count, err := testutil.GatherAndCount(reg, "ontolabel_api_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, len(paths), count, "every endpoint records a latency series")
}

func TestResolveUsesDefaultLanguage(t *testing.T) {
	c := newTestComponent(t)

	display, tier := c.resolve(label.Entity{
		ID:     "https://example.org/ns#X",
		Labels: map[string]string{"en": "English Label", "de": "Deutsches Label"},
	}, "")

	assert.Equal(t, "English Label", display)
	assert.Equal(t, label.TierPreferred, tier)
}
