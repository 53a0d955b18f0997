package labelapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/ontolabel/export"
	"github.com/c360studio/ontolabel/label"
	"github.com/c360studio/ontolabel/search"
)

// maxRequestBodySize limits POST body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// RegisterHTTPHandlers registers all label-api HTTP handlers under the
// given prefix. The prefix should be the path segment without a trailing
// slash (e.g. "api/labels"). Handlers are registered as:
//
//	GET  <prefix>/resolve
//	POST <prefix>/resolve
//	GET  <prefix>/languages
//	GET  <prefix>/classify
//	GET  <prefix>/export
//	GET  <prefix>/health
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	// Normalise: ensure leading slash and trailing slash.
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix+"resolve", c.handleResolve)
	mux.HandleFunc(prefix+"languages", c.handleLanguages)
	mux.HandleFunc(prefix+"classify", c.handleClassify)
	mux.HandleFunc(prefix+"export", c.handleExport)
	mux.HandleFunc(prefix+"health", c.handleHealth)
}

// ----------------------------------------------------------------------------
// GET/POST /api/labels/resolve
// ----------------------------------------------------------------------------

// ResolvedLabel is one resolution result.
type ResolvedLabel struct {
	// ID is the entity identifier the label belongs to.
	ID string `json:"id"`

	// Label is the resolved display string.
	Label string `json:"label"`

	// Tier names the fallback tier that produced the label.
	Tier string `json:"tier"`
}

// BatchResolveRequest is the request body for POST resolve.
type BatchResolveRequest struct {
	// Entities are resolved as sent; they need not exist in the catalog.
	Entities []label.Entity `json:"entities"`

	// Language is the preferred language for the whole batch.
	Language string `json:"language"`
}

// handleResolve resolves labels. GET looks an entity up in the catalog
// by IRI; POST resolves the entities carried in the body.
func (c *Component) handleResolve(w http.ResponseWriter, r *http.Request) {
	endpoint := "resolve"
	start := time.Now()
	defer func() { c.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	switch r.Method {
	case http.MethodGet:
		c.handleResolveGet(w, r, endpoint)
	case http.MethodPost:
		c.handleResolvePost(w, r, endpoint)
	default:
		c.httpError(w, endpoint, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *Component) handleResolveGet(w http.ResponseWriter, r *http.Request, endpoint string) {
	iri := r.URL.Query().Get("iri")
	if iri == "" {
		c.httpError(w, endpoint, "iri query parameter required", http.StatusBadRequest)
		return
	}
	lang := r.URL.Query().Get("lang")

	entity, ok := c.catalog.Entity(iri)
	if !ok {
		// Unknown IRIs still resolve: the chain bottoms out at the
		// local name, which is what listings show for unlabeled concepts.
		entity = label.Entity{ID: iri}
	}

	display, tier := c.resolve(entity, lang)
	c.writeJSON(w, endpoint, http.StatusOK, ResolvedLabel{ID: iri, Label: display, Tier: string(tier)})
}

func (c *Component) handleResolvePost(w http.ResponseWriter, r *http.Request, endpoint string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req BatchResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.httpError(w, endpoint, "Invalid request body", http.StatusBadRequest)
		return
	}

	results := make([]ResolvedLabel, 0, len(req.Entities))
	for _, e := range req.Entities {
		display, tier := c.resolve(e, req.Language)
		results = append(results, ResolvedLabel{ID: e.ID, Label: display, Tier: string(tier)})
	}

	c.writeJSON(w, endpoint, http.StatusOK, map[string]any{"results": results})
}

// ----------------------------------------------------------------------------
// GET /api/labels/languages
// ----------------------------------------------------------------------------

// LanguageOption is one entry for a language-selector UI.
type LanguageOption struct {
	// Code is the language code ("en", "de", …).
	Code string `json:"code"`

	// Name is the native display name for the code.
	Name string `json:"name"`
}

// handleLanguages lists the languages present in the catalog snapshot,
// English first, with native display names.
func (c *Component) handleLanguages(w http.ResponseWriter, r *http.Request) {
	endpoint := "languages"
	start := time.Now()
	defer func() { c.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if r.Method != http.MethodGet {
		c.httpError(w, endpoint, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	codes := label.AvailableLanguages(c.catalog.Entities())
	options := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, LanguageOption{Code: code, Name: label.DisplayName(code)})
	}

	c.writeJSON(w, endpoint, http.StatusOK, map[string]any{"languages": options})
}

// ----------------------------------------------------------------------------
// GET /api/labels/classify
// ----------------------------------------------------------------------------

// ClassifiedResult is the classification of one search result.
type ClassifiedResult struct {
	// Category is the presentation category for the result.
	Category string `json:"category"`

	// TypeLabel is the display label for the result type, for listings
	// that show the type next to the icon.
	TypeLabel string `json:"type_label,omitempty"`
}

// handleClassify maps a search result's category hint and type token to
// a presentation category (?hint=&type=).
func (c *Component) handleClassify(w http.ResponseWriter, r *http.Request) {
	endpoint := "classify"
	start := time.Now()
	defer func() { c.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if r.Method != http.MethodGet {
		c.httpError(w, endpoint, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	hint := r.URL.Query().Get("hint")
	resultType := r.URL.Query().Get("type")

	result := ClassifiedResult{
		Category: search.Classify(hint, resultType).String(),
	}
	if resultType != "" {
		result.TypeLabel = label.FormatFallback(resultType)
	}

	c.writeJSON(w, endpoint, http.StatusOK, result)
}

// ----------------------------------------------------------------------------
// GET /api/labels/export
// ----------------------------------------------------------------------------

// handleExport serializes the catalog's label triples to an RDF format
// (?format=turtle|ntriples, default ntriples).
func (c *Component) handleExport(w http.ResponseWriter, r *http.Request) {
	endpoint := "export"
	start := time.Now()
	defer func() { c.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if r.Method != http.MethodGet {
		c.httpError(w, endpoint, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatNTriples
	}
	info, ok := export.FormatRegistry[format]
	if !ok {
		c.httpError(w, endpoint, "Unsupported format", http.StatusBadRequest)
		return
	}

	out, err := export.Export(export.LabelTriples(c.catalog.Triples()), format)
	if err != nil {
		c.httpError(w, endpoint, "Export failed", http.StatusInternalServerError)
		return
	}

	c.metrics.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(http.StatusOK)).Inc()
	w.Header().Set("Content-Type", info.MIMEType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		c.logger.Warn("Failed to write export", "endpoint", endpoint, "error", err)
	}
}

// ----------------------------------------------------------------------------
// GET /api/labels/health
// ----------------------------------------------------------------------------

// HealthStatus is the health payload.
type HealthStatus struct {
	Status        string `json:"status"`
	Entities      int    `json:"entities"`
	OverrideRules int    `json:"override_rules"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (c *Component) handleHealth(w http.ResponseWriter, r *http.Request) {
	endpoint := "health"
	start := time.Now()
	defer func() { c.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if r.Method != http.MethodGet {
		c.httpError(w, endpoint, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := HealthStatus{
		Status:   "ok",
		Entities: c.catalog.Len(),
	}
	if c.overrides != nil {
		status.OverrideRules = c.overrides.Len()
	}
	if c.state.Load() == stateRunning {
		status.UptimeSeconds = int64(time.Since(c.startTime).Seconds())
	} else {
		status.Status = "stopped"
	}

	c.writeJSON(w, endpoint, http.StatusOK, status)
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func (c *Component) writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	c.metrics.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.Warn("Failed to encode response", "endpoint", endpoint, "error", err)
	}
}

func (c *Component) httpError(w http.ResponseWriter, endpoint, msg string, status int) {
	c.metrics.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	http.Error(w, msg, status)
}
