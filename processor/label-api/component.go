// Package labelapi exposes label resolution over HTTP and NATS.
// It serves the catalog UI's display needs: resolving concept labels,
// listing available languages, and batch-resolving entities.
package labelapi

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/ontolabel/label"
	"github.com/c360studio/ontolabel/override"
)

// Config configures the label-api component.
type Config struct {
	// DefaultLanguage is used when a request does not carry a language.
	DefaultLanguage string

	// NATSURL enables the NATS responder when non-empty.
	NATSURL string

	// NATSSubject is the request subject served by the responder.
	NATSSubject string
}

// Component serves label resolution requests.
// Lifecycle states: 0=stopped, 1=starting, 2=running, 3=stopping.
type Component struct {
	name      string
	config    Config
	catalog   *Catalog
	overrides *override.Store
	metrics   *metrics
	logger    *slog.Logger

	state     atomic.Int32
	startTime time.Time
	cancel    context.CancelFunc

	nats *natsResponder
}

const (
	stateStopped  = 0
	stateStarting = 1
	stateRunning  = 2
	stateStopping = 3
)

// NewComponent creates a label-api component. The overrides store may be
// nil when no override file is configured.
func NewComponent(cfg Config, catalog *Catalog, overrides *override.Store, reg prometheus.Registerer, logger *slog.Logger) (*Component, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Component{
		name:      "label-api",
		config:    cfg,
		catalog:   catalog,
		overrides: overrides,
		metrics:   newMetrics(reg),
		logger:    logger,
	}, nil
}

// Start begins the component. When a NATS URL is configured the
// responder connects and subscribes; otherwise Start only flips the
// lifecycle state and the component serves HTTP alone.
func (c *Component) Start(ctx context.Context) error {
	if !c.state.CompareAndSwap(stateStopped, stateStarting) {
		return fmt.Errorf("component already running or starting")
	}

	defer func() {
		if c.state.Load() == stateStarting {
			c.state.Store(stateStopped)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	if c.config.NATSURL != "" {
		responder, err := newNATSResponder(c, c.config.NATSURL, c.config.NATSSubject, c.logger)
		if err != nil {
			cancel()
			return fmt.Errorf("start NATS responder: %w", err)
		}
		c.nats = responder
		go func() {
			<-runCtx.Done()
			responder.Close()
		}()
	}

	c.startTime = time.Now()
	c.state.Store(stateRunning)
	c.logger.Info("label-api started",
		"entities", c.catalog.Len(),
		"default_language", c.config.DefaultLanguage,
		"nats", c.config.NATSURL != "")
	return nil
}

// Stop shuts the component down.
func (c *Component) Stop() error {
	if !c.state.CompareAndSwap(stateRunning, stateStopping) {
		return fmt.Errorf("component not running")
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.state.Store(stateStopped)
	c.logger.Info("label-api stopped")
	return nil
}

// resolve applies overrides and resolves one entity, recording the
// fallback tier.
func (c *Component) resolve(e label.Entity, lang string) (string, label.Tier) {
	if lang == "" {
		lang = c.config.DefaultLanguage
	}
	if c.overrides != nil {
		e = c.overrides.Apply(e)
	}
	display, tier := label.ResolveTier(e, lang)
	c.metrics.resolutionsTotal.WithLabelValues(string(tier)).Inc()
	return display, tier
}
