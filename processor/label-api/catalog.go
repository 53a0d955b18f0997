package labelapi

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontolabel/graph"
	"github.com/c360studio/ontolabel/label"
)

// Catalog is an in-memory snapshot of labeled entities assembled from
// knowledge-graph triples. Reads are lock-free for callers; Replace
// swaps the whole snapshot atomically under a write lock.
type Catalog struct {
	mu       sync.RWMutex
	triples  []graph.Triple
	entities []label.Entity
	byID     map[string]label.Entity
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]label.Entity)}
}

// triplesFile is the YAML snapshot shape: a flat list of triples.
type triplesFile struct {
	Triples []graph.Triple `yaml:"triples"`
}

// LoadTriplesFile reads a YAML triple snapshot and replaces the catalog
// content with the entities assembled from it.
func (c *Catalog) LoadTriplesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read triples file: %w", err)
	}

	var doc triplesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse triples file %s: %w", path, err)
	}

	c.ReplaceTriples(doc.Triples)
	return nil
}

// ReplaceTriples swaps in a new triple snapshot and rebuilds the entity
// view from it.
func (c *Catalog) ReplaceTriples(triples []graph.Triple) {
	entities := graph.EntitiesFromTriples(triples)
	byID := make(map[string]label.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	c.mu.Lock()
	c.triples = triples
	c.entities = entities
	c.byID = byID
	c.mu.Unlock()
}

// Replace swaps in a new entity snapshot directly, dropping any triple
// snapshot.
func (c *Catalog) Replace(entities []label.Entity) {
	byID := make(map[string]label.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	c.mu.Lock()
	c.triples = nil
	c.entities = entities
	c.byID = byID
	c.mu.Unlock()
}

// Triples returns the current triple snapshot, or nil when the catalog
// was populated without one. The returned slice must be treated as
// read-only.
func (c *Catalog) Triples() []graph.Triple {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.triples
}

// Entity looks up one entity by ID.
func (c *Catalog) Entity(id string) (label.Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byID[id]
	return e, ok
}

// Entities returns the current snapshot. The returned slice must be
// treated as read-only.
func (c *Catalog) Entities() []label.Entity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entities
}

// Len returns the number of entities in the snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}
