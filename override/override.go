// Package override applies operator-maintained label overrides before
// resolution. Overrides live in a YAML file of glob rules keyed by
// entity IRI pattern, so a deployment can correct or localize labels
// without touching the knowledge graph.
package override

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontolabel/label"
)

// Rule overrides labels for every entity whose ID matches Pattern.
type Rule struct {
	// Pattern is a glob matched against the full entity ID, e.g.
	// "https://example.org/ontology/**" or "**#Customer". IRIs are not
	// filesystem paths: '/' carries no separator meaning, so '*' and
	// '**' both match any run of characters, '/' and '#' included.
	Pattern string `yaml:"pattern"`

	// Labels maps language codes to replacement display strings. The
	// empty-string key overrides the untagged label.
	Labels map[string]string `yaml:"labels"`
}

// file is the on-disk document shape.
type file struct {
	Overrides []Rule `yaml:"overrides"`
}

// Store holds the active override rules. A zero-value Store is usable
// and applies no overrides. All methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	rules  []Rule
	path   string
	logger *slog.Logger
}

// NewStore creates a store that loads rules from the YAML file at path.
// A missing file is not an error: the store starts empty and picks the
// file up on Reload or via Watch.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger}

	if err := s.Reload(); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No override file yet", slog.String("path", path))
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

// Reload re-reads the override file and swaps in the new rule set.
// On any error the previous rules stay active.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse override file %s: %w", s.path, err)
	}

	for _, r := range doc.Overrides {
		if !doublestar.ValidatePattern(maskSeparators(r.Pattern)) {
			return fmt.Errorf("override file %s: invalid pattern %q", s.path, r.Pattern)
		}
	}

	s.mu.Lock()
	s.rules = doc.Overrides
	s.mu.Unlock()

	s.logger.Debug("Loaded label overrides",
		slog.String("path", s.path),
		slog.Int("rules", len(doc.Overrides)))
	return nil
}

// Len returns the number of active rules.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Apply returns a copy of e with matching override labels merged in.
// Later rules win over earlier ones, and overrides win over the labels
// the entity arrived with. The input entity is never mutated.
func (s *Store) Apply(e label.Entity) label.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var merged map[string]string
	for _, r := range s.rules {
		ok, err := matchIRI(r.Pattern, e.ID)
		if err != nil || !ok {
			continue
		}
		if merged == nil {
			merged = make(map[string]string, len(e.Labels)+len(r.Labels))
			for k, v := range e.Labels {
				merged[k] = v
			}
		}
		for k, v := range r.Labels {
			merged[k] = v
		}
	}

	if merged == nil {
		return e
	}
	e.Labels = merged
	return e
}

// sepMask stands in for '/' during matching. doublestar treats '/' as a
// path separator that plain stars never cross; hiding it lets a glob
// like "**#Customer" match "https://example.org/terms#Customer".
const sepMask = "\x00"

func maskSeparators(s string) string {
	return strings.ReplaceAll(s, "/", sepMask)
}

// matchIRI matches pattern against id with '/' stripped of its
// separator role on both sides. Literal slashes still line up because
// both strings are masked the same way.
func matchIRI(pattern, id string) (bool, error) {
	return doublestar.Match(maskSeparators(pattern), maskSeparators(id))
}
