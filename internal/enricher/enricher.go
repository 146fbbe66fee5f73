// Package enricher derives structured attributes from free-form supplier
// item texts. Each attribute is an independent stateless strategy in a
// registry; adding an attribute means registering one more strategy.
package enricher

import (
	"strings"

	"github.com/pricegrid/catalog-linker/internal/platform/models"
)

// Strategy extracts one attribute value from text. It returns false when
// the attribute is absent or ambiguous - ambiguous matches are discarded,
// never guessed.
type Strategy func(text string) (string, bool)

// Enricher extracts structured attributes from supplier item texts.
type Enricher struct {
	strategies map[string]Strategy
}

// NewEnricher returns an Enricher with the default strategy set.
func NewEnricher() *Enricher {
	e := &Enricher{
		strategies: map[string]Strategy{},
	}

	for name, strategy := range defaultStrategies() {
		e.Register(name, strategy)
	}

	return e
}

// Register adds a strategy under an attribute name, replacing any
// previous strategy with the same name.
func (e *Enricher) Register(name string, strategy Strategy) {
	e.strategies[name] = strategy
}

// Extract runs every registered strategy against text and returns the
// attributes found.
func (e *Enricher) Extract(text string) map[string]string {
	attrs := map[string]string{}
	for name, strategy := range e.strategies {
		if value, ok := strategy(text); ok {
			attrs[name] = value
		}
	}

	return attrs
}

// Enrich extracts attributes from the item's name and description and
// merges them into the item's attribute map. Existing values are never
// overwritten. Returns true if any attribute was added.
func (e *Enricher) Enrich(item *models.SupplierItem) bool {
	extracted := e.Extract(strings.TrimSpace(item.Name + " " + item.Description))
	if len(extracted) == 0 {
		return false
	}

	if item.Attributes == nil {
		item.Attributes = map[string]string{}
	}

	changed := false
	for name, value := range extracted {
		if _, exists := item.Attributes[name]; exists {
			continue
		}
		item.Attributes[name] = value
		changed = true
	}

	return changed
}
