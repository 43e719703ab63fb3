package taxonomy

import (
	"fmt"
	"strings"

	"github.com/cognicore/econgraph/pkg/econet/internalerr"
)

// Category is one macro-economic concept with its weighted term lists.
// Main terms carry twice the score of related terms when matched.
type Category struct {
	ID           string
	MainTerms    []string
	RelatedTerms []string
	Weight       float64 // importance multiplier, (0, 1]
}

// Catalog is an ordered, read-only collection of categories. Insertion
// order is the canonical category order used for deterministic iteration
// everywhere downstream.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// NewCatalog validates and assembles a catalog. A malformed category
// (empty ID, duplicate ID, no main terms, weight outside (0,1]) fails
// construction so the engine can never run against a broken taxonomy.
func NewCatalog(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: catalog has no categories", internalerr.ErrInvalidConfig)
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if strings.TrimSpace(cat.ID) == "" {
			return nil, fmt.Errorf("%w: category with empty id", internalerr.ErrInvalidConfig)
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", internalerr.ErrInvalidConfig, cat.ID)
		}
		if len(cat.MainTerms) == 0 {
			return nil, fmt.Errorf("%w: category %q has no main terms", internalerr.ErrInvalidConfig, cat.ID)
		}
		if cat.Weight <= 0 || cat.Weight > 1 {
			return nil, fmt.Errorf("%w: category %q weight %v outside (0,1]", internalerr.ErrInvalidConfig, cat.ID, cat.Weight)
		}
		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	return c, nil
}

// Categories returns the categories in insertion order. Callers must not
// mutate the returned slice.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Get returns the category for the given id.
func (c *Catalog) Get(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Index returns the insertion position of the given category id, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// DisplayName maps a category id to its display string. Unknown ids get
// the id with underscores spaced and words capitalized.
func DisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
