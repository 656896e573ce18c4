package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Category is a quiz topic such as "ciencia".
type Category string

// Mixed is the synthetic category that expands to every catalog entry.
const Mixed Category = "mixto"

const (
	Programming Category = "programación"
	History     Category = "historia"
	Science     Category = "ciencia"
	Geography   Category = "geografía"
	Art         Category = "arte"
	Sports      Category = "deportes"
	Technology  Category = "tecnología"
	Music       Category = "música"
	Cinema      Category = "cine"
	Literature  Category = "literatura"
)

func (c Category) String() string {
	return string(c)
}

// CategoryInfo pairs a category with its human description.
type CategoryInfo struct {
	Name        Category `json:"name"`
	Description string   `json:"description"`
}

// Catalog is the closed set of quiz categories, in display order.
type Catalog struct {
	entries          []CategoryInfo
	mixedDescription string
}

// NewCatalog builds a catalog from the configured entries. Blank and duplicate names are skipped.
func NewCatalog(entries []CategoryInfo, mixedDescription string) *Catalog {
	c := &Catalog{mixedDescription: mixedDescription}
	seen := make(map[Category]struct{}, len(entries))
	for _, e := range entries {
		name := Category(strings.TrimSpace(string(e.Name)))
		if name == "" || name == Mixed {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		c.entries = append(c.entries, CategoryInfo{Name: name, Description: e.Description})
	}
	return c
}

// Categories returns every concrete category in catalog order.
func (c *Catalog) Categories() []Category {
	return lo.Map(c.entries, func(e CategoryInfo, _ int) Category { return e.Name })
}

// Describe returns the catalog entries, prefixed with the mixed pseudo-category.
func (c *Catalog) Describe() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(c.entries)+1)
	out = append(out, CategoryInfo{Name: Mixed, Description: c.mixedDescription})
	return append(out, c.entries...)
}

// Contains reports whether name is a concrete catalog category.
func (c *Catalog) Contains(name Category) bool {
	return lo.ContainsBy(c.entries, func(e CategoryInfo) bool { return e.Name == name })
}

// Parse resolves user input to a category. "mixed" is accepted as an alias of Mixed.
func (c *Catalog) Parse(raw string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "", string(Mixed), "mixed":
		return Mixed, nil
	}
	if cat := Category(name); c.Contains(cat) {
		return cat, nil
	}
	return "", NewInvalidCategoryError(raw)
}

// Expand turns a category selection into the list of concrete categories it covers.
func (c *Catalog) Expand(cat Category) []Category {
	if cat == Mixed || cat == "" {
		return c.Categories()
	}
	return []Category{cat}
}
