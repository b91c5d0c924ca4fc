package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByName          SortKey = "name"
	SortByCategory      SortKey = "category"
	SortByMaterialCount SortKey = "materialCount"
)

var sortLabels = map[SortKey]string{
	SortByName:          "Name (A-Z)",
	SortByCategory:      "Category",
	SortByMaterialCount: "Materials",
}

// ParseSortKey maps user input onto a SortKey. "materials" is the value the site's
// sort dropdown sends. Unrecognised input is returned as-is and sorts as identity.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName
	case "category":
		return SortByCategory
	case "materials", "materialcount", "material_count":
		return SortByMaterialCount
	}
	return SortKey(s)
}

func (k SortKey) Label() string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return string(k)
}

// Query selects and orders a view of the catalog.
type Query struct {
	Term     string   `json:"term"`
	Category Category `json:"category"`
	SortKey  SortKey  `json:"sortKey"`
}

// Apply filters products by q and returns them in a new slice.
// It never modifies products and never fails.
func Apply(products []Product, q Query) []Product {
	match := newTermMatcher(q.Term)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !match(p) {
			continue
		}
		if !inCategory(p, q.Category) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.SortKey)
	return out
}

func inCategory(p Product, c Category) bool {
	if c == "" || c.IsAll() {
		return true
	}
	return strings.EqualFold(string(p.Category), string(c))
}

// newTermMatcher returns a predicate matching a case-folded substring of the name,
// the description, a material or an application. An empty term matches everything.
func newTermMatcher(term string) func(Product) bool {
	if term == "" {
		return func(Product) bool { return true }
	}

	fold := cases.Fold()
	needle := fold.String(term)
	contains := func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}

	return func(p Product) bool {
		if contains(p.Name) || contains(p.Description) {
			return true
		}
		return slices.ContainsFunc(p.Materials, contains) ||
			slices.ContainsFunc(p.Applications, contains)
	}
}

func sortProducts(ps []Product, key SortKey) {
	switch key {
	case SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(ps, func(a, b Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByCategory:
		col := collate.New(language.English)
		slices.SortStableFunc(ps, func(a, b Product) int {
			return col.CompareString(string(a.Category), string(b.Category))
		})
	case SortByMaterialCount:
		slices.SortStableFunc(ps, func(a, b Product) int {
			return len(a.Materials) - len(b.Materials)
		})
	}
}
