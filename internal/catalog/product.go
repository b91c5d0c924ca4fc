package catalog

import (
	"maps"
	"slices"
	"strings"
)

type Category string

const (
	CategoryPrecision  Category = "precision"
	CategoryMetal      Category = "metal"
	CategoryCustom     Category = "custom"
	CategoryAutomotive Category = "automotive"
	CategoryAerospace  Category = "aerospace"

	// CategoryAll selects every category.
	CategoryAll Category = "all"
)

var categoryLabels = map[Category]string{
	CategoryAll:        "All Products",
	CategoryPrecision:  "Precision Parts",
	CategoryMetal:      "Metal Fabrication",
	CategoryCustom:     "Custom Manufacturing",
	CategoryAutomotive: "Automotive Components",
	CategoryAerospace:  "Aerospace Parts",
}

// Categories returns the known product categories in display order, without CategoryAll.
func Categories() []Category {
	return []Category{CategoryPrecision, CategoryMetal, CategoryCustom, CategoryAutomotive, CategoryAerospace}
}

func (c Category) Label() string {
	if l, ok := categoryLabels[Category(strings.ToLower(string(c)))]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok && c != CategoryAll
}

func (c Category) IsAll() bool {
	return strings.EqualFold(string(c), string(CategoryAll))
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       Category          `json:"category"`
	Materials      []string          `json:"materials"`
	Applications   []string          `json:"applications"`
	Image          string            `json:"image,omitempty"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
}

// Clone returns a deep copy so callers can never reach the store's backing arrays.
func (p Product) Clone() Product {
	p.Materials = slices.Clone(p.Materials)
	p.Applications = slices.Clone(p.Applications)
	p.Features = slices.Clone(p.Features)
	p.Specifications = maps.Clone(p.Specifications)
	return p
}

func cloneAll(in []Product) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
