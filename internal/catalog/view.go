package catalog

import "strings"

// ViewState is the browsing state of the products page. It is plain data so it can be
// round-tripped through query strings or JSON.
type ViewState struct {
	Term     string   `json:"term"`
	Category Category `json:"category"`
	SortKey  SortKey  `json:"sortKey"`

	Loading bool   `json:"loading,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultViewState is the initial state and the target of "clear filters".
func DefaultViewState() ViewState {
	return ViewState{Category: CategoryAll, SortKey: SortByName}
}

func (v ViewState) Query() Query {
	return Query{Term: v.Term, Category: v.Category, SortKey: v.SortKey}
}

// Filtered reports whether the term or category narrows the catalog.
func (v ViewState) Filtered() bool {
	return v.Term != "" || !(v.Category == "" || v.Category.IsAll())
}

type FilterKind string

const (
	FilterSearch   FilterKind = "search"
	FilterCategory FilterKind = "category"
	FilterSort     FilterKind = "sort"
)

type Filter struct {
	Kind  FilterKind `json:"kind"`
	Label string     `json:"label"`
}

func (v ViewState) ActiveFilters() []Filter {
	out := make([]Filter, 0, 3)
	if v.Term != "" {
		out = append(out, Filter{Kind: FilterSearch, Label: `Search: "` + v.Term + `"`})
	}
	if !(v.Category == "" || v.Category.IsAll()) {
		out = append(out, Filter{Kind: FilterCategory, Label: "Category: " + v.Category.Label()})
	}
	if v.SortKey != "" && v.SortKey != SortByName {
		out = append(out, Filter{Kind: FilterSort, Label: "Sort: " + v.SortKey.Label()})
	}
	return out
}

type EmptyReason string

const (
	EmptyNoMatch      EmptyReason = "no-match"
	EmptyCatalogEmpty EmptyReason = "catalog-empty"
)

type View struct {
	State         ViewState   `json:"state"`
	Products      []Product   `json:"products"`
	Shown         int         `json:"shown"`
	Total         int         `json:"total"`
	ActiveFilters []Filter    `json:"activeFilters"`
	EmptyReason   EmptyReason `json:"emptyReason,omitempty"`
}

// Render applies the state to the full collection.
func (v ViewState) Render(all []Product) View {
	ps := Apply(all, v.Query())

	view := View{
		State:         v,
		Products:      ps,
		Shown:         len(ps),
		Total:         len(all),
		ActiveFilters: v.ActiveFilters(),
	}
	if len(ps) == 0 {
		if v.Filtered() {
			view.EmptyReason = EmptyNoMatch
		} else {
			view.EmptyReason = EmptyCatalogEmpty
		}
	}
	return view
}

// ViewStateFromParams builds a state from raw user input, falling back to defaults
// for missing values.
func ViewStateFromParams(term, category, sort string) ViewState {
	v := DefaultViewState()
	v.Term = strings.TrimSpace(term)
	if c := strings.TrimSpace(category); c != "" {
		v.Category = Category(strings.ToLower(c))
	}
	v.SortKey = ParseSortKey(sort)
	return v
}
