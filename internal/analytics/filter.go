package analytics

import "github.com/zest-labs/zest/internal/dataset"

// Filter restricts the dataset to rows whose location is in the selection.
// An empty selection means "all locations", not "no rows"; this
// fallback-to-all policy is deliberate and keeps an untouched sidebar
// showing the full dataset.
func Filter(ds *dataset.Dataset, locations []string) View {
	if len(locations) == 0 {
		return NewView(ds)
	}

	allowed := make(map[string]bool, len(locations))
	for _, loc := range locations {
		allowed[loc] = true
	}

	idx := make([]int, 0, ds.Len())
	for i, loc := range ds.Locations {
		if allowed[loc] {
			idx = append(idx, i)
		}
	}
	return newSubView(ds, idx)
}
