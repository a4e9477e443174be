package analytics

import (
	"sort"

	"github.com/zest-labs/zest/internal/dataset"
)

// TopLocationCount limits location-oriented charts to the busiest areas.
const TopLocationCount = 10

// GroupMean is the mean cost-for-two of one (location, restaurant type) cell.
type GroupMean struct {
	Location string  `json:"location"`
	RestType string  `json:"rest_type"`
	MeanCost float64 `json:"mean_cost"`
	Count    int     `json:"count"`
}

// GroupMeanCost aggregates mean cost per (location, restaurant type) and
// then keeps only cells whose location is among the view's TopLocationCount
// most frequent locations. The top-location cut is computed from the view
// itself, independent of the grouping. Pairs with no rows simply do not
// appear; an empty view yields an empty table.
func GroupMeanCost(v View) []GroupMean {
	type cell struct {
		sum   float64
		count int
	}

	type key struct{ location, restType string }
	cells := make(map[key]*cell)

	n := v.Len()
	for i := 0; i < n; i++ {
		k := key{
			location: v.Categorical(dataset.ColLocation, i),
			restType: v.Categorical(dataset.ColRestType, i),
		}
		c := cells[k]
		if c == nil {
			c = &cell{}
			cells[k] = c
		}
		c.sum += v.Numeric(dataset.ColCost, i)
		c.count++
	}

	topLocations := make(map[string]bool, TopLocationCount)
	for _, vc := range TopN(v, dataset.ColLocation, TopLocationCount) {
		topLocations[vc.Value] = true
	}

	out := make([]GroupMean, 0, len(cells))
	for k, c := range cells {
		if !topLocations[k.location] {
			continue
		}
		out = append(out, GroupMean{
			Location: k.location,
			RestType: k.restType,
			MeanCost: c.sum / float64(c.count),
			Count:    c.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].RestType < out[j].RestType
	})
	return out
}
