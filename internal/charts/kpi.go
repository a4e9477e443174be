package charts

import (
	"fmt"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/dataset"
)

// KPIs are the headline scalars on the Home page. All fields are
// pre-formatted; the frontend never does arithmetic.
type KPIs struct {
	TotalRestaurants string `json:"totalRestaurants"`
	AvgRating        string `json:"avgRating"`
	AvgCost          string `json:"avgCost"`
	OnlineOrders     string `json:"onlineOrders"`
}

// BuildKPIs computes the Home page KPIs from the filtered view.
func BuildKPIs(v analytics.View) KPIs {
	if v.Len() == 0 {
		return KPIs{
			TotalRestaurants: "0",
			AvgRating:        "n/a",
			AvgCost:          "n/a",
			OnlineOrders:     "0",
		}
	}

	online := 0
	n := v.Len()
	for i := 0; i < n; i++ {
		if v.Categorical(dataset.ColOnlineOrder, i) == "Yes" {
			online++
		}
	}

	return KPIs{
		TotalRestaurants: formatInt(n),
		AvgRating:        fmt.Sprintf("%.2f/5", analytics.Mean(v.NumericValues(dataset.ColRate))),
		AvgCost:          fmt.Sprintf("%.0f INR", analytics.Mean(v.NumericValues(dataset.ColCost))),
		OnlineOrders:     formatInt(online),
	}
}

// formatInt renders an integer with comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}
