package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
)

// SummaryOptions holds options for the summary command.
type SummaryOptions struct {
	Locations []string
	TopN      int
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(getConfig ConfigFn, getLogger LoggerFn) *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dataset KPIs and per-column statistics",
		Long: `Run the dashboard pipeline once in the terminal: load the dataset,
apply the location filter, and print KPIs, summary statistics, and the
most frequent locations.`,
		Example: `  # Whole dataset
  zest summary

  # Restricted to two locations, as JSON
  zest summary --location Indiranagar --location BTM -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, getConfig, getLogger, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Locations, "location", nil, "Restrict to a location (repeatable; none means all)")
	cmd.Flags().IntVar(&opts.TopN, "top", analytics.TopLocationCount, "How many top locations to list")

	return cmd
}

// summaryReport is the JSON shape of the summary output.
type summaryReport struct {
	KPIs         charts.KPIs                       `json:"kpis"`
	Rows         int                               `json:"rows"`
	Columns      []dataset.Column                  `json:"columns"`
	Numeric      map[string]analytics.Summary      `json:"numeric"`
	TopLocations []analytics.ValueCount            `json:"topLocations"`
	Categorical  map[string][]analytics.ValueCount `json:"categorical"`
}

func runSummary(cmd *cobra.Command, getConfig ConfigFn, getLogger LoggerFn, opts *SummaryOptions) error {
	cfg := getConfig(cmd.Context())
	logger := getLogger(cmd.Context())

	src := dataset.Source{
		ParquetPath: cfg.Dataset.ParquetPath,
		CSVPath:     cfg.Dataset.CSVPath,
	}
	ds, err := dataset.Load(cmd.Context(), src, logger)
	if err != nil {
		return err
	}

	view := analytics.Filter(ds, opts.Locations)
	report := buildReport(view, ds, opts.TopN)

	if cfg.Output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderReport(cmd.OutOrStdout(), report)
	return nil
}

func buildReport(view analytics.View, ds *dataset.Dataset, topN int) summaryReport {
	report := summaryReport{
		KPIs:         charts.BuildKPIs(view),
		Rows:         view.Len(),
		Columns:      ds.Columns(),
		Numeric:      make(map[string]analytics.Summary),
		Categorical:  make(map[string][]analytics.ValueCount),
		TopLocations: analytics.TopN(view, dataset.ColLocation, topN),
	}

	for _, col := range ds.Columns() {
		if col.Kind == dataset.KindCategorical {
			report.Categorical[col.Name] = analytics.ValueCounts(view, col.Name)
			continue
		}
		if summary, err := analytics.Describe(view, col.Name); err == nil {
			report.Numeric[col.Name] = summary
		}
	}
	return report
}

func renderReport(w io.Writer, report summaryReport) {
	_, _ = fmt.Fprintf(w, "Rows: %d\n\n", report.Rows)

	kpis := table.NewWriter()
	kpis.SetOutputMirror(w)
	kpis.SetStyle(table.StyleLight)
	kpis.AppendHeader(table.Row{"KPI", "Value"})
	kpis.AppendRows([]table.Row{
		{"Total Restaurants", report.KPIs.TotalRestaurants},
		{"Avg Rating", report.KPIs.AvgRating},
		{"Avg Cost (2 People)", report.KPIs.AvgCost},
		{"Online Delivery", report.KPIs.OnlineOrders},
	})
	kpis.Render()

	if len(report.Numeric) > 0 {
		_, _ = fmt.Fprintln(w)
		stats := table.NewWriter()
		stats.SetOutputMirror(w)
		stats.SetStyle(table.StyleLight)
		stats.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
		for _, col := range report.Columns {
			s, ok := report.Numeric[col.Name]
			if !ok {
				continue
			}
			stats.AppendRow(table.Row{
				col.Name, s.Count,
				fmt.Sprintf("%.2f", s.Mean), fmt.Sprintf("%.2f", s.Std),
				fmt.Sprintf("%.2f", s.Min), fmt.Sprintf("%.2f", s.Q1),
				fmt.Sprintf("%.2f", s.Median), fmt.Sprintf("%.2f", s.Q3),
				fmt.Sprintf("%.2f", s.Max),
			})
		}
		stats.Render()
	}

	if len(report.TopLocations) > 0 {
		_, _ = fmt.Fprintln(w)
		top := table.NewWriter()
		top.SetOutputMirror(w)
		top.SetStyle(table.StyleLight)
		top.AppendHeader(table.Row{"Location", "Restaurants"})
		for _, vc := range report.TopLocations {
			top.AppendRow(table.Row{vc.Value, vc.Count})
		}
		top.Render()
	}
}
