package dashboard

import (
	"fmt"
	"strings"

	"brentwatch/internal/analysis"
)

// Render formats a state snapshot as a terminal report: KPI tiles, the
// merged chart series, change points, and the filtered event table.
func Render(st State) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Brent Oil Dashboard | %s .. %s", st.Params.Start, st.Params.End))
	if st.Mode == ModeFallback {
		b.WriteString(" | FALLBACK SAMPLE (API unavailable)")
	}
	b.WriteString("\n\n")

	// KPI tiles
	if st.Metrics != nil {
		b.WriteString(fmt.Sprintf("Annualized volatility: %.2f%%\n", st.Metrics.AnnualizedVolatility*100))
		b.WriteString(fmt.Sprintf("Prices: %d | Events: %d\n", st.Metrics.Counts.Prices, st.Metrics.Counts.Events))
	}
	if len(st.ChangePoints) > 0 {
		b.WriteString(fmt.Sprintf("Avg change-point move: %.2f%% (%d change points)\n",
			analysis.AvgAbsChange(st.ChangePoints), len(st.ChangePoints)))
	}
	b.WriteString("\n")

	// Merged series
	merged := st.Merged()
	b.WriteString(fmt.Sprintf("Chart series (%d rows):\n", len(merged)))
	b.WriteString("  date        price    smooth   forecast\n")
	for _, row := range merged {
		b.WriteString(fmt.Sprintf("  %s  %7s  %7s  %7s\n",
			row.Date, cell(row.Price), cell(row.PriceSmooth), cell(row.Forecast)))
	}
	b.WriteString("\n")

	if hl := st.Highlight(); hl != nil {
		b.WriteString(fmt.Sprintf("Highlighted window: %s .. %s\n\n", hl.Start, hl.End))
	}

	// Change point annotations
	for _, cp := range st.ChangePoints {
		b.WriteString(fmt.Sprintf("Change point %s: %+.2f%%", cp.Date, cp.ChangeMagnitudePercent))
		if cp.AssociatedEvents != "" {
			b.WriteString(" (" + cp.AssociatedEvents + ")")
		}
		b.WriteString("\n")
	}
	if len(st.ChangePoints) > 0 {
		b.WriteString("\n")
	}

	// Event table
	events := st.VisibleEvents()
	b.WriteString(fmt.Sprintf("Events (%d shown", len(events)))
	if types := st.EventTypes(); len(types) > 0 {
		b.WriteString("; types: " + strings.Join(types, ", "))
	}
	b.WriteString("):\n")
	for _, e := range events {
		b.WriteString(fmt.Sprintf("  %s  [%s]  %s\n", e.Date, e.EventType, e.Title))
	}
	b.WriteString("\n")

	// Per-event impact tiles
	if st.Metrics != nil && len(st.Metrics.EventImpacts) > 0 {
		b.WriteString(fmt.Sprintf("Event impacts (±%d days):\n", st.Params.EventWindow))
		for _, imp := range st.Metrics.EventImpacts {
			avg := "n/a"
			if imp.AvgWindowPrice != nil {
				avg = fmt.Sprintf("%.2f", *imp.AvgWindowPrice)
			}
			delta := "n/a"
			if imp.EventDelta != nil {
				delta = fmt.Sprintf("%+.2f%%", *imp.EventDelta*100)
			}
			b.WriteString(fmt.Sprintf("  %s  %-30s  avg %s  delta %s\n", imp.Date, imp.Title, avg, delta))
		}
	}

	return b.String()
}

func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
