package service

import (
	"fmt"
	"strings"
)

// DailySalesReport renders the ledger as a two-column text table, one row
// per sale date. Dates appear in order of their first sale.
func (s *System) DailySalesReport() string {
	if len(s.Sales) == 0 {
		return "No sales recorded yet."
	}

	dates := []string{}
	totals := map[string]float64{}
	for _, sale := range s.Sales {
		if _, seen := totals[sale.Date]; !seen {
			dates = append(dates, sale.Date)
		}
		totals[sale.Date] += sale.Amount
	}

	var report strings.Builder
	report.WriteString("Date       | Amount\n")
	report.WriteString("----------------------\n")
	for _, date := range dates {
		fmt.Fprintf(&report, "%s | %.1f AED\n", date, totals[date])
	}
	return report.String()
}
