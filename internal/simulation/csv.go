package simulation

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// WriteWeeksCSV writes one row per price-war week. Competitor prices
// follow as name/price column pairs in input order.
func WriteWeeksCSV(w io.Writer, weeks []WeekResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"week", "your_price", "market_share", "profit"}
	if len(weeks) > 0 {
		for i := range weeks[0].Competitors {
			n := strconv.Itoa(i + 1)
			header = append(header, "competitor_"+n, "competitor_"+n+"_price")
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, wk := range weeks {
		row := []string{
			strconv.Itoa(wk.Week),
			fmtMoney(wk.YourPrice),
			fmtFloat(wk.MarketShare),
			fmtMoney(wk.Profit),
		}
		for _, c := range wk.Competitors {
			row = append(row, c.Name, fmtMoney(c.Price))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDaysCSV writes one row per promotion day.
func WriteDaysCSV(w io.Writer, days []DayResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"day",
		"discounted_price",
		"demand_multiplier",
		"competitor_impact",
		"estimated_sales",
		"revenue",
		"profit",
		"new_customers",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			strconv.Itoa(d.Day),
			fmtMoney(d.DiscountedPrice),
			fmtFloat(d.DemandMultiplier),
			fmtFloat(d.CompetitorImpact),
			strconv.Itoa(d.EstimatedSales),
			fmtMoney(d.Revenue),
			fmtMoney(d.Profit),
			strconv.Itoa(d.NewCustomers),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLaunchCSV writes one row per candidate launch price. An unreachable
// break-even is left blank.
func WriteLaunchCSV(w io.Writer, scenarios []LaunchScenario) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"price",
		"attractiveness",
		"estimated_sales",
		"revenue",
		"profit",
		"market_share",
		"break_even_days",
		"competitor_response",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range scenarios {
		breakEven := ""
		if s.BreakEvenDays != nil {
			breakEven = strconv.Itoa(*s.BreakEvenDays)
		}
		row := []string{
			fmtMoney(s.Price),
			fmtFloat(s.Attractiveness),
			strconv.Itoa(s.EstimatedSales),
			fmtMoney(s.Revenue),
			fmtMoney(s.Profit),
			fmtFloat(s.MarketShare),
			breakEven,
			string(s.CompetitorResponse),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// fmtMoney rounds to cents.
func fmtMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
