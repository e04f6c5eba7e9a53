// Package report computes dashboard and reporting aggregates over ledger
// snapshots. Everything here is a pure function; nothing mutates ledger
// state.
package report

import (
	"slices"
	"strings"
	"time"

	"dokanbook/domain"
)

// DaySummary is the top-of-dashboard view for one business day. NetProfit is
// sales minus COGS minus the day's other expenses.
type DaySummary struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"totalSales"`
	TotalCOGS     float64 `json:"totalCogs"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	SaleCount     int     `json:"saleCount"`
	ItemsSold     int     `json:"itemsSold"`
}

func ForDay(date string, sales []domain.Sale, expenses []domain.Expense) DaySummary {
	summary := DaySummary{Date: date}
	for _, sale := range sales {
		if sale.Date != date {
			continue
		}
		summary.TotalSales += sale.TotalAmount
		summary.TotalCOGS += sale.TotalCost
		summary.SaleCount++
		for _, item := range sale.Items {
			summary.ItemsSold += item.Quantity
		}
	}
	for _, expense := range expenses {
		if expense.Date != date {
			continue
		}
		summary.TotalExpenses += expense.Amount
	}
	summary.NetProfit = summary.TotalSales - summary.TotalCOGS - summary.TotalExpenses
	return summary
}

// MonthlyPoint aggregates one calendar month. TotalCosts is COGS plus other
// expenses; Profit is Sales minus TotalCosts.
type MonthlyPoint struct {
	Month         string  `json:"month"`
	Sales         float64 `json:"sales"`
	COGS          float64 `json:"cogs"`
	OtherExpenses float64 `json:"otherExpenses"`
	TotalCosts    float64 `json:"totalCosts"`
	Profit        float64 `json:"profit"`
}

var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func monthKey(date string) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return t.Format("Jan"), true
}

// MonthlyBreakdown aggregates one year's sales and expenses per month, in
// calendar order. Months with no activity are omitted.
func MonthlyBreakdown(year string, sales []domain.Sale, expenses []domain.Expense) []MonthlyPoint {
	prefix := year + "-"
	buckets := make(map[string]*MonthlyPoint, 12)

	bucket := func(month string) *MonthlyPoint {
		if p, exists := buckets[month]; exists {
			return p
		}
		p := &MonthlyPoint{Month: month}
		buckets[month] = p
		return p
	}

	for _, sale := range sales {
		if !strings.HasPrefix(sale.Date, prefix) {
			continue
		}
		month, ok := monthKey(sale.Date)
		if !ok {
			continue
		}
		p := bucket(month)
		p.Sales += sale.TotalAmount
		p.COGS += sale.TotalCost
	}
	for _, expense := range expenses {
		if !strings.HasPrefix(expense.Date, prefix) {
			continue
		}
		month, ok := monthKey(expense.Date)
		if !ok {
			continue
		}
		bucket(month).OtherExpenses += expense.Amount
	}

	points := make([]MonthlyPoint, 0, len(buckets))
	for _, month := range monthOrder {
		p, exists := buckets[month]
		if !exists {
			continue
		}
		p.TotalCosts = p.COGS + p.OtherExpenses
		p.Profit = p.Sales - p.TotalCosts
		points = append(points, *p)
	}
	return points
}

// DailyPoint aggregates one day of a month. Costs is COGS plus other
// expenses.
type DailyPoint struct {
	Day    int     `json:"day"`
	Sales  float64 `json:"sales"`
	Costs  float64 `json:"costs"`
	Profit float64 `json:"profit"`
}

// DailySeries aggregates one month day by day. Days with no activity are
// omitted.
func DailySeries(year int, month time.Month, sales []domain.Sale, expenses []domain.Expense) []DailyPoint {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	points := make([]DailyPoint, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

		var point DailyPoint
		point.Day = day
		var cogs float64
		for _, sale := range sales {
			if sale.Date != date {
				continue
			}
			point.Sales += sale.TotalAmount
			cogs += sale.TotalCost
		}
		var other float64
		for _, expense := range expenses {
			if expense.Date != date {
				continue
			}
			other += expense.Amount
		}
		point.Costs = cogs + other
		point.Profit = point.Sales - point.Costs

		if point.Sales != 0 || point.Costs != 0 {
			points = append(points, point)
		}
	}
	return points
}

type CategoryTotal struct {
	Type   domain.ExpenseType `json:"type"`
	Amount float64            `json:"amount"`
}

// ExpenseBreakdown totals expenses per type, in enum order, dropping empty
// categories.
func ExpenseBreakdown(expenses []domain.Expense) []CategoryTotal {
	totals := make(map[domain.ExpenseType]float64, 4)
	for _, expense := range expenses {
		totals[expense.Type] += expense.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, t := range domain.ExpenseTypes() {
		if totals[t] > 0 {
			out = append(out, CategoryTotal{Type: t, Amount: totals[t]})
		}
	}
	return out
}

// Years lists every year that has sales or expense activity, newest first.
func Years(sales []domain.Sale, expenses []domain.Expense) []string {
	seen := make(map[string]bool)
	for _, sale := range sales {
		if len(sale.Date) >= 4 {
			seen[sale.Date[:4]] = true
		}
	}
	for _, expense := range expenses {
		if len(expense.Date) >= 4 {
			seen[expense.Date[:4]] = true
		}
	}

	years := make([]string, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// StockOverview counts the catalog and the products running low.
type StockOverview struct {
	ProductCount  int `json:"productCount"`
	LowStockCount int `json:"lowStockCount"`
}

const DefaultLowStockThreshold = 5

func Stock(products []domain.Product, lowStockThreshold int) StockOverview {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	overview := StockOverview{ProductCount: len(products)}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			overview.LowStockCount++
		}
	}
	return overview
}
