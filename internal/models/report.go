package models

// DeviceReportRow is one device's line in the per-device report: how often it
// went out and what it earned and cost over the reporting window.
type DeviceReportRow struct {
	DeviceID      int     `json:"device_id"`
	DeviceName    string  `json:"device_name"`
	TypeName      string  `json:"type_name"`
	RentalCount   int     `json:"rental_count"`
	RentalRevenue float64 `json:"rental_revenue"`
	OtherRevenue  float64 `json:"other_revenue"`
	Expense       float64 `json:"expense"`
	Profit        float64 `json:"profit"`
}

// MonthlySummary is one month's ledger totals
type MonthlySummary struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// YearSummary is one calendar year's ledger totals
type YearSummary struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// SummaryReport carries ledger totals for a reporting window. Months is
// filled for a single-year report, Years for the all-years report; a custom
// range fills only the totals.
type SummaryReport struct {
	Year    *int             `json:"year,omitempty"`
	Months  []MonthlySummary `json:"months,omitempty"`
	Years   []YearSummary    `json:"years,omitempty"`
	Revenue float64          `json:"revenue"`
	Expense float64          `json:"expense"`
	Profit  float64          `json:"profit"`
}

// AddMonth appends one month's totals and rolls them into the report totals
func (r *SummaryReport) AddMonth(month int, revenue, expense float64) {
	r.Months = append(r.Months, MonthlySummary{
		Month:   month,
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue - expense,
	})
	r.addTotals(revenue, expense)
}

// AddYear appends one year's totals and rolls them into the report totals
func (r *SummaryReport) AddYear(year int, revenue, expense float64) {
	r.Years = append(r.Years, YearSummary{
		Year:    year,
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue - expense,
	})
	r.addTotals(revenue, expense)
}

func (r *SummaryReport) addTotals(revenue, expense float64) {
	r.Revenue += revenue
	r.Expense += expense
	r.Profit = r.Revenue - r.Expense
}
