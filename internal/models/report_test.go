package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryReportAddMonth(t *testing.T) {
	var report SummaryReport
	report.AddMonth(1, 1000, 400)
	report.AddMonth(2, 0, 250)

	require.Len(t, report.Months, 2)

	assert.Equal(t, 1, report.Months[0].Month)
	assert.InDelta(t, 600, report.Months[0].Profit, 1e-9)
	assert.InDelta(t, -250, report.Months[1].Profit, 1e-9)

	assert.InDelta(t, 1000, report.Revenue, 1e-9)
	assert.InDelta(t, 650, report.Expense, 1e-9)
	assert.InDelta(t, 350, report.Profit, 1e-9)
}

func TestSummaryReportAddYear(t *testing.T) {
	var report SummaryReport
	report.AddYear(2024, 5000, 2000)
	report.AddYear(2025, 7000, 6500)

	require.Len(t, report.Years, 2)

	assert.Equal(t, 2024, report.Years[0].Year)
	assert.InDelta(t, 3000, report.Years[0].Profit, 1e-9)
	assert.InDelta(t, 500, report.Years[1].Profit, 1e-9)

	assert.InDelta(t, 12000, report.Revenue, 1e-9)
	assert.InDelta(t, 8500, report.Expense, 1e-9)
	assert.InDelta(t, 3500, report.Profit, 1e-9)
}
