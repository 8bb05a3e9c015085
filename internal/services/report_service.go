package services

import (
	"context"
	"log"
	"sort"
	"time"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type ReportService struct {
	Devices    *repositories.DeviceRepository
	Rentals    *repositories.RentalRepository
	Financials *repositories.FinancialRepository
}

func NewReportService(devices *repositories.DeviceRepository, rentals *repositories.RentalRepository, financials *repositories.FinancialRepository) *ReportService {
	return &ReportService{Devices: devices, Rentals: rentals, Financials: financials}
}

// DeviceReport builds the per-device earnings report, optionally limited to
// one calendar year. Rental-sourced revenue is split proportionally by listed
// per-day price; every other attached entry is split evenly across its
// devices. Rows come back busiest device first.
func (s *ReportService) DeviceReport(ctx context.Context, year *int) ([]models.DeviceReportRow, error) {
	devices, err := s.Devices.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.DeviceReportRow, 0, len(devices))
	for _, device := range devices {
		row := models.DeviceReportRow{
			DeviceID:   device.ID,
			DeviceName: device.DeviceName,
			TypeName:   device.TypeName,
		}

		rentals, err := s.Rentals.ListByDevice(ctx, device.ID, year)
		if err != nil {
			return nil, err
		}
		row.RentalCount = len(rentals)

		for _, rental := range rentals {
			share, err := s.rentalShare(ctx, device, rental)
			if err != nil {
				return nil, err
			}
			row.RentalRevenue += share
		}

		entries, err := s.Financials.ListAttachedByDevice(ctx, device.ID)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.SourceType == models.SourceTypeRental {
				continue // counted above, with the proportional split
			}
			if year != nil && entry.Date.Year() != *year {
				continue
			}
			share := EqualShare(entry.Amount, entry.DeviceCount)
			switch entry.EntryType {
			case models.EntryTypeRevenue:
				row.OtherRevenue += share
			case models.EntryTypeExpense:
				row.Expense += share
			}
		}

		row.Profit = row.RentalRevenue + row.OtherRevenue - row.Expense
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RentalCount != rows[j].RentalCount {
			return rows[i].RentalCount > rows[j].RentalCount
		}
		return rows[i].DeviceName < rows[j].DeviceName
	})
	return rows, nil
}

// rentalShare resolves one device's slice of one rental's revenue entry
func (s *ReportService) rentalShare(ctx context.Context, device *models.Device, rental *models.Rental) (float64, error) {
	entry, err := s.Financials.GetBySource(ctx, models.SourceTypeRental, rental.ID)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		// A rental without its ledger entry should not exist; fall back to
		// the listed price so the report still adds up.
		log.Printf("[Report] rental %s has no ledger entry, using listed price for device %d", rental.TicketNr, device.ID)
		return device.RentPrice * float64(rental.RentalDays), nil
	}

	nominal, err := s.Rentals.NominalDailyTotal(ctx, rental.ID)
	if err != nil {
		return 0, err
	}
	if nominal <= 0 {
		log.Printf("[Report] rental %s has zero nominal daily total, check device prices", rental.TicketNr)
	}
	return RentalShare(entry.Amount, rental.RentalDays, device.RentPrice, nominal), nil
}

// Summary totals the ledger: month by month for a single year, year by year
// when no year is given
func (s *ReportService) Summary(ctx context.Context, year *int) (*models.SummaryReport, error) {
	report := &models.SummaryReport{Year: year}

	if year != nil {
		for month := 1; month <= 12; month++ {
			from, to := monthWindow(*year, month)
			revenue, expense, err := s.totalsBetween(ctx, from, to)
			if err != nil {
				return nil, err
			}
			report.AddMonth(month, revenue, expense)
		}
		return report, nil
	}

	years, err := s.Financials.Years(ctx)
	if err != nil {
		return nil, err
	}
	for _, y := range years {
		from, to := yearWindow(y)
		revenue, expense, err := s.totalsBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		report.AddYear(y, revenue, expense)
	}
	return report, nil
}

// RangeSummary totals the ledger over a date range, both days included
func (s *ReportService) RangeSummary(ctx context.Context, from, to time.Time) (*models.SummaryReport, error) {
	from, bound := rangeBounds(from, to)
	revenue, expense, err := s.totalsBetween(ctx, from, bound)
	if err != nil {
		return nil, err
	}
	return &models.SummaryReport{
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue - expense,
	}, nil
}

// monthWindow returns the [from, to) bounds of one calendar month
func monthWindow(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// yearWindow returns the [from, to) bounds of one calendar year
func yearWindow(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// rangeBounds turns an inclusive day range into [from, to) query bounds, so
// entries dated on the last day still count
func rangeBounds(from, to time.Time) (time.Time, time.Time) {
	return from, to.AddDate(0, 0, 1)
}

func (s *ReportService) totalsBetween(ctx context.Context, from, to time.Time) (revenue, expense float64, err error) {
	revenue, err = s.Financials.SumByTypeBetween(ctx, models.EntryTypeRevenue, from, to)
	if err != nil {
		return 0, 0, err
	}
	expense, err = s.Financials.SumByTypeBetween(ctx, models.EntryTypeExpense, from, to)
	if err != nil {
		return 0, 0, err
	}
	return revenue, expense, nil
}
