package documents

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"toolrental-backend/internal/models"
)

// RentalReceipt renders the A4 receipt for one rental: company header, ticket
// number, customer block, the device table and the total.
func RentalReceipt(companyName string, rental *models.RentalDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Rental receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Ticket: %s", rental.TicketNr))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", rental.RentStart.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Rental days: %d", rental.RentalDays))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s", rental.PaymentMode))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Customer")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, rental.CustomerName)
	pdf.Ln(10)

	// Device table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 7, "Device", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Serial", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Price / day", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, device := range rental.Devices {
		pdf.CellFormat(110, 7, device.DeviceName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, device.Serial, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", device.RentPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", rental.TotalAmount), "", 1, "R", false, 0, "")

	if rental.Comment != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, rental.Comment, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
