package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"travelbook/internal/domain"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// LedgerExporter writes the bookings ledger to an xlsx file.
type LedgerExporter struct {
	store  domain.Store
	path   string
	logger *zerolog.Logger
}

func NewLedgerExporter(store domain.Store, path string, logger *zerolog.Logger) *LedgerExporter {
	return &LedgerExporter{store: store, path: path, logger: logger}
}

// WriteBookingsLedger dumps every booking with its payment into an xlsx file
// and returns the file path. Read-only with respect to the store.
func (e *LedgerExporter) WriteBookingsLedger(ctx context.Context) (string, error) {
	if err := os.MkdirAll(e.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	rows, err := e.store.ListBookings(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting bookings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Booking ID", "Customer ID", "Customer", "Package ID", "Hotel ID",
		"Status", "Booked At", "Payment Amount", "Payment Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, r := range rows {
		values := []interface{}{
			r.BookingID, r.CustomerID, r.CustomerName, r.PackageID, r.HotelID,
			r.Status, r.BookedAt.Format("2006-01-02 15:04"), r.PaymentAmount, r.PaymentStatus,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "I", 16)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	filePath := filepath.Join(e.path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	e.logger.Info().Str("file_path", filePath).Int("rows", len(rows)).Msg("bookings ledger exported")
	return filePath, nil
}
