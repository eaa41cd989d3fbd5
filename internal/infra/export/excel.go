package export

import (
	"fmt"
	"time"

	"aqualux-api/internal/pkg/errs"
	"aqualux-api/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const bookingSheet = "Bookings"

var bookingHeaders = []string{
	"ID",
	"Service",
	"Price (USD)",
	"Duration (min)",
	"Customer",
	"Email",
	"Phone",
	"Date",
	"Time",
	"Status",
	"Special Requests",
	"Created At",
}

// BookingsToExcel renders an admin booking listing as an xlsx workbook.
func BookingsToExcel(bookings []*queries.BookingView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(bookingSheet)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create bookings sheet")
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for col, header := range bookingHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(bookingSheet, cell, header)
		_ = f.SetCellStyle(bookingSheet, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		special := ""
		if b.SpecialRequests != nil {
			special = *b.SpecialRequests
		}
		values := []any{
			b.ID.String(),
			b.ServiceName,
			b.ServicePrice,
			b.ServiceDurationMin,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.AppointmentDate,
			b.AppointmentTime,
			b.Status,
			special,
			b.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(bookingSheet, cell, v)
		}
	}

	_ = f.SetColWidth(bookingSheet, "A", "A", 38)
	_ = f.SetColWidth(bookingSheet, "B", "L", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "failed to serialize bookings workbook")
	}
	return buf.Bytes(), nil
}

// ExportFileName builds a timestamped download name.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("bookings_%s.xlsx", now.Format("20060102_150405"))
}
