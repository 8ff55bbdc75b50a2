// Package bill renders booking receipts as PDF documents.
package bill

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phbpx/hotel"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Reference is the payload encoded in the receipt QR code.
func Reference(b hotel.Bill) string {
	return fmt.Sprintf("booking:%s|room:%s|%s..%s", b.ID, b.RoomNumber, b.CheckIn, b.CheckOut)
}

// Render writes b as a one page PDF receipt to w.
func Render(w io.Writer, b hotel.Bill) error {
	qrPNG, err := qrcode.Encode(Reference(b), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generating qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+b.ID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Hotel Booking Receipt")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	lines := [][2]string{
		{"Booking", b.ID},
		{"Guest", b.Username},
		{"Room", fmt.Sprintf("%s (%s)", b.RoomNumber, b.RoomType)},
		{"Check-in", b.CheckIn},
		{"Check-out", b.CheckOut},
		{"Nights", fmt.Sprintf("%d", b.Nights)},
	}
	for _, l := range lines {
		pdf.CellFormat(40, 8, l[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, l[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(40, 10, "Total:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, fmt.Sprintf("%.2f", b.TotalAmount), "T", 1, "L", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, opts, 0, "")

	return pdf.Output(w)
}
