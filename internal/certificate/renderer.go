package certificate

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const orgName = "Pratibha Charitable Trust"

// Data carries what gets printed on a certificate.
type Data struct {
	DonorName string
	Amount    int // whole rupees
	OrderID   string
	Date      time.Time // printed as UTC YYYY-MM-DD
}

// Renderer draws A4 donation certificates.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the certificate PDF for d to w.
func (r *Renderer) Render(w io.Writer, d Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// Accent border, 6pt stroke, 1cm inset.
	pdf.SetDrawColor(108, 99, 255) // #6C63FF
	pdf.SetLineWidth(6.0 * 25.4 / 72.0)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	heading := "Certificate of Appreciation"
	pdf.SetFont("Helvetica", "B", 28)
	pdf.Text((pageW-pdf.GetStringWidth(heading))/2, 35, heading)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(51, 51, 51) // #333333
	pdf.Text((pageW-pdf.GetStringWidth(orgName))/2, 50, orgName)

	pdf.SetFont("Helvetica", "", 12.5)
	lines := []string{
		"This certificate is proudly presented to",
		"",
		d.DonorName,
		"",
		fmt.Sprintf("for supporting our mission through a donation of INR %d.", d.Amount),
		fmt.Sprintf("Order ID: %s    Date: %s", d.OrderID, d.Date.UTC().Format("2006-01-02")),
	}
	const leading = 15.0 * 25.4 / 72.0 // 12.5pt font at 1.2 line spacing
	y := 80.0
	for _, line := range lines {
		if line != "" {
			pdf.Text(30, y, line)
		}
		y += leading
	}

	pdf.SetFont("Helvetica", "I", 11)
	pdf.Text(25, 267, "Signature")
	pdf.Line(25, 268, 75, 268)

	return pdf.Output(w)
}

// Filename returns the canonical certificate filename for an order.
// The timestamp keeps concurrent verifications for the same order from
// colliding on disk.
func Filename(orderID string, now time.Time) string {
	safe := strings.ReplaceAll(orderID, "/", "_")
	return fmt.Sprintf("certificate_%s_%d.pdf", safe, now.Unix())
}
