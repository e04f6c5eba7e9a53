package ledger

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"dokanbook/domain"
)

// InvoiceQRPNG renders the invoice's QR payload as a PNG of size x size
// pixels. size <= 0 picks a sensible default.
func InvoiceQRPNG(inv domain.Invoice, size int) ([]byte, error) {
	if inv.QRCodeData == "" {
		return nil, fmt.Errorf("%w: invoice %s has no QR payload", ErrInvalidInput, inv.ID)
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(inv.QRCodeData, qrcode.Medium, size)
}
