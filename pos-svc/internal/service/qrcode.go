package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(transactionID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/receipt.html?transaction_id=%s", g.BaseURL, url.QueryEscape(transactionID))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

func ReceiptQRLink(transactionID string) string {
	return fmt.Sprintf("/api/transactions/%s/qrcode", url.PathEscape(transactionID))
}
