package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderReceiptQR generates a PNG QR code pointing at an order receipt
	GenerateOrderReceiptQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderReceiptQR parses QR code data and returns the order ID
	ParseOrderReceiptQR(qrData string) (uuid.UUID, error)
}
