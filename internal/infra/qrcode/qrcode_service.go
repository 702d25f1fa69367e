package qrcode

import (
	"encoding/json"
	"fmt"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketQRData represents the QR code payload structure
type TicketQRData struct {
	Ticket string  `json:"ticket"`
	Total  float64 `json:"total"`
	Mode   string  `json:"mode"`
	Type   string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.TicketQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTicketQR generates a QR code for an order ticket
func (s *qrcodeService) GenerateTicketQR(order *entity.PendingOrder) ([]byte, error) {
	data := TicketQRData{
		Ticket: order.TicketCode,
		Total:  order.Total,
		Mode:   string(order.Mode),
		Type:   "order-ticket",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTicketQR parses QR code data and returns the embedded ticket
func (s *qrcodeService) ParseTicketQR(qrData string) (*entity.PendingOrder, error) {
	var data TicketQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "order-ticket" {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	mode := entity.OrderMode(data.Mode)
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid order mode: %s", data.Mode)
	}

	return &entity.PendingOrder{
		TicketCode: data.Ticket,
		Total:      data.Total,
		Mode:       mode,
	}, nil
}
