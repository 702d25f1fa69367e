package service

import "gwdining/internal/domain/entity"

// TicketQRService renders a pending order ticket as a scannable image for
// the cashier or pickup counter.
type TicketQRService interface {
	// GenerateTicketQR returns a PNG encoding of the ticket.
	GenerateTicketQR(order *entity.PendingOrder) ([]byte, error)

	// ParseTicketQR decodes scanned QR payload back into ticket data.
	ParseTicketQR(data string) (*entity.PendingOrder, error)
}
