package usecase

import (
	"context"

	"gwdining/internal/domain/entity"
)

// LoginInput is the login form. The GWID must be the letter G followed by
// eight digits; the credential is accepted as-is.
type LoginInput struct {
	Name     string `json:"name" validate:"required"`
	GWID     string `json:"gwid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OrderHistoryView is one line of the profile order history.
type OrderHistoryView struct {
	Ticket    string  `json:"ticket"`
	ModeLabel string  `json:"mode_label"`
	Total     float64 `json:"total"`
	TotalText string  `json:"total_text"`
	Date      string  `json:"date"`
}

// ProfileView is the profile dropdown payload.
type ProfileView struct {
	Name          string             `json:"name"`
	GWID          string             `json:"gwid"`
	DiscountScore int                `json:"discountScore"`
	Orders        []OrderHistoryView `json:"orders"`
}

// SessionUsecase manages the single optional login session. Login always
// replaces any existing session; there is no registered-account check.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*ProfileView, error)
	Logout(ctx context.Context) error

	// GetProfile returns the logged-in user with loyalty score and order
	// history, or ErrNotLoggedIn.
	GetProfile(ctx context.Context) (*ProfileView, error)
}

// NewProfileView renders a session entity into its profile form.
func NewProfileView(session *entity.UserSession, formatMoney func(float64) string) *ProfileView {
	view := &ProfileView{
		Name:          session.Name,
		GWID:          session.GWID,
		DiscountScore: session.DiscountScore,
		Orders:        make([]OrderHistoryView, 0, len(session.Orders)),
	}
	for _, rec := range session.Orders {
		view.Orders = append(view.Orders, OrderHistoryView{
			Ticket:    rec.TicketCode,
			ModeLabel: rec.Mode.Label(),
			Total:     rec.Total,
			TotalText: formatMoney(rec.Total),
			Date:      rec.Date.Format("1/2/2006"),
		})
	}

	return view
}
