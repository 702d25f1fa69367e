package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/domain/service"
	"gwdining/internal/usecase"
	"gwdining/internal/util"
)

type checkoutService struct {
	mu       sync.Mutex
	machine  *entity.Checkout
	cartRepo repository.CartRepository
	sessions repository.SessionRepository
	qr       service.TicketQRService
	logger   *slog.Logger

	// now and randPad are swapped out in tests for deterministic tickets.
	now     func() time.Time
	randPad func() int
}

// NewCheckoutService creates a new checkout service instance. The flow
// state lives in memory; only finalized orders reach the store.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	sessions repository.SessionRepository,
	qr service.TicketQRService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		machine:  entity.NewCheckout(),
		cartRepo: cartRepo,
		sessions: sessions,
		qr:       qr,
		logger:   logger,
		now:      time.Now,
		randPad:  func() int { return 10 + rand.Intn(90) },
	}
}

// GetState returns the current checkout view.
func (s *checkoutService) GetState(_ context.Context) (*usecase.CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view(), nil
}

// SelectMode records the order mode and discards any pending ticket.
func (s *checkoutService) SelectMode(_ context.Context, input *usecase.SelectModeInput) (*usecase.CheckoutView, error) {
	mode := entity.OrderMode(input.Mode)
	if !mode.Valid() {
		return nil, domainerrors.ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.SelectMode(mode)

	return s.view(), nil
}

// Proceed validates the cart and mode, then issues a ticket. Validation
// failures leave the machine untouched.
func (s *checkoutService) Proceed(ctx context.Context) (*usecase.CheckoutView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.machine.Mode.Valid() {
		return nil, domainerrors.ErrModeNotSelected
	}

	ticket := entity.NewTicketCode(s.machine.Mode, s.now(), s.randPad())
	if err := s.machine.Proceed(ticket, cart.Total()); err != nil {
		return nil, domainerrors.ErrModeNotSelected
	}

	return s.view(), nil
}

// SubmitPayment completes the simulated pickup card form. Every field
// must be non-empty after trimming; nothing else is checked.
func (s *checkoutService) SubmitPayment(_ context.Context, input *usecase.PaymentInput) (*usecase.CheckoutView, error) {
	if !util.AllFieldsFilled(input.CardName, input.CardNumber, input.Expiry, input.CVV) {
		return nil, domainerrors.ErrPaymentIncomplete
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.CompletePayment(); err != nil {
		return nil, domainerrors.ErrPaymentNotExpected
	}

	return s.view(), nil
}

// Finalize confirms a Ready checkout. The order lands on the session's
// history when somebody is logged in; the cart is cleared either way.
func (s *checkoutService) Finalize(ctx context.Context) (*usecase.OrderConfirmation, error) {
	s.mu.Lock()
	done, err := s.machine.Finalize()
	s.mu.Unlock()
	if err != nil {
		return nil, domainerrors.ErrCheckoutNotReady
	}

	confirmation := &usecase.OrderConfirmation{
		Ticket:    done.TicketCode,
		Mode:      string(done.Mode),
		ModeLabel: done.Mode.Label(),
		Total:     done.Total,
		TotalText: util.FormatMoney(done.Total),
	}

	session, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load session at finalize", slog.Any("error", err))
	}
	if session != nil {
		session.RecordOrder(entity.OrderRecord{
			TicketCode: done.TicketCode,
			Mode:       done.Mode,
			Total:      done.Total,
			Date:       s.now(),
		})
		if err := s.sessions.Save(ctx, session); err != nil {
			s.logger.Warn("Failed to save order history", slog.Any("error", err))
		}
		confirmation.UserName = session.Name
		confirmation.GWID = session.GWID
	}

	if err := s.cartRepo.Save(ctx, &entity.Cart{}); err != nil {
		s.logger.Warn("Failed to clear cart after finalize", slog.Any("error", err))
	}

	return confirmation, nil
}

// Reopen returns the flow to Review and discards any pending ticket. The
// selected mode survives.
func (s *checkoutService) Reopen(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Reset()

	return nil
}

// TicketQR renders the pending ticket as a PNG.
func (s *checkoutService) TicketQR(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	pending := s.machine.Pending
	s.mu.Unlock()

	if pending == nil {
		return nil, domainerrors.ErrNoTicket
	}

	png, err := s.qr.GenerateTicketQR(pending)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

// view renders the machine under the held lock.
func (s *checkoutService) view() *usecase.CheckoutView {
	v := &usecase.CheckoutView{
		Stage:           string(s.machine.Stage),
		ButtonLabel:     s.machine.Stage.ButtonLabel(),
		Mode:            string(s.machine.Mode),
		AwaitingPayment: s.machine.AwaitingPayment(),
	}
	if s.machine.Stage == entity.StageReady && s.machine.Pending != nil {
		v.Ticket = s.machine.Pending.TicketCode
		v.Total = s.machine.Pending.Total
	}

	return v
}
