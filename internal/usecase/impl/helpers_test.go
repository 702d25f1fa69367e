package impl

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/service"
	"gwdining/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeCartRepo is an in-memory cart store.
type fakeCartRepo struct {
	cart    entity.Cart
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeCartRepo) Load(_ context.Context) (*entity.Cart, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	cart := f.cart

	return &cart, nil
}

func (f *fakeCartRepo) Save(_ context.Context, cart *entity.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cart = *cart
	f.saves++

	return nil
}

// fakeSessionRepo is an in-memory session store.
type fakeSessionRepo struct {
	session *entity.UserSession
}

func (f *fakeSessionRepo) Load(_ context.Context) (*entity.UserSession, error) {
	if f.session == nil {
		return nil, nil
	}
	session := *f.session

	return &session, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, session *entity.UserSession) error {
	s := *session
	f.session = &s

	return nil
}

func (f *fakeSessionRepo) Clear(_ context.Context) error {
	f.session = nil

	return nil
}

// fakeReviewRepo is an in-memory review store.
type fakeReviewRepo struct {
	reviews entity.ReviewsByLocation
}

func (f *fakeReviewRepo) Load(_ context.Context) (entity.ReviewsByLocation, error) {
	if f.reviews == nil {
		return entity.ReviewsByLocation{}, nil
	}

	return f.reviews, nil
}

func (f *fakeReviewRepo) Save(_ context.Context, reviews entity.ReviewsByLocation) error {
	f.reviews = reviews

	return nil
}

// fakeAccommodationRepo is an in-memory accommodation request store.
type fakeAccommodationRepo struct {
	requests []entity.AccommodationRequest
}

func (f *fakeAccommodationRepo) Load(_ context.Context) ([]entity.AccommodationRequest, error) {
	return f.requests, nil
}

func (f *fakeAccommodationRepo) Save(_ context.Context, requests []entity.AccommodationRequest) error {
	f.requests = requests

	return nil
}

// staticMenuSource serves a fixed catalog.
type staticMenuSource struct {
	items []entity.MenuItem
	err   error
}

func (s *staticMenuSource) LoadMenu(_ context.Context) ([]entity.MenuItem, error) {
	return s.items, s.err
}

// staticLocationSource serves a fixed directory.
type staticLocationSource struct {
	locations []entity.DiningLocation
	err       error
}

func (s *staticLocationSource) LoadLocations(_ context.Context) ([]entity.DiningLocation, error) {
	return s.locations, s.err
}

// mockDirections is a testify mock for the directions collaborator.
type mockDirections struct {
	mock.Mock
}

func (m *mockDirections) Route(ctx context.Context, origin, destination service.Coordinate, mode service.TravelMode) (*service.RouteInfo, error) {
	args := m.Called(ctx, origin, destination, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.RouteInfo), args.Error(1)
}

// mockTicketQR is a testify mock for the ticket QR renderer.
type mockTicketQR struct {
	mock.Mock
}

func (m *mockTicketQR) GenerateTicketQR(order *entity.PendingOrder) ([]byte, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockTicketQR) ParseTicketQR(data string) (*entity.PendingOrder, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PendingOrder), args.Error(1)
}

// mockCheckout is a testify mock for the checkout usecase, used by the
// cart tests to observe the mutation hook.
type mockCheckout struct {
	mock.Mock
}

func (m *mockCheckout) GetState(ctx context.Context) (*usecase.CheckoutView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CheckoutView), args.Error(1)
}

func (m *mockCheckout) SelectMode(ctx context.Context, input *usecase.SelectModeInput) (*usecase.CheckoutView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CheckoutView), args.Error(1)
}

func (m *mockCheckout) Proceed(ctx context.Context) (*usecase.CheckoutView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CheckoutView), args.Error(1)
}

func (m *mockCheckout) SubmitPayment(ctx context.Context, input *usecase.PaymentInput) (*usecase.CheckoutView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CheckoutView), args.Error(1)
}

func (m *mockCheckout) Finalize(ctx context.Context) (*usecase.OrderConfirmation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OrderConfirmation), args.Error(1)
}

func (m *mockCheckout) Reopen(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCheckout) TicketQR(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
