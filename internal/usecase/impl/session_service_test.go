package impl

import (
	"context"
	"testing"
	"time"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/infra/auth"
	"gwdining/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture() (usecase.SessionUsecase, *fakeSessionRepo) {
	repo := &fakeSessionRepo{}

	return NewSessionService(repo, auth.NewPlainStore()), repo
}

func TestLoginStoresSession(t *testing.T) {
	svc, repo := newSessionFixture()

	profile, err := svc.Login(context.Background(), &usecase.LoginInput{
		Name: "Sam Rivera", GWID: "G34488884", Password: "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam Rivera", profile.Name)
	assert.Equal(t, "G34488884", profile.GWID)
	assert.Equal(t, 0, profile.DiscountScore)
	assert.Empty(t, profile.Orders)

	require.NotNil(t, repo.session)
	assert.Equal(t, "G34488884", repo.session.GWID)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    usecase.LoginInput
		expected error
	}{
		{
			name:     "missing name",
			input:    usecase.LoginInput{Name: "  ", GWID: "G12345678", Password: "x"},
			expected: domainerrors.ErrMissingLoginFields,
		},
		{
			name:     "missing password",
			input:    usecase.LoginInput{Name: "Sam", GWID: "G12345678", Password: ""},
			expected: domainerrors.ErrMissingLoginFields,
		},
		{
			name:     "gwid wrong prefix",
			input:    usecase.LoginInput{Name: "Sam", GWID: "X12345678", Password: "x"},
			expected: domainerrors.ErrInvalidGWID,
		},
		{
			name:     "gwid too short",
			input:    usecase.LoginInput{Name: "Sam", GWID: "G1234567", Password: "x"},
			expected: domainerrors.ErrInvalidGWID,
		},
		{
			name:     "gwid trailing garbage",
			input:    usecase.LoginInput{Name: "Sam", GWID: "G123456789", Password: "x"},
			expected: domainerrors.ErrInvalidGWID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoginAcceptsLowercaseGWID(t *testing.T) {
	svc, _ := newSessionFixture()

	profile, err := svc.Login(context.Background(), &usecase.LoginInput{
		Name: "Sam", GWID: "g34488884", Password: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "g34488884", profile.GWID)
}

func TestLoginOverwritesExistingSession(t *testing.T) {
	svc, repo := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Name: "First", GWID: "G11111111", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &usecase.LoginInput{Name: "Second", GWID: "G22222222", Password: "y"})
	require.NoError(t, err)

	assert.Equal(t, "Second", repo.session.Name)
	assert.Equal(t, "G22222222", repo.session.GWID)
	assert.Empty(t, repo.session.Orders, "new login starts with fresh state")
}

func TestLogout(t *testing.T) {
	svc, repo := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Name: "Sam", GWID: "G12345678", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, repo.session)

	// Logging out twice is harmless.
	require.NoError(t, svc.Logout(ctx))
}

func TestGetProfileRequiresLogin(t *testing.T) {
	svc, _ := newSessionFixture()

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestGetProfileRendersOrderHistory(t *testing.T) {
	svc, repo := newSessionFixture()
	repo.session = &entity.UserSession{
		Name: "Sam", GWID: "G12345678", DiscountScore: 20,
		Orders: []entity.OrderRecord{
			{
				TicketCode: "D482317", Mode: entity.ModeDineIn, Total: 17.5,
				Date: time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, profile.DiscountScore)
	require.Len(t, profile.Orders, 1)
	assert.Equal(t, "D482317", profile.Orders[0].Ticket)
	assert.Equal(t, "Dine-In", profile.Orders[0].ModeLabel)
	assert.Equal(t, "$17.50", profile.Orders[0].TotalText)
	assert.Equal(t, "2/3/2026", profile.Orders[0].Date)
}
