package impl

import (
	"context"
	"strings"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/domain/service"
	"gwdining/internal/usecase"
	"gwdining/internal/util"
)

type sessionService struct {
	sessions    repository.SessionRepository
	credentials service.CredentialStore
}

// NewSessionService creates a new session service instance.
func NewSessionService(sessions repository.SessionRepository, credentials service.CredentialStore) usecase.SessionUsecase {
	return &sessionService{
		sessions:    sessions,
		credentials: credentials,
	}
}

// Login validates the form and unconditionally replaces any existing
// session. There is no account registry to check against.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.ProfileView, error) {
	name := strings.TrimSpace(input.Name)
	gwid := strings.TrimSpace(input.GWID)

	if !util.AllFieldsFilled(name, gwid, input.Password) {
		return nil, domainerrors.ErrMissingLoginFields
	}
	if !entity.ValidGWID(gwid) {
		return nil, domainerrors.ErrInvalidGWID
	}

	sealed, err := s.credentials.Seal(input.Password)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	session := &entity.UserSession{
		Name:       name,
		GWID:       gwid,
		Credential: sealed,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return usecase.NewProfileView(session, util.FormatMoney), nil
}

// Logout removes the stored session. Logging out with nobody logged in
// is not an error.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}

// GetProfile returns the logged-in user with loyalty score and order
// history.
func (s *sessionService) GetProfile(ctx context.Context) (*usecase.ProfileView, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if session == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}

	return usecase.NewProfileView(session, util.FormatMoney), nil
}
