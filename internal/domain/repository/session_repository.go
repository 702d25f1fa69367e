package repository

import (
	"context"

	"gwdining/internal/domain/entity"
)

// SessionRepository persists the single optional user session.
type SessionRepository interface {
	// Load retrieves the current session, or nil when nobody is logged in
	// or the stored value is unusable.
	Load(ctx context.Context) (*entity.UserSession, error)

	// Save rewrites the whole session, replacing any prior one.
	Save(ctx context.Context, session *entity.UserSession) error

	// Clear removes the stored session.
	Clear(ctx context.Context) error
}
