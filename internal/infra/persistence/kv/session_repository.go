package kv

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"
)

type sessionRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewSessionRepository creates the KV-backed session repository.
func NewSessionRepository(store repository.KVStore, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{store: store, logger: logger}
}

// Load retrieves the current session, or nil when nobody is logged in.
func (r *sessionRepository) Load(ctx context.Context) (*entity.UserSession, error) {
	session := &entity.UserSession{}
	ok, err := loadJSON(ctx, r.store, r.logger, repository.KeyUser, session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return session, nil
}

// Save rewrites the whole session, replacing any prior one.
func (r *sessionRepository) Save(ctx context.Context, session *entity.UserSession) error {
	return saveJSON(ctx, r.store, repository.KeyUser, session)
}

// Clear removes the stored session.
func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, repository.KeyUser)
}
