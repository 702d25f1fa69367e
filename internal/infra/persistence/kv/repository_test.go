package kv

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory KVStore for tests.
type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]

	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.values[key] = value

	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCartRoundTrip(t *testing.T) {
	store := newMemStore()
	repo := NewCartRepository(store, testLogger())
	ctx := context.Background()

	cart := &entity.Cart{}
	cart.Add("Veggie Bowl", 8.75)
	cart.Add("Veggie Bowl", 8.75)
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	assert.Equal(t, 8.75, loaded.Lines[0].UnitPrice)
}

func TestCartLoadAbsentYieldsEmpty(t *testing.T) {
	repo := NewCartRepository(newMemStore(), testLogger())

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartLoadCorruptYieldsEmpty(t *testing.T) {
	store := newMemStore()
	store.values[repository.KeyCart] = "{not valid json"
	repo := NewCartRepository(store, testLogger())

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestSessionRoundTripAndClear(t *testing.T) {
	store := newMemStore()
	repo := NewSessionRepository(store, testLogger())
	ctx := context.Background()

	// Absent session loads as nil, not an error.
	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	saved := &entity.UserSession{
		Name: "Sam", GWID: "G12345678", DiscountScore: 10,
		Orders: []entity.OrderRecord{
			{TicketCode: "D123456", Mode: entity.ModeDineIn, Total: 17.5, Date: time.Now().UTC()},
		},
	}
	require.NoError(t, repo.Save(ctx, saved))

	session, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "G12345678", session.GWID)
	assert.Equal(t, 10, session.DiscountScore)
	require.Len(t, session.Orders, 1)

	require.NoError(t, repo.Clear(ctx))
	session, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionCorruptLoadsAsLoggedOut(t *testing.T) {
	store := newMemStore()
	store.values[repository.KeyUser] = `"just a string"`
	repo := NewSessionRepository(store, testLogger())

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestReviewRoundTrip(t *testing.T) {
	store := newMemStore()
	repo := NewReviewRepository(store, testLogger())
	ctx := context.Background()

	reviews, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	reviews["thurston"] = append(reviews["thurston"], entity.LocationReview{
		Author: "Student", Text: "Good variety", Time: time.Now().UTC(),
	})
	require.NoError(t, repo.Save(ctx, reviews))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded["thurston"], 1)
	assert.Equal(t, "Good variety", loaded["thurston"][0].Text)
}

func TestAccommodationRoundTrip(t *testing.T) {
	store := newMemStore()
	repo := NewAccommodationRepository(store, testLogger())
	ctx := context.Background()

	requests, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	requests = append(requests, entity.AccommodationRequest{
		Name: "Sam", Email: "sam@example.edu", Request: "halal options", Time: time.Now().UTC(),
	})
	require.NoError(t, repo.Save(ctx, requests))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "halal options", loaded[0].Request)
}

func TestStorageKeys(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	require.NoError(t, NewCartRepository(store, testLogger()).Save(ctx, &entity.Cart{}))
	require.NoError(t, NewSessionRepository(store, testLogger()).Save(ctx, &entity.UserSession{}))

	assert.Contains(t, store.values, "gwDiningCart")
	assert.Contains(t, store.values, "gwDiningUser")
}
