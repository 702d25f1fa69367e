package impl

import (
	"context"
	"testing"

	"gwdining/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (usecase.CartUsecase, *fakeCartRepo, *mockCheckout) {
	repo := &fakeCartRepo{}
	checkout := &mockCheckout{}
	checkout.On("Reopen", mock.Anything).Return(nil)

	return NewCartService(repo, checkout, testLogger()), repo, checkout
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	view, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Veggie Bowl", Price: 8.75})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	view, err = svc.AddItem(ctx, &usecase.AddItemInput{Name: "Veggie Bowl", Price: 8.75})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 17.5, view.Total)
	assert.Equal(t, "$17.50", view.TotalText)
}

func TestAdjustQuantityRemovesAtZero(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Chicken Wrap", Price: 6.5})
	require.NoError(t, err)

	view, err := svc.AdjustQuantity(ctx, &usecase.AdjustQuantityInput{Name: "Chicken Wrap", Delta: -1})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.Count)
}

func TestAdjustQuantityUnknownNameIsNoop(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Pasta", Price: 9})
	require.NoError(t, err)

	view, err := svc.AdjustQuantity(ctx, &usecase.AdjustQuantityInput{Name: "Pizza", Delta: 3})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Pasta", view.Lines[0].Name)
	assert.Equal(t, 1, view.Lines[0].Quantity)
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Sushi Roll", Price: 11})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, &usecase.AddItemInput{Name: "Sushi Roll", Price: 11})
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "Sushi Roll")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestClearCart(t *testing.T) {
	svc, repo, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Salad", Price: 7})
	require.NoError(t, err)

	view, err := svc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, repo.cart.IsEmpty())
}

func TestCartMutationResetsCheckout(t *testing.T) {
	svc, _, checkout := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, &usecase.AddItemInput{Name: "Tacos", Price: 5})
	require.NoError(t, err)
	_, err = svc.AdjustQuantity(ctx, &usecase.AdjustQuantityInput{Name: "Tacos", Delta: 1})
	require.NoError(t, err)
	_, err = svc.RemoveItem(ctx, "Tacos")
	require.NoError(t, err)
	_, err = svc.ClearCart(ctx)
	require.NoError(t, err)

	checkout.AssertNumberOfCalls(t, "Reopen", 4)
}

func TestGetCartDoesNotResetCheckout(t *testing.T) {
	svc, _, checkout := newCartFixture()

	view, err := svc.GetCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	checkout.AssertNotCalled(t, "Reopen", mock.Anything)
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	repo := &fakeCartRepo{}
	checkout := &mockCheckout{}
	checkout.On("Reopen", mock.Anything).Return(nil)
	ctx := context.Background()

	first := NewCartService(repo, checkout, testLogger())
	_, err := first.AddItem(ctx, &usecase.AddItemInput{Name: "Ramen", Price: 12})
	require.NoError(t, err)

	second := NewCartService(repo, checkout, testLogger())
	view, err := second.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Ramen", view.Lines[0].Name)
}
