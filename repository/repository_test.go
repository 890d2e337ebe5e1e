package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

func TestUsersAddAssignsUniqueKeys(t *testing.T) {
	users := NewUsers(store.NewMemory())
	ctx := context.Background()

	first, err := users.Add(ctx, &models.UserProfile{Email: "a@example.com", Username: "a"})
	require.NoError(t, err)
	require.NotEmpty(t, first.Uid)

	second, err := users.Add(ctx, &models.UserProfile{Email: "b@example.com", Username: "b"})
	require.NoError(t, err)
	require.NotEmpty(t, second.Uid)
	require.NotEqual(t, first.Uid, second.Uid)
}

func TestUsersAddRejectsDuplicateEmail(t *testing.T) {
	users := NewUsers(store.NewMemory())
	ctx := context.Background()

	_, err := users.Add(ctx, &models.UserProfile{Email: "a@example.com", Username: "a"})
	require.NoError(t, err)

	_, err = users.Add(ctx, &models.UserProfile{Email: "a@example.com", Username: "imposter"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsersLookups(t *testing.T) {
	users := NewUsers(store.NewMemory())
	ctx := context.Background()

	added, err := users.Add(ctx, &models.UserProfile{Email: "a@example.com", Username: "a"})
	require.NoError(t, err)

	t.Run("by uid", func(t *testing.T) {
		got, err := users.GetByUid(ctx, added.Uid)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "a@example.com", got.Email)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := users.GetByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, added.Uid, got.Uid)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		got, err := users.GetByUid(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = users.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestUsersUpdateAndDelete(t *testing.T) {
	users := NewUsers(store.NewMemory())
	ctx := context.Background()

	added, err := users.Add(ctx, &models.UserProfile{Email: "a@example.com", Username: "a"})
	require.NoError(t, err)

	added.Username = "renamed"
	require.NoError(t, users.Update(ctx, added))

	got, err := users.GetByUid(ctx, added.Uid)
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Username)

	require.NoError(t, users.Delete(ctx, added.Uid))
	got, err = users.GetByUid(ctx, added.Uid)
	require.NoError(t, err)
	require.Nil(t, got)

	require.ErrorIs(t, users.Update(ctx, nil), store.ErrNilRecord)
}

func TestItemsByGroupFilters(t *testing.T) {
	items := NewItems(store.NewMemory())
	ctx := context.Background()

	_, err := items.Add(ctx, &models.ShoppingItem{GroupUid: "g1", Name: "Milk"})
	require.NoError(t, err)
	_, err = items.Add(ctx, &models.ShoppingItem{GroupUid: "g1", Name: "Eggs"})
	require.NoError(t, err)
	_, err = items.Add(ctx, &models.ShoppingItem{GroupUid: "g2", Name: "Bread"})
	require.NoError(t, err)

	inG1, err := items.ByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, inG1, 2)

	inG3, err := items.ByGroup(ctx, "g3")
	require.NoError(t, err)
	require.Empty(t, inG3)
}

func TestBasketsKeyedByUserAndGroup(t *testing.T) {
	baskets := NewBaskets(store.NewMemory())
	ctx := context.Background()

	require.NoError(t, baskets.Save(ctx, &models.ShoppingBasket{UserUid: "u1", GroupUid: "g1"}))

	got, err := baskets.Get(ctx, "u1", "g1")
	require.NoError(t, err)
	require.NotNil(t, got)

	other, err := baskets.Get(ctx, "u1", "g2")
	require.NoError(t, err)
	require.Nil(t, other)

	require.NoError(t, baskets.Delete(ctx, "u1", "g1"))
	got, err = baskets.Get(ctx, "u1", "g1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestBasketItemsQueries(t *testing.T) {
	basketItems := NewBasketItems(store.NewMemory())
	ctx := context.Background()

	basketUid := models.BasketKey("u1", "g1")
	_, err := basketItems.Add(ctx, &models.BasketItem{GroupUid: "g1", BasketUid: basketUid, Quantity: 2, PricePerUnit: 1.5})
	require.NoError(t, err)
	_, err = basketItems.Add(ctx, &models.BasketItem{GroupUid: "g1", BasketUid: models.BasketKey("u2", "g1"), Quantity: 1, PricePerUnit: 4})
	require.NoError(t, err)

	byBasket, err := basketItems.ByBasket(ctx, basketUid)
	require.NoError(t, err)
	require.Len(t, byBasket, 1)

	byGroup, err := basketItems.ByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, byGroup, 2)
}

func TestPurchasesQueries(t *testing.T) {
	purchases := NewPurchases(store.NewMemory())
	ctx := context.Background()

	_, err := purchases.Add(ctx, &models.PurchasedItem{GroupUid: "g1", UserUid: "u1", BasketItemUid: "b1"})
	require.NoError(t, err)
	_, err = purchases.Add(ctx, &models.PurchasedItem{GroupUid: "g1", UserUid: "u2", BasketItemUid: "b2"})
	require.NoError(t, err)
	_, err = purchases.Add(ctx, &models.PurchasedItem{GroupUid: "g2", UserUid: "u1", BasketItemUid: "b3"})
	require.NoError(t, err)

	byGroup, err := purchases.ByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, byGroup, 2)

	byUser, err := purchases.ByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
}
