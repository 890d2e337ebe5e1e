package repository

import (
	"context"
	"fmt"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

// Baskets is keyed by userUid_groupUid rather than a push key — one basket
// per membership, so the key is the membership itself.
type Baskets struct {
	store store.Store
}

func NewBaskets(s store.Store) *Baskets {
	return &Baskets{store: s}
}

func (r *Baskets) Get(ctx context.Context, userUid, groupUid string) (*models.ShoppingBasket, error) {
	var basket models.ShoppingBasket
	if err := r.store.Get(ctx, models.BasketsCollection+"/"+models.BasketKey(userUid, groupUid), &basket); err != nil {
		return nil, err
	}
	if basket.UserUid == "" {
		return nil, nil
	}
	return &basket, nil
}

func (r *Baskets) Save(ctx context.Context, basket *models.ShoppingBasket) error {
	if basket == nil || basket.UserUid == "" || basket.GroupUid == "" {
		return store.ErrNilRecord
	}
	return r.store.Set(ctx, models.BasketsCollection+"/"+models.BasketKey(basket.UserUid, basket.GroupUid), basket)
}

func (r *Baskets) Delete(ctx context.Context, userUid, groupUid string) error {
	return r.store.Delete(ctx, models.BasketsCollection+"/"+models.BasketKey(userUid, groupUid))
}

type BasketItems struct {
	store store.Store
}

func NewBasketItems(s store.Store) *BasketItems {
	return &BasketItems{store: s}
}

func (r *BasketItems) Add(ctx context.Context, item *models.BasketItem) (*models.BasketItem, error) {
	if item == nil {
		return nil, store.ErrNilRecord
	}
	key, err := store.NewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: basket item key: %v", store.ErrTaskFailed, err)
	}
	item.Uid = key
	if err := r.store.Set(ctx, models.BasketItemsCollection+"/"+key, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *BasketItems) GetByUid(ctx context.Context, uid string) (*models.BasketItem, error) {
	var item models.BasketItem
	if err := r.store.Get(ctx, models.BasketItemsCollection+"/"+uid, &item); err != nil {
		return nil, err
	}
	if item.Uid == "" {
		return nil, nil
	}
	return &item, nil
}

func (r *BasketItems) ByBasket(ctx context.Context, basketUid string) ([]models.BasketItem, error) {
	return r.query(ctx, "basketUid", basketUid)
}

func (r *BasketItems) ByGroup(ctx context.Context, groupUid string) ([]models.BasketItem, error) {
	return r.query(ctx, "groupUid", groupUid)
}

func (r *BasketItems) query(ctx context.Context, field, value string) ([]models.BasketItem, error) {
	var matches map[string]models.BasketItem
	if err := r.store.Query(ctx, models.BasketItemsCollection, field, value, &matches); err != nil {
		return nil, err
	}
	items := make([]models.BasketItem, 0, len(matches))
	for _, item := range matches {
		items = append(items, item)
	}
	return items, nil
}

func (r *BasketItems) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.BasketItemsCollection+"/"+uid)
}
