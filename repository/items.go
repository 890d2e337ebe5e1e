package repository

import (
	"context"
	"fmt"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

type Items struct {
	store store.Store
}

func NewItems(s store.Store) *Items {
	return &Items{store: s}
}

func (r *Items) Add(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	if item == nil {
		return nil, store.ErrNilRecord
	}
	key, err := store.NewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: item key: %v", store.ErrTaskFailed, err)
	}
	item.Uid = key
	if err := r.store.Set(ctx, models.ItemsCollection+"/"+key, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Items) GetByUid(ctx context.Context, uid string) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	if err := r.store.Get(ctx, models.ItemsCollection+"/"+uid, &item); err != nil {
		return nil, err
	}
	if item.Uid == "" {
		return nil, nil
	}
	return &item, nil
}

// ByGroup is the items-of-a-group equality scan; order is unspecified.
func (r *Items) ByGroup(ctx context.Context, groupUid string) ([]models.ShoppingItem, error) {
	var matches map[string]models.ShoppingItem
	if err := r.store.Query(ctx, models.ItemsCollection, "groupUid", groupUid, &matches); err != nil {
		return nil, err
	}
	items := make([]models.ShoppingItem, 0, len(matches))
	for _, item := range matches {
		items = append(items, item)
	}
	return items, nil
}

func (r *Items) Update(ctx context.Context, item *models.ShoppingItem) error {
	if item == nil || item.Uid == "" {
		return store.ErrNilRecord
	}
	return r.store.Set(ctx, models.ItemsCollection+"/"+item.Uid, item)
}

func (r *Items) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.ItemsCollection+"/"+uid)
}
