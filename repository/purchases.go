package repository

import (
	"context"
	"fmt"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

type Purchases struct {
	store store.Store
}

func NewPurchases(s store.Store) *Purchases {
	return &Purchases{store: s}
}

func (r *Purchases) Add(ctx context.Context, purchase *models.PurchasedItem) (*models.PurchasedItem, error) {
	if purchase == nil {
		return nil, store.ErrNilRecord
	}
	key, err := store.NewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: purchase key: %v", store.ErrTaskFailed, err)
	}
	purchase.Uid = key
	if err := r.store.Set(ctx, models.PurchasesCollection+"/"+key, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *Purchases) GetByUid(ctx context.Context, uid string) (*models.PurchasedItem, error) {
	var purchase models.PurchasedItem
	if err := r.store.Get(ctx, models.PurchasesCollection+"/"+uid, &purchase); err != nil {
		return nil, err
	}
	if purchase.Uid == "" {
		return nil, nil
	}
	return &purchase, nil
}

func (r *Purchases) ByGroup(ctx context.Context, groupUid string) ([]models.PurchasedItem, error) {
	return r.query(ctx, "groupUid", groupUid)
}

func (r *Purchases) ByUser(ctx context.Context, userUid string) ([]models.PurchasedItem, error) {
	return r.query(ctx, "userUid", userUid)
}

func (r *Purchases) query(ctx context.Context, field, value string) ([]models.PurchasedItem, error) {
	var matches map[string]models.PurchasedItem
	if err := r.store.Query(ctx, models.PurchasesCollection, field, value, &matches); err != nil {
		return nil, err
	}
	purchases := make([]models.PurchasedItem, 0, len(matches))
	for _, purchase := range matches {
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func (r *Purchases) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.PurchasesCollection+"/"+uid)
}
