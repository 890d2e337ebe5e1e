package services

import (
	"context"

	"shopsync-backend/models"
	"shopsync-backend/repository"
)

// Settlement computes per-user owed totals from a group's purchased items and
// then clears them. Pay-once semantics: once settled, the purchase records
// are gone.
type Settlement struct {
	purchases   *repository.Purchases
	basketItems *repository.BasketItems
	users       *repository.Users
}

func NewSettlement(purchases *repository.Purchases, basketItems *repository.BasketItems, users *repository.Users) *Settlement {
	return &Settlement{purchases: purchases, basketItems: basketItems, users: users}
}

// Settle aggregates quantity×pricePerUnit per purchasing user at full float64
// precision (rounding is a display concern), resolves display names, then
// deletes every purchase record of the group. A group with no purchases
// yields an empty slice. Share order is unspecified.
func (s *Settlement) Settle(ctx context.Context, groupUid string) ([]models.ShareTotal, error) {
	purchases, err := s.purchases.ByGroup(ctx, groupUid)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, purchase := range purchases {
		basketItem, err := s.basketItems.GetByUid(ctx, purchase.BasketItemUid)
		if err != nil {
			return nil, err
		}
		if basketItem == nil {
			// Dangling reference: the basket item was deleted out from
			// under the purchase. Nothing to price, skip it.
			continue
		}
		totals[purchase.UserUid] += float64(basketItem.Quantity) * basketItem.PricePerUnit
	}

	shares := make([]models.ShareTotal, 0, len(totals))
	for userUid, total := range totals {
		username := userUid
		if user, err := s.users.GetByUid(ctx, userUid); err == nil && user != nil {
			username = user.Username
		}
		shares = append(shares, models.ShareTotal{UserUid: userUid, Username: username, Total: total})
	}

	for _, purchase := range purchases {
		if err := s.purchases.Delete(ctx, purchase.Uid); err != nil {
			return nil, err
		}
	}
	return shares, nil
}
