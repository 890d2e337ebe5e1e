package models

const (
	BasketsCollection     = "baskets"
	BasketItemsCollection = "basket_items"
)

// ShoppingBasket is the per-user, per-group holding area of claimed items.
// Its identity key is userUid_groupUid — one basket per membership.
type ShoppingBasket struct {
	UserUid  string                  `json:"userUid"`
	GroupUid string                  `json:"groupUid"`
	Items    map[string]ShoppingItem `json:"items,omitempty"`
}

func BasketKey(userUid, groupUid string) string {
	return userUid + "_" + groupUid
}

// BasketItem is a claimed quantity/price of a shopping item, the unit that
// settlement later prices.
type BasketItem struct {
	Uid          string  `json:"uid"`
	GroupUid     string  `json:"groupUid"`
	BasketUid    string  `json:"basketUid"`
	ItemUid      string  `json:"itemUid"`
	ItemName     string  `json:"itemName"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

type CommitBasketItemRequest struct {
	ItemUid      string  `json:"item_uid" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
}

type BasketResponse struct {
	UserUid  string         `json:"user_uid"`
	GroupUid string         `json:"group_uid"`
	Items    []ShoppingItem `json:"items"`
	Claimed  []BasketItem   `json:"claimed"`
}
