package models

const ItemsCollection = "items"

// ShoppingItem is an entry on a group's shared want-list. InBasket flips when
// a member claims it into their personal basket.
type ShoppingItem struct {
	Uid      string `json:"uid"`
	GroupUid string `json:"groupUid"`
	Name     string `json:"name"`
	InBasket bool   `json:"inBasket"`
}

type CreateItemRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateItemRequest struct {
	Name string `json:"name" binding:"required"`
}
