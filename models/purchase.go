package models

const PurchasesCollection = "purchases"

// PurchasedItem records that a basket item was bought, pending settlement.
// Settlement consumes these in bulk — pay-once, not a ledger.
type PurchasedItem struct {
	Uid           string `json:"uid"`
	GroupUid      string `json:"groupUid"`
	UserUid       string `json:"userUid"`
	BasketItemUid string `json:"basketItemUid"`
}

// ShareTotal is one user's owed total after settlement. Order of shares in a
// settlement response is unspecified.
type ShareTotal struct {
	UserUid  string  `json:"user_uid"`
	Username string  `json:"username"`
	Total    float64 `json:"total"`
}

type SettlementResponse struct {
	GroupUid  string       `json:"group_uid"`
	GroupName string       `json:"group_name"`
	Shares    []ShareTotal `json:"shares"`
}
