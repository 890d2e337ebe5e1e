package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// POST /api/basket-items/:id/purchase — records that the caller bought this
// basket item and takes the snapshot out of their basket.
func (h *Handler) PurchaseBasketItem(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	basketItem, err := h.BasketItems.GetByUid(ctx, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to load basket item")
		return
	}
	if basketItem == nil {
		utils.NotFound(c, "Basket item not found")
		return
	}
	if !strings.HasPrefix(basketItem.BasketUid, userUid+"_") {
		utils.Unauthorized(c, "Not your basket item")
		return
	}

	purchase, err := h.Purchases.Add(ctx, &models.PurchasedItem{
		GroupUid:      basketItem.GroupUid,
		UserUid:       userUid,
		BasketItemUid: basketItem.Uid,
	})
	if err != nil {
		utils.InternalError(c, "Failed to record purchase")
		return
	}

	if basket, err := h.Baskets.Get(ctx, userUid, basketItem.GroupUid); err == nil && basket != nil && basket.Items != nil {
		delete(basket.Items, basketItem.ItemUid)
		h.Baskets.Save(ctx, basket)
	}

	h.Activity.Record(basketItem.GroupUid, userUid, "item_purchased",
		fmt.Sprintf("Bought %d × \"%s\"", basketItem.Quantity, basketItem.ItemName))

	utils.SuccessResponse(c, http.StatusCreated, "Purchase recorded", purchase)
}

// GET /api/groups/:id/purchases
func (h *Handler) GetPurchases(c *gin.Context) {
	groupUid := c.Param("id")

	if !h.requireMember(c, groupUid) {
		return
	}

	purchases, err := h.Purchases.ByGroup(c.Request.Context(), groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load purchases")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", purchases)
}

// POST /api/groups/:id/settle — computes per-user totals, clears the group's
// purchase state, and mails each member their share. Pay once: the purchase
// records are gone after this call.
func (h *Handler) SettleGroup(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	group, err := h.Groups.GetByUid(ctx, groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load group")
		return
	}
	if group == nil {
		utils.NotFound(c, "Group not found")
		return
	}

	shares, err := h.Settlement.Settle(ctx, groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to settle group")
		return
	}

	h.Activity.Record(groupUid, userUid, "settlement",
		fmt.Sprintf("Settled %d shares in %s", len(shares), group.Name))

	response := models.SettlementResponse{
		GroupUid:  groupUid,
		GroupName: group.Name,
		Shares:    make([]models.ShareTotal, 0, len(shares)),
	}
	for _, share := range shares {
		// Accumulation kept full precision; the response is where the
		// two-decimal display rounding happens.
		rounded := share
		rounded.Total = utils.RoundToTwo(share.Total)
		response.Shares = append(response.Shares, rounded)

		if user, err := h.Users.GetByUid(ctx, share.UserUid); err == nil && user != nil {
			go h.Notifier.NotifySettlement(user.ToResponse(), group.Name, share)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Group settled", response)
}
