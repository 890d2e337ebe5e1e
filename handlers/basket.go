package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// GET /api/groups/:id/basket — the caller's basket in this group.
func (h *Handler) GetBasket(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	basket, err := h.Baskets.Get(ctx, userUid, groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load basket")
		return
	}

	response := models.BasketResponse{
		UserUid:  userUid,
		GroupUid: groupUid,
		Items:    []models.ShoppingItem{},
		Claimed:  []models.BasketItem{},
	}
	if basket != nil {
		for _, item := range basket.Items {
			response.Items = append(response.Items, item)
		}
	}

	claimed, err := h.BasketItems.ByBasket(ctx, models.BasketKey(userUid, groupUid))
	if err != nil {
		utils.InternalError(c, "Failed to load basket items")
		return
	}
	response.Claimed = append(response.Claimed, claimed...)

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// POST /api/groups/:id/basket/items — commit a quantity and price for a
// claimed item.
func (h *Handler) CommitBasketItem(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	var req models.CommitBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	item, err := h.Items.GetByUid(ctx, req.ItemUid)
	if err != nil {
		utils.InternalError(c, "Failed to load item")
		return
	}
	if item == nil || item.GroupUid != groupUid {
		utils.BadRequest(c, "Unknown item for this group")
		return
	}

	basketItem, err := h.BasketItems.Add(ctx, &models.BasketItem{
		GroupUid:     groupUid,
		BasketUid:    models.BasketKey(userUid, groupUid),
		ItemUid:      item.Uid,
		ItemName:     item.Name,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		utils.InternalError(c, "Failed to add basket item")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Basket item added", basketItem)
}

// DELETE /api/basket-items/:id — only the basket's owner may remove it.
func (h *Handler) DeleteBasketItem(c *gin.Context) {
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

	if err := h.BasketItems.Delete(ctx, basketItem.Uid); err != nil {
		utils.InternalError(c, "Failed to delete basket item")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Basket item removed", nil)
}
