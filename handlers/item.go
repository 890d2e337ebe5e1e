package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// POST /api/groups/:id/items
func (h *Handler) CreateItem(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	item, err := h.Items.Add(ctx, &models.ShoppingItem{
		GroupUid: groupUid,
		Name:     req.Name,
	})
	if err != nil {
		utils.InternalError(c, "Failed to add item")
		return
	}

	h.Activity.Record(groupUid, userUid, "item_added", fmt.Sprintf("Added \"%s\" to the list", item.Name))

	utils.SuccessResponse(c, http.StatusCreated, "Item added", item)
}

// GET /api/groups/:id/items
func (h *Handler) GetItems(c *gin.Context) {
	groupUid := c.Param("id")

	if !h.requireMember(c, groupUid) {
		return
	}

	items, err := h.Items.ByGroup(c.Request.Context(), groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load items")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// PUT /api/items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.Items.GetByUid(ctx, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to load item")
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not found")
		return
	}
	if !h.requireMember(c, item.GroupUid) {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	item.Name = req.Name
	if err := h.Items.Update(ctx, item); err != nil {
		utils.InternalError(c, "Failed to update item")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Item updated", item)
}

// DELETE /api/items/:id — also drops the snapshot from whichever basket
// claimed it.
func (h *Handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.Items.GetByUid(ctx, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to load item")
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not found")
		return
	}
	if !h.requireMember(c, item.GroupUid) {
		return
	}

	if err := h.Items.Delete(ctx, item.Uid); err != nil {
		utils.InternalError(c, "Failed to delete item")
		return
	}
	h.dropFromBaskets(c, item)

	utils.SuccessResponse(c, http.StatusOK, "Item deleted", nil)
}

// POST /api/items/:id/claim — moves the item into the caller's basket.
// Two users racing on the same item resolve last-write-wins, per the store's
// single-key write ordering.
func (h *Handler) ClaimItem(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	item, err := h.Items.GetByUid(ctx, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to load item")
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not found")
		return
	}
	if !h.requireMember(c, item.GroupUid) {
		return
	}

	item.InBasket = true
	if err := h.Items.Update(ctx, item); err != nil {
		utils.InternalError(c, "Failed to update item")
		return
	}

	basket, err := h.Baskets.Get(ctx, userUid, item.GroupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load basket")
		return
	}
	if basket == nil {
		basket = &models.ShoppingBasket{UserUid: userUid, GroupUid: item.GroupUid}
	}
	if basket.Items == nil {
		basket.Items = map[string]models.ShoppingItem{}
	}
	basket.Items[item.Uid] = *item
	if err := h.Baskets.Save(ctx, basket); err != nil {
		utils.InternalError(c, "Failed to update basket")
		return
	}

	h.Activity.Record(item.GroupUid, userUid, "item_claimed", fmt.Sprintf("Claimed \"%s\"", item.Name))

	utils.SuccessResponse(c, http.StatusOK, "Item claimed", item)
}

// POST /api/items/:id/unclaim
func (h *Handler) UnclaimItem(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	item, err := h.Items.GetByUid(ctx, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to load item")
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not found")
		return
	}
	if !h.requireMember(c, item.GroupUid) {
		return
	}

	item.InBasket = false
	if err := h.Items.Update(ctx, item); err != nil {
		utils.InternalError(c, "Failed to update item")
		return
	}

	basket, err := h.Baskets.Get(ctx, userUid, item.GroupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load basket")
		return
	}
	if basket != nil && basket.Items != nil {
		delete(basket.Items, item.Uid)
		if err := h.Baskets.Save(ctx, basket); err != nil {
			utils.InternalError(c, "Failed to update basket")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Item unclaimed", item)
}

// dropFromBaskets removes a deleted item's snapshot from every member basket
// that holds it. Best effort — a basket we cannot load is skipped.
func (h *Handler) dropFromBaskets(c *gin.Context, item *models.ShoppingItem) {
	ctx := c.Request.Context()
	group, err := h.Groups.GetByUid(ctx, item.GroupUid)
	if err != nil || group == nil {
		return
	}
	for memberUid := range group.MemberUserUids {
		basket, err := h.Baskets.Get(ctx, memberUid, item.GroupUid)
		if err != nil || basket == nil || basket.Items == nil {
			continue
		}
		if _, held := basket.Items[item.Uid]; !held {
			continue
		}
		delete(basket.Items, item.Uid)
		h.Baskets.Save(ctx, basket)
	}
}
