package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsync-backend/utils"
)

// GET /api/activity — feed across every group the caller belongs to.
func (h *Handler) GetActivity(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	groupUids, err := h.Membership.GroupsForUser(ctx, userUid)
	if err != nil {
		utils.InternalError(c, "Failed to load groups")
		return
	}

	activities := h.Activity.ForGroups(groupUids, pagination.Limit, pagination.Offset())

	// Attach group names for display.
	groupNames := make(map[string]string, len(groupUids))
	for _, groupUid := range groupUids {
		if group, err := h.Groups.GetByUid(ctx, groupUid); err == nil && group != nil {
			groupNames[groupUid] = group.Name
		}
	}
	for i := range activities {
		activities[i].GroupName = groupNames[activities[i].GroupUid]
	}

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}

// GET /api/groups/:id/activity
func (h *Handler) GetGroupActivity(c *gin.Context) {
	groupUid := c.Param("id")

	if !h.requireMember(c, groupUid) {
		return
	}

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	activities := h.Activity.ForGroup(groupUid, pagination.Limit, pagination.Offset())
	utils.SuccessResponse(c, http.StatusOK, "", activities)
}
