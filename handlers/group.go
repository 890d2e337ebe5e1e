package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// POST /api/groups
func (h *Handler) CreateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	creator, err := h.Users.GetByUid(ctx, userUid)
	if err != nil {
		utils.InternalError(c, "Failed to load user")
		return
	}
	if creator == nil {
		utils.Unauthorized(c, "Unknown user")
		return
	}

	group, err := h.GroupService.Create(ctx, creator, req.Name, req.Description)
	if err != nil {
		utils.InternalError(c, "Failed to create group")
		return
	}

	h.Activity.Record(group.Uid, userUid, "group_created",
		fmt.Sprintf("%s created group \"%s\"", creator.Username, group.Name))

	utils.SuccessResponse(c, http.StatusCreated, "Group created", h.buildGroupResponse(ctx, group))
}

// GET /api/groups
func (h *Handler) GetGroups(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	groupUids, err := h.Membership.GroupsForUser(ctx, userUid)
	if err != nil {
		utils.InternalError(c, "Failed to load groups")
		return
	}

	responses := make([]models.GroupResponse, 0, len(groupUids))
	for _, groupUid := range groupUids {
		group, err := h.Groups.GetByUid(ctx, groupUid)
		if err != nil || group == nil {
			continue
		}
		responses = append(responses, h.buildGroupResponse(ctx, group))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/groups/:id
func (h *Handler) GetGroup(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")

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

	utils.SuccessResponse(c, http.StatusOK, "", h.buildGroupResponse(ctx, group))
}

// PUT /api/groups/:id
func (h *Handler) UpdateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")

	if !h.requireMember(c, groupUid) {
		return
	}

	var req models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
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

	if req.Name != "" {
		group.Name = req.Name
	}
	if req.Description != "" {
		group.Description = req.Description
	}

	if err := h.Groups.Update(ctx, group); err != nil {
		utils.InternalError(c, "Failed to update group")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Group updated", h.buildGroupResponse(ctx, group))
}

// DELETE /api/groups/:id — cascades to items, baskets, and purchases.
func (h *Handler) DeleteGroup(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")

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

	if err := h.GroupService.Delete(ctx, group); err != nil {
		utils.InternalError(c, "Failed to delete group")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Group deleted", nil)
}

// POST /api/groups/:id/members
func (h *Handler) AddMember(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	group, err := h.Groups.GetByUid(ctx, groupUid)
	if err != nil || group == nil {
		utils.NotFound(c, "Group not found")
		return
	}

	var target *models.UserProfile
	if req.UserUid != "" {
		target, err = h.Users.GetByUid(ctx, req.UserUid)
	} else if req.Email != "" {
		target, err = h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	} else {
		utils.BadRequest(c, "user_uid or email required")
		return
	}
	if err != nil {
		utils.InternalError(c, "Failed to look up user")
		return
	}

	if target == nil {
		// Not registered yet — fall back to an invitation when possible.
		if req.Email == "" || !h.Invitations.Enabled() {
			utils.NotFound(c, "User not found")
			return
		}
		inviter, err := h.Users.GetByUid(ctx, userUid)
		if err != nil || inviter == nil {
			utils.InternalError(c, "Failed to load user")
			return
		}
		if _, err := h.Invitations.Create(ctx, group, inviter, req.Email); err != nil {
			utils.InternalError(c, "Failed to send invitation")
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Invitation sent", nil)
		return
	}

	if err := h.GroupService.AddMember(ctx, group, target); err != nil {
		utils.InternalError(c, "Failed to add member")
		return
	}

	h.Activity.Record(groupUid, userUid, "member_joined",
		fmt.Sprintf("%s joined %s", target.Username, group.Name))

	utils.SuccessResponse(c, http.StatusOK, "Member added", target.ToResponse())
}

// DELETE /api/groups/:id/members/:uid
func (h *Handler) RemoveMember(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	memberUid := c.Param("uid")

	if !h.requireMember(c, groupUid) {
		return
	}

	group, err := h.Groups.GetByUid(ctx, groupUid)
	if err != nil || group == nil {
		utils.NotFound(c, "Group not found")
		return
	}

	if err := h.GroupService.RemoveMember(ctx, group, memberUid); err != nil {
		utils.InternalError(c, "Failed to remove member")
		return
	}

	if removed, err := h.Users.GetByUid(ctx, memberUid); err == nil && removed != nil {
		h.Activity.Record(groupUid, utils.GetCurrentUserUID(c), "member_left",
			fmt.Sprintf("%s left %s", removed.Username, group.Name))
	}

	utils.SuccessResponse(c, http.StatusOK, "Member removed", nil)
}

// POST /api/groups/:id/invite
func (h *Handler) InviteToGroup(c *gin.Context) {
	ctx := c.Request.Context()
	groupUid := c.Param("id")
	userUid := utils.GetCurrentUserUID(c)

	if !h.requireMember(c, groupUid) {
		return
	}

	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	group, err := h.Groups.GetByUid(ctx, groupUid)
	if err != nil || group == nil {
		utils.NotFound(c, "Group not found")
		return
	}
	inviter, err := h.Users.GetByUid(ctx, userUid)
	if err != nil || inviter == nil {
		utils.InternalError(c, "Failed to load user")
		return
	}

	if _, err := h.Invitations.Create(ctx, group, inviter, strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		utils.InternalError(c, "Failed to send invitation")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Invitation sent", nil)
}

// POST /api/invites/:token/accept
func (h *Handler) AcceptInvite(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	user, err := h.Users.GetByUid(ctx, userUid)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to load user")
		return
	}

	invite, err := h.Invitations.Take(ctx, c.Param("token"))
	if err != nil {
		utils.InternalError(c, "Failed to resolve invitation")
		return
	}
	if invite == nil {
		utils.NotFound(c, "Invitation not found or expired")
		return
	}

	group, err := h.Groups.GetByUid(ctx, invite.GroupUid)
	if err != nil {
		utils.InternalError(c, "Failed to load group")
		return
	}
	if group == nil {
		utils.NotFound(c, "Group no longer exists")
		return
	}

	if err := h.GroupService.AddMember(ctx, group, user); err != nil {
		utils.InternalError(c, "Failed to join group")
		return
	}

	h.Activity.Record(group.Uid, userUid, "member_joined", user.Username+" joined "+group.Name)

	utils.SuccessResponse(c, http.StatusOK, "Joined group", h.buildGroupResponse(ctx, group))
}
