package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// GET /api/users/me
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Users.GetByUid(c.Request.Context(), utils.GetCurrentUserUID(c))
	if err != nil {
		utils.InternalError(c, "Failed to load profile")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", user.ToResponse())
}

// PUT /api/users/me
func (h *Handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.GetByUid(ctx, utils.GetCurrentUserUID(c))
	if err != nil {
		utils.InternalError(c, "Failed to load profile")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			existing, err := h.Users.GetByEmail(ctx, email)
			if err != nil {
				utils.InternalError(c, "Failed to check email")
				return
			}
			if existing != nil {
				utils.BadRequest(c, "Email already registered")
				return
			}
			user.Email = email
		}
	}

	if err := h.Users.Update(ctx, user); err != nil {
		utils.InternalError(c, "Failed to update profile")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile updated", user.ToResponse())
}

// DELETE /api/users/me — removes the profile and purges every membership.
// Baskets are not cascaded (see DESIGN.md); they are reaped with their group.
func (h *Handler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()
	userUid := utils.GetCurrentUserUID(c)

	if err := h.GroupService.DetachUser(ctx, userUid); err != nil {
		utils.InternalError(c, "Failed to leave groups")
		return
	}
	if err := h.Users.Delete(ctx, userUid); err != nil {
		utils.InternalError(c, "Failed to delete account")
		return
	}

	h.blacklistToken(c)
	utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}
