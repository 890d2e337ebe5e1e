package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopsync-backend/models"
	"shopsync-backend/repository"
	"shopsync-backend/services"
	"shopsync-backend/utils"
)

// Handler carries every injected collaborator; main wires it once at boot.
// The store client only ever reaches handlers through these repositories and
// services — there is no package-global store handle anywhere.
type Handler struct {
	Users        *repository.Users
	Groups       *repository.Groups
	Items        *repository.Items
	Baskets      *repository.Baskets
	BasketItems  *repository.BasketItems
	Purchases    *repository.Purchases
	Membership   *services.MembershipIndex
	GroupService *services.Groups
	Settlement   *services.Settlement
	Invitations  *services.Invitations
	Notifier     *services.Notifier
	Activity     *services.ActivityLog
	Redis        *redis.Client
	JWTSecret    string
}

// requireMember writes the 401 itself; callers just return on false.
func (h *Handler) requireMember(c *gin.Context, groupUid string) bool {
	userUid := utils.GetCurrentUserUID(c)
	member, err := h.Membership.Contains(c.Request.Context(), userUid, groupUid)
	if err != nil {
		utils.InternalError(c, "Failed to check membership")
		return false
	}
	if !member {
		utils.Unauthorized(c, "You are not a member of this group")
		return false
	}
	return true
}

func (h *Handler) buildGroupResponse(ctx context.Context, group *models.Group) models.GroupResponse {
	members := make([]models.UserResponse, 0, len(group.MemberUserUids))
	for userUid := range group.MemberUserUids {
		user, err := h.Users.GetByUid(ctx, userUid)
		if err != nil || user == nil {
			continue
		}
		members = append(members, user.ToResponse())
	}
	return models.GroupResponse{
		Uid:         group.Uid,
		Name:        group.Name,
		Description: group.Description,
		Members:     members,
	}
}
