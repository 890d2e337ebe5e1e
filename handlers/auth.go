package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"shopsync-backend/models"
	"shopsync-backend/store"
	"shopsync-backend/utils"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	InviteToken string `json:"invite_token"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "Failed to hash password")
		return
	}

	user, err := h.Users.Add(ctx, &models.UserProfile{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		utils.BadRequest(c, "Email already registered")
		return
	}
	if err != nil {
		utils.InternalError(c, "Failed to create user")
		return
	}

	// A register call arriving through an invitation link joins the group
	// right away.
	if req.InviteToken != "" && h.Invitations.Enabled() {
		h.acceptInvite(c, user, req.InviteToken)
	}

	token, err := utils.GenerateToken(h.JWTSecret, user.Uid, user.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Registration successful", AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.InternalError(c, "Failed to look up user")
		return
	}
	if user == nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, user.Uid, user.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

// POST /api/auth/logout — blacklists the token for its remaining lifetime.
// Without redis the client simply discards the token.
func (h *Handler) Logout(c *gin.Context) {
	h.blacklistToken(c)
	utils.SuccessResponse(c, http.StatusOK, "Signed out", nil)
}

func (h *Handler) blacklistToken(c *gin.Context) {
	if h.Redis == nil {
		return
	}
	token := c.GetString("token")
	if exp, ok := c.Get("token_expires"); ok {
		if ttl := time.Until(exp.(time.Time)); ttl > 0 && token != "" {
			h.Redis.Set(c.Request.Context(), "bl:"+token, "1", ttl)
		}
	}
}

// acceptInvite joins a freshly registered user to the invited group. Best
// effort: registration itself already succeeded, a broken invite never
// fails it.
func (h *Handler) acceptInvite(c *gin.Context, user *models.UserProfile, token string) {
	ctx := c.Request.Context()
	invite, err := h.Invitations.Take(ctx, token)
	if err != nil || invite == nil {
		return
	}
	group, err := h.Groups.GetByUid(ctx, invite.GroupUid)
	if err != nil || group == nil {
		return
	}
	if err := h.GroupService.AddMember(ctx, group, user); err != nil {
		return
	}
	h.Activity.Record(group.Uid, user.Uid, "member_joined", user.Username+" joined "+group.Name)
}
