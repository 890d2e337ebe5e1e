package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shopsync-backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupTestRouter(t)

	token := register(t, r, "alice", "alice@example.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with correct password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		decodeData(t, w, &resp)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "alice", resp.User.Username)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile requires token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile with token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/users/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var user models.UserResponse
		decodeData(t, w, &user)
		require.Equal(t, "alice@example.com", user.Email)
	})
}

func TestDeleteAccountPurgesMemberships(t *testing.T) {
	r := setupTestRouter(t)

	aliceToken := register(t, r, "alice", "alice@example.com")
	bobToken := register(t, r, "bob", "bob@example.com")

	var group models.GroupResponse
	w := doRequest(t, r, http.MethodPost, "/api/groups", aliceToken, gin.H{"name": "Flat 4B"})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &group)

	w = doRequest(t, r, http.MethodPost, "/api/groups/"+group.Uid+"/members", aliceToken, gin.H{"email": "bob@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/users/me", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Bob is gone from the group alice still sees.
	w = doRequest(t, r, http.MethodGet, "/api/groups/"+group.Uid, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fresh models.GroupResponse
	decodeData(t, w, &fresh)
	require.Len(t, fresh.Members, 1)
	require.Equal(t, "alice", fresh.Members[0].Username)

	// Bob's token still parses but the account is absent.
	w = doRequest(t, r, http.MethodGet, "/api/users/me", bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
