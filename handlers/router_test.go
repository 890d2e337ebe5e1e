package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shopsync-backend/middleware"
	"shopsync-backend/repository"
	"shopsync-backend/services"
	"shopsync-backend/store"
)

const testSecret = "test-secret"

// setupTestRouter wires the full handler over an in-memory store, with
// redis/postgres/sendgrid absent — the same degraded mode main supports.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	users := repository.NewUsers(mem)
	groups := repository.NewGroups(mem)
	items := repository.NewItems(mem)
	baskets := repository.NewBaskets(mem)
	basketItems := repository.NewBasketItems(mem)
	purchases := repository.NewPurchases(mem)
	membership := services.NewMembershipIndex(mem)
	notifier := services.NewNotifier("", "noreply@test.local", "ShopSync", "http://localhost")

	h := &Handler{
		Users:        users,
		Groups:       groups,
		Items:        items,
		Baskets:      baskets,
		BasketItems:  basketItems,
		Purchases:    purchases,
		Membership:   membership,
		GroupService: services.NewGroups(groups, items, baskets, basketItems, purchases, membership),
		Settlement:   services.NewSettlement(purchases, basketItems, users),
		Invitations:  services.NewInvitations(nil, notifier),
		Notifier:     notifier,
		Activity:     services.NewActivityLog(nil),
		JWTSecret:    testSecret,
	}

	r := gin.New()
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(testSecret, nil))
	{
		api.POST("/auth/logout", h.Logout)
		api.GET("/users/me", h.GetProfile)
		api.PUT("/users/me", h.UpdateProfile)
		api.DELETE("/users/me", h.DeleteAccount)
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.GetGroups)
		api.GET("/groups/:id", h.GetGroup)
		api.DELETE("/groups/:id", h.DeleteGroup)
		api.POST("/groups/:id/members", h.AddMember)
		api.DELETE("/groups/:id/members/:uid", h.RemoveMember)
		api.POST("/groups/:id/items", h.CreateItem)
		api.GET("/groups/:id/items", h.GetItems)
		api.POST("/items/:id/claim", h.ClaimItem)
		api.POST("/items/:id/unclaim", h.UnclaimItem)
		api.GET("/groups/:id/basket", h.GetBasket)
		api.POST("/groups/:id/basket/items", h.CommitBasketItem)
		api.POST("/basket-items/:id/purchase", h.PurchaseBasketItem)
		api.GET("/groups/:id/purchases", h.GetPurchases)
		api.POST("/groups/:id/settle", h.SettleGroup)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the API envelope into dest.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "response not successful: %s", envelope.Message)
	if dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
}

func register(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	decodeData(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
