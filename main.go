package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"shopsync-backend/config"
	"shopsync-backend/database"
	"shopsync-backend/handlers"
	"shopsync-backend/middleware"
	"shopsync-backend/repository"
	"shopsync-backend/services"
	"shopsync-backend/store"
)

func main() {
	// Load configuration
	config.Load()

	// Pick the document-store backend
	var st store.Store
	switch config.AppConfig.StoreBackend {
	case "memory":
		st = store.NewMemory()
		log.Println("⚠️  Using in-memory store — data is lost on restart")
	default:
		var err error
		st, err = store.NewFirebase(context.Background(), config.AppConfig.FirebaseCredPath, config.AppConfig.FirebaseDBURL)
		if err != nil {
			log.Fatal("Failed to connect to Firebase:", err)
		}
		log.Println("✅ Firebase store connected successfully")
	}

	// Connect to Postgres for the activity feed (optional)
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Repositories
	users := repository.NewUsers(st)
	groups := repository.NewGroups(st)
	items := repository.NewItems(st)
	baskets := repository.NewBaskets(st)
	basketItems := repository.NewBasketItems(st)
	purchases := repository.NewPurchases(st)

	// Services
	membership := services.NewMembershipIndex(st)
	groupService := services.NewGroups(groups, items, baskets, basketItems, purchases, membership)
	settlement := services.NewSettlement(purchases, basketItems, users)
	notifier := services.NewNotifier(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.SendGridFrom,
		config.AppConfig.AppName,
		config.AppConfig.AppURL,
	)
	invitations := services.NewInvitations(database.Redis, notifier)
	activity := services.NewActivityLog(database.DB)

	h := &handlers.Handler{
		Users:        users,
		Groups:       groups,
		Items:        items,
		Baskets:      baskets,
		BasketItems:  basketItems,
		Purchases:    purchases,
		Membership:   membership,
		GroupService: groupService,
		Settlement:   settlement,
		Invitations:  invitations,
		Notifier:     notifier,
		Activity:     activity,
		Redis:        database.Redis,
		JWTSecret:    config.AppConfig.JWTSecret,
	}

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(config.AppConfig.JWTSecret, database.Redis))
	{
		// Auth
		api.POST("/auth/logout", h.Logout)

		// User
		api.GET("/users/me", h.GetProfile)
		api.PUT("/users/me", h.UpdateProfile)
		api.DELETE("/users/me", h.DeleteAccount)

		// Groups
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.GetGroups)
		api.GET("/groups/:id", h.GetGroup)
		api.PUT("/groups/:id", h.UpdateGroup)
		api.DELETE("/groups/:id", h.DeleteGroup)
		api.POST("/groups/:id/members", h.AddMember)
		api.DELETE("/groups/:id/members/:uid", h.RemoveMember)
		api.POST("/groups/:id/invite", h.InviteToGroup)
		api.POST("/invites/:token/accept", h.AcceptInvite)

		// Shopping items
		api.POST("/groups/:id/items", h.CreateItem)
		api.GET("/groups/:id/items", h.GetItems)
		api.PUT("/items/:id", h.UpdateItem)
		api.DELETE("/items/:id", h.DeleteItem)
		api.POST("/items/:id/claim", h.ClaimItem)
		api.POST("/items/:id/unclaim", h.UnclaimItem)

		// Baskets
		api.GET("/groups/:id/basket", h.GetBasket)
		api.POST("/groups/:id/basket/items", h.CommitBasketItem)
		api.DELETE("/basket-items/:id", h.DeleteBasketItem)

		// Purchases & settlement
		api.POST("/basket-items/:id/purchase", h.PurchaseBasketItem)
		api.GET("/groups/:id/purchases", h.GetPurchases)
		api.POST("/groups/:id/settle", h.SettleGroup)

		// Activity
		api.GET("/activity", h.GetActivity)
		api.GET("/groups/:id/activity", h.GetGroupActivity)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	log.Printf("🚀 Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
