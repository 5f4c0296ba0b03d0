package routes

import (
	"github.com/akhilgolj/plantopiawebsite-final/controllers"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/akhilgolj/plantopiawebsite-final/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	resRepo := repository.NewReservationRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	promoSvc := services.NewPromotionService(promoRepo)
	userSvc := services.NewUserService(db, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, promoSvc)
	resSvc := services.NewReservationService(db, resRepo, userRepo, branchRepo)

	// Order tracking hub
	hub := ws.NewOrderHub()
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	promoCtrl := controllers.NewPromotionController(promoSvc)
	userCtrl := controllers.NewUserController(userSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	resCtrl := controllers.NewReservationController(resSvc)

	api := r.Group("/api")
	{
		// Storefront (public)
		api.GET("/menu", menuCtrl.List)
		api.GET("/promotions", promoCtrl.List)
		api.GET("/branches", resCtrl.Branches)
		api.GET("/reservations/:branch/:date/:time", resCtrl.ReservedTables)

		// Profile sync after sign-in
		api.POST("/users", userCtrl.Upsert)

		// Per-user records
		u := api.Group("/users/:externalId")
		{
			u.GET("/orders", orderCtrl.List)
			u.POST("/orders", orderCtrl.Create)
			u.POST("/checkout", orderCtrl.Checkout)
			u.PUT("/orders/:orderId/close", orderCtrl.Close)

			u.GET("/reservations", resCtrl.List)
			u.POST("/reservations", resCtrl.Create)
			u.PUT("/reservations/:reservationId/cancel", resCtrl.Cancel)

			u.GET("/cart", cartCtrl.Get)
			u.POST("/cart/items", cartCtrl.Add)
			u.PATCH("/cart/items/qty", cartCtrl.ChangeQty)
			u.DELETE("/cart/items/:name", cartCtrl.RemoveItem)
			u.DELETE("/cart", cartCtrl.Clear)
		}
	}

	r.GET("/ws/orders/:externalId", hub.HandleWebSocket)
}
