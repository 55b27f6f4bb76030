package router

import (
	"kantinkampus/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.GetProfile, authRequired)
	users.PUT("/me", handler.UpdateProfile, authRequired)
}

func SetupStandRoutes(api *echo.Group, handler *rest.StandHandler, authRequired, sellerOnly echo.MiddlewareFunc) {
	stands := api.Group("/stands")

	stands.GET("", handler.GetAllStands, authRequired)
	stands.GET("/:id", handler.GetStand, authRequired)

	stands.POST("", handler.CreateStand, authRequired, sellerOnly)
	stands.GET("/me", handler.GetMyStand, authRequired, sellerOnly)
	stands.PUT("/me", handler.UpdateStand, authRequired, sellerOnly)
}

func SetupMenuRoutes(api *echo.Group, handler *rest.MenuHandler, reviewHandler *rest.ReviewHandler, authRequired, sellerOnly, buyerOnly echo.MiddlewareFunc) {
	menus := api.Group("/menus", authRequired)

	menus.GET("", handler.GetMenus)
	menus.GET("/:id", handler.GetMenu)
	menus.GET("/:id/reviews", reviewHandler.GetMenuReviews)

	menus.POST("", handler.AddMenu, sellerOnly)
	menus.PUT("/:id", handler.UpdateMenu, sellerOnly)
	menus.DELETE("/:id", handler.DeleteMenu, sellerOnly)

	menus.POST("/:id/reviews", reviewHandler.AddReview, buyerOnly)

	api.GET("/stands/:id/menus", handler.GetMenusByStand, authRequired)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired, buyerOnly echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired, buyerOnly)

	cart.POST("", handler.AddToCart)
	cart.GET("", handler.GetCart)
	cart.GET("/count", handler.CartCount)
	cart.PUT("/:id", handler.UpdateQty)
	cart.DELETE("/:id", handler.RemoveLine)
	cart.DELETE("", handler.ClearCart)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired, sellerOnly, buyerOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("/checkout", handler.Checkout, buyerOnly)
	orders.GET("", handler.GetBuyerOrders, buyerOnly)
	orders.GET("/:id", handler.GetOrder)
	orders.POST("/:id/payment-proof", handler.SubmitPaymentProof, buyerOnly)

	orders.POST("/:id/verify-payment", handler.VerifyPayment, sellerOnly)
	orders.PATCH("/:id/status", handler.UpdateStatus, sellerOnly)
	orders.POST("/:id/cancel", handler.CancelOrder, sellerOnly)

	api.GET("/sellers/orders", handler.GetSellerOrders, authRequired, sellerOnly)
}

func SetupFavoriteRoutes(api *echo.Group, handler *rest.FavoriteHandler, authRequired, buyerOnly echo.MiddlewareFunc) {
	favorites := api.Group("/favorites", authRequired, buyerOnly)

	favorites.GET("", handler.GetFavorites)
	favorites.POST("/menus/:id", handler.Toggle)
}

func SetupNotificationRoutes(api *echo.Group, handler *rest.NotificationHandler, authRequired echo.MiddlewareFunc) {
	notifications := api.Group("/notifications", authRequired)

	notifications.GET("", handler.GetUnread)
	notifications.GET("/count", handler.UnreadCount)
	notifications.PATCH("/:id/read", handler.MarkRead)
}

func SetupStatsRoutes(api *echo.Group, handler *rest.StatsHandler, authRequired, sellerOnly echo.MiddlewareFunc) {
	api.GET("/sellers/stats", handler.GetSellerStats, authRequired, sellerOnly)
}
