package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	vendingHandler *handler.VendingHandler,
	adminHandler *handler.AdminHandler,
	adminPassword string,
	logger coreport.Logger,
) {
	router.GET("/products", vendingHandler.ListProducts)
	router.GET("/balance", vendingHandler.GetBalance)
	router.GET("/tray", vendingHandler.GetTray)
	router.POST("/coins", vendingHandler.InsertCoin)
	router.POST("/purchase", vendingHandler.Purchase)
	router.POST("/change", vendingHandler.TakeChange)

	adminRoutes := router.Group("/admin", middleware.AdminAuth(adminPassword, logger))
	{
		adminRoutes.GET("/bank", adminHandler.GetBank)
		adminRoutes.POST("/products/:id/restock", adminHandler.Restock)
		adminRoutes.POST("/coins", adminHandler.Deposit)
		adminRoutes.GET("/revenue", adminHandler.GetRevenue)
		adminRoutes.POST("/revenue/collect", adminHandler.CollectRevenue)
		adminRoutes.GET("/journal", adminHandler.GetJournal)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
