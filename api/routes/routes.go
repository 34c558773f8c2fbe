package routes

import (
	"github.com/gin-gonic/gin"

	"yellowball/internal/config"
	"yellowball/internal/handlers"
	"yellowball/internal/middleware"
)

// HandlerDependencies holds the handlers used by the router
type HandlerDependencies struct {
	TicketHandler *handlers.TicketHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		public.GET("/quickpick", deps.TicketHandler.QuickPick)
		public.GET("/results", deps.TicketHandler.GetResults)

		tickets := public.Group("/tickets")
		{
			tickets.POST("/check", deps.TicketHandler.CheckTicket)
		}
	}

	return router
}
