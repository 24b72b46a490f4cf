package handlers

import (
	"time"

	"github.com/genads/genads-api/pkg/middleware"
	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes and middleware attached.
func (h *Handlers) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// Any origin, any method, any header. Credentials stay off because the
	// origin is a wildcard.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", h.Health)
	router.GET("/test", h.DatabaseDiagnostic)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", h.SignUp)
		authRoutes.POST("/signin", h.SignIn)
		authRoutes.GET("/me", middleware.Auth(h.tokens), h.Me)
	}

	router.GET("/dashboard/summary", h.DashboardSummary)

	videoRoutes := router.Group("/video")
	{
		videoRoutes.POST("/create", h.CreateVideoJob)
		videoRoutes.GET("/:id", h.GetVideoJob)
		videoRoutes.POST("/:id/finalize", h.FinalizeVideoJob)
	}

	router.POST("/upload", h.UploadFile)

	return router
}
