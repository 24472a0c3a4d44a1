package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/api"
	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	_ "github.com/setbox30-netizen/masjid-baitul-mannan/docs"
	"github.com/setbox30-netizen/masjid-baitul-mannan/middleware"
	"github.com/setbox30-netizen/masjid-baitul-mannan/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every route
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// embedded admin page
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "gagal memuat halaman")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		// everything below needs a valid token; mutations additionally
		// need the admin role
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			statsHandler := api.NewStatsHandler()
			authorized.GET("/stats", statsHandler.Get)

			financeHandler := api.NewFinanceHandler()
			categoryHandler := api.NewCategoryHandler()
			finances := authorized.Group("/finances")
			{
				finances.GET("", financeHandler.List)
				finances.GET("/report", financeHandler.Report)
				finances.GET("/categories", categoryHandler.List)
				finances.GET("/:id", financeHandler.Get)

				admin := finances.Group("")
				admin.Use(middleware.RequireAdmin())
				{
					admin.POST("", financeHandler.Create)
					admin.PUT("/:id", financeHandler.Update)
					admin.DELETE("/:id", financeHandler.Delete)
					admin.POST("/categories", categoryHandler.Create)
					admin.PUT("/categories/:id", categoryHandler.Update)
					admin.DELETE("/categories/:id", categoryHandler.Delete)
				}
			}

			inventoryHandler := api.NewInventoryHandler()
			inventory := authorized.Group("/inventory")
			{
				inventory.GET("", inventoryHandler.List)

				admin := inventory.Group("")
				admin.Use(middleware.RequireAdmin())
				{
					admin.POST("", inventoryHandler.Create)
					admin.PUT("/:id", inventoryHandler.Update)
					admin.DELETE("/:id", inventoryHandler.Delete)
				}
			}

			eventHandler := api.NewEventHandler()
			events := authorized.Group("/events")
			{
				events.GET("", eventHandler.List)

				admin := events.Group("")
				admin.Use(middleware.RequireAdmin())
				{
					admin.POST("", eventHandler.Create)
					admin.PUT("/:id", eventHandler.Update)
					admin.DELETE("/:id", eventHandler.Delete)
				}
			}

			settingsHandler := api.NewSettingsHandler()
			settings := authorized.Group("/settings")
			{
				settings.GET("", settingsHandler.Get)

				admin := settings.Group("")
				admin.Use(middleware.RequireAdmin())
				{
					admin.PUT("", settingsHandler.Update)
					admin.POST("/logo", settingsHandler.UploadLogo)
				}
			}

			exportHandler := api.NewExportHandler(cfg)
			authorized.GET("/export/csv", exportHandler.ExportCSV)
			authorized.GET("/export/excel", exportHandler.ExportExcel)
			authorized.GET("/report/print", exportHandler.PrintReport)
			authorized.POST("/export/email", middleware.RequireAdmin(), exportHandler.EmailReport)
		}
	}

	return r
}

// CORSMiddleware allows cross-origin requests from the SPA
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
