package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour-admin-backend/controllers"
	"tour-admin-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles the handler instances the router wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Tours    *controllers.TourController
	Editor   *controllers.EditorController
	Category *controllers.CategoryController
	Inquiry  *controllers.InquiryController
	Settings *controllers.SettingsController
	Roles    *controllers.RoleController
}

func SetupRouter(db *gorm.DB, store sessions.Store, ctrl Controllers, uploadsDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(sessions.Sessions("admin_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/logout", ctrl.Auth.Logout)
			auth.GET("/me", middleware.RequireAdmin(db), ctrl.Auth.Me)
		}

		admin := api.Group("", middleware.RequireAdmin(db))
		{
			tours := admin.Group("/tours")
			{
				tours.GET("", ctrl.Tours.List)
				tours.GET("/slug-check", ctrl.Tours.SlugCheck)
				tours.GET("/:id", ctrl.Tours.Get)
				tours.GET("/:id/preview", ctrl.Tours.Preview)
				tours.DELETE("/:id", ctrl.Tours.Delete)
			}

			editorRoutes := admin.Group("/editor/sessions")
			{
				editorRoutes.POST("", ctrl.Editor.Open)
				editorRoutes.GET("/:sid", ctrl.Editor.State)
				editorRoutes.DELETE("/:sid", ctrl.Editor.Close)
				editorRoutes.PATCH("/:sid/field", ctrl.Editor.SetField)

				editorRoutes.PUT("/:sid/itinerary", ctrl.Editor.ReplaceItinerary)
				editorRoutes.POST("/:sid/itinerary", ctrl.Editor.AddItineraryDay)
				editorRoutes.PATCH("/:sid/itinerary/:index", ctrl.Editor.UpdateItineraryDay)
				editorRoutes.DELETE("/:sid/itinerary/:index", ctrl.Editor.RemoveItineraryDay)
				editorRoutes.POST("/:sid/itinerary/:index/move", ctrl.Editor.MoveItineraryDay)

				editorRoutes.PUT("/:sid/gallery", ctrl.Editor.ReplaceGallery)
				editorRoutes.POST("/:sid/gallery", ctrl.Editor.AddGalleryImage)
				editorRoutes.DELETE("/:sid/gallery/:index", ctrl.Editor.RemoveGalleryImage)
				editorRoutes.POST("/:sid/gallery/:index/move", ctrl.Editor.MoveGalleryImage)

				editorRoutes.POST("/:sid/draft", ctrl.Editor.EnsureDraft)
				editorRoutes.GET("/:sid/slug", ctrl.Editor.ValidateSlug)
				editorRoutes.POST("/:sid/upload", ctrl.Editor.Upload)
				editorRoutes.POST("/:sid/save", ctrl.Editor.Save)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", ctrl.Category.List)
				categories.GET("/grouped", ctrl.Category.Grouped)
				categories.POST("", ctrl.Category.Create)
				categories.PUT("/:id", ctrl.Category.Update)
				categories.DELETE("/:id", ctrl.Category.Delete)
			}

			inquiries := admin.Group("/inquiries")
			{
				inquiries.GET("/tours", ctrl.Inquiry.ListTourInquiries)
				inquiries.PATCH("/tours/:id", ctrl.Inquiry.UpdateTourInquiry)
				inquiries.GET("/day-out", ctrl.Inquiry.ListDayOutInquiries)
				inquiries.PATCH("/day-out/:id", ctrl.Inquiry.UpdateDayOutInquiry)
				inquiries.GET("/contact", ctrl.Inquiry.ListContactInquiries)
				inquiries.PATCH("/contact/:id", ctrl.Inquiry.UpdateContactInquiry)
				inquiries.GET("/quick", ctrl.Inquiry.ListQuickEnquiries)
				inquiries.PATCH("/quick/:id", ctrl.Inquiry.UpdateQuickEnquiry)
			}

			roles := admin.Group("/roles")
			{
				roles.GET("", ctrl.Roles.List)
				roles.POST("", ctrl.Roles.Assign)
				roles.DELETE("/:id", ctrl.Roles.Remove)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("/hero-banner", ctrl.Settings.GetHeroBanner)
				settings.PUT("/hero-banner", ctrl.Settings.UpdateHeroBanner)
				settings.GET("/content/:key", ctrl.Settings.GetContent)
			}
		}
	}

	return r
}
