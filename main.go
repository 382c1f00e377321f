package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/joho/godotenv"

	"tour-admin-backend/config"
	"tour-admin-backend/controllers"
	"tour-admin-backend/editor"
	"tour-admin-backend/routes"
	"tour-admin-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable is not set")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Initialize services
	tourService := services.NewTourService(db)
	tourContentService := services.NewTourContentService(db)
	categoryService := services.NewCategoryService(db)
	inquiryService := services.NewInquiryService(db)
	siteContentService := services.NewSiteContentService(db)
	roleService := services.NewRoleService(db)
	storageService := services.NewStorageService()
	renderService := services.NewContentRenderService()

	editorManager := editor.NewManager(tourService, tourContentService, editor.AutosaveIntervalFromEnv())

	// Initialize controllers
	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(db),
		Tours:    controllers.NewTourController(tourService, tourContentService, renderService),
		Editor:   controllers.NewEditorController(editorManager, storageService),
		Category: controllers.NewCategoryController(categoryService),
		Inquiry:  controllers.NewInquiryController(inquiryService),
		Settings: controllers.NewSettingsController(siteContentService),
		Roles:    controllers.NewRoleController(roleService),
	}

	store := cookie.NewStore([]byte(sessionSecret))

	// Build router
	router := routes.SetupRouter(db, store, ctrl, storageService.Root)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
