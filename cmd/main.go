// @title Paket Wisata Backend API
// @version 1.0
// @description CRUD API for the tour package catalog with image uploads

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "PAKET_WISATA_BACK-END/docs" // This is required for swagger
	"PAKET_WISATA_BACK-END/internal/config"
	"PAKET_WISATA_BACK-END/internal/database"
	"PAKET_WISATA_BACK-END/internal/handlers"
	"PAKET_WISATA_BACK-END/internal/middleware"
	"PAKET_WISATA_BACK-END/internal/repository"
	"PAKET_WISATA_BACK-END/internal/routes"
	"PAKET_WISATA_BACK-END/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Database ---
	pool, err := database.NewPool(context.Background(), cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatalf("database: %v", err)
		}
	}

	// --- Uploads ---
	store, err := uploads.NewStore(cfg.ImageDir())
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}
	log.Printf("Saving uploads to %s, served under %s", store.Dir(), cfg.Upload.PublicPath)

	// --- HTTP Handlers ---
	paketRepo := repository.NewPaketWisataRepository(pool, cfg.Database.QueryTimeout)
	paketHandler := handlers.NewPaketWisataHandler(paketRepo)
	healthHandler := handlers.NewHealthHandler(pool, store.Dir())

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, paketHandler, healthHandler, routes.Options{
		Upload:     uploads.Middleware(store, cfg.Server.MaxMultipartMemory, uploads.FieldGambar, uploads.FieldGaleri),
		Static:     uploads.NewServer(cfg.Upload.PublicPath, cfg.Upload.PublicDir),
		PublicPath: cfg.Upload.PublicPath,
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	var handler http.Handler = mux
	handler = middleware.Recover(handler)
	handler = c.Handler(handler)
	handler = middleware.RequestLogger(handler)

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server berhasil berjalan di port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
