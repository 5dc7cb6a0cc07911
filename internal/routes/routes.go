package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"PAKET_WISATA_BACK-END/internal/handlers"
)

// Options carries the pieces the route table mounts besides the handlers
type Options struct {
	// Upload wraps the create/update handlers and saves their files
	Upload func(http.Handler) http.Handler
	// Static serves uploaded files under PublicPath
	Static     http.Handler
	PublicPath string
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, paketHandler *handlers.PaketWisataHandler, healthHandler *handlers.HealthHandler, opts Options) {
	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Tour package routes
	mux.HandleFunc("GET /api/paket-wisata", paketHandler.List)
	mux.HandleFunc("GET /api/paket-wisata/{id}", paketHandler.Get)
	mux.Handle("POST /api/paket-wisata/tambah", opts.Upload(http.HandlerFunc(paketHandler.Create)))
	mux.Handle("PUT /api/paket-wisata/update/{id}", opts.Upload(http.HandlerFunc(paketHandler.Update)))
	mux.HandleFunc("DELETE /api/paket-wisata/hapus/{id}", paketHandler.Delete)

	// Uploaded images
	mux.Handle(opts.PublicPath, opts.Static)

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Paket wisata backend is running."))
}
