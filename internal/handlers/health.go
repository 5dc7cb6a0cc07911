package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"PAKET_WISATA_BACK-END/internal/dto"
	"PAKET_WISATA_BACK-END/internal/utils"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and dependency health
type HealthHandler struct {
	db        Pinger
	uploadDir string
}

// NewHealthHandler creates a HealthHandler; readiness also requires uploadDir
// to be an existing directory when it is non-empty
func NewHealthHandler(db Pinger, uploadDir string) *HealthHandler {
	return &HealthHandler{db: db, uploadDir: uploadDir}
}

// HealthCheck handles basic health check (no database)
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /livez [get]
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck pings the database and checks the upload directory
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	ready := true
	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		ready = false
	}
	if h.uploadDir != "" {
		checks["uploads"] = "ok"
		if err := dirExists(h.uploadDir); err != nil {
			checks["uploads"] = err.Error()
			ready = false
		}
	}

	if !ready {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Checks: checks})
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ready", Checks: checks})
}

func dirExists(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
