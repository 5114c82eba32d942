package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"gorm.io/gorm"

	httputil "pawbook/pkg/http"
	"pawbook/pkg/logger"
)

type HealthHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthHandler(db *gorm.DB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log,
	}
}

// Health reports process liveness only.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, map[string]string{"status": "ok"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Health", "operation", "WriteSuccess", "error", err)
	}
}

// Ready additionally pings the database.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Error("Readiness check failed", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"status": "ready"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Ready", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
