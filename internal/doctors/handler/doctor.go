package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"pawbook/internal/doctors/service"
	apperrors "pawbook/pkg/errors"
	httputil "pawbook/pkg/http"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

type DoctorHandler struct {
	service service.DoctorService
	log     *logger.Logger
}

func NewDoctorHandler(service service.DoctorService, log *logger.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		log:     log,
	}
}

func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doctors, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	if err := httputil.WriteSuccess(w, doctors); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	idStr := ps.ByName("id")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid doctor id: %s", idStr))); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	doctor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, doctor); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DoctorHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/doctors", h.GetAll)
	router.GET("/doctors/:id", h.GetByID)
}
