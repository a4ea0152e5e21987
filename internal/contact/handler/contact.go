package handler

import (
	"encoding/json"
	"net/http"

	"roomly/internal/contact/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ContactHandler struct {
	service service.ContactService
	log     *logger.Logger
}

func NewContactHandler(svc service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: svc,
		log:     log,
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var contact model.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := h.service.Submit(r.Context(), &contact); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, contact)
}

func (h *ContactHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/contact", h.Submit)
}
