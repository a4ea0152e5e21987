package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roomly/internal/rooms/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	service       service.RoomService
	maxUploadSize int64
	log           *logger.Logger
}

func NewRoomHandler(svc service.RoomService, maxUploadSize int64, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service:       svc,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
}

func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, rooms)
}

func (h *RoomHandler) GetByNumber(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetByNumber(r.Context(), ps.ByName("roomNumber"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, room)
}

// Create accepts a multipart form: roomNumber, roomType, pricePerHour and an
// optional single file field named "image".
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid multipart form",
		})
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("pricePerHour"), 64)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "pricePerHour must be a number",
		})
		return
	}

	room := model.Room{
		RoomNumber:   r.FormValue("roomNumber"),
		RoomType:     r.FormValue("roomType"),
		PricePerHour: price,
	}

	var image *service.ImageUpload
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		image = &service.ImageUpload{
			Filename: header.Filename,
			Reader:   file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid image upload",
		})
		return
	}

	if err := h.service.Create(r.Context(), &room, image); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, room)
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.GetAll)
	router.GET("/rooms/:roomNumber", h.GetByNumber)
	router.POST("/rooms", h.Create)
}
