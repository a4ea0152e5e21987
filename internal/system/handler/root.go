package handler

import (
	"net/http"

	"roomly/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// RootHandler answers the plain-text liveness probe at / and sets the
// short-lived demo cookie the frontend expects to find there.
type RootHandler struct {
	log *logger.Logger
}

func NewRootHandler(log *logger.Logger) *RootHandler {
	return &RootHandler{log: log}
}

func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, &http.Cookie{
		Name:     "roomly_session",
		Value:    "cookie_value",
		MaxAge:   900,
		HttpOnly: true,
		Path:     "/",
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("The backend server is working!"))
}

func (h *RootHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
}
