package routes

import (
	"net/http"

	"owusu1946/portfolio-chat/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterChatRoutes(mux, h)
}
