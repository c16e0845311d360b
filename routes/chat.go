package routes

import (
	"net/http"

	"owusu1946/portfolio-chat/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /api/chat", h.ChatHandler)
	mux.HandleFunc("GET /api/tools", h.ToolsHandler)
}
