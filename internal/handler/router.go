package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dvhelper/backend/internal/handler/chat"
	"github.com/dvhelper/backend/internal/handler/live"
	resourceHandler "github.com/dvhelper/backend/internal/handler/resource"
	middlewarePkg "github.com/dvhelper/backend/internal/middleware"
	"github.com/dvhelper/backend/internal/model/resource"
	chatService "github.com/dvhelper/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(resources resource.Store, chatSvc *chatService.Service, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	// Create handlers
	resourcesHandler := resourceHandler.New(resources)
	chatHandler := chat.New(chatSvc, resources)
	liveHandler := live.NewWebSocketHandler(chatSvc)

	r.Route("/api", func(api chi.Router) {
		resourcesHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		liveHandler.RegisterRoutes(api)
	})

	return r
}
