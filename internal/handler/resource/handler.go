package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dvhelper/backend/internal/model/resource"
	"github.com/dvhelper/backend/pkg/utils"
)

// Handler 静态资源(欢迎语, 求助热线, 快捷回复)的HTTP处理器
type Handler struct {
	resources resource.Store
}

// New 创建资源处理器
func New(resources resource.Store) *Handler {
	return &Handler{
		resources: resources,
	}
}

// RegisterRoutes 注册资源相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources", h.handleGetResources)
}

// handleGetResources 返回完整的资源包
func (h *Handler) handleGetResources(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.resources.Bundle())
}
