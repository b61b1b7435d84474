package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/model/resource"
	chatService "github.com/dvhelper/backend/internal/service/chat"
	"github.com/dvhelper/backend/pkg/utils"
)

// Handler 会话服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	resources resource.Store
}

// New 创建会话处理器
func New(chatSvc *chatService.Service, resources resource.Store) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		resources: resources,
	}
}

// RegisterRoutes 注册会话相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Route("/session/{sessionID}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Post("/messages", h.handleSubmit)
		r.Post("/quick-replies/{index}", h.handleQuickReply)
	})
}

type submitResponse struct {
	Accepted bool          `json:"accepted"`
	Session  chat.Snapshot `json:"session"`
}

// handleCreateSession 创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	conv, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, conv.Snapshot())
}

// handleGetSession 查询会话快照
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.lookup(w, r)
	if !ok {
		return
	}

	utils.RespondJSON(w, http.StatusOK, conv.Snapshot())
}

// handleSubmit 提交用户消息, 回复异步生成
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conv, ok := h.lookup(w, r)
	if !ok {
		return
	}

	h.submit(w, r, conv, payload.Content)
}

// handleQuickReply 以快捷回复代替用户输入
func (h *Handler) handleQuickReply(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "quick reply index must be a number")
		return
	}

	text, found := h.resources.QuickReply(index)
	if !found {
		utils.RespondError(w, http.StatusBadRequest, "quick reply not found")
		return
	}

	conv, ok := h.lookup(w, r)
	if !ok {
		return
	}

	h.submit(w, r, conv, text)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, conv *chatService.Conversation, text string) {
	accepted := conv.Submit(r.Context(), text)
	utils.RespondJSON(w, http.StatusAccepted, submitResponse{
		Accepted: accepted,
		Session:  conv.Snapshot(),
	})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*chatService.Conversation, bool) {
	conv, err := h.chatSvc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return nil, false
	}
	return conv, true
}
