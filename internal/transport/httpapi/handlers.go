package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/internal/service/chat"
)

type handler struct {
	svc *chat.Service
}

func newHandler(svc *chat.Service) *handler {
	return &handler{svc: svc}
}

func (h *handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": core.ServiceName,
			"version": core.ServiceVersion,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/summarize", h.summarize)
	api.POST("/chat", h.chat)
}

type summarizeRequest struct {
	Transcript string `json:"transcript"`
	MaxTokens  int    `json:"max_tokens"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

func (h *handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.svc.Summarize(c.Request.Context(), req.Transcript, req.MaxTokens)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

type chatRequest struct {
	Action    string         `json:"action"`
	Context   string         `json:"context"`
	Question  string         `json:"question"`
	History   []core.Message `json:"history"`
	SessionID string         `json:"session_id"`
}

type chatResponse struct {
	Action      string   `json:"action"`
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	SessionID   string   `json:"session_id"`
}

func (h *handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Ask(c.Request.Context(), core.ChatRequest{
		Action:    core.Action(req.Action),
		Context:   req.Context,
		Question:  req.Question,
		History:   req.History,
		SessionID: req.SessionID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Action:      string(result.Action),
		Response:    result.Response,
		Suggestions: result.Suggestions,
		SessionID:   result.SessionID,
	})
}

// writeError maps service errors to HTTP statuses. Provider and storage
// failures get generic messages; the diagnostic detail is already logged
// where the failure happened.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrProviderOverloaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "the model is overloaded, try again later"})
	case errors.Is(err, core.ErrProviderUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusBadGateway, gin.H{"error": "the model is currently unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
