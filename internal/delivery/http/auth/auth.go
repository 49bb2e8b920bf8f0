package http_auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/babmate/core/internal/delivery/http/common"
)

const sessionTTL = 24 * time.Hour

type SessionStore interface {
	Set(key string, value string, ttl time.Duration) error
}

// Controller issues development sessions: a token mapped to a member id.
// Production login flows live in the auth service; the vote core only
// needs a way to resolve X-user-token to a member.
type Controller struct {
	sessions SessionStore
	logger   *slog.Logger
}

func New(sessions SessionStore) *Controller {
	return &Controller{
		sessions: sessions,
		logger:   slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/sessions", c.createSession)
}

type CreateSessionRequestDTO struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type CreateSessionResponseDTO struct {
	Token string `json:"token"`
}

func (c *Controller) createSession(ctx *gin.Context) {
	var req CreateSessionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	token := uuid.NewString()
	if err := c.sessions.Set(token, req.MemberID, sessionTTL); err != nil {
		c.logger.Error("failed to store session", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, CreateSessionResponseDTO{Token: token})
}
