package http_auth_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/babmate/core/internal/delivery/http/common"
)

const (
	header = "X-user-token"

	// MemberIDKey is where the resolved member id lands in the gin context.
	MemberIDKey = "member_id"
)

type SessionResolver interface {
	Get(key string) (string, error)
}

// Middleware resolves the caller's session token to a member id. Who the
// member may act as (host, active participant) is decided per-operation
// in the usecase, not here.
type Middleware struct {
	sessions SessionResolver
	logger   *slog.Logger
}

func New(sessions SessionResolver) *Middleware {
	return &Middleware{
		sessions: sessions,
		logger:   slog.Default(),
	}
}

func (m *Middleware) MemberRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(header)
		if t == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: header + " header required",
			})
			ctx.Abort()
			return
		}

		memberID, err := m.sessions.Get(t)
		if err != nil {
			m.logger.Error("session lookup failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}
		if memberID == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			ctx.Abort()
			return
		}
		if _, err := uuid.Parse(memberID); err != nil {
			m.logger.Error("corrupt session value", slog.String("value", memberID))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			ctx.Abort()
			return
		}

		ctx.Set(MemberIDKey, memberID)
		ctx.Next()
	}
}

// MemberID extracts the member id set by MemberRequired.
func MemberID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.GetString(MemberIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
