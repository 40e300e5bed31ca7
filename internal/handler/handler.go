package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liveroom/backend/internal/auth"
	"liveroom/backend/internal/errs"
	"liveroom/backend/internal/room"
	"liveroom/backend/internal/user"
)

// Handler serves the HTTP API on top of the user directory and room service.
type Handler struct {
	users  *user.Directory
	rooms  *room.Service
	logger *zap.Logger
}

// New creates a Handler.
func New(users *user.Directory, rooms *room.Service, logger *zap.Logger) *Handler {
	return &Handler{users: users, rooms: rooms, logger: logger}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/user/create", h.CreateUser)
	r.POST("/room/list", h.ListRooms)

	authed := r.Group("")
	authed.Use(auth.AuthMiddleware())
	{
		authed.GET("/user/me", h.GetMe)
		authed.POST("/user/update", h.UpdateUser)

		authed.POST("/room/create", h.CreateRoom)
		authed.POST("/room/join", h.JoinRoom)
		authed.POST("/room/wait", h.WaitRoom)
		authed.POST("/room/start", h.StartRoom)
		authed.POST("/room/end", h.EndLive)
		authed.POST("/room/result", h.Result)
		authed.POST("/room/leave", h.LeaveRoom)
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// EmptyResponse is returned by calls that have nothing to report.
type EmptyResponse struct{}

// fail writes the status and message for err. Storage failures are logged
// and reported without detail.
func (h *Handler) fail(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		status, msg = http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, errs.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errors.Is(err, errs.ErrRoomFull):
		status, msg = http.StatusConflict, "Room is full"
	case errors.Is(err, errs.ErrDisbanded):
		status, msg = http.StatusConflict, "Room has been dissolved"
	case errors.Is(err, errs.ErrPermissionDenied):
		status, msg = http.StatusForbidden, "Only the host can do that"
	case errors.Is(err, errs.ErrInvalidStateTransition):
		status, msg = http.StatusConflict, "Not allowed in the current room status"
	case errors.Is(err, errs.ErrOther):
		status, msg = http.StatusBadRequest, "Invalid request"
	default:
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}
