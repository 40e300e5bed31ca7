package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveroom/backend/internal/auth"
)

// region --- DTOs ---

// UserInput is the profile sent on creation and update.
type UserInput struct {
	UserName     string `json:"user_name" binding:"required,max=255" example:"player1"`
	LeaderCardID int64  `json:"leader_card_id" example:"1001"`
}

// UserCreateResponse carries the token issued to a new user.
type UserCreateResponse struct {
	UserToken string `json:"user_token"`
}

// UserResponse is a profile without its token.
type UserResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"player1"`
	LeaderCardID int64  `json:"leader_card_id" example:"1001"`
}

// endregion

// CreateUser godoc
// @Summary      Create a user
// @Description  Registers a profile and returns the token that identifies it from now on.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "Profile"
// @Success      200  {object}  UserCreateResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/create [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.users.CreateUser(c.Request.Context(), input.UserName, input.LeaderCardID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UserCreateResponse{UserToken: token})
}

// GetMe godoc
// @Summary      Get my profile
// @Description  Returns the profile of the token's owner.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	u, err := h.users.UserByToken(c.Request.Context(), auth.Token(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{ID: u.ID, Name: u.Name, LeaderCardID: u.LeaderCardID})
}

// UpdateUser godoc
// @Summary      Update my profile
// @Description  Changes the name and leader card of the token's owner.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UserInput true "Profile"
// @Success      200  {object}  EmptyResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user/update [post]
func (h *Handler) UpdateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.UpdateUser(c.Request.Context(), auth.Token(c), input.UserName, input.LeaderCardID); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EmptyResponse{})
}
