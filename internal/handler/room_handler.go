package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveroom/backend/internal/auth"
	"liveroom/backend/internal/room"
)

// region --- DTOs ---

// RoomIDInput names a room.
type RoomIDInput struct {
	RoomID int64 `json:"room_id" binding:"required" example:"1"`
}

// RoomIDResponse carries the id of a created room.
type RoomIDResponse struct {
	RoomID int64 `json:"room_id" example:"1"`
}

// CreateRoomInput opens a room for a live. live_id 0 is reserved for listing every live.
type CreateRoomInput struct {
	LiveID           int64               `json:"live_id" binding:"required,min=1" example:"1001"`
	SelectDifficulty room.LiveDifficulty `json:"select_difficulty" binding:"required,oneof=1 2" example:"1"`
}

// RoomListInput filters the listing by live. Zero lists every live.
type RoomListInput struct {
	LiveID int64 `json:"live_id" binding:"min=0" example:"1001"`
}

// RoomListResponse lists the rooms that can still be joined.
type RoomListResponse struct {
	RoomInfoList []room.Info `json:"room_info_list"`
}

// JoinRoomInput joins a room at a difficulty.
type JoinRoomInput struct {
	RoomID           int64               `json:"room_id" binding:"required" example:"1"`
	SelectDifficulty room.LiveDifficulty `json:"select_difficulty" binding:"required,oneof=1 2" example:"1"`
}

// JoinRoomResponse reports the join outcome: 1 ok, 2 room full, 3 disbanded, 4 other error.
type JoinRoomResponse struct {
	JoinRoomResult room.JoinResult `json:"join_room_result" example:"1"`
}

// WaitRoomResponse is the lobby poll answer: 1 waiting, 2 live started, 3 dissolved.
type WaitRoomResponse struct {
	Status       room.WaitStatus `json:"status" example:"1"`
	RoomUserList []room.RoomUser `json:"room_user_list"`
}

// LiveEndInput reports the caller's play.
type LiveEndInput struct {
	RoomID         int64 `json:"room_id" binding:"required" example:"1"`
	JudgeCountList []int `json:"judge_count_list" binding:"required,dive,min=0"`
	Score          int   `json:"score" binding:"min=0" example:"123456"`
}

// ResultResponse holds the results, empty until every member has reported.
type ResultResponse struct {
	ResultUserList []room.ResultUser `json:"result_user_list"`
}

// endregion

// CreateRoom godoc
// @Summary      Create a room
// @Description  Opens a waiting room for a live with the caller as host.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateRoomInput true "Room Info"
// @Success      200  {object}  RoomIDResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /room/create [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.rooms.CreateRoom(c.Request.Context(), auth.Token(c), input.LiveID, input.SelectDifficulty)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RoomIDResponse{RoomID: id})
}

// ListRooms godoc
// @Summary      List rooms
// @Description  Lists the waiting rooms of a live, or of every live when live_id is 0.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        input body RoomListInput true "Filter"
// @Success      200  {object}  RoomListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /room/list [post]
func (h *Handler) ListRooms(c *gin.Context) {
	var input RoomListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooms, err := h.rooms.ListRooms(c.Request.Context(), input.LiveID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RoomListResponse{RoomInfoList: rooms})
}

// JoinRoom godoc
// @Summary      Join a room
// @Description  Joins a waiting room. Refusals are reported in join_room_result, not as HTTP errors.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body JoinRoomInput true "Join Info"
// @Success      200  {object}  JoinRoomResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /room/join [post]
func (h *Handler) JoinRoom(c *gin.Context) {
	var input JoinRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.rooms.JoinRoom(c.Request.Context(), auth.Token(c), input.RoomID, input.SelectDifficulty)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, JoinRoomResponse{JoinRoomResult: result})
}

// WaitRoom godoc
// @Summary      Poll a room
// @Description  Returns the room status and its members as seen by the caller.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoomIDInput true "Room"
// @Success      200  {object}  WaitRoomResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /room/wait [post]
func (h *Handler) WaitRoom(c *gin.Context) {
	var input RoomIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, members, err := h.rooms.WaitRoom(c.Request.Context(), auth.Token(c), input.RoomID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, WaitRoomResponse{Status: status, RoomUserList: members})
}

// StartRoom godoc
// @Summary      Start the live
// @Description  Moves a waiting room to live start. Host only.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoomIDInput true "Room"
// @Success      200  {object}  EmptyResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Caller is not the host"
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Room is not waiting"
// @Router       /room/start [post]
func (h *Handler) StartRoom(c *gin.Context) {
	var input RoomIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rooms.StartRoom(c.Request.Context(), auth.Token(c), input.RoomID); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EmptyResponse{})
}

// EndLive godoc
// @Summary      Report the live end
// @Description  Records the caller's judge counts and score. A second report replaces the first.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LiveEndInput true "Play Result"
// @Success      200  {object}  EmptyResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Room not found or caller not a member"
// @Failure      409  {object}  ErrorResponse "Live has not started"
// @Router       /room/end [post]
func (h *Handler) EndLive(c *gin.Context) {
	var input LiveEndInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rooms.ReportLiveEnd(c.Request.Context(), auth.Token(c), input.RoomID, input.JudgeCountList, input.Score); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EmptyResponse{})
}

// Result godoc
// @Summary      Poll the result
// @Description  Returns every member's result once all current members have reported, otherwise an empty list.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoomIDInput true "Room"
// @Success      200  {object}  ResultResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /room/result [post]
func (h *Handler) Result(c *gin.Context) {
	var input RoomIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.rooms.Result(c.Request.Context(), auth.Token(c), input.RoomID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultResponse{ResultUserList: results})
}

// LeaveRoom godoc
// @Summary      Leave a room
// @Description  Removes the caller. The host role passes on; the last member out dissolves the room.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoomIDInput true "Room"
// @Success      200  {object}  EmptyResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Room not found or caller not a member"
// @Router       /room/leave [post]
func (h *Handler) LeaveRoom(c *gin.Context) {
	var input RoomIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rooms.LeaveRoom(c.Request.Context(), auth.Token(c), input.RoomID); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EmptyResponse{})
}
