package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/transport/http/response"
)

type UserHandler struct {
	service *app.TrackerService
}

type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

func NewUserHandler(service *app.TrackerService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("bind create user request failed: %v", err)
		response.Message(c, response.MsgUserCreationFailed)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		log.Printf("create user failed: %v", err)
		response.Message(c, response.MsgUserCreationFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"_id":      user.ID,
	})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("list users failed: %v", err)
		response.Message(c, response.MsgListUsersFailed)
		return
	}

	if len(users) == 0 {
		response.Message(c, response.MsgNoUsers)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteAll(c *gin.Context) {
	count, err := h.service.PurgeUsers(c.Request.Context())
	if err != nil {
		log.Printf("delete all users failed: %v", err)
		response.Message(c, response.MsgUsersDeleteFailed)
		return
	}
	response.Deleted(c, response.MsgUsersDeleted, count)
}
