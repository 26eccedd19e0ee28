package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/pkg/dateutil"
	"exercise-tracker/internal/transport/http/response"
)

type ExerciseHandler struct {
	service *app.TrackerService
}

type CreateExerciseRequest struct {
	Description string      `json:"description" form:"description"`
	Duration    IntOrString `json:"duration" form:"duration"`
	Date        string      `json:"date" form:"date"`
}

func NewExerciseHandler(service *app.TrackerService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		response.Message(c, response.MsgNoUserWithID)
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("bind create exercise request failed: %v", err)
		response.Message(c, response.MsgExerciseCreateFailed)
		return
	}

	exercise, err := h.service.AddExercise(c.Request.Context(), app.AddExerciseInput{
		UserID:      userID,
		Description: req.Description,
		Duration:    int(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, response.MsgNoUserWithID)
			return
		}
		log.Printf("add exercise failed: %v", err)
		response.Message(c, response.MsgExerciseCreateFailed)
		return
	}

	// The response carries the owner's id, not the exercise's.
	c.JSON(http.StatusOK, gin.H{
		"_id":         exercise.UserID,
		"username":    exercise.Username,
		"description": exercise.Description,
		"duration":    exercise.Duration,
		"date":        dateutil.Human(exercise.Date),
	})
}

func (h *ExerciseHandler) Log(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		response.Message(c, response.MsgNoUserWithID)
		return
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	logView, err := h.service.GetLog(c.Request.Context(), app.LogQuery{
		UserID: userID,
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, response.MsgNoUserWithID)
			return
		}
		log.Printf("get exercise log failed: %v", err)
		response.Message(c, response.MsgLogFailed)
		return
	}

	c.JSON(http.StatusOK, logView)
}

func (h *ExerciseHandler) DeleteAll(c *gin.Context) {
	count, err := h.service.PurgeExercises(c.Request.Context())
	if err != nil {
		log.Printf("delete all exercises failed: %v", err)
		response.Message(c, response.MsgExercisesDelFailed)
		return
	}
	response.Deleted(c, response.MsgExercisesDeleted, count)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
