// Package response carries the tracker's legacy wire contract: every /api
// endpoint answers HTTP 200 and signals failure only through a fixed JSON
// message body.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgNoUsers              = "There are no users in the database!"
	MsgListUsersFailed      = "Getting all users failed!"
	MsgUserCreationFailed   = "User creation failed!"
	MsgNoUserWithID         = "There are no users with that ID in the database!"
	MsgExerciseCreateFailed = "Exercise creation failed!"
	MsgLogFailed            = "Getting the exercise log failed!"
	MsgUsersDeleted         = "All users have been deleted!"
	MsgUsersDeleteFailed    = "Deleting all users failed!"
	MsgExercisesDeleted     = "All exercises have been deleted!"
	MsgExercisesDelFailed   = "Deleting all exercises failed!"
)

// Message answers with a bare message body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Deleted answers a bulk-delete with its message and removal count.
func Deleted(c *gin.Context, message string, count int64) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"result":  gin.H{"deletedCount": count},
	})
}
