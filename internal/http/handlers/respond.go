package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure body is {"error": ...} where the payload is a plain string
// or a list of guidance lines. Success bodies carry "message" plus the data.

func RespondError(ctx *gin.Context, status int, message any) {
	ctx.JSON(status, gin.H{
		"error": message,
	})
}

func RespondBadRequest(ctx *gin.Context, message any) {
	RespondError(ctx, http.StatusBadRequest, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message)
}

func RespondConflict(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusConflict, message)
}

// RespondInternal deliberately carries a generic message; whatever the store
// actually reported stays in the logs.
func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, message)
}
