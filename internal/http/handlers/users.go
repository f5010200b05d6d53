package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/config"
	"github.com/alphamugerwa/authorshaven/internal/domain/user"
	"github.com/alphamugerwa/authorshaven/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserCreator interface {
	Create(ctx context.Context, u user.User) (user.User, error)
}

type UsersHandler struct {
	store UserCreator
}

func NewUsersHandler(store UserCreator) *UsersHandler {
	return &UsersHandler{store: store}
}

// The validation middleware has already vetted this shape; the tags are a
// second line for callers that reach the handler directly.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createdUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUser is the forward target of the registration validation chain.
func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		RespondInternal(ctx, "Failed to create user")
		return
	}

	now := time.Now().UTC()

	u := user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	created, err := h.store.Create(cctx, u)

	if err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			RespondConflict(ctx, "username or email is already taken")
			return
		}

		RespondInternal(ctx, "Failed to create user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created!",
		"user": createdUser{
			ID:       created.ID,
			Username: created.Username,
			Email:    created.Email,
		},
	})
}
