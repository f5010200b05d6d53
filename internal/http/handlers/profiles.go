package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/config"
	"github.com/alphamugerwa/authorshaven/internal/domain/user"
	"github.com/alphamugerwa/authorshaven/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type ProfileStore interface {
	GetProfileByUsername(ctx context.Context, username string) (user.Profile, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	UpdateProfile(ctx context.Context, email string, upd user.ProfileUpdate, image string) error
	List(ctx context.Context) ([]user.Listing, error)
}

type ProfilesHandler struct {
	store ProfileStore
}

func NewProfilesHandler(store ProfileStore) *ProfilesHandler {
	return &ProfilesHandler{store: store}
}

// GetProfile returns the public projection for a username. An empty or
// unknown username is simply a 404; no validation happens here.
func (h *ProfilesHandler) GetProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	profile, err := h.store.GetProfileByUsername(cctx, username)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User does not exists!")
			return
		}

		RespondInternal(ctx, "Failed to retrieve user profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved!",
		"profile": profile,
	})
}

// updatedProfile is the echo of an update: the submitted fields plus the
// resolved image. It deliberately mirrors the input rather than re-reading
// the row.
type updatedProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedIn"`
	Instagram string `json:"instagram"`
	Location  string `json:"location"`
}

// UpdateProfile writes the whole mutable field set for the authenticated
// user. Fields absent from the payload are written as empty strings; that
// full-overwrite behavior is the documented contract of this endpoint.
func (h *ProfilesHandler) UpdateProfile(ctx *gin.Context) {
	email, ok := middlewares.EmailFromContext(ctx)

	if !ok || email == "" {
		RespondError(ctx, http.StatusUnauthorized, "Missing identity")
		return
	}

	var upd user.ProfileUpdate

	if !BindJSON(ctx, &upd) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	current, err := h.store.GetByEmail(cctx, email)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User does not exists!")
			return
		}

		RespondInternal(ctx, "Failed to update user profile")
		return
	}

	// an uploaded image replaces the stored one; otherwise it is kept

	image := current.Image

	if uploaded, ok := middlewares.UploadedImageFromContext(ctx); ok {
		image = uploaded
	}

	err = h.store.UpdateProfile(cctx, email, upd, image)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User does not exists!")
			return
		}

		RespondInternal(ctx, "Failed to update user profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User profile updated!",
		"profile": updatedProfile{
			FirstName: upd.FirstName,
			LastName:  upd.LastName,
			Bio:       upd.Bio,
			Image:     image,
			Phone:     upd.Phone,
			Facebook:  upd.Facebook,
			Twitter:   upd.Twitter,
			LinkedIn:  upd.LinkedIn,
			Instagram: upd.Instagram,
			Location:  upd.Location,
		},
	})
}

// ListUsers returns every user in store order, projected without password
// hashes. An empty store is an empty list, not an error.
func (h *ProfilesHandler) ListUsers(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	users, err := h.store.List(cctx)

	if err != nil {
		RespondInternal(ctx, "failed to fetch users")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "successfully listed users functionality",
		"users":   users,
	})
}
