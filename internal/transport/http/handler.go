package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kidsplatform/internal/application/usecase"
	"kidsplatform/internal/domain"
	"kidsplatform/internal/middleware"
)

// ProfileHandler serves profile identity and settings routes.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// respondError maps domain sentinels onto HTTP statuses. Purchase and care
// rejections are conflicts, not server errors: the client disables the
// affordance and moves on.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient funds"})
	case errors.Is(err, domain.ErrAlreadyOwned):
		c.JSON(http.StatusConflict, gin.H{"error": "Already owned"})
	case errors.Is(err, domain.ErrMissingInventory):
		c.JSON(http.StatusConflict, gin.H{"error": "Missing inventory"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type createProfileReq struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Language string `json:"language"`
	Pin      string `json:"pin"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, token, err := h.uc.Create(c, req.Name, req.Age, domain.Language(req.Language), req.Pin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile":      profile,
		"access_token": token,
	})
}

type loginReq struct {
	ProfileID string `json:"profile_id" binding:"required"`
	Pin       string `json:"pin"`
}

func (h *ProfileHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.uc.Login(c, req.ProfileID, req.Pin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.uc.Get(c, middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileReq struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Language string `json:"language"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.uc.UpdateSettings(c, middleware.ProfileID(c), req.Name, req.Age, domain.Language(req.Language))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type selectAvatarReq struct {
	AvatarID string `json:"avatar_id" binding:"required"`
}

func (h *ProfileHandler) SelectAvatar(c *gin.Context) {
	var req selectAvatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.uc.SelectAvatar(c, middleware.ProfileID(c), req.AvatarID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
