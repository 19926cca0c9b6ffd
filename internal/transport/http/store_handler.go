package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kidsplatform/internal/application/usecase"
	"kidsplatform/internal/content"
	"kidsplatform/internal/middleware"
)

// StoreHandler serves the catalog and all purchase routes.
type StoreHandler struct {
	uc *usecase.ProfileUseCase
}

func NewStoreHandler(uc *usecase.ProfileUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"avatars": content.Avatars(),
		"pets":    content.Pets(),
		"items":   content.Items(),
	})
}

func (h *StoreHandler) PurchaseAvatar(c *gin.Context) {
	profile, err := h.uc.PurchaseAvatar(c, middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stars":         profile.Stars,
		"owned_avatars": profile.OwnedAvatars,
	})
}

func (h *StoreHandler) PurchasePet(c *gin.Context) {
	profile, pet, err := h.uc.PurchasePet(c, middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stars": profile.Stars,
		"pet":   pet,
	})
}

func (h *StoreHandler) PurchaseItem(c *gin.Context) {
	profile, err := h.uc.PurchaseItem(c, middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coins":       profile.Coins,
		"owned_items": profile.OwnedItems,
	})
}
