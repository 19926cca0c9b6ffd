package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kidsplatform/internal/application/usecase"
	"kidsplatform/internal/middleware"
)

// PetHandler serves the virtual pet care routes.
type PetHandler struct {
	uc *usecase.ProfileUseCase
}

func NewPetHandler(uc *usecase.ProfileUseCase) *PetHandler {
	return &PetHandler{uc: uc}
}

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.uc.Pets(c, middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

func (h *PetHandler) UseItem(c *gin.Context) {
	pet, err := h.uc.UseItem(c, middleware.ProfileID(c), c.Param("id"), c.Param("item"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Play(c *gin.Context) {
	pet, err := h.uc.PlayWithPet(c, middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}
