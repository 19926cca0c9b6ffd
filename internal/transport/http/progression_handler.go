package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kidsplatform/internal/application/usecase"
	"kidsplatform/internal/content"
	"kidsplatform/internal/middleware"
)

// ProgressionHandler serves the reward callbacks and activity progression.
type ProgressionHandler struct {
	uc *usecase.ProfileUseCase
}

func NewProgressionHandler(uc *usecase.ProfileUseCase) *ProgressionHandler {
	return &ProgressionHandler{uc: uc}
}

type awardStarsReq struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

func (h *ProgressionHandler) AwardStars(c *gin.Context) {
	var req awardStarsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.uc.AwardStars(c, middleware.ProfileID(c), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stars": profile.Stars,
		"level": profile.Level,
	})
}

func (h *ProgressionHandler) ReportMinigame(c *gin.Context) {
	var outcome content.MinigameOutcome
	if err := c.ShouldBindJSON(&outcome); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, coins, err := h.uc.ReportMinigame(c, middleware.ProfileID(c), outcome)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coins_earned": coins,
		"coins":        profile.Coins,
	})
}

func (h *ProgressionHandler) CompleteTask(c *gin.Context) {
	game := content.GameID(c.Param("game"))

	result, profile, err := h.uc.CompleteGameTask(c, middleware.ProfileID(c), game)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"stars":  profile.Stars,
		"level":  profile.Level,
	})
}

func (h *ProgressionHandler) GameProgress(c *gin.Context) {
	game := content.GameID(c.Param("game"))

	progress, err := h.uc.GameProgressFor(c, middleware.ProfileID(c), game)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *ProgressionHandler) Achievements(c *gin.Context) {
	achievements, stickers, err := h.uc.Achievements(c, middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": achievements,
		"stickers":     stickers,
	})
}
