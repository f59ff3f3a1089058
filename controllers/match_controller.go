package controllers

import (
	"net/http"

	"github.com/jj55j7/fridge-mate/services"

	"github.com/gin-gonic/gin"
)

type MatchController struct {
	Match *services.MatchService
}

func NewMatchController(match *services.MatchService) *MatchController {
	return &MatchController{Match: match}
}

type LikeInput struct {
	TargetID uint `json:"target_id" binding:"required"`
}

// POST /match/like
func (mc *MatchController) LikeUser(c *gin.Context) {
	var input LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	mutual, err := services.RecordLike(mc.Match, uid, input.TargetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mutual": mutual})
}

// GET /match/list
func (mc *MatchController) ListMatches(c *gin.Context) {
	uid := c.GetUint("userID")
	users, err := services.MutualMatchesFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]profileResponse, 0, len(users))
	for i := range users {
		out = append(out, toProfileResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}
