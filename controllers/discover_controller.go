package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/services"
	"github.com/jj55j7/fridge-mate/utils"

	"github.com/gin-gonic/gin"
)

type DiscoverController struct {
	Disc  *services.DiscoveryService
	Match *services.MatchService
}

func NewDiscoverController(disc *services.DiscoveryService, match *services.MatchService) *DiscoverController {
	return &DiscoverController{Disc: disc, Match: match}
}

type DiscoverInput struct {
	Foods    []string `json:"foods"`     // defaults to the latest food post
	RadiusKm float64  `json:"radius_km"` // defaults to 10
}

type discoverMatch struct {
	services.RankedMatch
	Distance string               `json:"distance"`
	Delivery utils.DeliveryStatus `json:"delivery"`
	Message  string               `json:"message,omitempty"`
}

// GET/POST /discover/matches — the full pipeline: candidates near the
// requester, ranked by food + profile + location score. GET (or an
// empty POST body) falls back to the requester's latest food post.
func (dc *DiscoverController) GetMatches(c *gin.Context) {
	var input DiscoverInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	var requester models.User
	if err := config.DB.First(&requester, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	foods := input.Foods
	if len(foods) == 0 {
		var post models.FoodPost
		if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").First(&post).Error; err == nil {
			foods = post.ItemNames()
		}
	}

	ranked, err := dc.Disc.FindMatches(&requester, foods, input.RadiusKm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]discoverMatch, 0, len(ranked))
	for _, m := range ranked {
		dm := discoverMatch{
			RankedMatch: m,
			Distance:    utils.FormatDistance(m.Candidate.DistanceKm),
			Delivery:    utils.DeliveryFor(m.Candidate.DistanceKm),
		}
		if mine, theirs, score := dc.Match.BestPairing(foods, m.Candidate.FoodItems); score > 0 {
			dm.Message = dc.Match.MatchMessage(mine, theirs, score)
		}
		out = append(out, dm)
	}

	c.JSON(http.StatusOK, gin.H{"matches": out})
}
