package controllers

import (
	"net/http"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/services"
	"github.com/jj55j7/fridge-mate/utils"

	"github.com/gin-gonic/gin"
)

type profileResponse struct {
	ID              uint     `json:"id"`
	Username        string   `json:"username"`
	Bio             string   `json:"bio"`
	PhotoURL        string   `json:"photo_url"`
	Age             int      `json:"age,omitempty"`
	FoodPreferences []string `json:"food_preferences"`
	MatchGoal       string   `json:"match_goal"`
	LeftoverVibe    string   `json:"leftover_vibe,omitempty"`
}

func toProfileResponse(u *models.User) profileResponse {
	return profileResponse{
		ID:              u.ID,
		Username:        u.Username,
		Bio:             u.Bio,
		PhotoURL:        u.PhotoURL,
		Age:             u.Age,
		FoodPreferences: u.PreferenceTags(),
		MatchGoal:       u.MatchGoal,
		LeftoverVibe:    u.LeftoverVibe,
	}
}

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(email, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(user))
}

// GET /user/profile-options — the fixed lists the app renders during
// profile setup.
func GetProfileOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"food_preferences": models.FoodPreferenceTags,
		"match_goals":      models.MatchGoals,
		"leftover_vibes":   models.LeftoverVibes,
	})
}

// Pointer fields so that 0 (equator, prime meridian) still binds;
// "required" on a plain float64 would reject the zero value.
type LocationInput struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

func UpdateLocation(c *gin.Context) {
	email := c.GetString("email")
	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.UpdateLocation(email, *input.Latitude, *input.Longitude); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "location updated"})
}

// POST /user/photo { "image_base64": "data:…" }
func UploadProfilePhoto(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "profile-photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	config.DB.Model(&models.User{}).Where("id = ?", uid).Update("photo_url", url)

	c.JSON(http.StatusOK, gin.H{"url": url})
}
