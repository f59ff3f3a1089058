package controllers

import (
	"net/http"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/services"
	"github.com/jj55j7/fridge-mate/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Rek   *services.RecognitionService
	Match *services.MatchService
}

func NewFoodController(rek *services.RecognitionService, match *services.MatchService) *FoodController {
	return &FoodController{Rek: rek, Match: match}
}

type RecognizeRequest struct {
	ImageBase64 string `json:"image_base64"`
	Hint        string `json:"hint"` // filename or caption, used as fallback
}

// POST /food/recognize — photo in, recognized foods out. The photo is
// stored on S3 and the result saved as the user's current food post.
// When Rekognition is unavailable or finds nothing, the hint keyword
// fallback runs before giving up.
func (fc *FoodController) RecognizeFood(c *gin.Context) {
	var req RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.ImageBase64 == "" && req.Hint == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 or hint required"})
		return
	}

	var photoURL string
	var result *services.FoodRecognitionResult
	var recErr error

	if req.ImageBase64 != "" {
		if url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "food-photos"); err == nil {
			photoURL = url
		}
		result, recErr = fc.Rek.RecognizeFood(c.Request.Context(), req.ImageBase64)
	} else {
		recErr = services.ErrNoFoodDetected
	}

	if recErr != nil && req.Hint != "" {
		result, recErr = services.RecognizeFromText(req.Hint)
	}
	if recErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not identify the food, try again or enter it manually"})
		return
	}

	uid := c.GetUint("userID")
	names := make([]string, 0, len(result.Foods))
	for _, f := range result.Foods {
		names = append(names, f.Name)
	}

	post := models.FoodPost{
		UserID:      uid,
		PhotoURL:    photoURL,
		Items:       models.JoinItemNames(names),
		PrimaryFood: result.PrimaryFood,
		Cuisine:     result.Cuisine,
	}
	if err := config.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.TouchLastActive(uid)

	c.JSON(http.StatusOK, gin.H{"recognition": result, "post_id": post.ID, "photo_url": photoURL})
}

type ManualFoodInput struct {
	Items []string `json:"items" binding:"required,min=1"`
}

// POST /food/posts — manual entry when recognition fails or the user
// prefers typing.
func (fc *FoodController) AddFoodPost(c *gin.Context) {
	var input ManualFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	post := models.FoodPost{
		UserID:      uid,
		Items:       models.JoinItemNames(input.Items),
		PrimaryFood: input.Items[0],
		Cuisine:     services.CuisineFor(input.Items[0]),
	}
	if err := config.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.TouchLastActive(uid)

	c.JSON(http.StatusCreated, gin.H{"post_id": post.ID})
}

// GET /food/posts
func (fc *FoodController) ListFoodPosts(c *gin.Context) {
	uid := c.GetUint("userID")
	var posts []models.FoodPost
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

type CompatibilityInput struct {
	FoodA string `json:"food_a" binding:"required"`
	FoodB string `json:"food_b" binding:"required"`
}

// POST /food/compatibility — score a single pairing, with the
// celebratory message the app shows after recognition.
func (fc *FoodController) FoodCompatibility(c *gin.Context) {
	var input CompatibilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := fc.Match.FoodCompatibility(input.FoodA, input.FoodB)
	c.JSON(http.StatusOK, gin.H{
		"compatibility": score,
		"message":       fc.Match.MatchMessage(input.FoodA, input.FoodB, score),
	})
}
