package services

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/jj55j7/fridge-mate/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RecognizedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type FoodRecognitionResult struct {
	Foods       []RecognizedFood `json:"foods"`
	PrimaryFood string           `json:"primary_food"`
	Cuisine     string           `json:"cuisine"`
}

// RecognitionService turns a food photo into a list of food names via
// AWS Rekognition. Callers fall back to RecognizeFromText when the
// image path fails; the scoring engine never sees either failure.
type RecognitionService struct {
	client *rekognition.Client
}

func NewRecognitionService() (*RecognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RecognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Labels Rekognition emits for food photos that name the scene rather
// than the dish.
var genericLabels = map[string]bool{
	"food": true, "meal": true, "dish": true, "plate": true,
	"cutlery": true, "lunch": true, "dinner": true, "brunch": true,
	"person": true, "table": true, "restaurant": true,
}

var ErrNoFoodDetected = errors.New("no food detected")

// RecognizeFood detects food labels in a base64 data-URI image.
func (r *RecognitionService) RecognizeFood(ctx context.Context, base64Img string) (*FoodRecognitionResult, error) {
	if r == nil || r.client == nil {
		return nil, errors.New("recognition service not configured")
	}

	data, _, err := utils.DecodeDataURI(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return nil, err
	}

	var foods []RecognizedFood
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		if genericLabels[strings.ToLower(name)] {
			continue
		}
		foods = append(foods, RecognizedFood{
			Name:       name,
			Confidence: float64(aws.ToFloat32(l.Confidence)) / 100,
		})
	}
	if len(foods) == 0 {
		return nil, ErrNoFoodDetected
	}

	sort.SliceStable(foods, func(i, j int) bool { return foods[i].Confidence > foods[j].Confidence })

	return &FoodRecognitionResult{
		Foods:       foods,
		PrimaryFood: foods[0].Name,
		Cuisine:     CuisineFor(foods[0].Name),
	}, nil
}

// RecognizeFromText is the keyword fallback: it scans free text (a
// filename, caption, or manual entry) for known food names. Used when
// Rekognition is unavailable or finds nothing.
func RecognizeFromText(text string) (*FoodRecognitionResult, error) {
	lowered := strings.ToLower(text)

	var foods []RecognizedFood
	for _, keyword := range foodKeywords {
		if strings.Contains(lowered, keyword) {
			foods = append(foods, RecognizedFood{Name: titleCase(keyword), Confidence: 0.5})
		}
	}
	if len(foods) == 0 {
		return nil, ErrNoFoodDetected
	}

	return &FoodRecognitionResult{
		Foods:       foods,
		PrimaryFood: foods[0].Name,
		Cuisine:     CuisineFor(foods[0].Name),
	}, nil
}

// CuisineFor guesses a cuisine label from a food name.
func CuisineFor(food string) string {
	lowered := strings.ToLower(food)
	for cuisine, keywords := range cuisineKeywords {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return cuisine
			}
		}
	}
	return "Unknown"
}

// Ordered so multi-word names win over their substrings ("fried rice"
// before "rice").
var foodKeywords = []string{
	"fried rice", "garlic bread", "pizza", "pasta", "spaghetti", "lasagna",
	"curry", "sushi", "ramen", "burger", "sandwich", "steak",
	"pancakes", "waffles", "toast", "cereal",
	"tacos", "burrito", "nachos",
	"cake", "cookies", "pie",
	"soup", "chili", "salad",
	"rice", "bread", "chicken", "fish", "beef", "vegetables",
}

var cuisineKeywords = map[string][]string{
	"Italian":  {"pizza", "pasta", "spaghetti", "lasagna", "risotto"},
	"Asian":    {"fried rice", "sushi", "ramen", "curry", "noodle", "dumpling"},
	"Mexican":  {"taco", "burrito", "nacho", "quesadilla"},
	"American": {"burger", "sandwich", "steak", "pancake", "waffle"},
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
