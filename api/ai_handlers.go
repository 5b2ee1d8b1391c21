package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Analyze a meal photo and log it
// @Description Analyze a meal photo, store the image, and append the estimated meal to the history
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData string true "User ID"
// @Param file formData file true "Meal photo"
// @Success 200 {object} types.MealAnalysis
// @Failure 400 {object} gin.H
// @Router /analyze_meal [post]
func (r *Router) analyzeMeal(c *gin.Context) {
	userID := c.PostForm("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	image, ok := readUploadedImage(c)
	if !ok {
		return
	}

	analysis, err := r.ai.AnalyzeMealImage(image)
	if err != nil {
		fmt.Printf("Meal analysis failed: %v\n", err)
		c.JSON(http.StatusOK, service.FallbackAnalysis())
		return
	}

	if r.storage != nil {
		path := fmt.Sprintf("%s/%s.jpg", userID, uuid.New().String())
		if err := r.storage.Upload("meal-images", path, image, "image/jpeg"); err != nil {
			fmt.Printf("Meal image upload failed: %v\n", err)
		} else {
			analysis.ImageURL = r.storage.PublicURL("meal-images", path)
		}
	}

	err = r.store.InsertRow("meal_history", data.Row{
		"id":         uuid.New().String(),
		"user_id":    userID,
		"meal_name":  analysis.MealName,
		"calories":   analysis.Calories,
		"protein":    analysis.Protein,
		"fat":        analysis.Fat,
		"carbs":      analysis.Carbs,
		"image_url":  analysis.ImageURL,
		"created_at": service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		fmt.Printf("Failed to log analyzed meal: %v\n", err)
	}

	c.JSON(http.StatusOK, analysis)
}

// @Summary Analyze a meal photo
// @Description Analyze a meal photo without logging anything
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Meal photo"
// @Success 200 {object} types.MealAnalysis
// @Failure 400 {object} gin.H
// @Router /analyze_image [post]
func (r *Router) analyzeImage(c *gin.Context) {
	image, ok := readUploadedImage(c)
	if !ok {
		return
	}

	analysis, err := r.ai.AnalyzeMealImage(image)
	if err != nil {
		fmt.Printf("Image analysis failed: %v\n", err)
		c.JSON(http.StatusOK, service.FallbackAnalysis())
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func readUploadedImage(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image file"})
		return nil, false
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image file"})
		return nil, false
	}
	return contents, true
}

// @Summary Generate a recipe
// @Description Generate a recipe suggestion fitting the user's remaining calories for today
// @Tags ai
// @Produce json
// @Param user_id path string true "User ID"
// @Param preferences query string false "Comma separated preferences"
// @Success 200 {object} types.GeneratedRecipe
// @Router /generate_recipe/{user_id} [get]
func (r *Router) generateRecipe(c *gin.Context) {
	userID := c.Param("user_id")

	remaining := 600
	goal := ""
	if !service.IsInvalidUser(userID) {
		if status, err := r.nutrition.GetDailyStatus(userID); err == nil {
			remaining = status.Remaining
			goal = status.Goal
		} else {
			fmt.Printf("Failed to fetch status for recipe generation: %v\n", err)
		}
	}

	var preferences []string
	if raw := c.Query("preferences"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				preferences = append(preferences, p)
			}
		}
	}

	recipe, err := r.ai.GenerateRecipe(remaining, preferences, goal)
	if err != nil {
		fmt.Printf("Recipe generation failed: %v\n", err)
		c.JSON(http.StatusOK, service.FallbackRecipe())
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// @Summary Get weekly tips
// @Description Get AI generated insights over the trailing week. Any failure yields a static fallback.
// @Tags ai
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} types.WeeklyInsights
// @Router /get_tips/{user_id} [get]
func (r *Router) getTips(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusOK, service.FallbackInsights())
		return
	}

	history, profile, err := r.nutrition.GetTipsData(userID)
	if err != nil {
		fmt.Printf("Failed to gather tips data: %v\n", err)
		c.JSON(http.StatusOK, service.FallbackInsights())
		return
	}

	target := service.CleanToInt(profile["daily_calories_target"])
	goal := ""
	if g, ok := profile["goal"].(string); ok {
		goal = g
	}

	insights, err := r.ai.GenerateWeeklyInsights(history, target, goal)
	if err != nil {
		fmt.Printf("Insight generation failed: %v\n", err)
		c.JSON(http.StatusOK, service.FallbackInsights())
		return
	}

	c.JSON(http.StatusOK, insights)
}
