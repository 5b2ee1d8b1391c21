package api

import (
	"errors"
	"net/http"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultWaterAmount = 250

// @Summary Get daily status
// @Description Get today's eaten/target/remaining snapshot for a user
// @Tags tracking
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} types.DailyStatus
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /user_status/{user_id} [get]
func (r *Router) getUserStatus(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusOK, defaultDailyStatus(userID))
		return
	}

	status, err := r.nutrition.GetDailyStatus(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// defaultDailyStatus is the neutral payload returned for anonymous or
// malformed user ids so the client home screen can still render
func defaultDailyStatus(userID string) *types.DailyStatus {
	macros := service.CalculateMacros(2000)
	return &types.DailyStatus{
		UserID:      userID,
		Username:    "Користувач",
		Target:      2000,
		Remaining:   2000,
		WaterTarget: 2450,
		Stories:     []map[string]any{},
		TargetP:     macros.Protein,
		TargetF:     macros.Fat,
		TargetC:     macros.Carbs,
	}
}

// @Summary Get weekly analytics
// @Description Get the per-day calorie, macro and water series for the trailing 7 days
// @Tags tracking
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} types.DayAnalytics
// @Failure 500 {object} gin.H
// @Router /analytics/{user_id} [get]
func (r *Router) getAnalytics(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusOK, []types.DayAnalytics{})
		return
	}

	analytics, err := r.nutrition.GetWeeklyAnalytics(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics"})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// @Summary Add water intake
// @Description Log a water intake entry, defaulting to one glass (250 ml)
// @Tags tracking
// @Accept json
// @Produce json
// @Param water body types.WaterLogRequest true "Water intake entry"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /add_water [post]
func (r *Router) addWater(c *gin.Context) {
	var request types.WaterLogRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	amount := request.Amount
	if amount <= 0 {
		amount = defaultWaterAmount
	}

	createdAt := service.Now()
	if request.CreatedAt != "" {
		createdAt = service.SafeParseTimestamp(request.CreatedAt)
	}

	err := r.store.InsertRow("water_logs", data.Row{
		"id":         uuid.New().String(),
		"user_id":    request.UserID,
		"amount":     amount,
		"created_at": createdAt.Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log water intake"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Water logged"})
}

// @Summary Add a meal manually
// @Description Log a manually entered meal. Numeric fields tolerate strings with units.
// @Tags tracking
// @Accept json
// @Produce json
// @Param meal body types.ManualMealRequest true "Meal entry"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /add_meal [post]
func (r *Router) addMeal(c *gin.Context) {
	var request types.ManualMealRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	createdAt := service.Now()
	if request.CreatedAt != "" {
		createdAt = service.SafeParseTimestamp(request.CreatedAt)
	}

	err := r.store.InsertRow("meal_history", data.Row{
		"id":         uuid.New().String(),
		"user_id":    request.UserID,
		"meal_name":  request.MealName,
		"calories":   service.CleanToInt(request.Calories),
		"protein":    service.CleanToFloat(request.Protein),
		"fat":        service.CleanToFloat(request.Fat),
		"carbs":      service.CleanToFloat(request.Carbs),
		"image_url":  request.ImageURL,
		"created_at": createdAt.Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log meal"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Meal logged"})
}

// @Summary Log a generated recipe as a meal
// @Description Log a previously generated recipe. Generated recipes use several alias keys (recipe_name/title, proteins/fats/carbohydrates) which are all accepted.
// @Tags tracking
// @Accept json
// @Produce json
// @Param recipe body types.AddFromRecipeRequest true "Recipe to log"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /add_from_recipe [post]
func (r *Router) addFromRecipe(c *gin.Context) {
	var request types.AddFromRecipeRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	recipe := request.Recipe
	err := r.store.InsertRow("meal_history", data.Row{
		"id":         uuid.New().String(),
		"user_id":    request.UserID,
		"meal_name":  firstString(recipe, "recipe_name", "title"),
		"calories":   service.CleanToInt(recipe["calories"]),
		"protein":    service.CleanToFloat(firstValue(recipe, "protein", "proteins")),
		"fat":        service.CleanToFloat(firstValue(recipe, "fat", "fats")),
		"carbs":      service.CleanToFloat(firstValue(recipe, "carbs", "carbohydrates")),
		"image_url":  firstString(recipe, "image_url"),
		"created_at": service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log recipe"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Recipe logged"})
}

// @Summary Save a recipe
// @Description Save a generated recipe to the user's collection
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body types.SaveRecipeRequest true "Recipe to save"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /save_recipe [post]
func (r *Router) saveRecipe(c *gin.Context) {
	var request types.SaveRecipeRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	title := request.Title
	if title == "" {
		title = request.RecipeName
	}

	err := r.store.InsertRow("saved_recipes", data.Row{
		"id":           uuid.New().String(),
		"user_id":      request.UserID,
		"title":        title,
		"calories":     service.CleanToInt(request.Calories),
		"protein":      service.CleanToFloat(request.Protein),
		"fat":          service.CleanToFloat(request.Fat),
		"carbs":        service.CleanToFloat(request.Carbs),
		"ingredients":  request.Ingredients,
		"instructions": request.Instructions,
		"time":         request.Time,
		"image_url":    request.ImageURL,
		"created_at":   service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Recipe saved"})
}

// @Summary Get saved recipes
// @Description Get the user's saved recipes, newest first
// @Tags recipes
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} map[string]any
// @Failure 500 {object} gin.H
// @Router /saved_recipes/{user_id} [get]
func (r *Router) getSavedRecipes(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusOK, []data.Row{})
		return
	}

	recipes, err := r.store.FetchRows(data.Query{
		Table:   "saved_recipes",
		Filters: []data.Filter{data.Eq("user_id", userID)},
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve saved recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// @Summary Delete a saved recipe
// @Description Delete a saved recipe by ID
// @Tags recipes
// @Produce json
// @Param recipe_id path string true "Recipe ID"
// @Success 200 {object} types.ApiResponse
// @Failure 500 {object} gin.H
// @Router /delete_recipe/{recipe_id} [delete]
func (r *Router) deleteRecipe(c *gin.Context) {
	recipeID := c.Param("recipe_id")

	err := r.store.DeleteRow("saved_recipes", []data.Filter{data.Eq("id", recipeID)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Recipe deleted"})
}

// @Summary Add a vitamin
// @Description Add a vitamin intake reminder entry
// @Tags vitamins
// @Accept json
// @Produce json
// @Param vitamin body types.VitaminRequest true "Vitamin entry"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /add_vitamin [post]
func (r *Router) addVitamin(c *gin.Context) {
	var request types.VitaminRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	err := r.store.InsertRow("vitamins", data.Row{
		"id":         uuid.New().String(),
		"user_id":    request.UserID,
		"name":       request.Name,
		"dosage":     request.Dosage,
		"time":       request.Time,
		"created_at": service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vitamin"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Vitamin added"})
}

// @Summary Get vitamins
// @Description Get the user's vitamin entries. Any storage failure yields an empty list.
// @Tags vitamins
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} map[string]any
// @Router /vitamins/{user_id} [get]
func (r *Router) getVitamins(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusOK, []data.Row{})
		return
	}

	vitamins, err := r.store.FetchRows(data.Query{
		Table:   "vitamins",
		Filters: []data.Filter{data.Eq("user_id", userID)},
	})
	if err != nil {
		c.JSON(http.StatusOK, []data.Row{})
		return
	}

	c.JSON(http.StatusOK, vitamins)
}

// @Summary Delete a vitamin
// @Description Delete a vitamin entry by ID
// @Tags vitamins
// @Produce json
// @Param vitamin_id path string true "Vitamin ID"
// @Success 200 {object} types.ApiResponse
// @Failure 500 {object} gin.H
// @Router /vitamins/{vitamin_id} [delete]
func (r *Router) deleteVitamin(c *gin.Context) {
	vitaminID := c.Param("vitamin_id")

	err := r.store.DeleteRow("vitamins", []data.Filter{data.Eq("id", vitaminID)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vitamin"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Vitamin deleted"})
}

// @Summary Add a custom food product
// @Description Add a user-defined product to the local food catalog
// @Tags foodProducts
// @Accept json
// @Produce json
// @Param product body types.CustomFoodProductRequest true "Food product"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /add_custom_food_product [post]
func (r *Router) addCustomFoodProduct(c *gin.Context) {
	var request types.CustomFoodProductRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if request.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	err := r.store.InsertRow("food_products", data.Row{
		"name":       request.Name,
		"calories":   service.CleanToInt(request.Calories),
		"protein":    service.CleanToFloat(request.Protein),
		"fat":        service.CleanToFloat(request.Fat),
		"carbs":      service.CleanToFloat(request.Carbs),
		"created_at": service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food product"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Food product added"})
}

// @Summary Search food products
// @Description Search the local catalog and OpenFoodFacts by name
// @Tags foodProducts
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} types.FoodProduct
// @Failure 400 {object} gin.H
// @Router /search_food [get]
func (r *Router) searchFood(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	c.JSON(http.StatusOK, r.search.SearchFood(query))
}

func firstValue(row map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := row[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
