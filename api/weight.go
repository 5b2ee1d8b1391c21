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

// @Summary Get weight history
// @Description Get the user's weight history newest first, with current weight from the profile and start weight from the earliest entry
// @Tags weight
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} types.WeightHistoryResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /weight/history/{user_id} [get]
func (r *Router) getWeightHistory(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	history, err := r.store.FetchRows(data.Query{
		Table:   "weight_history",
		Filters: []data.Filter{data.Eq("user_id", userID)},
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve weight history"})
		return
	}

	currentWeight := 0.0
	profile, err := r.store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", userID)},
	})
	if err == nil {
		currentWeight = service.CleanToFloat(profile["weight"])
	} else if !errors.Is(err, data.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	// history is newest first, so the start weight is the last entry
	startWeight := currentWeight
	if len(history) > 0 {
		startWeight = service.CleanToFloat(history[len(history)-1]["weight"])
	}

	c.JSON(http.StatusOK, types.WeightHistoryResponse{
		History:       history,
		CurrentWeight: currentWeight,
		StartWeight:   startWeight,
	})
}

// @Summary Add a weight entry
// @Description Record a new weight with the difference from the previous entry, then update the profile weight
// @Tags weight
// @Accept json
// @Produce json
// @Param weight body types.AddWeightRequest true "Weight entry"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /weight/add [post]
func (r *Router) addWeight(c *gin.Context) {
	var request types.AddWeightRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if err := service.ValidateWeight(request.Weight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difference := 0.0
	previous, err := r.store.FetchRows(data.Query{
		Table:   "weight_history",
		Filters: []data.Filter{data.Eq("user_id", request.UserID)},
		OrderBy: "created_at",
		Desc:    true,
		Limit:   1,
	})
	if err == nil && len(previous) > 0 {
		difference = request.Weight - service.CleanToFloat(previous[0]["weight"])
	}

	err = r.store.InsertRow("weight_history", data.Row{
		"id":         uuid.New().String(),
		"user_id":    request.UserID,
		"weight":     request.Weight,
		"difference": difference,
		"created_at": service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record weight"})
		return
	}

	// The history row is already written; a failing profile update leaves
	// it in place and only the profile weight lags behind.
	err = r.store.UpdateRow("user_profiles",
		[]data.Filter{data.Eq("id", request.UserID)},
		data.Row{"weight": request.Weight})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weight recorded but profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Weight recorded", "difference": difference})
}
