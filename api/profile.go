package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Profile fields a client may change one at a time. Anything else is
// rejected so the service role key cannot be used to rewrite ids.
var updatableProfileFields = map[string]bool{
	"name":           true,
	"username":       true,
	"weight":         true,
	"height":         true,
	"age":            true,
	"gender":         true,
	"activity_level": true,
	"goal":           true,
}

// @Summary Get a profile
// @Description Get a user profile by ID
// @Tags profiles
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /profile/{user_id} [get]
func (r *Router) getProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	profile, err := r.store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", userID)},
	})
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update a profile field
// @Description Update a single profile field. Numeric fields are coerced: height and age to int, weight to float.
// @Tags profiles
// @Accept json
// @Produce json
// @Param update body types.ProfileUpdateRequest true "Field update"
// @Success 200 {object} types.ApiResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /profile/update [post]
func (r *Router) updateProfile(c *gin.Context) {
	var request types.ProfileUpdateRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if service.IsInvalidUser(request.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if !updatableProfileFields[request.Field] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Field %q cannot be updated", request.Field)})
		return
	}

	value := request.Value
	switch request.Field {
	case "height", "age":
		value = service.CleanToInt(value)
	case "weight":
		value = service.CleanToFloat(value)
	}

	err := r.store.UpdateRow("user_profiles",
		[]data.Filter{data.Eq("id", request.UserID)},
		data.Row{request.Field: value})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, types.ApiResponse{Status: "success", Message: "Profile updated"})
}

// @Summary Upload an avatar
// @Description Upload an avatar image and save its public URL to the profile
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData string true "User ID"
// @Param file formData file true "Avatar image"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /profile/avatar [post]
func (r *Router) uploadAvatar(c *gin.Context) {
	if r.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	userID := c.PostForm("user_id")
	if service.IsInvalidUser(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read avatar file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	path := fmt.Sprintf("%s/%s.jpg", userID, uuid.New().String())
	if err := r.storage.Upload("avatars", path, contents, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	avatarURL := r.storage.PublicURL("avatars", path)
	err = r.store.UpdateRow("user_profiles",
		[]data.Filter{data.Eq("id", userID)},
		data.Row{"avatar_url": avatarURL})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "avatar_url": avatarURL})
}
