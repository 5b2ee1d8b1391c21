package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultAge = 25

// @Summary Register a new account
// @Description Create an account and its profile with a calculated daily calorie target
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body types.RegisterRequest true "Registration data"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /auth/register [post]
func (r *Router) register(c *gin.Context) {
	var request types.RegisterRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := service.ValidateRegisterRequest(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	age := ageFromDOB(request.Profile.DOB)
	if err := service.ValidateAge(age); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID string
	if r.auth != nil {
		id, err := r.auth.SignUp(request.Email, request.Password)
		if err != nil {
			fmt.Printf("Signup failed: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		userID = id
	} else {
		// local mode has no identity provider, profiles get a plain uuid
		userID = uuid.New().String()
	}

	profile := request.Profile
	tdee := service.CalculateBMRTDEE(profile.Weight, profile.Height, age, profile.Gender, profile.Activity)
	target := service.TargetCalories(tdee, profile.Goal)
	if target < service.MinDailyCalories {
		target = service.MinDailyCalories
	}

	err := r.store.InsertRow("user_profiles", data.Row{
		"id":                    userID,
		"email":                 request.Email,
		"name":                  profile.Name,
		"username":              profile.Name,
		"weight":                profile.Weight,
		"height":                profile.Height,
		"age":                   age,
		"gender":                profile.Gender,
		"activity_level":        profile.Activity,
		"goal":                  profile.Goal,
		"daily_calories_target": target,
		"created_at":            service.Now().Format(service.TimestampLayout),
	})
	if err != nil {
		fmt.Printf("Profile creation failed, rolling back signup: %v\n", err)
		if r.auth != nil {
			if delErr := r.auth.DeleteUser(userID); delErr != nil {
				fmt.Printf("Signup rollback failed: %v\n", delErr)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":                "success",
		"user_id":               userID,
		"daily_calories_target": target,
	})
}

// ageFromDOB converts a YYYY-MM-DD date of birth into full years
func ageFromDOB(dob string) int {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return defaultAge
	}

	now := service.Now()
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age <= 0 {
		return defaultAge
	}
	return age
}

// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body types.LoginRequest true "Login credentials"
// @Success 200 {object} types.Session
// @Failure 400 {object} gin.H
// @Failure 401 {object} gin.H
// @Router /auth/login [post]
func (r *Router) login(c *gin.Context) {
	if r.auth == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication is not configured"})
		return
	}

	var request types.LoginRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := r.auth.SignIn(request.Email, request.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, session)
}
