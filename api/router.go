// Package api provides the REST API for the FiYou nutrition backend
//
// @title FiYou API
// @version 1.0
// @description Nutrition tracking backend for the FiYou mobile application
// @host localhost:8080
// @BasePath /api
// @schemes http
package api

import (
	"fmt"
	"net/http"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/settings"

	_ "github.com/sanyokkme/fiyouai/api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type (
	Router struct {
		engine         *gin.Engine
		cfg            *settings.Settings
		store          data.Store
		nutrition      *service.NutritionService
		search         *service.SearchService
		ai             *service.AIService
		auth           *service.AuthService
		storage        *service.StorageService
		allowedOrigins []string
	}
)

// NewRouter wires the services on top of the given record store. Auth and
// file storage are only available when a hosted Supabase project is
// configured; without it those endpoints degrade (no token checks, no
// uploads) so the backend still runs against the local sqlite store.
func NewRouter(cfg *settings.Settings, store data.Store) *Router {
	router := &Router{
		engine:    gin.Default(),
		cfg:       cfg,
		store:     store,
		nutrition: service.NewNutritionService(store),
		search:    service.NewSearchService(store),
		ai:        service.NewAIService(cfg.OpenAIAPIKey),
	}

	if cfg.SupabaseURL != "" {
		router.auth = service.NewAuthService(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseJWTSecret)
		router.storage = service.NewStorageService(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
	}

	router.allowedOrigins = []string{"http://localhost:" + cfg.Port, "http://localhost:3000"}
	for _, ip := range cfg.AllowedIPs {
		router.allowedOrigins = append(router.allowedOrigins, fmt.Sprintf("http://%s", ip))
	}
	fmt.Println("Allowed Origins:", router.allowedOrigins)

	router.registerRoutes()
	return router
}

func (r *Router) registerRoutes() {
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	r.engine.GET("/swagger/*any", CustomSwaggerHandler(swaggerHandler))

	config := cors.DefaultConfig()
	config.AllowOrigins = r.allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	r.engine.Use(cors.New(config))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		api.GET("/user_status/:user_id", r.getUserStatus)
		api.GET("/analytics/:user_id", r.getAnalytics)
		api.POST("/add_water", r.addWater)
		api.POST("/add_meal", r.addMeal)
		api.POST("/add_from_recipe", r.addFromRecipe)
		api.POST("/save_recipe", r.saveRecipe)
		api.GET("/saved_recipes/:user_id", r.getSavedRecipes)
		api.DELETE("/delete_recipe/:recipe_id", r.deleteRecipe)
		api.POST("/add_vitamin", r.addVitamin)
		api.GET("/vitamins/:user_id", r.getVitamins)
		api.DELETE("/vitamins/:vitamin_id", r.deleteVitamin)
		api.POST("/add_custom_food_product", r.addCustomFoodProduct)
		api.GET("/search_food", r.searchFood)

		api.GET("/profile/:user_id", r.getProfile)
		api.POST("/profile/update", r.updateProfile)
		api.POST("/profile/avatar", r.uploadAvatar)

		weight := api.Group("/weight", r.requireAuth())
		{
			weight.GET("/history/:user_id", r.getWeightHistory)
			weight.POST("/add", r.addWeight)
		}

		api.POST("/auth/register", r.register)
		api.POST("/auth/login", r.login)

		api.POST("/analyze_meal", r.analyzeMeal)
		api.POST("/analyze_image", r.analyzeImage)
		api.GET("/generate_recipe/:user_id", r.generateRecipe)
		api.GET("/get_tips/:user_id", r.getTips)
	}
}

func (r *Router) SetupAndRunApiServer() {
	fmt.Println("Running API server on port " + r.cfg.Port)
	r.engine.Run(":" + r.cfg.Port)
}
