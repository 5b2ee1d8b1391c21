package types

// RegisterProfile contains the onboarding profile sent with a registration
type RegisterProfile struct {
	Name     string  `json:"name"`
	DOB      string  `json:"dob"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	Gender   string  `json:"gender"`
	Activity string  `json:"activity"`
	Goal     string  `json:"goal"`
}

// RegisterRequest contains the request for a new account
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Profile  RegisterProfile `json:"profile"`
}

// LoginRequest contains the request for a login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// WaterLogRequest contains the request for a water intake entry
type WaterLogRequest struct {
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// ManualMealRequest contains the request for a manually entered meal.
// Calories and macros are deliberately untyped: the mobile client sends
// them as numbers or strings depending on where the value came from.
type ManualMealRequest struct {
	UserID    string `json:"user_id"`
	MealName  string `json:"meal_name"`
	Calories  any    `json:"calories"`
	Protein   any    `json:"protein"`
	Fat       any    `json:"fat"`
	Carbs     any    `json:"carbs"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

// SaveRecipeRequest contains the request for saving a generated recipe
type SaveRecipeRequest struct {
	UserID       string `json:"user_id"`
	Title        string `json:"title"`
	RecipeName   string `json:"recipe_name"`
	Calories     any    `json:"calories"`
	Protein      any    `json:"protein"`
	Fat          any    `json:"fat"`
	Carbs        any    `json:"carbs"`
	Ingredients  any    `json:"ingredients"`
	Instructions any    `json:"instructions"`
	Time         string `json:"time"`
	ImageURL     string `json:"image_url"`
}

// AddFromRecipeRequest logs a previously generated recipe as a meal.
// The recipe payload is kept loose because generated recipes use several
// alias keys (recipe_name/title, proteins/protein, ...).
type AddFromRecipeRequest struct {
	UserID string         `json:"user_id"`
	Recipe map[string]any `json:"recipe"`
}

// ProfileUpdateRequest updates a single profile field
type ProfileUpdateRequest struct {
	UserID string `json:"user_id"`
	Field  string `json:"field" binding:"required"`
	Value  any    `json:"value"`
}

// AddWeightRequest contains the request for a weight history entry
type AddWeightRequest struct {
	UserID string  `json:"user_id"`
	Weight float64 `json:"weight" binding:"required"`
}

// VitaminRequest contains the request for a vitamin intake setting
type VitaminRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

// CustomFoodProductRequest adds a user-defined product to food_products
type CustomFoodProductRequest struct {
	Name     string `json:"name"`
	Calories any    `json:"calories"`
	Protein  any    `json:"protein"`
	Fat      any    `json:"fat"`
	Carbs    any    `json:"carbs"`
}
