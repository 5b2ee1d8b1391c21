package types

// UserProfile represents a user profile row in the user_profiles table.
// Numeric fields can arrive from the store as strings or null, so services
// read them through the tolerant cleaners instead of trusting the declared
// types.
type UserProfile struct {
	ID                  string  `json:"id"`
	Email               string  `json:"email,omitempty"`
	Name                string  `json:"name,omitempty"`
	Username            string  `json:"username,omitempty"`
	Weight              float64 `json:"weight"`
	Height              float64 `json:"height"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	ActivityLevel       string  `json:"activity_level"`
	Goal                string  `json:"goal"`
	DailyCaloriesTarget int     `json:"daily_calories_target"`
	AvatarURL           string  `json:"avatar_url,omitempty"`
	CreatedAt           string  `json:"created_at,omitempty"`
}

// MealEntry represents a meal row in the meal_history table
type MealEntry struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	MealName  string  `json:"meal_name,omitempty"`
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	ImageURL  string  `json:"image_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// WaterEntry represents a water log row in the water_logs table
type WaterEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// WeightEntry represents a weight history row. Difference is computed at
// insert time against the previous chronological entry.
type WeightEntry struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Weight     float64 `json:"weight"`
	Difference float64 `json:"difference"`
	CreatedAt  string  `json:"created_at"`
}

// SavedRecipe represents a saved recipe row
type SavedRecipe struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Title        string  `json:"title"`
	Calories     int     `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	Ingredients  any     `json:"ingredients,omitempty"`
	Instructions any     `json:"instructions,omitempty"`
	Time         string  `json:"time,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// Vitamin represents a vitamin intake setting row
type Vitamin struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Time      string `json:"time,omitempty"`
	CreatedAt string `json:"created_at"`
}

// FoodProduct represents a product in the food_products table
type FoodProduct struct {
	Name      string  `json:"name"`
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	Source    string  `json:"source,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}
