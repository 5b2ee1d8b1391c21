package types

// DailyStatus aggregates the current day's meals and water against the
// profile targets. Derived on every request, never persisted.
type DailyStatus struct {
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	Username    string           `json:"username"`
	Eaten       int              `json:"eaten"`
	Target      int              `json:"target"`
	Remaining   int              `json:"remaining"`
	Goal        string           `json:"goal"`
	Protein     float64          `json:"protein"`
	Fat         float64          `json:"fat"`
	Carbs       float64          `json:"carbs"`
	Water       int              `json:"water"`
	WaterTarget int              `json:"water_target"`
	Stories     []map[string]any `json:"stories"`
	AvatarURL   string           `json:"avatar_url"`
	TargetP     int              `json:"target_p"`
	TargetF     int              `json:"target_f"`
	TargetC     int              `json:"target_c"`
}

// DayAnalytics is one calendar-day bucket of the weekly analytics series
type DayAnalytics struct {
	Day      string  `json:"day"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Water    int     `json:"water"`
}

// Macros contains a daily macro-nutrient split in grams
type Macros struct {
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carbs   int `json:"carbs"`
}

// Session contains the tokens returned by a successful login
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// MealAnalysis contains the AI estimate for a meal photo
type MealAnalysis struct {
	MealName string  `json:"meal_name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	ImageURL string  `json:"image_url,omitempty"`
}

// GeneratedRecipe contains an AI generated recipe suggestion
type GeneratedRecipe struct {
	Title        string  `json:"title"`
	Calories     int     `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	Time         string  `json:"time"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
	ImageURL     string  `json:"image_url"`
}

// InsightTip is a single tip inside the weekly insights
type InsightTip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// WeeklyInsights contains the AI analysis of the trailing week
type WeeklyInsights struct {
	Summary string       `json:"summary"`
	Tips    []InsightTip `json:"tips"`
}

// WeightHistoryResponse contains the weight history with derived fields
type WeightHistoryResponse struct {
	History       []map[string]any `json:"history"`
	CurrentWeight float64          `json:"current_weight"`
	StartWeight   float64          `json:"start_weight"`
	TargetWeight  float64          `json:"target_weight,omitempty"`
}

// ApiResponse represents the generic response envelope used by write endpoints
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
