// Package service contains the nutrition calculation and aggregation
// logic plus the clients for the hosted auth, storage and AI providers.
package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/types"
)

// ErrProfileNotFound is returned when a user has no profile row. Callers
// decide the HTTP semantics; every other data source degrades instead of
// failing the whole response.
var ErrProfileNotFound = errors.New("profile not found")

// MinDailyCalories is the hard floor for any served or stored calorie
// target
const MinDailyCalories = 1200

// defaultCaloriesTarget is assumed when a profile has no stored target
const defaultCaloriesTarget = 2000

// activityFactors maps activity levels to their TDEE multiplier. The app
// stores the localized labels, the API also accepts the English ones.
var activityFactors = map[string]float64{
	"Сидячий":           1.2,
	"Легка активність":  1.375,
	"Середня активність": 1.55,
	"Висока активність": 1.725,
	"sedentary":         1.2,
	"light":             1.375,
	"moderate":          1.55,
	"high":              1.725,
}

// Goal is the classified variant of the free-form goal string
type Goal int

const (
	GoalMaintain Goal = iota
	GoalLose
	GoalGain
)

// ClassifyGoal classifies a free-form goal string by substring match.
// The match is deliberately loose: profile goals are free text and can be
// localized ("схуднення", "I want to lose weight", "набрати масу").
func ClassifyGoal(goal string) Goal {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "lose"), strings.Contains(g, "скинути"), strings.Contains(g, "схуднення"):
		return GoalLose
	case strings.Contains(g, "gain"), strings.Contains(g, "набрати"):
		return GoalGain
	default:
		return GoalMaintain
	}
}

// CalculateBMRTDEE computes the total daily energy expenditure with the
// Mifflin-St Jeor formula. Gender is a two-way partition: the male
// constant applies to "Чоловік"/"male", everything else gets the female
// one. An unrecognized activity level falls back to the sedentary factor;
// this is a defined default, not an error.
func CalculateBMRTDEE(weight, height float64, age int, gender, activityLevel string) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == "Чоловік" || gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = 1.2
	}
	return bmr * factor
}

// TargetCalories adjusts a TDEE for the user's goal: -500 kcal for loss,
// +500 for gain, unchanged otherwise. The result is truncated, not
// rounded.
func TargetCalories(tdee float64, goal string) int {
	switch ClassifyGoal(goal) {
	case GoalLose:
		return int(tdee - 500)
	case GoalGain:
		return int(tdee + 500)
	default:
		return int(tdee)
	}
}

// CalculateMacros splits a calorie target 30/30/40 into protein, fat and
// carb grams. Each value truncates independently, so the grams do not
// necessarily add back up to the input calories exactly.
func CalculateMacros(calories int) types.Macros {
	c := float64(calories)
	return types.Macros{
		Protein: int(c * 0.3 / 4),
		Fat:     int(c * 0.3 / 9),
		Carbs:   int(c * 0.4 / 4),
	}
}

// NutritionService computes daily and weekly nutrition aggregates from
// the record store. It holds no state between calls; every result is
// recomputed from freshly fetched rows.
type NutritionService struct {
	store data.Store
}

func NewNutritionService(store data.Store) *NutritionService {
	return &NutritionService{store: store}
}

func (s *NutritionService) getProfile(userID string) (data.Row, error) {
	profile, err := s.store.FetchSingle(data.Query{
		Table:   "user_profiles",
		Filters: []data.Filter{data.Eq("id", userID)},
	})
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %v", err)
	}
	return profile, nil
}

func (s *NutritionService) mealsSince(userID, bound string) ([]data.Row, error) {
	return s.store.FetchRows(data.Query{
		Table: "meal_history",
		Filters: []data.Filter{
			data.Eq("user_id", userID),
			data.Gte("created_at", bound),
		},
	})
}

func (s *NutritionService) waterSince(userID, bound string) ([]data.Row, error) {
	return s.store.FetchRows(data.Query{
		Table: "water_logs",
		Filters: []data.Filter{
			data.Eq("user_id", userID),
			data.Gte("created_at", bound),
		},
	})
}

// GetDailyStatus returns today's eaten/target/remaining snapshot for a
// user. The profile fetch is the only hard dependency; the stories feed
// degrades to an empty list on any failure.
func (s *NutritionService) GetDailyStatus(userID string) (*types.DailyStatus, error) {
	profile, err := s.getProfile(userID)
	if err != nil {
		return nil, err
	}

	todayStart := StartOfDay(Now()).Format(TimestampLayout)

	meals, err := s.mealsSince(userID, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meals: %v", err)
	}
	water, err := s.waterSince(userID, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch water logs: %v", err)
	}

	target := CleanToInt(profile["daily_calories_target"])
	if target == 0 {
		target = defaultCaloriesTarget
	}
	if target < MinDailyCalories {
		target = MinDailyCalories
	}

	eaten := 0
	var protein, fat, carbs float64
	for _, m := range meals {
		eaten += CleanToInt(m["calories"])
		protein += CleanToFloat(m["protein"])
		fat += CleanToFloat(m["fat"])
		carbs += CleanToFloat(m["carbs"])
	}

	waterTotal := 0
	for _, w := range water {
		waterTotal += CleanToInt(w["amount"])
	}

	weight := CleanToFloat(profile["weight"])
	if weight == 0 {
		weight = 70
	}

	remaining := target - eaten
	if remaining < 0 {
		remaining = 0
	}

	username := stringField(profile, "username")
	if username == "" {
		username = "Користувач"
	}

	macros := CalculateMacros(target)

	return &types.DailyStatus{
		UserID:      userID,
		Name:        stringField(profile, "name"),
		Username:    username,
		Eaten:       eaten,
		Target:      target,
		Remaining:   remaining,
		Goal:        stringField(profile, "goal"),
		Protein:     protein,
		Fat:         fat,
		Carbs:       carbs,
		Water:       waterTotal,
		WaterTarget: int(weight * 35),
		Stories:     s.activeStories(),
		AvatarURL:   stringField(profile, "avatar_url"),
		TargetP:     macros.Protein,
		TargetF:     macros.Fat,
		TargetC:     macros.Carbs,
	}, nil
}

// activeStories fetches the promotional stories feed. Best effort: a
// broken feed must never break the status response.
func (s *NutritionService) activeStories() []map[string]any {
	stories, err := s.store.FetchRows(data.Query{
		Table:   "app_stories",
		Filters: []data.Filter{data.Eq("is_active", true)},
	})
	if err != nil {
		fmt.Printf("Error fetching stories: %v\n", err)
		return []map[string]any{}
	}
	return stories
}

// GetWeeklyAnalytics returns a per-day series of calories, macros and
// water over the trailing 7 days, bucketed by reference-timezone
// calendar date and sorted ascending.
func (s *NutritionService) GetWeeklyAnalytics(userID string) ([]types.DayAnalytics, error) {
	weekAgo := StartOfDay(Now()).AddDate(0, 0, -7).Format(TimestampLayout)

	meals, err := s.mealsSince(userID, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meals: %v", err)
	}
	water, err := s.waterSince(userID, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch water logs: %v", err)
	}

	type dayTotals struct {
		calories int
		protein  float64
		fat      float64
		carbs    float64
		water    int
	}
	buckets := map[string]*dayTotals{}
	bucket := func(day string) *dayTotals {
		t, ok := buckets[day]
		if !ok {
			t = &dayTotals{}
			buckets[day] = t
		}
		return t
	}

	for _, m := range meals {
		t := bucket(DayBucket(toString(m["created_at"])))
		t.calories += CleanToInt(m["calories"])
		t.protein += CleanToFloat(m["protein"])
		t.fat += CleanToFloat(m["fat"])
		t.carbs += CleanToFloat(m["carbs"])
	}
	for _, w := range water {
		t := bucket(DayBucket(toString(w["created_at"])))
		t.water += CleanToInt(w["amount"])
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]types.DayAnalytics, 0, len(days))
	for _, day := range days {
		t := buckets[day]
		result = append(result, types.DayAnalytics{
			Day:      day,
			Calories: t.calories,
			// Accumulation stays full precision; rounding happens on
			// output only
			Protein: math.Round(t.protein*10) / 10,
			Fat:     math.Round(t.fat*10) / 10,
			Carbs:   math.Round(t.carbs*10) / 10,
			Water:   t.water,
		})
	}
	return result, nil
}

// GetTipsData gathers the raw trailing-7-day meal history and the raw
// profile for the AI insight generator. No transformation happens here.
func (s *NutritionService) GetTipsData(userID string) ([]data.Row, data.Row, error) {
	weekAgo := StartOfDay(Now()).AddDate(0, 0, -7).Format(TimestampLayout)

	history, err := s.mealsSince(userID, weekAgo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch meal history: %v", err)
	}
	profile, err := s.getProfile(userID)
	if err != nil {
		return nil, nil, err
	}
	return history, profile, nil
}

// RecalculateTargets recomputes daily_calories_target for every profile
// with complete body data. Run by the scheduler once per day so targets
// follow weight changes.
func (s *NutritionService) RecalculateTargets() error {
	profiles, err := s.store.FetchRows(data.Query{Table: "user_profiles"})
	if err != nil {
		return fmt.Errorf("failed to fetch profiles: %v", err)
	}

	for _, profile := range profiles {
		weight := CleanToFloat(profile["weight"])
		height := CleanToFloat(profile["height"])
		age := CleanToInt(profile["age"])
		if weight <= 0 || height <= 0 || age <= 0 {
			continue
		}

		tdee := CalculateBMRTDEE(weight, height, age, stringField(profile, "gender"), stringField(profile, "activity_level"))
		target := TargetCalories(tdee, stringField(profile, "goal"))
		if target < MinDailyCalories {
			target = MinDailyCalories
		}
		if target == CleanToInt(profile["daily_calories_target"]) {
			continue
		}

		userID := stringField(profile, "id")
		err := s.store.UpdateRow("user_profiles",
			[]data.Filter{data.Eq("id", userID)},
			data.Row{"daily_calories_target": target})
		if err != nil {
			fmt.Printf("Failed to update calorie target for %s: %v\n", userID, err)
		}
	}
	return nil
}

func stringField(row data.Row, key string) string {
	if row[key] == nil {
		return ""
	}
	return toString(row[key])
}
