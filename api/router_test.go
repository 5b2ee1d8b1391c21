package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/service"
	"github.com/sanyokkme/fiyouai/settings"
	"github.com/sanyokkme/fiyouai/types"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeStore is an in-memory Store for handler tests
type fakeStore struct {
	rows map[string][]data.Row
	errs map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string][]data.Row{}, errs: map[string]error{}}
}

func matches(row data.Row, filters []data.Filter) bool {
	for _, f := range filters {
		have := fmt.Sprint(row[f.Column])
		want := fmt.Sprint(f.Value)
		switch f.Op {
		case "eq":
			if have != want {
				return false
			}
		case "gte":
			if have < want {
				return false
			}
		case "ilike":
			if !strings.Contains(strings.ToLower(have), strings.ToLower(strings.Trim(want, "%"))) {
				return false
			}
		}
	}
	return true
}

func (f *fakeStore) FetchRows(q data.Query) ([]data.Row, error) {
	if err := f.errs[q.Table]; err != nil {
		return nil, err
	}
	var result []data.Row
	for _, row := range f.rows[q.Table] {
		if matches(row, q.Filters) {
			result = append(result, row)
		}
	}
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (f *fakeStore) FetchSingle(q data.Query) (data.Row, error) {
	rows, err := f.FetchRows(q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, data.ErrNotFound
	}
	return rows[0], nil
}

func (f *fakeStore) InsertRow(table string, row data.Row) error {
	if err := f.errs[table]; err != nil {
		return err
	}
	f.rows[table] = append(f.rows[table], row)
	return nil
}

func (f *fakeStore) UpdateRow(table string, filters []data.Filter, row data.Row) error {
	if err := f.errs[table]; err != nil {
		return err
	}
	for _, existing := range f.rows[table] {
		if matches(existing, filters) {
			for k, v := range row {
				existing[k] = v
			}
		}
	}
	return nil
}

func (f *fakeStore) DeleteRow(table string, filters []data.Filter) error {
	var kept []data.Row
	for _, row := range f.rows[table] {
		if !matches(row, filters) {
			kept = append(kept, row)
		}
	}
	f.rows[table] = kept
	return nil
}

func newTestRouter(store data.Store) *Router {
	return NewRouter(&settings.Settings{Port: "8080", DataDir: "./data"}, store)
}

func doRequest(r *Router, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestUserStatusInvalidUser(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodGet, "/api/user_status/null", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var status types.DailyStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if status.Target != 2000 {
		t.Errorf("Target = %d, want neutral default 2000", status.Target)
	}
	if status.Username != "Користувач" {
		t.Errorf("Username = %q, want default", status.Username)
	}
	if status.Stories == nil {
		t.Error("Stories should be an empty list, not null")
	}
}

func TestUserStatusMissingProfile(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodGet, "/api/user_status/no-such-user", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAnalyticsInvalidUser(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodGet, "/api/analytics/undefined", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestAddWaterDefaultsAmount(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/add_water", types.WaterLogRequest{UserID: "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	logs := store.rows["water_logs"]
	if len(logs) != 1 {
		t.Fatalf("got %d water rows, want 1", len(logs))
	}
	if logs[0]["amount"] != defaultWaterAmount {
		t.Errorf("amount = %v, want %d", logs[0]["amount"], defaultWaterAmount)
	}
	if logs[0]["id"] == "" {
		t.Error("missing generated id")
	}
}

func TestAddWaterInvalidUser(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodPost, "/api/add_water", types.WaterLogRequest{UserID: "undefined"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAddMealCleansValues(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/add_meal", map[string]any{
		"user_id":   "u1",
		"meal_name": "Вівсянка",
		"calories":  "350kcal",
		"protein":   "12.5g",
		"fat":       "невідомо",
		"carbs":     40,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	meals := store.rows["meal_history"]
	if len(meals) != 1 {
		t.Fatalf("got %d meal rows, want 1", len(meals))
	}
	if meals[0]["calories"] != 350 {
		t.Errorf("calories = %v, want 350", meals[0]["calories"])
	}
	if meals[0]["protein"] != 12.5 {
		t.Errorf("protein = %v, want 12.5", meals[0]["protein"])
	}
	if meals[0]["fat"] != 0.0 {
		t.Errorf("fat = %v, want 0", meals[0]["fat"])
	}
}

func TestAddFromRecipeAliasKeys(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/add_from_recipe", map[string]any{
		"user_id": "u1",
		"recipe": map[string]any{
			"title":         "Салат",
			"calories":      420,
			"proteins":      "15",
			"fats":          10.0,
			"carbohydrates": "30g",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	meals := store.rows["meal_history"]
	if len(meals) != 1 {
		t.Fatalf("got %d meal rows, want 1", len(meals))
	}
	if meals[0]["meal_name"] != "Салат" {
		t.Errorf("meal_name = %v, want title alias", meals[0]["meal_name"])
	}
	if meals[0]["protein"] != 15.0 {
		t.Errorf("protein = %v, want 15", meals[0]["protein"])
	}
	if meals[0]["carbs"] != 30.0 {
		t.Errorf("carbs = %v, want 30", meals[0]["carbs"])
	}
}

func TestGetVitaminsErrorReturnsEmptyList(t *testing.T) {
	store := newFakeStore()
	store.errs["vitamins"] = errors.New("db down")
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/api/vitamins/u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestUpdateProfileCoercion(t *testing.T) {
	store := newFakeStore()
	store.rows["user_profiles"] = []data.Row{{"id": "u1", "height": 170}}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/profile/update", map[string]any{
		"user_id": "u1",
		"field":   "height",
		"value":   "182cm",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if store.rows["user_profiles"][0]["height"] != 182 {
		t.Errorf("height = %v, want 182", store.rows["user_profiles"][0]["height"])
	}
}

func TestUpdateProfileRejectsUnknownField(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodPost, "/api/profile/update", map[string]any{
		"user_id": "u1",
		"field":   "id",
		"value":   "new-id",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAddWeightComputesDifference(t *testing.T) {
	store := newFakeStore()
	store.rows["user_profiles"] = []data.Row{{"id": "u1", "weight": 80.0}}
	store.rows["weight_history"] = []data.Row{
		{"user_id": "u1", "weight": 80.0, "created_at": "2025-06-01T08:00:00+02:00"},
	}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/weight/add", types.AddWeightRequest{UserID: "u1", Weight: 78.5})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	history := store.rows["weight_history"]
	if len(history) != 2 {
		t.Fatalf("got %d history rows, want 2", len(history))
	}
	inserted := history[1]
	if inserted["difference"] != -1.5 {
		t.Errorf("difference = %v, want -1.5", inserted["difference"])
	}
	if store.rows["user_profiles"][0]["weight"] != 78.5 {
		t.Errorf("profile weight = %v, want 78.5", store.rows["user_profiles"][0]["weight"])
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["difference"] != -1.5 {
		t.Errorf("response difference = %v, want -1.5", body["difference"])
	}
}

func TestRegisterLocalModeCreatesProfile(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/auth/register", types.RegisterRequest{
		Email:    "olya@example.com",
		Password: "secret123",
		Profile: types.RegisterProfile{
			Name:     "Оля",
			DOB:      "1995-06-15",
			Weight:   60,
			Height:   165,
			Gender:   "Жінка",
			Activity: "Середня активність",
			Goal:     "схуднення",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	profiles := store.rows["user_profiles"]
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}

	age := ageFromDOB("1995-06-15")
	tdee := service.CalculateBMRTDEE(60, 165, age, "Жінка", "Середня активність")
	wantTarget := service.TargetCalories(tdee, "схуднення")
	if wantTarget < service.MinDailyCalories {
		wantTarget = service.MinDailyCalories
	}
	if profiles[0]["daily_calories_target"] != wantTarget {
		t.Errorf("daily_calories_target = %v, want %d", profiles[0]["daily_calories_target"], wantTarget)
	}
	if profiles[0]["age"] != age {
		t.Errorf("age = %v, want %d", profiles[0]["age"], age)
	}
}

func TestRegisterRejectsBadProfile(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodPost, "/api/auth/register", types.RegisterRequest{
		Email:    "olya@example.com",
		Password: "secret123",
		Profile:  types.RegisterProfile{Name: "Оля", Weight: 5, Height: 165},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsChildDOB(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/auth/register", types.RegisterRequest{
		Email:    "olya@example.com",
		Password: "secret123",
		Profile: types.RegisterProfile{
			Name:     "Оля",
			DOB:      "2024-01-01",
			Weight:   60,
			Height:   165,
			Gender:   "Жінка",
			Activity: "Середня активність",
			Goal:     "схуднення",
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if len(store.rows["user_profiles"]) != 0 {
		t.Errorf("got %d profiles, want none", len(store.rows["user_profiles"]))
	}
}

func TestSearchFoodRequiresQuery(t *testing.T) {
	r := newTestRouter(newFakeStore())
	w := doRequest(r, http.MethodGet, "/api/search_food", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
