package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sanyokkme/fiyouai/data"
)

type stubStore struct {
	rows []data.Row
	err  error
}

func (s *stubStore) FetchRows(q data.Query) ([]data.Row, error)   { return s.rows, s.err }
func (s *stubStore) FetchSingle(q data.Query) (data.Row, error)   { return nil, data.ErrNotFound }
func (s *stubStore) InsertRow(table string, row data.Row) error   { return nil }
func (s *stubStore) UpdateRow(t string, f []data.Filter, r data.Row) error { return nil }
func (s *stubStore) DeleteRow(t string, f []data.Filter) error    { return nil }

func newTestSearchService(store data.Store, searchURL string) *SearchService {
	return &SearchService{
		store:     store,
		client:    &http.Client{Timeout: time.Second},
		searchURL: searchURL,
	}
}

const foodFactsFixture = `{
	"products": [
		{
			"product_name": "Oat flakes",
			"product_name_uk": "Вівсяні пластівці",
			"brands": "Ярмарок",
			"nutriments": {
				"energy-kcal_100g": 370,
				"proteins_100g": "12.6",
				"fat_100g": 6.2,
				"carbohydrates_100g": 62.1
			}
		},
		{
			"product_name": "Mystery product",
			"nutriments": {"energy-kcal_100g": 0}
		},
		{
			"product_name": "",
			"nutriments": {"energy-kcal_100g": 100}
		}
	]
}`

func TestSearchFoodMergesLocalAndGlobal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search_terms") == "" {
			t.Error("missing search_terms parameter")
		}
		w.Write([]byte(foodFactsFixture))
	}))
	defer server.Close()

	store := &stubStore{rows: []data.Row{
		{"name": "Вівсянка домашня", "calories": 350, "protein": 11.0, "fat": 5.5, "carbs": "60"},
	}}

	results := newTestSearchService(store, server.URL).SearchFood("вівся")

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (1 local + 1 global): %+v", len(results), results)
	}

	local := results[0]
	if local.Source != "local" {
		t.Errorf("first result source = %q, want local", local.Source)
	}
	if local.Calories != 350 || local.Carbs != 60 {
		t.Errorf("local result not cleaned: %+v", local)
	}

	global := results[1]
	if global.Source != "global" {
		t.Errorf("second result source = %q, want global", global.Source)
	}
	if global.Name != "Вівсяні пластівці (Ярмарок)" {
		t.Errorf("global name = %q, want localized name with brand", global.Name)
	}
	if global.Protein != 12.6 {
		t.Errorf("global protein = %v, want 12.6", global.Protein)
	}
}

func TestSearchFoodDegradesOnFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	store := &stubStore{err: data.ErrNotFound}
	results := newTestSearchService(store, server.URL).SearchFood("anything")

	if len(results) != 0 {
		t.Fatalf("got %d results, want 0: %+v", len(results), results)
	}
}
